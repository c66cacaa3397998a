package memory

import (
	"context"
	"sync"
	"time"

	"github.com/finhub/finhub.go/ledger"
)

// Store is an in-memory ledger.Store backing the unit tests. Nothing in the
// core can tell it apart from the Postgres store.
type Store struct {
	mu            sync.Mutex
	nextAccountID int64
	nextEntryID   int64
	accounts      map[int64]ledger.Account
	entries       []ledger.Entry
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]ledger.Account),
	}
}

var _ ledger.Store = (*Store)(nil)

// CreateAccount registers an identity record. Accounts are owned by the
// users component, tests seed them directly through this helper.
func (store *Store) CreateAccount(name, email string) ledger.Account {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextAccountID++
	account := ledger.Account{
		ID:        store.nextAccountID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	store.accounts[account.ID] = account
	return account
}

func (store *Store) FindAccount(ctx context.Context, id int64) (ledger.Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	account, ok := store.accounts[id]
	if !ok {
		return ledger.Account{}, ledger.ErrAccountNotFound
	}
	return account, nil
}

func (store *Store) AppendEntry(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextEntryID++
	entry.ID = store.nextEntryID
	store.entries = append(store.entries, entry)
	return entry, nil
}

// AppendEntries assigns ids and appends the whole batch under one lock
// acquisition, so a concurrent reader sees all of the batch or none of it.
func (store *Store) AppendEntries(ctx context.Context, entries []ledger.Entry) ([]ledger.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	stored := make([]ledger.Entry, len(entries))
	for i, entry := range entries {
		store.nextEntryID++
		entry.ID = store.nextEntryID
		store.entries = append(store.entries, entry)
		stored[i] = entry
	}
	return stored, nil
}

func (store *Store) ListEntries(ctx context.Context, accountID int64) ([]ledger.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var result []ledger.Entry
	for _, entry := range store.entries {
		if entry.AccountID == accountID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (store *Store) FindEntry(ctx context.Context, accountID, entryID int64) (ledger.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, entry := range store.entries {
		if entry.ID == entryID && entry.AccountID == accountID {
			return entry, nil
		}
	}
	return ledger.Entry{}, ledger.ErrEntryNotFound
}
