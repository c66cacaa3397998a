package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/finhub/finhub.go/db/models"
	"github.com/finhub/finhub.go/ledger"
)

// LedgerStore implements ledger.Store on top of Postgres. Accounts are the
// rows of the users table; the ledger only ever reads them.
type LedgerStore struct {
	db *bun.DB
}

func NewLedgerStore(db *bun.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

var _ ledger.Store = (*LedgerStore)(nil)

func (store *LedgerStore) FindAccount(ctx context.Context, id int64) (ledger.Account, error) {
	var user models.User

	err := store.db.NewSelect().Model(&user).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Account{}, ledger.ErrAccountNotFound
		}
		return ledger.Account{}, err
	}
	return ledger.Account{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (store *LedgerStore) AppendEntry(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	row := models.EntryFromLedger(entry)

	_, err := store.db.NewInsert().Model(&row).Exec(ctx)
	if err != nil {
		return ledger.Entry{}, err
	}
	return row.ToLedger(), nil
}

// AppendEntries appends the batch inside a single database transaction so a
// transfer's two legs are durable together or not at all.
func (store *LedgerStore) AppendEntries(ctx context.Context, entries []ledger.Entry) ([]ledger.Entry, error) {
	rows := make([]models.LedgerEntry, len(entries))
	for i, entry := range entries {
		rows[i] = models.EntryFromLedger(entry)
	}

	err := store.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	stored := make([]ledger.Entry, len(rows))
	for i, row := range rows {
		stored[i] = row.ToLedger()
	}
	return stored, nil
}

func (store *LedgerStore) ListEntries(ctx context.Context, accountID int64) ([]ledger.Entry, error) {
	var rows []models.LedgerEntry

	err := store.db.NewSelect().Model(&rows).Where("account_id = ?", accountID).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.ToLedger()
	}
	return entries, nil
}

func (store *LedgerStore) FindEntry(ctx context.Context, accountID, entryID int64) (ledger.Entry, error) {
	var row models.LedgerEntry

	err := store.db.NewSelect().Model(&row).Where("id = ? AND account_id = ?", entryID, accountID).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Entry{}, ledger.ErrEntryNotFound
		}
		return ledger.Entry{}, err
	}
	return row.ToLedger(), nil
}
