package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service exposes the ledger operations: deposit, withdraw, transfer,
// balance query and entry lookup.
//
// Funds checks are always made against a balance projected from the full
// entry history at decision time. The projection, the admissibility check
// and the append run inside a per-account critical section so two concurrent
// debits cannot both observe a sufficient balance before either commits.
type Service struct {
	store  Store
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		locks:  make(map[int64]*sync.Mutex),
	}
}

// Summary is an account's projected balance together with its full
// statement, oldest entry first.
type Summary struct {
	Balance   int64
	Statement []Entry
}

func (s *Service) accountLock(accountID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[accountID] = lock
	}
	return lock
}

// Deposit credits amount to the account and returns the created entry.
// Deposits never fail the funds policy, so they need no exclusion beyond the
// store's single durable append.
func (s *Service) Deposit(ctx context.Context, accountID, amount int64, description string) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrInvalidAmount
	}
	if _, err := s.store.FindAccount(ctx, accountID); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		AccountID:   accountID,
		Kind:        KindDeposit,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	return s.store.AppendEntry(ctx, entry)
}

// Withdraw debits amount from the account, failing with
// ErrInsufficientFunds when the projected balance does not cover it.
func (s *Service) Withdraw(ctx context.Context, accountID, amount int64, description string) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrInvalidAmount
	}
	if _, err := s.store.FindAccount(ctx, accountID); err != nil {
		return Entry{}, err
	}

	lock := s.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	balance, err := s.balance(ctx, accountID)
	if err != nil {
		return Entry{}, err
	}
	if !canDebit(balance, amount) {
		s.logger.Debug().
			Int64("account_id", accountID).
			Int64("amount", amount).
			Int64("balance", balance).
			Msg("withdrawal rejected")
		return Entry{}, ErrInsufficientFunds
	}

	entry := Entry{
		AccountID:   accountID,
		Kind:        KindWithdraw,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	return s.store.AppendEntry(ctx, entry)
}

// Transfer moves amount from sender to recipient and returns the sender's
// debit leg. The two legs share a transfer id and are appended as one atomic
// unit: either both become durable or neither does.
func (s *Service) Transfer(ctx context.Context, senderID, recipientID, amount int64, description string) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrInvalidAmount
	}
	if senderID == recipientID {
		return Entry{}, ErrSelfTransfer
	}
	if _, err := s.store.FindAccount(ctx, senderID); err != nil {
		return Entry{}, err
	}
	if _, err := s.store.FindAccount(ctx, recipientID); err != nil {
		return Entry{}, err
	}

	// Both accounts are locked in ascending id order so two concurrent
	// opposite-direction transfers cannot deadlock.
	first, second := s.accountLock(senderID), s.accountLock(recipientID)
	if recipientID < senderID {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	balance, err := s.balance(ctx, senderID)
	if err != nil {
		return Entry{}, err
	}
	if !canDebit(balance, amount) {
		s.logger.Debug().
			Int64("sender_id", senderID).
			Int64("recipient_id", recipientID).
			Int64("amount", amount).
			Int64("balance", balance).
			Msg("transfer rejected")
		return Entry{}, ErrInsufficientFunds
	}

	transferID := uuid.New()
	now := time.Now()
	legs := []Entry{
		{
			AccountID:      senderID,
			CounterpartyID: recipientID,
			TransferID:     transferID,
			Kind:           KindTransfer,
			Outgoing:       true,
			Amount:         amount,
			Description:    description,
			CreatedAt:      now,
		},
		{
			AccountID:      recipientID,
			CounterpartyID: senderID,
			TransferID:     transferID,
			Kind:           KindTransfer,
			Amount:         amount,
			Description:    description,
			CreatedAt:      now,
		},
	}
	stored, err := s.store.AppendEntries(ctx, legs)
	if err != nil {
		return Entry{}, err
	}
	return stored[0], nil
}

// Balance returns the projected balance and the full ordered statement of
// the account. An account with no entries is valid and has balance zero.
func (s *Service) Balance(ctx context.Context, accountID int64) (Summary, error) {
	if _, err := s.store.FindAccount(ctx, accountID); err != nil {
		return Summary{}, err
	}
	entries, err := s.store.ListEntries(ctx, accountID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Balance: projectBalance(entries), Statement: entries}, nil
}

// Entry returns a single entry, enforcing that it belongs to the given
// account. A foreign entry id is indistinguishable from an absent one.
func (s *Service) Entry(ctx context.Context, accountID, entryID int64) (Entry, error) {
	if _, err := s.store.FindAccount(ctx, accountID); err != nil {
		return Entry{}, err
	}
	return s.store.FindEntry(ctx, accountID, entryID)
}

func (s *Service) balance(ctx context.Context, accountID int64) (int64, error) {
	entries, err := s.store.ListEntries(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return projectBalance(entries), nil
}
