package ledger

import "context"

// Store is the durable collaborator the ledger reads from and appends to.
//
// Implementations must make AppendEntries all-or-nothing: either every entry
// of the batch becomes durable or none does. ListEntries must return entries
// in insertion order, oldest first. FindAccount reports ErrAccountNotFound
// for unknown ids, FindEntry reports ErrEntryNotFound when the entry does not
// exist or belongs to a different account.
type Store interface {
	FindAccount(ctx context.Context, id int64) (Account, error)
	AppendEntry(ctx context.Context, entry Entry) (Entry, error)
	AppendEntries(ctx context.Context, entries []Entry) ([]Entry, error)
	ListEntries(ctx context.Context, accountID int64) ([]Entry, error)
	FindEntry(ctx context.Context, accountID, entryID int64) (Entry, error)
}
