package ledger

import "errors"

// Business outcomes are returned as sentinel errors so callers are forced to
// handle them explicitly. Store failures are propagated unchanged and never
// rewritten into one of these.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEntryNotFound     = errors.New("statement entry not found")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrSelfTransfer      = errors.New("sender and recipient must be different accounts")
)
