package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind labels what a ledger entry records.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
	KindTransfer Kind = "transfer"
)

// Entry is one immutable record of a financial operation. The ledger is
// append-only: entries are created by the operations in this package and are
// never updated or deleted afterwards.
type Entry struct {
	ID        int64
	AccountID int64
	// CounterpartyID is set on transfer legs only and names the other
	// account involved in the transfer.
	CounterpartyID int64
	// TransferID links the two legs of one logical transfer.
	TransferID uuid.UUID
	Kind       Kind
	// Outgoing marks the sender's leg of a transfer.
	Outgoing    bool
	Amount      int64 // minor units, always > 0
	Description string
	CreatedAt   time.Time
}

// Credit returns the signed effect of the entry on its account's balance.
func (e Entry) Credit() int64 {
	switch e.Kind {
	case KindWithdraw:
		return -e.Amount
	case KindTransfer:
		if e.Outgoing {
			return -e.Amount
		}
		return e.Amount
	default:
		return e.Amount
	}
}

// Account is owned by the identity component. The ledger never creates or
// mutates accounts, it only resolves them through the store.
type Account struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
