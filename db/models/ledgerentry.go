package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/finhub/finhub.go/ledger"
)

// LedgerEntry : Ledger Entry Model
//
// This is the persistence mapping of ledger.Entry. The bun annotations live
// here so the core stays free of mapping concerns.
type LedgerEntry struct {
	bun.BaseModel `bun:"table:ledger_entries,alias:le"`

	ID             int64     `bun:",pk,autoincrement"`
	AccountID      int64     `bun:",notnull"`
	Account        *User     `bun:"rel:belongs-to,join:account_id=id"`
	CounterpartyID int64     `bun:",nullzero"`
	Counterparty   *User     `bun:"rel:belongs-to,join:counterparty_id=id"`
	TransferID     uuid.UUID `bun:"type:uuid,nullzero"`
	Kind           string    `bun:",notnull"`
	Outgoing       bool      `bun:",notnull,default:false"`
	Amount         int64     `bun:",notnull"`
	Description    string
	CreatedAt      time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func EntryFromLedger(entry ledger.Entry) LedgerEntry {
	return LedgerEntry{
		ID:             entry.ID,
		AccountID:      entry.AccountID,
		CounterpartyID: entry.CounterpartyID,
		TransferID:     entry.TransferID,
		Kind:           string(entry.Kind),
		Outgoing:       entry.Outgoing,
		Amount:         entry.Amount,
		Description:    entry.Description,
		CreatedAt:      entry.CreatedAt,
	}
}

func (row LedgerEntry) ToLedger() ledger.Entry {
	return ledger.Entry{
		ID:             row.ID,
		AccountID:      row.AccountID,
		CounterpartyID: row.CounterpartyID,
		TransferID:     row.TransferID,
		Kind:           ledger.Kind(row.Kind),
		Outgoing:       row.Outgoing,
		Amount:         row.Amount,
		Description:    row.Description,
		CreatedAt:      row.CreatedAt,
	}
}
