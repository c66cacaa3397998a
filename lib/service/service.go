package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	"github.com/finhub/finhub.go/ledger"
	"github.com/finhub/finhub.go/rabbitmq"
)

// FinhubService ties the ledger core to its collaborators: the users table,
// the configuration and the optional event publisher. Controllers talk to
// this struct only.
type FinhubService struct {
	Config    *Config
	DB        *bun.DB
	Ledger    *ledger.Service
	Logger    zerolog.Logger
	Publisher rabbitmq.Publisher
}

func (svc *FinhubService) Deposit(ctx context.Context, accountID, amount int64, description string) (ledger.Entry, error) {
	entry, err := svc.Ledger.Deposit(ctx, accountID, amount, description)
	if err != nil {
		return entry, err
	}
	svc.publishEntry(ctx, entry)
	return entry, nil
}

func (svc *FinhubService) Withdraw(ctx context.Context, accountID, amount int64, description string) (ledger.Entry, error) {
	entry, err := svc.Ledger.Withdraw(ctx, accountID, amount, description)
	if err != nil {
		return entry, err
	}
	svc.publishEntry(ctx, entry)
	return entry, nil
}

func (svc *FinhubService) Transfer(ctx context.Context, senderID, recipientID, amount int64, description string) (ledger.Entry, error) {
	entry, err := svc.Ledger.Transfer(ctx, senderID, recipientID, amount, description)
	if err != nil {
		return entry, err
	}
	svc.publishEntry(ctx, entry)
	return entry, nil
}

func (svc *FinhubService) Balance(ctx context.Context, accountID int64) (ledger.Summary, error) {
	return svc.Ledger.Balance(ctx, accountID)
}

func (svc *FinhubService) Entry(ctx context.Context, accountID, entryID int64) (ledger.Entry, error) {
	return svc.Ledger.Entry(ctx, accountID, entryID)
}

// publishEntry fans a created entry out to the configured sinks. Both sinks
// are best-effort: the entry is already durable, delivery failures are only
// logged.
func (svc *FinhubService) publishEntry(ctx context.Context, entry ledger.Entry) {
	if svc.Publisher != nil {
		if err := svc.Publisher.PublishEntry(ctx, entry); err != nil {
			svc.Logger.Error().Err(err).Int64("entry_id", entry.ID).Msg("failed to publish entry")
		}
	}
	if svc.Config.WebhookUrl != "" {
		svc.postEntryToWebhook(entry)
	}
}
