package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/finhub/finhub.go/ledger"
)

type webhookPayload struct {
	ID             int64     `json:"id"`
	AccountID      int64     `json:"account_id"`
	CounterpartyID int64     `json:"counterparty_id,omitempty"`
	Kind           string    `json:"kind"`
	Amount         int64     `json:"amount"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

func (svc *FinhubService) postEntryToWebhook(entry ledger.Entry) {
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(webhookPayload{
		ID:             entry.ID,
		AccountID:      entry.AccountID,
		CounterpartyID: entry.CounterpartyID,
		Kind:           string(entry.Kind),
		Amount:         entry.Amount,
		Description:    entry.Description,
		CreatedAt:      entry.CreatedAt,
	})
	if err != nil {
		svc.Logger.Error().Err(err).Msg("failed to encode webhook payload")
		return
	}

	resp, err := http.Post(svc.Config.WebhookUrl, "application/json", payload)
	if err != nil {
		svc.Logger.Error().Err(err).Msg("failed to post to webhook")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error().Err(err).Msg("failed to read webhook response")
			return
		}
		svc.Logger.Error().Int("status", resp.StatusCode).Bytes("body", msg).Msg("webhook refused entry")
	}
}
