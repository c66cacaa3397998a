package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/finhub/finhub.go/ledger"
)

// Publisher pushes created ledger entries to a message broker. It is
// optional: when no broker is configured the service carries a nil Publisher
// and skips publishing entirely.
type Publisher interface {
	PublishEntry(ctx context.Context, entry ledger.Entry) error
	Close() error
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   zerolog.Logger
}

var _ Publisher = (*AMQPPublisher)(nil)

func DialAMQP(uri, exchange string, logger zerolog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// A single durable topic exchange carries all entry events. Routing keys
	// follow entry.<kind>.created so consumers can bind to a subset.
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info().Str("exchange", exchange).Msg("rabbitmq entry publisher started")
	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

type entryEvent struct {
	ID             int64     `json:"id"`
	AccountID      int64     `json:"account_id"`
	CounterpartyID int64     `json:"counterparty_id,omitempty"`
	TransferID     string    `json:"transfer_id,omitempty"`
	Kind           string    `json:"kind"`
	Outgoing       bool      `json:"outgoing"`
	Amount         int64     `json:"amount"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *AMQPPublisher) PublishEntry(ctx context.Context, entry ledger.Entry) error {
	event := entryEvent{
		ID:             entry.ID,
		AccountID:      entry.AccountID,
		CounterpartyID: entry.CounterpartyID,
		Kind:           string(entry.Kind),
		Outgoing:       entry.Outgoing,
		Amount:         entry.Amount,
		Description:    entry.Description,
		CreatedAt:      entry.CreatedAt,
	}
	if entry.Kind == ledger.KindTransfer {
		event.TransferID = entry.TransferID.String()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("entry.%s.created", entry.Kind)
	return p.ch.PublishWithContext(ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close rabbitmq channel")
	}
	return p.conn.Close()
}
