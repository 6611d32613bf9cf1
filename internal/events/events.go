// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     events
// Description: Publishes change events to Kafka after successful saves
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	sdk "github.com/segmentio/kafka-go"

	"github.com/msto63/sellerdesk/pkg/core/logging"
)

// DefaultWriteTimeout bounds one publish when no timeout is configured
const DefaultWriteTimeout = 5 * time.Second

// ChangeEvent announces that a record was saved
type ChangeEvent struct {
	ID         string    `json:"id"`
	Form       string    `json:"form"`
	EntityID   *int      `json:"entity_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// Config holds Kafka settings
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher writes ChangeEvents as JSON messages
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
	logger  *logging.Logger
	now     func() time.Time
}

// NewKafkaPublisher creates a publisher backed by a kafka-go writer
func NewKafkaPublisher(cfg Config, logger *logging.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	writer := &sdk.Writer{
		Addr:         sdk.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
		WriteTimeout: cfg.WriteTimeout,
	}
	return NewPublisher(writer, cfg.WriteTimeout, logger), nil
}

// NewPublisher wraps an existing writer
func NewPublisher(writer MessageWriter, timeout time.Duration, logger *logging.Logger) *Publisher {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Publisher{
		writer:  writer,
		timeout: timeout,
		logger:  logger.Named("events"),
		now:     time.Now,
	}
}

// Publish writes one change event for form. The event id is the message key.
func (p *Publisher) Publish(ctx context.Context, form string, entityID *int) error {
	event := ChangeEvent{
		ID:         uuid.NewString(),
		Form:       form,
		EntityID:   entityID,
		OccurredAt: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	msg := sdk.Message{
		Key:   []byte(event.ID),
		Value: payload,
		Headers: []sdk.Header{
			{Key: "form", Value: []byte(form)},
		},
	}
	if entityID != nil {
		msg.Headers = append(msg.Headers, sdk.Header{Key: "entity_id", Value: []byte(strconv.Itoa(*entityID))})
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	p.logger.Debug("change event published", "event_id", event.ID, "form", form)
	return nil
}

// Observer returns a change callback publishing an event for form. entityID
// is read when the callback fires. Publish errors are logged, never
// returned to the caller of Notify.
func (p *Publisher) Observer(form string, entityID func() *int) func() {
	return func() {
		var id *int
		if entityID != nil {
			id = entityID()
		}
		if err := p.Publish(context.Background(), form, id); err != nil {
			p.logger.Error("change event dropped", "form", form, "error", err)
		}
	}
}

// Close flushes and closes the writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Decode parses a message value into a ChangeEvent
func Decode(value []byte) (ChangeEvent, error) {
	var event ChangeEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return ChangeEvent{}, fmt.Errorf("failed to decode change event: %w", err)
	}
	return event, nil
}
