// Package events publishes complaint lifecycle events for downstream
// consumers (notifications, reporting). In-process GoChannel pub/sub is the
// default; a Kafka publisher is used when brokers are configured.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Topic carries every complaint lifecycle event.
const Topic = "complaint.events"

// Event types.
const (
	ComplaintCreated = "complaint.created"
	ComplaintSolved  = "complaint.solved"
	ComplaintDeleted = "complaint.deleted"
)

// Event is the envelope put on the wire.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// ComplaintEvent is the payload for all complaint lifecycle events.
type ComplaintEvent struct {
	ComplaintID uint   `json:"complaint_id"`
	RegNo       string `json:"regno"`
	Hostel      string `json:"hostel,omitempty"`
	Actor       string `json:"actor"`
	ActorRole   string `json:"actor_role"`
}

// EventPublisher is the narrow interface services depend on.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
	Close() error
}

type watermillPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// NewPublisher builds the event publisher. With brokers it publishes to
// Kafka; without, it runs an in-process GoChannel pub/sub with a logging
// subscriber so events remain observable in a single-node deployment.
func NewPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	if len(brokers) > 0 {
		publisher, err := kafka.NewPublisher(
			kafka.PublisherConfig{
				Brokers:   brokers,
				Marshaler: kafka.DefaultMarshaler{},
			},
			wmLogger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		return &watermillPublisher{publisher: publisher, logger: logger}, nil
	}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, wmLogger)

	messages, err := pubSub.Subscribe(context.Background(), Topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", Topic, err)
	}
	go logConsumer(messages, logger)

	return &watermillPublisher{publisher: pubSub, logger: logger}, nil
}

// Publish wraps the payload in an Event envelope and hands it to watermill.
func (p *watermillPublisher) Publish(ctx context.Context, eventType string, data any) error {
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("type", eventType)

	if err := p.publisher.Publish(Topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}

// logConsumer drains the in-process subscription, logging each event.
func logConsumer(messages <-chan *message.Message, logger *slog.Logger) {
	for msg := range messages {
		logger.Info("complaint event",
			"event_id", msg.UUID,
			"type", msg.Metadata.Get("type"),
			"payload", string(msg.Payload),
		)
		msg.Ack()
	}
}
