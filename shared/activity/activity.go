// Package activity publishes domain change notifications to Kafka so other
// systems can follow rooming-list changes without polling the API.
package activity

//go:generate go run go.uber.org/mock/mockgen -source=./activity.go -destination=./mocks/activity_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rooming/config"
	"rooming/infras/kafka"
	"rooming/infras/otel"
	"rooming/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	BookingLinked      Type = "booking.linked"
	BookingUnlinked    Type = "booking.unlinked"
	BookingDeleted     Type = "booking.deleted"
	RoomingListCreated Type = "rooming_list.created"
	RoomingListDeleted Type = "rooming_list.deleted"
	EventDeleted       Type = "event.deleted"
	DataLoaded         Type = "data.loaded"
	DataCleared        Type = "data.cleared"
)

type Activity struct {
	Type       Type           `json:"type"`
	EntityID   int64          `json:"entityId,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Key groups messages for one entity on the same partition.
func (a Activity) Key() string {
	return fmt.Sprintf("%s:%d", a.Type, a.EntityID)
}

type Publisher interface {
	Publish(ctx context.Context, activities ...Activity)
}

// New returns a Kafka backed publisher when Kafka is enabled and a no-op otherwise.
func New(cfg *config.Config, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, activity publishing is a no-op")

		return noopPublisher{}
	}

	return NewKafkaPublisher(kafka.New(cfg, otel))
}

type kafkaPublisher struct {
	client kafka.Client
}

func NewKafkaPublisher(client kafka.Client) Publisher {
	return &kafkaPublisher{client: client}
}

// Publish never fails the caller. A lost notification is logged.
func (p *kafkaPublisher) Publish(ctx context.Context, activities ...Activity) {
	if len(activities) == 0 {
		return
	}

	messages := make([]kafka.Message, len(activities))

	for i, act := range activities {
		if act.OccurredAt.IsZero() {
			act.OccurredAt = timezone.Now()
		}

		messages[i] = kafka.Message{Key: act.Key(), Value: act}
	}

	if err := p.client.SendMessages(context.WithoutCancel(ctx), messages...); err != nil {
		log.Error().Err(err).Int("activities", len(activities)).Msg("failed to publish activities")
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...Activity) {}
