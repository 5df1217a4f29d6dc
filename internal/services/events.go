package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// publishEvent writes a domain event to Kafka. Failures are logged and never
// returned: events must not fail the request that produced them.
func publishEvent(ctx context.Context, w KafkaWriter, eventType, userID, resourceID string) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "type", eventType)
		return
	}

	evt := models.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		ResourceID: resourceID,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", evt.EventID, "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", evt.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("event published", "event_id", evt.EventID, "type", eventType)
}
