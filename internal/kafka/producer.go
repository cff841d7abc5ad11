package kafka

import (
	"context"
	"encoding/json"
	"time"

	"infohub/internal/events"
	"infohub/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	resourceWriter *kafka.Writer
	activityWriter *kafka.Writer
}

// NewProducer creates a new Kafka producer with writers for different topics
func NewProducer(brokers []string) *Producer {
	resourceWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.ResourceChangesTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	activityWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.FileActivityTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{
		resourceWriter: resourceWriter,
		activityWriter: activityWriter,
	}
}

// PublishResourceEvent publishes a resource event to the resource.changes topic
func (p *Producer) PublishResourceEvent(ctx context.Context, event *events.ResourceEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to marshal resource event")
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.ResourceID),
		Value: value,
		Time:  event.Timestamp,
	}

	if err := p.resourceWriter.WriteMessages(ctx, message); err != nil {
		logger.Log.Error().Err(err).Msg("failed to publish resource event")
		return err
	}

	logger.Log.Info().
		Str("eventType", event.EventType).
		Str("resourceType", event.ResourceType).
		Str("resourceId", event.ResourceID).
		Msg("published resource event")
	return nil
}

// PublishFileActivityEvent publishes a ledger mirror event to the file.activity topic
func (p *Producer) PublishFileActivityEvent(ctx context.Context, event *events.FileActivityEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to marshal file activity event")
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.FileID),
		Value: value,
		Time:  event.Timestamp,
	}

	if err := p.activityWriter.WriteMessages(ctx, message); err != nil {
		logger.Log.Error().Err(err).Msg("failed to publish file activity event")
		return err
	}

	logger.Log.Info().
		Str("eventType", event.EventType).
		Str("fileId", event.FileID).
		Msg("published file activity event")
	return nil
}

// Close closes the Kafka writers
func (p *Producer) Close() error {
	var err1, err2 error
	if p.resourceWriter != nil {
		err1 = p.resourceWriter.Close()
	}
	if p.activityWriter != nil {
		err2 = p.activityWriter.Close()
	}

	if err1 != nil {
		return err1
	}
	return err2
}
