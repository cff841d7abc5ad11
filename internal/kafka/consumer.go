package kafka

import (
	"context"
	"encoding/json"

	"infohub/internal/events"
	"infohub/internal/rediscache"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Consumer reads activity events and keeps the metadata cache coherent
// across server instances.
type Consumer struct {
	resourceReader *kafka.Reader
	activityReader *kafka.Reader
	cache          *rediscache.Cache
}

// NewConsumer creates readers for both topics within one consumer group.
func NewConsumer(brokers []string, groupID string, cache *rediscache.Cache) *Consumer {
	resourceReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.ResourceChangesTopic,
	})
	activityReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.FileActivityTopic,
	})
	return &Consumer{
		resourceReader: resourceReader,
		activityReader: activityReader,
		cache:          cache,
	}
}

// StartResourceEventConsumer consumes resource.changes until ctx is done.
func (c *Consumer) StartResourceEventConsumer(ctx context.Context) {
	for {
		msg, err := c.resourceReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Error().Err(err).Msg("read resource event")
			continue
		}

		var event events.ResourceEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Error().Err(err).Msg("unmarshal resource event")
			continue
		}

		logger.Log.Info().
			Str("eventType", event.EventType).
			Str("resourceType", event.ResourceType).
			Str("resourceId", event.ResourceID).
			Msg("consumed resource event")

		// Updates and deletes invalidate; the next read repopulates.
		switch event.EventType {
		case events.NoteUpdated, events.NoteDeleted, events.FileUpdated:
			id, err := uuid.Parse(event.ResourceID)
			if err != nil {
				logger.Log.Warn().Str("resourceId", event.ResourceID).Msg("invalid resource id in event")
				continue
			}
			if err := c.cache.InvalidateResource(ctx, event.ResourceType, id); err != nil {
				logger.Log.Error().Err(err).Msg("invalidate cache entry")
			}
		}
	}
}

// StartFileActivityConsumer consumes file.activity until ctx is done.
func (c *Consumer) StartFileActivityConsumer(ctx context.Context) {
	for {
		msg, err := c.activityReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Error().Err(err).Msg("read file activity event")
			continue
		}

		var event events.FileActivityEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Error().Err(err).Msg("unmarshal file activity event")
			continue
		}

		logger.Log.Info().
			Str("eventType", event.EventType).
			Str("fileId", event.FileID).
			Str("fileName", event.FileName).
			Msg("consumed file activity event")

		if event.EventType == events.FileDeleted || event.EventType == events.FileDownloaded {
			id, err := uuid.Parse(event.FileID)
			if err != nil {
				continue
			}
			if err := c.cache.InvalidateFile(ctx, id); err != nil {
				logger.Log.Error().Err(err).Msg("invalidate file cache entry")
			}
		}
	}
}

// Close closes both readers.
func (c *Consumer) Close() error {
	err1 := c.resourceReader.Close()
	err2 := c.activityReader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
