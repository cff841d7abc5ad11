package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"infohub/internal/models"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ttl = 24 * time.Hour

// Cache holds note and file metadata so repeat reads skip the store.
// Entries are invalidated on every write; a miss falls through to the
// database, so a cold or unavailable cache only costs latency.
type Cache struct {
	client *redis.Client
}

// New connects to Redis. Returns nil when Redis is unreachable; callers
// treat a nil cache as disabled.
func New(addr, password string, db int) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Warn().Err(err).Msg("failed to connect to Redis, cache disabled")
		return nil
	}

	logger.Log.Info().Str("addr", addr).Msg("connected to Redis")
	return &Cache{client: client}
}

func noteKey(id uuid.UUID) string { return fmt.Sprintf("note:%s", id.String()) }
func fileKey(id uuid.UUID) string { return fmt.Sprintf("file:%s", id.String()) }

// SetNote caches note metadata.
func (c *Cache) SetNote(ctx context.Context, note *models.Note) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, noteKey(note.ID), data, ttl).Err()
}

// GetNote retrieves note metadata; (nil, nil) is a cache miss.
func (c *Cache) GetNote(ctx context.Context, noteID uuid.UUID) (*models.Note, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, noteKey(noteID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var note models.Note
	if err := json.Unmarshal([]byte(data), &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// InvalidateNote removes a note from the cache.
func (c *Cache) InvalidateNote(ctx context.Context, noteID uuid.UUID) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, noteKey(noteID)).Err()
}

// SetFile caches file metadata.
func (c *Cache) SetFile(ctx context.Context, file *models.File) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(file)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fileKey(file.ID), data, ttl).Err()
}

// GetFile retrieves file metadata; (nil, nil) is a cache miss.
func (c *Cache) GetFile(ctx context.Context, fileID uuid.UUID) (*models.File, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, fileKey(fileID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var file models.File
	if err := json.Unmarshal([]byte(data), &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// InvalidateFile removes a file from the cache.
func (c *Cache) InvalidateFile(ctx context.Context, fileID uuid.UUID) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, fileKey(fileID)).Err()
}

// InvalidateResource drops whichever cache entry the event refers to.
// Used by the consumer to keep the cache coherent across instances.
func (c *Cache) InvalidateResource(ctx context.Context, resourceType string, id uuid.UUID) error {
	if c == nil {
		return nil
	}
	switch resourceType {
	case "note":
		return c.InvalidateNote(ctx, id)
	case "file":
		return c.InvalidateFile(ctx, id)
	}
	return nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
