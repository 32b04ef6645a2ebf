package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cursorKey is where the feed cursor lives in Redis. A single agent
// instance owns it; there is no concurrent cursor writer.
const cursorKey = "leadfeed:cursor"

// CursorStore persists the feed cursor across restarts.
type CursorStore interface {
	// Load returns the persisted cursor. A zero time means no cursor has
	// been saved yet and polling starts from the beginning.
	Load(ctx context.Context) (time.Time, error)
	// Save durably records the cursor.
	Save(ctx context.Context, cursor time.Time) error
}

// RedisCursorStore keeps the cursor in Redis as an RFC3339Nano string.
type RedisCursorStore struct {
	client *redis.Client
}

// NewRedisCursorStore creates a cursor store backed by the given client.
func NewRedisCursorStore(client *redis.Client) *RedisCursorStore {
	return &RedisCursorStore{client: client}
}

// Load reads the cursor. A missing key is not an error.
func (s *RedisCursorStore) Load(ctx context.Context) (time.Time, error) {
	value, err := s.client.Get(ctx, cursorKey).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load cursor: %w", err)
	}

	cursor, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored cursor %q is not a timestamp: %w", value, err)
	}
	return cursor, nil
}

// Save writes the cursor with no expiry.
func (s *RedisCursorStore) Save(ctx context.Context, cursor time.Time) error {
	if err := s.client.Set(ctx, cursorKey, cursor.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}
