package feed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCursorStore(t *testing.T) *RedisCursorStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCursorStore(client)
}

func TestCursorStoreRoundTrip(t *testing.T) {
	store := newTestCursorStore(t)
	ctx := context.Background()

	cursor := time.Date(2026, 8, 1, 12, 0, 0, 123456789, time.UTC)
	if err := store.Save(ctx, cursor); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.Equal(cursor) {
		t.Errorf("loaded cursor = %v, want %v", loaded, cursor)
	}
}

func TestCursorStoreMissingKeyIsZeroTime(t *testing.T) {
	store := newTestCursorStore(t)

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.IsZero() {
		t.Errorf("missing cursor must load as zero time, got %v", loaded)
	}
}

func TestCursorStoreSaveOverwrites(t *testing.T) {
	store := newTestCursorStore(t)
	ctx := context.Background()

	first := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.Equal(second) {
		t.Errorf("loaded cursor = %v, want %v", loaded, second)
	}
}

func TestCursorStoreGarbageValueIsError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Set(cursorKey, "not a timestamp")

	store := NewRedisCursorStore(client)
	if _, err := store.Load(context.Background()); err == nil {
		t.Errorf("expected error for a corrupt cursor value")
	}
}
