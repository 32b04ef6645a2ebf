package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
	"leadsync_backend/platform/logger"
)

type fakeStore struct {
	addErr    error
	listErr   error
	lastLimit int
	lastSince *time.Time
	leads     []transport.LeadResponse
}

func (f *fakeStore) Add(_ context.Context, input transport.LeadInput) (transport.LeadResponse, error) {
	if f.addErr != nil {
		return transport.LeadResponse{}, f.addErr
	}
	return transport.LeadResponse{Source: input.Source, Format: input.Format}, nil
}

func (f *fakeStore) List(_ context.Context, since *time.Time, limit int) ([]transport.LeadResponse, error) {
	f.lastSince = since
	f.lastLimit = limit
	return f.leads, f.listErr
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 25},
		{-5, 1},
		{1, 1},
		{42, 42},
		{100, 100},
		{1000, 100},
	}
	for _, tc := range cases {
		if got := ClampLimit(tc.in); got != tc.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestListClampsBeforeQuerying(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, logger.New("development"))

	if _, err := svc.List(context.Background(), nil, 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastLimit != 100 {
		t.Errorf("expected clamped limit 100, got %d", store.lastLimit)
	}
}

func TestAddWrapsStoreFailure(t *testing.T) {
	store := &fakeStore{addErr: errors.New("connection refused")}
	svc := New(store, logger.New("development"))

	_, err := svc.Add(context.Background(), transport.LeadInput{Source: "webhook", Format: "json"})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestParseCursor(t *testing.T) {
	if cursor, err := ParseCursor(""); err != nil || cursor != nil {
		t.Fatalf("empty cursor: expected nil,nil got %v,%v", cursor, err)
	}

	cursor, err := ParseCursor("2026-08-29T10:00:00.000000123Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor == nil || !cursor.Equal(time.Date(2026, 8, 29, 10, 0, 0, 123, time.UTC)) {
		t.Errorf("unexpected cursor: %v", cursor)
	}

	if _, err := ParseCursor("yesterday"); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
