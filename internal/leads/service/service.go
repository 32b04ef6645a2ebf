// Package service holds the lead store business rules: limit clamping,
// cursor parsing, and mapping persistence failures to typed errors.
package service

import (
	"context"
	"time"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
	"leadsync_backend/platform/logger"
)

const (
	// Limit bounds for list queries; out-of-range values are clamped, not
	// rejected, so sloppy consumers still get a sane page.
	minLimit     = 1
	maxLimit     = 100
	defaultLimit = 25

	storeTimeout = 5 * time.Second
)

// Store is the persistence interface the service depends on. Satisfied
// by repository.Repository.
type Store interface {
	Add(ctx context.Context, input transport.LeadInput) (transport.LeadResponse, error)
	List(ctx context.Context, since *time.Time, limit int) ([]transport.LeadResponse, error)
}

// Service exposes the lead store operations to the HTTP layer.
type Service struct {
	store Store
	log   *logger.Logger
}

// New creates a new lead service.
func New(store Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Add persists a normalized lead. The store assigns id and receivedAt;
// any persistence failure surfaces as an internal error and is never
// retried here; the producer owns re-delivery.
func (s *Service) Add(ctx context.Context, input transport.LeadInput) (transport.LeadResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	lead, err := s.store.Add(ctx, input)
	if err != nil {
		s.log.DatabaseError("leads.add", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to store lead", err)
	}
	return lead, nil
}

// List returns leads newest-first. limit is clamped to [1,100]; zero
// means the default page size. since filters to receivedAt strictly
// after the cursor.
func (s *Service) List(ctx context.Context, since *time.Time, limit int) ([]transport.LeadResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	leads, err := s.store.List(ctx, since, ClampLimit(limit))
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}
	return leads, nil
}

// ClampLimit normalizes a requested page size into [1,100], defaulting
// when unset.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultLimit
	case limit < minLimit:
		return minLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

// ParseCursor parses the since query parameter. An empty value means no
// cursor; anything non-empty must be a valid timestamp.
func ParseCursor(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "since must be an ISO8601 timestamp", err)
	}
	return &ts, nil
}
