// Package notification records lead arrivals published on the event bus.
// It gives operators an ingestion audit trail independent of the feed
// client's delivery channel.
package notification

import (
	"context"
	"sync"
	"time"

	"leadsync_backend/internal/events"
	"leadsync_backend/platform/logger"
)

// maxRecent bounds the in-memory arrival history.
const maxRecent = 100

// Arrival is one recorded ingestion.
type Arrival struct {
	LeadID     string
	Source     string
	Format     string
	OccurredAt time.Time
}

// Module listens for lead.ingested events and keeps a bounded history of
// recent arrivals.
type Module struct {
	log *logger.Logger

	mu     sync.Mutex
	recent []Arrival
}

// NewModule creates the notification module and subscribes it to the bus.
func NewModule(bus events.Bus, log *logger.Logger) *Module {
	m := &Module{log: log}
	bus.Subscribe(events.EventLeadIngested, events.HandlerFunc(m.handleLeadIngested))
	return m
}

func (m *Module) handleLeadIngested(ctx context.Context, event events.Event) error {
	ingested, ok := event.(events.LeadIngested)
	if !ok {
		return nil
	}

	m.log.Info("lead_arrival_recorded",
		"lead_id", ingested.LeadID.String(),
		"source", ingested.Source,
		"format", ingested.Format,
	)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.recent = append(m.recent, Arrival{
		LeadID:     ingested.LeadID.String(),
		Source:     ingested.Source,
		Format:     ingested.Format,
		OccurredAt: ingested.OccurredAt(),
	})
	if len(m.recent) > maxRecent {
		m.recent = m.recent[len(m.recent)-maxRecent:]
	}
	return nil
}

// Recent returns a copy of the recorded arrivals, oldest first.
func (m *Module) Recent() []Arrival {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Arrival, len(m.recent))
	copy(out, m.recent)
	return out
}
