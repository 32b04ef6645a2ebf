package events

import "github.com/google/uuid"

// Event names for subscription.
const (
	EventLeadIngested = "lead.ingested"
)

// LeadIngested is published after a lead has been durably persisted.
type LeadIngested struct {
	BaseEvent
	LeadID uuid.UUID
	Source string
	Format string
}

// EventName returns the unique event identifier.
func (LeadIngested) EventName() string { return EventLeadIngested }

// NewLeadIngested creates a LeadIngested event for a stored lead.
func NewLeadIngested(leadID uuid.UUID, source, format string) LeadIngested {
	return LeadIngested{
		BaseEvent: NewBaseEvent(),
		LeadID:    leadID,
		Source:    source,
		Format:    format,
	}
}
