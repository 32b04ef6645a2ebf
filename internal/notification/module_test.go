package notification

import (
	"context"
	"testing"

	"leadsync_backend/internal/events"
	"leadsync_backend/platform/logger"

	"github.com/google/uuid"
)

func TestModuleRecordsLeadIngested(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	module := NewModule(bus, log)

	leadID := uuid.New()
	event := events.NewLeadIngested(leadID, "webhook", "adf")
	if err := bus.PublishSync(context.Background(), event); err != nil {
		t.Fatalf("PublishSync() error: %v", err)
	}

	recent := module.Recent()
	if len(recent) != 1 {
		t.Fatalf("expected one recorded arrival, got %d", len(recent))
	}
	if recent[0].LeadID != leadID.String() {
		t.Errorf("lead id = %s, want %s", recent[0].LeadID, leadID)
	}
	if recent[0].Format != "adf" {
		t.Errorf("format = %s, want adf", recent[0].Format)
	}
}

func TestModuleHistoryIsBounded(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	module := NewModule(bus, log)

	for i := 0; i < maxRecent+50; i++ {
		event := events.NewLeadIngested(uuid.New(), "webhook", "json")
		if err := bus.PublishSync(context.Background(), event); err != nil {
			t.Fatalf("PublishSync() error: %v", err)
		}
	}

	if got := len(module.Recent()); got != maxRecent {
		t.Errorf("history length = %d, want %d", got, maxRecent)
	}
}
