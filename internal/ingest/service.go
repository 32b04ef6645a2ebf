// Package ingest accepts raw provider payloads, normalizes them into
// canonical leads, and hands them to the lead store.
package ingest

import (
	"context"
	"strings"

	"leadsync_backend/internal/events"
	"leadsync_backend/internal/leads/normalize"
	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
	"leadsync_backend/platform/logger"
)

// LeadWriter persists normalized leads. Satisfied by the leads service.
type LeadWriter interface {
	Add(ctx context.Context, input transport.LeadInput) (transport.LeadResponse, error)
}

// Archiver stores the raw payload bytes for audit. Optional; a nil
// archiver disables archiving.
type Archiver interface {
	ArchiveRawPayload(ctx context.Context, leadID, contentType string, body []byte) error
}

// Service normalizes inbound payloads and stores the result. Storage is
// attempted exactly once per request; the provider owns re-delivery on
// failure, so two deliveries of the same payload become two leads.
type Service struct {
	writer   LeadWriter
	archiver Archiver
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new ingest service. archiver may be nil.
func New(writer LeadWriter, archiver Archiver, bus events.Bus, log *logger.Logger) *Service {
	return &Service{writer: writer, archiver: archiver, bus: bus, log: log}
}

// Ingest normalizes body according to contentType and persists the
// canonical lead. A content type declaring JSON selects the ad-hoc JSON
// path; everything else, including an absent content type, is treated as
// ADF/XML since providers routinely mislabel or omit it.
func (s *Service) Ingest(ctx context.Context, contentType string, body []byte) (transport.LeadResponse, error) {
	if len(body) == 0 {
		return transport.LeadResponse{}, apperr.Validation("request body is empty")
	}

	var input transport.LeadInput
	var err error
	if strings.Contains(strings.ToLower(contentType), "json") {
		input, err = normalize.JSON(body)
	} else {
		input, err = normalize.ADF(body)
	}
	if err != nil {
		s.log.IngestRejected(err.Error(), contentType, "")
		return transport.LeadResponse{}, err
	}

	lead, err := s.writer.Add(ctx, input)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	s.log.LeadStored(lead.ID.String(), lead.Source, lead.Format)

	if s.archiver != nil {
		if err := s.archiver.ArchiveRawPayload(ctx, lead.ID.String(), contentType, body); err != nil {
			// The lead is already stored; a failed archive is not a
			// failed ingestion.
			s.log.Warn("raw_payload_archive_failed", "lead_id", lead.ID.String(), "error", err.Error())
		}
	}

	s.bus.Publish(ctx, events.NewLeadIngested(lead.ID, lead.Source, lead.Format))

	return lead, nil
}
