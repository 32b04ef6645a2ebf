package ingest

import (
	"leadsync_backend/internal/events"
	"leadsync_backend/internal/http"
	"leadsync_backend/platform/config"
	"leadsync_backend/platform/logger"
)

// Module bundles the ingestion gateway components.
type Module struct {
	cfg     config.IngestConfig
	handler *Handler
	log     *logger.Logger
}

// NewModule constructs the ingestion gateway. archiver may be nil when
// raw payload archiving is disabled.
func NewModule(cfg config.IngestConfig, writer LeadWriter, archiver Archiver, bus events.Bus, log *logger.Logger) *Module {
	svc := New(writer, archiver, bus, log)
	return &Module{
		cfg:     cfg,
		handler: NewHandler(svc),
		log:     log,
	}
}

// Name returns the module name.
func (m *Module) Name() string { return "ingest" }

// RegisterRoutes registers the write endpoint. Auth runs before the body
// is read so unauthenticated callers never exercise the parsers.
func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	rc.Root.POST("/lead",
		rc.IngestRateLimiter.RateLimit(),
		SecretAuthMiddleware(m.cfg.GetWebhookSecret(), m.log),
		BodySizeLimit(m.cfg.GetMaxBodyBytes()),
		m.handler.HandleSubmitLead,
	)
}
