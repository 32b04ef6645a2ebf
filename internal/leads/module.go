// Package leads wires the lead store bounded context.
package leads

import (
	"leadsync_backend/internal/http"
	"leadsync_backend/internal/leads/handler"
	"leadsync_backend/internal/leads/repository"
	"leadsync_backend/internal/leads/service"
	"leadsync_backend/platform/logger"
	"leadsync_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module bundles the lead store components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// NewModule constructs the lead store module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	return &Module{
		Service: svc,
		handler: handler.New(svc, val),
	}
}

// Name returns the module name.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes registers the read endpoints on the CORS-enabled group.
func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	rc.Reads.GET("/leads", m.handler.HandleListLeads)
}
