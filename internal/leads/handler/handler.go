// Package handler exposes the lead store read endpoint.
package handler

import (
	"net/http"

	"leadsync_backend/internal/leads/service"
	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/httpkit"
	"leadsync_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles lead read requests.
type Handler struct {
	service *service.Service
	val     *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: svc, val: val}
}

// HandleListLeads returns leads newest-first, filtered by the optional
// since cursor.
// GET /leads?limit=N&since=ISO8601
func (h *Handler) HandleListLeads(c *gin.Context) {
	var query transport.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	since, err := service.ParseCursor(query.Since)
	if httpkit.HandleError(c, err) {
		return
	}

	leads, err := h.service.List(c.Request.Context(), since, query.Limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, leads)
}
