package ingest

import (
	"errors"
	"io"
	"net/http"

	"leadsync_backend/platform/apperr"
	"leadsync_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles inbound lead submissions.
type Handler struct {
	service *Service
}

// NewHandler creates a new ingest handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{service: svc}
}

// HandleSubmitLead reads the raw body and runs it through normalization
// and storage. An oversized body is reported as 413, never folded into
// the generic 400 validation path.
// POST /lead
func (h *Handler) HandleSubmitLead(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpkit.HandleError(c, apperr.PayloadTooLarge("request body exceeds the configured limit"))
			return
		}
		httpkit.Error(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	lead, err := h.service.Ingest(c.Request.Context(), c.ContentType(), body)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, lead.ID.String())
}
