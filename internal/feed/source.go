package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
)

// LeadSource fetches leads newer than the cursor, newest-first, the way
// the store's read endpoint returns them.
type LeadSource interface {
	FetchSince(ctx context.Context, cursor time.Time, limit int) ([]transport.LeadResponse, error)
}

// HTTPSource reads the lead store over its HTTP read endpoint.
type HTTPSource struct {
	baseURL string
	secret  string
	client  *http.Client
}

// NewHTTPSource creates a source polling the given base URL. Every
// request carries a bounded timeout so a stalled server fails the cycle
// instead of hanging the loop.
func NewHTTPSource(baseURL, secret string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		secret:  secret,
		client:  &http.Client{Timeout: timeout},
	}
}

type listEnvelope struct {
	OK    bool                     `json:"ok"`
	Items []transport.LeadResponse `json:"items"`
	Error string                   `json:"error"`
}

// FetchSince queries GET /leads. Transport failures surface as
// unavailable so the caller can tell a dead network from a broken server.
func (s *HTTPSource) FetchSince(ctx context.Context, cursor time.Time, limit int) ([]transport.LeadResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if !cursor.IsZero() {
		query.Set("since", cursor.UTC().Format(time.RFC3339Nano))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/leads?"+query.Encode(), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to build feed request", err)
	}
	req.Header.Set("x-webhook-secret", s.secret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "lead store unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.KindInternal, fmt.Sprintf("lead store returned status %d", resp.StatusCode))
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to decode feed response", err)
	}
	if !envelope.OK {
		return nil, apperr.New(apperr.KindInternal, "lead store reported: "+envelope.Error)
	}
	return envelope.Items, nil
}
