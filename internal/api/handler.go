// Package api provides the HTTP surface for the scam URL detection service.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MokshaVS03/scam-url-detector/internal/assessor"
	"github.com/MokshaVS03/scam-url-detector/internal/history"
	"github.com/MokshaVS03/scam-url-detector/internal/types"
	"github.com/MokshaVS03/scam-url-detector/internal/urlinfo"
)

// alertTimeout bounds the webhook call fired after a high-risk assessment.
const alertTimeout = 10 * time.Second

// HistoryStore persists assessments and reads them back, newest first.
type HistoryStore interface {
	Save(ctx context.Context, assessment *types.Assessment) (string, error)
	Recent(ctx context.Context, limit int) ([]history.Record, error)
}

// Alerter delivers a notification for a high-risk assessment.
type Alerter interface {
	AlertHighRisk(ctx context.Context, assessment *types.Assessment) error
}

// Handler manages API endpoints
type Handler struct {
	assessor assessor.Interface
	store    HistoryStore
	alerter  Alerter
}

// HandlerOption configures the Handler
type HandlerOption func(*Handler)

// WithHistory attaches an assessment history store
func WithHistory(store HistoryStore) HandlerOption {
	return func(h *Handler) {
		h.store = store
	}
}

// WithAlerter attaches a high-risk alert sender
func WithAlerter(alerter Alerter) HandlerOption {
	return func(h *Handler) {
		h.alerter = alerter
	}
}

// NewHandler creates a Handler around an assessor. History and alerting
// are optional and skipped when unset.
func NewHandler(a assessor.Interface, opts ...HandlerOption) *Handler {
	h := &Handler{assessor: a}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "scam-url-detector",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeRequest represents a URL assessment request
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeResponse represents the assessment response envelope
type AnalyzeResponse struct {
	Success bool              `json:"success"`
	Data    *types.Assessment `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// handleAnalyze runs a full assessment for the submitted URL
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, ErrURLRequired.Error())
		return
	}

	assessment, err := h.assessor.Assess(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, urlinfo.ErrMalformedURL) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		log.Error().Err(err).Str("url", req.URL).Msg("assessment failed")
		writeError(w, http.StatusInternalServerError, "assessment failed")

		return
	}

	// Persisting history must never fail the assessment itself.
	if h.store != nil {
		if _, err := h.store.Save(r.Context(), assessment); err != nil {
			log.Warn().Err(err).Str("url", req.URL).Msg("failed to save assessment history")
		}
	}

	if h.alerter != nil && assessment.TrustAssessment.RiskLevel == types.RiskHigh {
		go h.sendAlert(assessment)
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{Success: true, Data: assessment})
}

// sendAlert fires the high-risk webhook detached from the request lifecycle.
func (h *Handler) sendAlert(assessment *types.Assessment) {
	ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
	defer cancel()

	if err := h.alerter.AlertHighRisk(ctx, assessment); err != nil {
		log.Warn().Err(err).Str("url", assessment.URL).Msg("failed to send high-risk alert")
	}
}

// HistoryResponse represents the stored assessment listing
type HistoryResponse struct {
	Success bool             `json:"success"`
	Data    []history.Record `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// handleHistory lists recent assessments, newest first
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, HistoryResponse{Success: false, Error: ErrHistoryNotAvailable.Error()})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, HistoryResponse{Success: false, Error: "invalid limit"})
			return
		}

		limit = parsed
	}

	records, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to query assessment history")
		writeJSON(w, http.StatusInternalServerError, HistoryResponse{Success: false, Error: "history query failed"})

		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Success: true, Data: records})
}
