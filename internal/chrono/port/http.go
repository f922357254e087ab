// Package port adapts the temporal query service to HTTP JSON transport.
// It owns request decoding, request-ID correlation, and error rendering;
// all semantics live in the app layer.
package port

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aelexs/temporal-query-service/internal/chrono/app"
	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/internal/errmap"
	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

// timeService is a narrow, consumer-defined interface for the operations the
// handler requires. The *app.Service satisfies this.
type timeService interface {
	CurrentTime(ctx context.Context, req protocol.CurrentTimeRequest) (*protocol.CurrentTimeResponse, error)
	CalculateDate(ctx context.Context, req protocol.CalculateDateRequest) (*protocol.CalculateDateResponse, error)
	TimeDifference(ctx context.Context, req protocol.TimeDifferenceRequest) (*protocol.TimeDifferenceResponse, error)
	ConvertTimezone(ctx context.Context, req protocol.ConvertTimezoneRequest) (*protocol.ConvertTimezoneResponse, error)
}

// Handler serves the temporal query API over HTTP JSON.
type Handler struct {
	svc    timeService
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given service.
func NewHandler(svc *app.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the API routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/time/current", h.handleCurrentTimeGet)
	mux.HandleFunc("POST /v1/time/current", h.handleCurrentTime)
	mux.HandleFunc("POST /v1/time/calculate", h.handleCalculateDate)
	mux.HandleFunc("POST /v1/time/difference", h.handleTimeDifference)
	mux.HandleFunc("POST /v1/time/convert", h.handleConvertTimezone)
}

// handleCurrentTimeGet accepts the zone and locale as query parameters so
// the most common call needs no body.
func (h *Handler) handleCurrentTimeGet(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(w, r)

	req := protocol.CurrentTimeRequest{
		Timezone: r.URL.Query().Get("timezone"),
		Locale:   r.URL.Query().Get("locale"),
	}
	resp, err := h.svc.CurrentTime(r.Context(), req)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleCurrentTime(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(w, r)

	var req protocol.CurrentTimeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	resp, err := h.svc.CurrentTime(r.Context(), req)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleCalculateDate(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(w, r)

	var req protocol.CalculateDateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	resp, err := h.svc.CalculateDate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleTimeDifference(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(w, r)

	var req protocol.TimeDifferenceRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	resp, err := h.svc.TimeDifference(r.Context(), req)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleConvertTimezone(w http.ResponseWriter, r *http.Request) {
	requestID := ensureRequestID(w, r)

	var req protocol.ConvertTimezoneRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	resp, err := h.svc.ConvertTimezone(r.Context(), req)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// ensureRequestID echoes the caller's X-Request-ID or assigns a fresh one.
func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", id)
	return id
}

// decodeBody parses the JSON request body with a size cap. An empty body is
// treated as an empty request so parameter defaults apply.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxRequestBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode request body: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.WithTraceID(r.Context(), h.logger).ErrorContext(r.Context(),
			"failed to encode response", "error", err)
	}
}

// writeError renders a domain error as a structured JSON error response.
// Client errors log at debug; anything else is a server-side problem.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, requestID string, err error) {
	httpErr := errmap.ToHTTPError(err)

	logger := observability.WithTraceID(r.Context(), h.logger)
	if domain.IsClientError(err) {
		logger.DebugContext(r.Context(), "request rejected",
			"request_id", requestID,
			"code", httpErr.Code,
			"error", err.Error(),
		)
	} else {
		logger.ErrorContext(r.Context(), "request failed",
			"request_id", requestID,
			"code", httpErr.Code,
			"error", err.Error(),
		)
	}

	h.writeJSON(w, r, httpErr.StatusCode, protocol.ErrorResponse{
		Code:      httpErr.Code,
		Message:   httpErr.Message,
		RequestID: requestID,
	})
}
