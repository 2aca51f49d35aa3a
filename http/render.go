package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"mortgage-calc/logger"
	"mortgage-calc/money"
	"mortgage-calc/service"
)

const maxBodyBytes = 1 << 20

// Amount is money as integer cents plus its display form.
type Amount struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// Renderer turns engine output into display values. The locale and currency
// can be overridden per request with ?locale= and ?currency=.
type Renderer struct {
	formatter *money.Formatter
}

func NewRenderer(formatter *money.Formatter) *Renderer {
	if formatter == nil {
		formatter = money.DefaultFormatter()
	}
	return &Renderer{formatter: formatter}
}

func (rr *Renderer) formatterFor(r *http.Request) *money.Formatter {
	locale := r.URL.Query().Get("locale")
	code := r.URL.Query().Get("currency")
	if locale == "" && code == "" {
		return rr.formatter
	}

	if locale == "" {
		locale = rr.formatter.Locale()
	}
	if code == "" {
		code = rr.formatter.Currency()
	}

	f, err := money.NewFormatter(locale, code)
	if err != nil {
		logger.CtxWarn(r.Context(), "ignoring display override", slog.String("error", err.Error()))
		return rr.formatter
	}
	return f
}

func amount(f *money.Formatter, cents int64) Amount {
	return Amount{Cents: cents, Formatted: f.Format(cents)}
}

// requireJSON enforces POST with a JSON body; it writes the error itself.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.CtxWarn(r.Context(), "Error decoding request body", slog.String("error", err.Error()))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written 200.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.CtxError(ctx, "Error encoding response", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.CtxError(ctx, "Error writing response", err)
	}
}

func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: service.ErrMissingField.Error(), Fields: verr.Fields})
	case errors.Is(err, service.ErrNoSchedule):
		writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrTooManyScenarios):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.CtxWarn(ctx, "request canceled", slog.String("error", err.Error()))
		writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: "request canceled"})
	default:
		logger.CtxError(ctx, "calculation failed", err)
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
