package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/pkg/validate"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
)

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MessageEnvelope wraps plain informational responses.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// TokenEnvelope wraps POST /jwt responses.
type TokenEnvelope struct {
	Token string `json:"token"`
}

// CountEnvelope wraps GET /colleges/total.
type CountEnvelope struct {
	Total int `json:"total"`
}

// ReviewEnvelope wraps PATCH /review/{id} responses.
type ReviewEnvelope struct {
	College          *domain.RatedCollege `json:"college"`
	AdmissionUpdated bool                 `json:"admission_updated"`
	Partial          bool                 `json:"partial,omitempty"`
	Message          string               `json:"message,omitempty"`
}

const (
	msgInvalidBody = "invalid request body"
	msgForbidden   = "forbidden access"
	msgInternal    = "internal server error"
)

// NotFound answers unmatched routes with the JSON error envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "route not found")
}

// MethodNotAllowed answers a known path hit with the wrong verb.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Error: true, Message: msg})
}

// httpError maps a service error onto a status code. Unexpected errors are
// logged, reported to Sentry and hidden from the client.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized access")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, msgForbidden)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeValid decodes the JSON body into dst and runs its validate tags.
// On failure it writes the response and returns false.
func decodeValid(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// pathParam returns the unescaped chi URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
