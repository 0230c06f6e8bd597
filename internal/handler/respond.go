package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/creekriver/backend/internal/domain"
)

// errorResponse is the JSON error envelope every endpoint uses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON marshals v and writes it with the given status code.
// Marshal failures are logged and surfaced as a bare 500 — at that point the
// response body cannot be trusted anyway.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON strictly decodes the request body into dst.
// Unknown fields are rejected so client typos fail loudly instead of being
// silently dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// idParam parses the {id} chi URL parameter as a positive int64.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// pageParams reads the optional ?page= and ?limit= query parameters.
func pageParams(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}

// respondError maps a domain error to its HTTP status and error code.
//
//	ErrNotFound            -> 404 not_found
//	ErrOverlap             -> 409 overlap
//	ErrConstraint          -> 409 constraint_violation
//	ErrValidation (family) -> 422 validation_error
//	anything else          -> 500 internal_error (details logged, not leaked)
func respondError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: resource + " not found"},
		})
	case errors.Is(err, domain.ErrOverlap):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "overlap", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrConstraint):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "constraint_violation", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// badRequest writes a 422 for requests rejected before reaching the service
// layer (malformed body, bad path parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage strips the wrapping prefixes from an error chain, leaving the
// human-readable tail for the client.
// e.g. "service.ReservationService.Create: validation error: name is required"
// → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for strings.HasPrefix(msg, "service.") || strings.HasPrefix(msg, "repo.") {
		i := strings.Index(msg, ": ")
		if i < 0 {
			break
		}
		msg = msg[i+2:]
	}
	msg = strings.TrimPrefix(msg, "validation error: ")
	return msg
}
