package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lockbox/lockbox-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// serverError logs the failure with full detail and returns only a generic
// message plus an opaque reference to the client. Store timeouts map to 503.
func serverError(w http.ResponseWriter, op string, err error) {
	ref := uuid.NewString()
	slog.Error("request failed", "op", op, "reference", ref, "error", err)

	status := http.StatusInternalServerError
	msg := "internal server error"
	if errors.Is(err, service.ErrStoreUnavailable) {
		status = http.StatusServiceUnavailable
		msg = "store unavailable"
	}

	writeJSON(w, status, map[string]string{"error": msg, "reference": ref})
}

// decodeBody reads a size-capped JSON body into v, writing the error response
// itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}
