package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lockbox/lockbox-go/internal/middleware"
	"github.com/lockbox/lockbox-go/internal/model"
	"github.com/lockbox/lockbox-go/internal/service"
)

// SecretHandler handles HTTP requests for secret CRUD operations.
type SecretHandler struct {
	service *service.SecretService
}

// NewSecretHandler creates a new SecretHandler.
func NewSecretHandler(svc *service.SecretService) *SecretHandler {
	return &SecretHandler{service: svc}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrSecretValueRequired) ||
		errors.Is(err, service.ErrInvalidCategory)
}

// HandleCreate handles POST /api/v1/secrets requests.
func (h *SecretHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SecretRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		serverError(w, "secrets.create", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/secrets requests.
func (h *SecretHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	secrets, err := h.service.List(r.Context(), userID)
	if err != nil {
		serverError(w, "secrets.list", err)
		return
	}

	writeJSON(w, http.StatusOK, secrets)
}

// HandleUpdate handles PUT /api/v1/secrets/{secret_id} requests.
func (h *SecretHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	secretID, ok := secretIDParam(w, r)
	if !ok {
		return
	}

	var req model.SecretRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, secretID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrSecretNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			serverError(w, "secrets.update", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/secrets/{secret_id} requests.
func (h *SecretHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	secretID, ok := secretIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, secretID); err != nil {
		if errors.Is(err, service.ErrSecretNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		serverError(w, "secrets.delete", err)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteResponse{Message: "secret deleted successfully"})
}

func secretIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "secret_id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid secret id"))
		return 0, false
	}
	return id, true
}
