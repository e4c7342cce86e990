package handler

import (
	"net/http"

	"github.com/lockbox/lockbox-go/internal/model"
	"github.com/lockbox/lockbox-go/internal/strength"
)

// StrengthHandler handles HTTP requests for password strength analysis.
type StrengthHandler struct{}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler() *StrengthHandler {
	return &StrengthHandler{}
}

// HandleAnalyze handles POST /api/v1/strength requests. Analysis is pure
// computation; the password never leaves the request scope.
func (h *StrengthHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	writeJSON(w, http.StatusOK, strength.Evaluate(req.Password))
}
