package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lockbox/lockbox-go/internal/strength"
)

func TestHandleAnalyze(t *testing.T) {
	h := NewStrengthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{"password":"Tr0ub4dor&3"}`))
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var report strength.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if report.Max != 10 {
		t.Errorf("expected max score 10, got %d", report.Max)
	}
	if report.Score == 0 {
		t.Error("expected nonzero score for a mixed-class password")
	}
	if report.Details.Uppercase.Score != 1 || report.Details.Symbols.Score != 1 {
		t.Error("expected uppercase and symbol criteria to score")
	}
}

func TestHandleAnalyze_EmptyPassword(t *testing.T) {
	h := NewStrengthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{"password":""}`))
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var report strength.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if report.Score != 0 || report.Label != strength.LabelVeryWeak {
		t.Errorf("expected zero score and Very Weak label, got %d %q", report.Score, report.Label)
	}
}

func TestHandleAnalyze_BadBody(t *testing.T) {
	h := NewStrengthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
