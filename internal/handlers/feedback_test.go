package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"badgematic/models"
)

func TestFeedbackPersistsAndEndsSession(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	form := url.Values{}
	form.Set("rating", "4")
	form.Set("comments", "Great kiosk")

	req := sessionRequest(t, sm, http.MethodPost, "/feedback", form)
	seedWizardSession(t, sm, req, true)
	w := httptest.NewRecorder()
	Feedback(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after feedback, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to welcome page, got %q", loc)
	}

	var entry models.Feedback
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected feedback row: %v", err)
	}
	if entry.Rating != 4 || entry.Comments != "Great kiosk" {
		t.Fatalf("unexpected feedback row: %+v", entry)
	}
}

func TestFeedbackRejectsBadRating(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	for _, rating := range []string{"", "0", "6", "nope"} {
		form := url.Values{}
		form.Set("rating", rating)
		req := sessionRequest(t, sm, http.MethodPost, "/feedback", form)
		w := httptest.NewRecorder()
		Feedback(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for rating %q, got %d", rating, w.Code)
		}
	}
}

func TestFeedbackWithoutDatabaseStillResets(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	original := database
	database = nil
	t.Cleanup(func() { database = original })

	form := url.Values{}
	form.Set("rating", "5")
	req := sessionRequest(t, sm, http.MethodPost, "/feedback", form)
	w := httptest.NewRecorder()
	Feedback(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 when database missing, got %d", w.Code)
	}
}

func TestResetClearsSession(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := sessionRequest(t, sm, http.MethodPost, "/reset", nil)
	seedWizardSession(t, sm, req, true)
	w := httptest.NewRecorder()
	Reset(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after reset, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to welcome page, got %q", loc)
	}
	if got := sm.GetString(req.Context(), sessionNameKey); got != "" {
		t.Fatalf("expected session cleared, still has name %q", got)
	}
}

func TestResetRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reset", nil)
	w := httptest.NewRecorder()
	Reset(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET /reset, got %d", w.Code)
	}
}
