package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"badgematic/models"
)

func withAdminHash(t *testing.T, passphrase string) func() {
	t.Helper()
	original := adminPasswordHash
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash passphrase: %v", err)
	}
	adminPasswordHash = string(hash)
	return func() {
		adminPasswordHash = original
	}
}

func TestAdminHiddenWhenUnconfigured(t *testing.T) {
	original := adminPasswordHash
	adminPasswordHash = ""
	t.Cleanup(func() { adminPasswordHash = original })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	Admin(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when operator page unconfigured, got %d", w.Code)
	}
}

func TestAdminPromptsForPassphrase(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)
	t.Cleanup(withAdminHash(t, "opensesame"))

	req := sessionRequest(t, sm, http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	Admin(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 login prompt, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="passphrase"`) {
		t.Fatalf("expected passphrase prompt: %s", w.Body.String())
	}
}

func TestAdminRejectsWrongPassphrase(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)
	t.Cleanup(withAdminHash(t, "opensesame"))

	form := url.Values{}
	form.Set("passphrase", "wrong")
	req := sessionRequest(t, sm, http.MethodPost, "/admin", form)
	w := httptest.NewRecorder()
	Admin(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after rejection, got %d", w.Code)
	}
	if sm.GetBool(req.Context(), sessionAdminKey) {
		t.Fatal("expected session to remain locked")
	}
	if msg := sm.GetString(req.Context(), sessionAdminMessageKey); msg == "" {
		t.Fatal("expected rejection message in session")
	}
}

func TestAdminUnlocksAndListsActivity(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	t.Cleanup(withAdminHash(t, "opensesame"))

	if err := db.Create(&models.BadgeRecord{JobID: "job-1", AttendeeName: "Jo Doe", EmployeeNumber: "4711", BadgePath: "/srv/4711_badge.png"}).Error; err != nil {
		t.Fatalf("failed to seed badge record: %v", err)
	}
	if err := db.Create(&models.Feedback{Rating: 5, Comments: "fast"}).Error; err != nil {
		t.Fatalf("failed to seed feedback: %v", err)
	}

	form := url.Values{}
	form.Set("passphrase", "opensesame")
	req := sessionRequest(t, sm, http.MethodPost, "/admin", form)
	w := httptest.NewRecorder()
	Admin(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after unlock, got %d", w.Code)
	}
	if !sm.GetBool(req.Context(), sessionAdminKey) {
		t.Fatal("expected session to be unlocked")
	}

	getReq := req.Clone(req.Context())
	getReq.Method = http.MethodGet
	getReq.Body = nil
	w = httptest.NewRecorder()
	Admin(w, getReq)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 operator page, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Jo Doe") {
		t.Fatalf("expected badge history in operator page: %s", body)
	}
	if !strings.Contains(body, "5 / 5") {
		t.Fatalf("expected feedback in operator page: %s", body)
	}
}
