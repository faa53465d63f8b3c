package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"badgematic/internal/printjobs"
)

func TestPrintStartsJobAndRedirects(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	registry, regCleanup := withTestRegistry(t, &fakeComposer{path: "/tmp/4711_badge.png"})
	t.Cleanup(regCleanup)

	req := sessionRequest(t, sm, http.MethodPost, "/print", nil)
	seedWizardSession(t, sm, req, true)
	w := httptest.NewRecorder()
	Print(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after print, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/confirm" {
		t.Fatalf("expected redirect to /confirm, got %q", loc)
	}

	jobID := sm.GetString(req.Context(), sessionJobIDKey)
	if jobID == "" {
		t.Fatal("expected job id in session")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		job, ok := registry.Get(jobID)
		if ok && job.Status == printjobs.StatusSuccess {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job %s never succeeded: %+v", jobID, job)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPrintRequiresWizardState(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, regCleanup := withTestRegistry(t, &fakeComposer{})
	t.Cleanup(regCleanup)

	req := sessionRequest(t, sm, http.MethodPost, "/print", nil)
	w := httptest.NewRecorder()
	Print(w, req)

	if loc := w.Header().Get("Location"); loc != "/form" {
		t.Fatalf("expected redirect to /form without wizard state, got %q", loc)
	}
}

func TestPrintRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/print", nil)
	w := httptest.NewRecorder()
	Print(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET /print, got %d", w.Code)
	}
}

func TestConfirmHostsPollingBlock(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := sessionRequest(t, sm, http.MethodGet, "/confirm", nil)
	w := httptest.NewRecorder()
	Confirm(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 confirm page, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `hx-get="/status"`) {
		t.Fatalf("expected polling block in confirm page: %s", w.Body.String())
	}
}

func TestStatusRendersIdleWithoutJob(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, regCleanup := withTestRegistry(t, &fakeComposer{})
	t.Cleanup(regCleanup)

	req := sessionRequest(t, sm, http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	Status(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 status fragment, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No print job in progress.") {
		t.Fatalf("expected idle status fragment: %s", w.Body.String())
	}
}

func TestStatusReflectsCompletedJob(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	registry, regCleanup := withTestRegistry(t, &fakeComposer{path: "/tmp/out.png"})
	t.Cleanup(regCleanup)

	req := sessionRequest(t, sm, http.MethodGet, "/status", nil)
	seedWizardSession(t, sm, req, true)

	jobID := registry.Start(req.Context(), attendeeFromSession(req), "data:image/png;base64,abcd")
	sm.Put(req.Context(), sessionJobIDKey, jobID)

	deadline := time.Now().Add(5 * time.Second)
	for {
		if job, ok := registry.Get(jobID); ok && job.Status == printjobs.StatusSuccess {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job never completed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	w := httptest.NewRecorder()
	Status(w, req)
	if !strings.Contains(w.Body.String(), "Your badge is ready!") {
		t.Fatalf("expected success fragment: %s", w.Body.String())
	}
}
