package handlers

import (
	"net/http"

	applog "badgematic/internal/log"
	"badgematic/internal/views/pages"
)

// Print enqueues a badge print job for the current session and redirects
// to the confirm page, which polls for progress.
func Print(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if jobs == nil || sessionManager == nil {
		http.Error(w, "printing not available", http.StatusServiceUnavailable)
		return
	}
	if !hasFormData(r) || !hasPhoto(r) {
		redirect(w, r, "/form")
		return
	}

	attendee := attendeeFromSession(r)
	photo := sessionManager.GetString(r.Context(), sessionPhotoKey)

	jobID := jobs.Start(r.Context(), attendee, photo)
	sessionManager.Put(r.Context(), sessionJobIDKey, jobID)

	applog.Info(r.Context(), "print requested", "jobID", jobID, "employee", attendee.EmployeeNumber)
	redirect(w, r, "/confirm")
}

// Confirm renders the page hosting the HTMX status polling block.
func Confirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderPage(w, r, "Printing — Badgematic", pages.Confirm())
}

// Status serves the HTMX fragment with the current job state.
func Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if jobs == nil {
		http.Error(w, "printing not available", http.StatusServiceUnavailable)
		return
	}

	jobID := ""
	if sessionManager != nil {
		jobID = sessionManager.GetString(r.Context(), sessionJobIDKey)
	}

	if err := pages.StatusBlock(jobs.Snapshot(jobID)).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render status block", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
