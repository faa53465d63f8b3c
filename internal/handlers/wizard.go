package handlers

import (
	"net/http"
	"strings"

	"badgematic/internal/badge"
	applog "badgematic/internal/log"
	"badgematic/internal/views/pages"
)

// Welcome renders the kiosk landing page.
func Welcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderPage(w, r, "Badgematic", pages.Welcome())
}

// DetailsForm displays the attendee details step and stores submissions
// in the session.
func DetailsForm(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling details form", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		renderPage(w, r, "Your details — Badgematic", pages.DetailsForm(attendeeFromSession(r), ""))
	case http.MethodPost:
		if sessionManager == nil {
			http.Error(w, "session not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse details form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		attendee := badge.Attendee{
			Name:           strings.TrimSpace(r.PostFormValue("name")),
			EmployeeNumber: strings.TrimSpace(r.PostFormValue("employee_number")),
			Title:          strings.TrimSpace(r.PostFormValue("title")),
			Phone:          strings.TrimSpace(r.PostFormValue("phone")),
			Email:          strings.TrimSpace(r.PostFormValue("email")),
		}

		if attendee.Name == "" || attendee.EmployeeNumber == "" || attendee.Title == "" || attendee.Phone == "" || attendee.Email == "" {
			applog.Debug(r.Context(), "details form missing fields")
			renderPage(w, r, "Your details — Badgematic", pages.DetailsForm(attendee, "All fields are required."))
			return
		}

		storeAttendee(r, attendee)
		applog.Debug(r.Context(), "details stored", "employee", attendee.EmployeeNumber)
		redirect(w, r, "/photo")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// PhotoCapture displays the camera step and stores the captured photo in
// the session.
func PhotoCapture(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling photo capture", "method", r.Method)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if !hasFormData(r) {
			redirect(w, r, "/form")
			return
		}
		renderPage(w, r, "Badge photo — Badgematic", pages.PhotoCapture(attendeeFromSession(r)))
	case http.MethodPost:
		if !hasFormData(r) {
			redirect(w, r, "/form")
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse photo form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		photoData := r.PostFormValue("photo_data")
		if !strings.HasPrefix(photoData, "data:image/") {
			applog.Debug(r.Context(), "photo payload rejected")
			http.Error(w, "photo capture payload missing", http.StatusBadRequest)
			return
		}
		sessionManager.Put(r.Context(), sessionPhotoKey, photoData)
		redirect(w, r, "/review")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Review shows the captured details and photo before printing.
func Review(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !hasFormData(r) || !hasPhoto(r) {
		redirect(w, r, "/form")
		return
	}
	photo := sessionManager.GetString(r.Context(), sessionPhotoKey)
	renderPage(w, r, "Review — Badgematic", pages.Review(attendeeFromSession(r), photo))
}

// ReviewEdit updates the attendee details from the review page.
func ReviewEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil {
		http.Error(w, "session not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	storeAttendee(r, badge.Attendee{
		Name:           strings.TrimSpace(r.PostFormValue("name")),
		EmployeeNumber: strings.TrimSpace(r.PostFormValue("employee_number")),
		Title:          strings.TrimSpace(r.PostFormValue("title")),
		Phone:          strings.TrimSpace(r.PostFormValue("phone")),
		Email:          strings.TrimSpace(r.PostFormValue("email")),
	})
	redirect(w, r, "/review")
}

// RetakePhoto drops the captured photo so the visitor can try again.
func RetakePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager != nil {
		sessionManager.Remove(r.Context(), sessionPhotoKey)
	}
	redirect(w, r, "/photo")
}
