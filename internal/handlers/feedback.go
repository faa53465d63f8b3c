package handlers

import (
	"net/http"
	"strconv"
	"strings"

	applog "badgematic/internal/log"
	"badgematic/models"
)

// Feedback persists the visitor rating, ends the session, and returns to
// the welcome page.
func Feedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	rating, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("rating")))
	if err != nil || !models.ValidRating(rating) {
		applog.Debug(r.Context(), "feedback rating rejected", "value", r.PostFormValue("rating"))
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}
	comments := strings.TrimSpace(r.PostFormValue("comments"))

	if database == nil {
		applog.Warn(r.Context(), "database not configured; feedback discarded", "rating", rating)
	} else {
		entry := &models.Feedback{Rating: rating, Comments: comments}
		if err := database.WithContext(r.Context()).Create(entry).Error; err != nil {
			applog.Error(r.Context(), "failed to persist feedback", "error", err)
			http.Error(w, "failed to save feedback", http.StatusInternalServerError)
			return
		}
		applog.Info(r.Context(), "feedback received", "rating", rating, "hasComments", comments != "")
	}

	clearSession(r)
	redirect(w, r, "/")
}

// Reset abandons the current badge session.
func Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	clearSession(r)
	redirect(w, r, "/")
}
