package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	applog "badgematic/internal/log"
	"badgematic/internal/views/pages"
	"badgematic/models"
)

const adminHistoryLimit = 50

// Admin gates the operator page behind the configured passphrase and
// lists recent badges and feedback once unlocked.
func Admin(w http.ResponseWriter, r *http.Request) {
	if adminPasswordHash == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if !adminUnlocked(r) {
			message := ""
			if sessionManager != nil {
				message = sessionManager.PopString(r.Context(), sessionAdminMessageKey)
			}
			renderPage(w, r, "Operator — Badgematic", pages.AdminLogin(message))
			return
		}
		renderAdmin(w, r)
	case http.MethodPost:
		if sessionManager == nil {
			http.Error(w, "operator access not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		passphrase := r.PostFormValue("passphrase")
		if err := bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(passphrase)); err != nil {
			applog.Warn(r.Context(), "operator unlock rejected")
			sessionManager.Put(r.Context(), sessionAdminMessageKey, "Wrong passphrase.")
			redirect(w, r, "/admin")
			return
		}
		if err := sessionManager.RenewToken(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to renew session for operator", "error", err)
			http.Error(w, "operator access not available", http.StatusInternalServerError)
			return
		}
		sessionManager.Put(r.Context(), sessionAdminKey, true)
		applog.Info(r.Context(), "operator unlocked")
		redirect(w, r, "/admin")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func adminUnlocked(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAdminKey)
}

func renderAdmin(w http.ResponseWriter, r *http.Request) {
	var (
		badges   []models.BadgeRecord
		feedback []models.Feedback
	)
	if database != nil {
		if err := database.WithContext(r.Context()).Order("created_at desc").Limit(adminHistoryLimit).Find(&badges).Error; err != nil {
			applog.Error(r.Context(), "failed to load badge history", "error", err)
		}
		if err := database.WithContext(r.Context()).Order("created_at desc").Limit(adminHistoryLimit).Find(&feedback).Error; err != nil {
			applog.Error(r.Context(), "failed to load feedback", "error", err)
		}
	}
	renderPage(w, r, "Operator — Badgematic", pages.Admin(badges, feedback))
}
