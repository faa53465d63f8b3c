package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"badgematic/internal/badge"
	applog "badgematic/internal/log"
	"badgematic/internal/printjobs"
	"badgematic/internal/views/layout"
	"badgematic/internal/views/theme"
)

const (
	sessionNameKey         = "wizard:name"
	sessionEmployeeKey     = "wizard:employee_number"
	sessionTitleKey        = "wizard:title"
	sessionPhoneKey        = "wizard:phone"
	sessionEmailKey        = "wizard:email"
	sessionPhotoKey        = "wizard:photo_data"
	sessionJobIDKey        = "wizard:job_id"
	sessionThemeKey        = "wizard:theme"
	sessionAdminKey        = "admin:authenticated"
	sessionAdminMessageKey = "admin:message"
)

var (
	sessionManager    *scs.SessionManager
	database          *gorm.DB
	jobs              *printjobs.Registry
	adminPasswordHash string
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, registry *printjobs.Registry, adminHash string) {
	sessionManager = sm
	database = db
	jobs = registry
	adminPasswordHash = strings.TrimSpace(adminHash)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// currentPalette resolves the visitor's palette choice, defaulting to the
// brand light theme.
func currentPalette(r *http.Request) theme.Palette {
	if sessionManager == nil {
		return theme.Resolve(theme.DefaultName)
	}
	return theme.Resolve(sessionManager.GetString(r.Context(), sessionThemeKey))
}

// renderPage wraps the component in the document shell and writes it.
func renderPage(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := layout.Page(title, currentPalette(r), content)
	if err := page.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "title", title, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// attendeeFromSession rebuilds the wizard state captured so far.
func attendeeFromSession(r *http.Request) badge.Attendee {
	if sessionManager == nil {
		return badge.Attendee{}
	}
	ctx := r.Context()
	return badge.Attendee{
		Name:           sessionManager.GetString(ctx, sessionNameKey),
		EmployeeNumber: sessionManager.GetString(ctx, sessionEmployeeKey),
		Title:          sessionManager.GetString(ctx, sessionTitleKey),
		Phone:          sessionManager.GetString(ctx, sessionPhoneKey),
		Email:          sessionManager.GetString(ctx, sessionEmailKey),
	}
}

func storeAttendee(r *http.Request, attendee badge.Attendee) {
	if sessionManager == nil {
		return
	}
	ctx := r.Context()
	sessionManager.Put(ctx, sessionNameKey, attendee.Name)
	sessionManager.Put(ctx, sessionEmployeeKey, attendee.EmployeeNumber)
	sessionManager.Put(ctx, sessionTitleKey, attendee.Title)
	sessionManager.Put(ctx, sessionPhoneKey, attendee.Phone)
	sessionManager.Put(ctx, sessionEmailKey, attendee.Email)
}

// hasFormData reports whether the details step has been completed.
func hasFormData(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return strings.TrimSpace(sessionManager.GetString(r.Context(), sessionNameKey)) != ""
}

func hasPhoto(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetString(r.Context(), sessionPhotoKey) != ""
}

func clearSession(r *http.Request) {
	if sessionManager == nil {
		return
	}
	if err := sessionManager.Destroy(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to destroy session", "error", err)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, location string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
