package handlers

import (
	"net/http"
	"strings"

	applog "badgematic/internal/log"
	"badgematic/internal/views/theme"
)

// ThemeStylesheet serves the generated palette custom properties. The
// payload is static for the process lifetime, so clients may cache it.
func ThemeStylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write([]byte(theme.StylesheetCSS())); err != nil {
		applog.Error(r.Context(), "failed to write theme stylesheet", "error", err)
	}
}

// UpdateTheme stores the visitor's palette selection in the session. The
// layout applies it through the document's data-theme attribute.
func UpdateTheme(w http.ResponseWriter, r *http.Request) {
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

	selection := strings.TrimSpace(r.PostFormValue("theme"))
	if !theme.Known(selection) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", selection)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	palette := theme.Resolve(selection)
	sessionManager.Put(r.Context(), sessionThemeKey, palette.Name)
	applog.Debug(r.Context(), "theme selection stored", "theme", palette.Name)

	referer := r.Header.Get("Referer")
	if referer == "" {
		referer = "/"
	}
	redirect(w, r, referer)
}
