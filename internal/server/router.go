package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"badgematic/internal/handlers"
	applog "badgematic/internal/log"
)

func newRouter(staticDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/form", handlers.DetailsForm)
	mux.HandleFunc("/photo", handlers.PhotoCapture)
	mux.HandleFunc("/review", handlers.Review)
	mux.HandleFunc("/review/edit", handlers.ReviewEdit)
	mux.HandleFunc("/review/retake_photo", handlers.RetakePhoto)
	mux.HandleFunc("/print", handlers.Print)
	mux.HandleFunc("/confirm", handlers.Confirm)
	mux.HandleFunc("/status", handlers.Status)
	mux.HandleFunc("/feedback", handlers.Feedback)
	mux.HandleFunc("/reset", handlers.Reset)
	mux.HandleFunc("/theme", handlers.UpdateTheme)
	mux.HandleFunc("/admin", handlers.Admin)

	mux.HandleFunc("/assets/themes.css", handlers.ThemeStylesheet)
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))

	mux.HandleFunc("/", handlers.Welcome)

	applog.Debug(context.Background(), "http routes registered")
	return mux
}
