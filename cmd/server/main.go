package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"badgematic/internal/badge"
	"badgematic/internal/config"
	"badgematic/internal/db"
	applog "badgematic/internal/log"
	"badgematic/internal/printjobs"
	"badgematic/internal/server"
	"badgematic/models"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		os.Exit(1)
	}

	composer := &badge.Composer{
		OutputDir:    cfg.Badge.OutputDir,
		TemplatePath: cfg.Badge.TemplatePath,
		Organization: cfg.Badge.Organization,
	}

	registry := printjobs.New(composer, printjobs.WithSuccessFunc(recordBadge(database)))

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database:          database,
		Jobs:              registry,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	_ = applog.Sync()
}

// recordBadge persists a history row for each successfully composed badge.
func recordBadge(database *gorm.DB) printjobs.SuccessFunc {
	return func(ctx context.Context, job printjobs.Job, attendee badge.Attendee) {
		if database == nil {
			return
		}
		record := &models.BadgeRecord{
			JobID:          job.ID,
			AttendeeName:   attendee.Name,
			EmployeeNumber: attendee.EmployeeNumber,
			BadgePath:      job.BadgePath,
		}
		if err := database.WithContext(ctx).Create(record).Error; err != nil {
			applog.Error(ctx, "failed to persist badge record", "jobID", job.ID, "error", err)
		}
	}
}
