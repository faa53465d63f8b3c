package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures the runtime configuration for the kiosk application.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Database DatabaseConfig
	Badge    BadgeConfig
	Admin    AdminConfig
	Logging  LoggingConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// SessionConfig controls the lifetime and cookie attributes of the
// visitor session that carries the badge wizard state.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// DatabaseConfig contains the database connection settings. When URL is
// empty the kiosk falls back to a local sqlite file at Path.
type DatabaseConfig struct {
	URL             string
	Path            string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// BadgeConfig describes where composed badges are written and which
// template image, if any, is layered onto the card.
type BadgeConfig struct {
	OutputDir    string
	TemplatePath string
	Organization string
}

// AdminConfig gates the operator page. PasswordHash holds a bcrypt hash;
// when empty the operator page is disabled.
type AdminConfig struct {
	PasswordHash string
}

// LoggingConfig controls the global log verbosity.
type LoggingConfig struct {
	Level string
}

// Load inspects the environment and builds a Config value. A .env file in
// the working directory is honored when present so the kiosk can be
// configured without a process manager.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), time.Hour),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "badgematic_session"),
		CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
		CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
	}

	cfg.Database = DatabaseConfig{
		URL:             firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("DB_URL")),
		Path:            firstNonEmpty(os.Getenv("DATABASE_PATH"), "badgematic.db"),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
	}

	cfg.Badge = BadgeConfig{
		OutputDir:    firstNonEmpty(os.Getenv("BADGE_OUTPUT_DIR"), "app/badge_outputs"),
		TemplatePath: firstNonEmpty(os.Getenv("BADGE_TEMPLATE_PATH"), "app/static/img/badge_template.png"),
		Organization: firstNonEmpty(os.Getenv("BADGE_ORGANIZATION"), "YourOrg"),
	}

	cfg.Admin = AdminConfig{
		PasswordHash: strings.TrimSpace(os.Getenv("BADGEMATIC_ADMIN_PASSWORD_HASH")),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
