package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

// Config stores runtime configuration for the league tracker tools.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      logging.Format
	SnapshotPath   string
	SeedPath       string
	AuditLocation  *time.Location
	UptraceDSN     string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", defaultLogFormat(appEnv)))
	if err != nil {
		return Config{}, err
	}

	snapshotPath := strings.TrimSpace(getEnv("TRACKER_SNAPSHOT_PATH", "data/league.json"))
	if snapshotPath == "" {
		return Config{}, fmt.Errorf("TRACKER_SNAPSHOT_PATH cannot be empty")
	}

	auditZone := strings.TrimSpace(getEnv("TRACKER_AUDIT_TIMEZONE", "UTC"))
	auditLocation, err := time.LoadLocation(auditZone)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACKER_AUDIT_TIMEZONE: %w", err)
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "league-tracker"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:      logFormat,
		SnapshotPath:   snapshotPath,
		SeedPath:       strings.TrimSpace(getEnv("TRACKER_SEED_PATH", "")),
		AuditLocation:  auditLocation,
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func defaultLogFormat(appEnv string) string {
	if appEnv == EnvDev {
		return string(logging.FormatConsole)
	}
	return string(logging.FormatJSON)
}

func parseLogFormat(v string) (logging.Format, error) {
	switch format := logging.Format(strings.ToLower(strings.TrimSpace(v))); format {
	case logging.FormatJSON, logging.FormatConsole:
		return format, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}
