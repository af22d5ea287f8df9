package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"logitrack/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TransitionPolicy      string
	TrackingIDMaxAttempts int

	KafkaBrokers           []string
	KafkaParcelEventsTopic string

	NotificationRetrySchedule string
	StatusGaugeSchedule       string
	NotificationRetryBuffer   int

	OfficesSeedPath string
}

// LoadConfig reads .env when present, then the process environment. Unset
// keys fall back to defaults suitable for local development.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	maxAttempts, attemptsErr := getEnvInt("TRACKING_ID_MAX_ATTEMPTS", 0)
	retryBuffer, bufferErr := getEnvInt("NOTIFICATION_RETRY_BUFFER", 0)
	if err := errors.Join(attemptsErr, bufferErr); err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		DBHost:                    getEnv("DB_HOST", "localhost"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", "postgres"),
		DBName:                    getEnv("DB_NAME", "logitrack"),
		DBSslMode:                 getEnv("DB_SSLMODE", "disable"),
		TransitionPolicy:          getEnv("TRANSITION_POLICY", "forward_only"),
		TrackingIDMaxAttempts:     maxAttempts,
		KafkaBrokers:              splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaParcelEventsTopic:    getEnv("KAFKA_PARCEL_EVENTS_TOPIC", "parcel.status_changed"),
		NotificationRetrySchedule: os.Getenv("NOTIFICATION_RETRY_SCHEDULE"),
		StatusGaugeSchedule:       os.Getenv("STATUS_GAUGE_SCHEDULE"),
		NotificationRetryBuffer:   retryBuffer,
		OfficesSeedPath:           getEnv("OFFICES_SEED_PATH", "data/seeds/offices.json"),
	}, nil
}

// DatabaseSettings returns the PostgreSQL connection parameters.
func (c Config) DatabaseSettings() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
