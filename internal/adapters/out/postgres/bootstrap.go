package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"logitrack/internal/adapters/out/postgres/notificationrepo"
	"logitrack/internal/adapters/out/postgres/officerepo"
	"logitrack/internal/adapters/out/postgres/parcelrepo"

	"github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maintenanceDB is the database EnsureDatabase connects to before the target exists.
const maintenanceDB = "postgres"

// Settings holds connection parameters.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the key/value connection string for DBName.
func (s Settings) DSN() string {
	return s.dsnFor(s.DBName)
}

func (s Settings) dsnFor(dbName string) string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, dbName, sslMode)
}

// EnsureDatabase creates DBName when it does not exist yet.
func EnsureDatabase(ctx context.Context, s Settings) error {
	db, err := sql.Open("postgres", s.dsnFor(maintenanceDB))
	if err != nil {
		return fmt.Errorf("open maintenance database: %w", err)
	}
	defer db.Close()

	var exists bool
	if err := db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", s.DBName,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check database %q: %w", s.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(s.DBName)); err != nil {
		return fmt.Errorf("create database %q: %w", s.DBName, err)
	}
	return nil
}

// Open connects gorm with driver error translation on, which the repositories
// rely on to detect unique violations.
func Open(s Settings) (*gorm.DB, error) {
	return gorm.Open(postgresdriver.Open(s.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&officerepo.OfficeDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TrackingEventDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
