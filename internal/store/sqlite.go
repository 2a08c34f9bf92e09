package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
	"github.com/aadeesh19/ticketingchatbotback1/internal/shared"
	_ "modernc.org/sqlite"
)

// SQLiteArchive implements Archive using SQLite.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed booking archive.
func NewSQLite(dbPath string) (*SQLiteArchive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	a := &SQLiteArchive{db: db}
	if err := a.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return a, nil
}

func (a *SQLiteArchive) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		language TEXT NOT NULL,
		name TEXT NOT NULL,
		ticket_count INTEGER NOT NULL,
		visit_date TEXT NOT NULL,
		visit_place TEXT NOT NULL,
		tour_option TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_created ON bookings(created_at);
	`
	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (a *SQLiteArchive) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// RecordBooking persists a finalized booking draft. Writes are retried with
// backoff on SQLite busy/locked conflicts.
func (a *SQLiteArchive) RecordBooking(ctx context.Context, rec *domain.BookingRecord) error {
	query := `
	INSERT INTO bookings (user_id, language, name, ticket_count, visit_date, visit_place, tour_option, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var tourOption interface{}
	if rec.TourOption != "" {
		tourOption = rec.TourOption
	}

	const maxRetries = 3
	baseDelay := 50 * time.Millisecond

	var err error
	for i := 0; i < maxRetries; i++ {
		_, err = a.db.ExecContext(ctx, query,
			rec.UserID, rec.Language, rec.Name, rec.TicketCount,
			rec.VisitDate, rec.VisitPlace, tourOption, rec.CreatedAt.Unix(),
		)
		if err == nil {
			return nil
		}
		if !shared.IsSQLiteConflictError(err) || i == maxRetries-1 {
			break
		}
		delay := baseDelay * time.Duration(1<<i)
		slog.Debug("Database locked during booking insert, retrying",
			"user_id", rec.UserID, "attempt", i+1, "delay", delay)
		time.Sleep(delay)
	}
	return fmt.Errorf("insert booking: %w", err)
}

// RecentBookings returns up to limit records, newest first.
func (a *SQLiteArchive) RecentBookings(ctx context.Context, limit int) ([]domain.BookingRecord, error) {
	query := `
		SELECT id, user_id, language, name, ticket_count,
		       visit_date, visit_place, tour_option, created_at
		FROM bookings ORDER BY id DESC LIMIT ?`

	rows, err := a.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close bookings rows", "error", closeErr)
		}
	}()

	var records []domain.BookingRecord
	for rows.Next() {
		var rec domain.BookingRecord
		var tourOption sql.NullString
		var createdAt int64

		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Language, &rec.Name, &rec.TicketCount,
			&rec.VisitDate, &rec.VisitPlace, &tourOption, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		rec.TourOption = tourOption.String
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (a *SQLiteArchive) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
