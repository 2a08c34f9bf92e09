// Package store provides persistence for finalized booking records.
package store

import (
	"context"

	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
)

// Archive records booking drafts that reached the confirmation state.
// The conversation itself never depends on the archive; writes are
// best-effort from the engine's point of view.
type Archive interface {
	// RecordBooking persists a finalized booking draft.
	RecordBooking(ctx context.Context, rec *domain.BookingRecord) error

	// RecentBookings returns up to limit records, newest first.
	RecentBookings(ctx context.Context, limit int) ([]domain.BookingRecord, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the underlying database.
	Close() error
}
