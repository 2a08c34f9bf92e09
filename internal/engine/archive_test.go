package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aadeesh19/ticketingchatbotback1/internal/catalog"
	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
	"github.com/aadeesh19/ticketingchatbotback1/internal/session"
)

type fakeArchive struct {
	records []domain.BookingRecord
	err     error
}

func (f *fakeArchive) RecordBooking(_ context.Context, rec *domain.BookingRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeArchive) RecentBookings(_ context.Context, limit int) ([]domain.BookingRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *fakeArchive) Ping(context.Context) error { return nil }
func (f *fakeArchive) Close() error               { return nil }

func TestBookingRecordedOnConfirmation(t *testing.T) {
	archive := &fakeArchive{}
	e := New(session.NewMemoryStore(), session.NewCompletedSet(), catalog.New(), archive)
	e.now = func() time.Time { return fixedNow }

	drive(t, e, "u1", "English", "Asha", "2", "2026-06-01", "Kerala")

	if len(archive.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(archive.records))
	}
	rec := archive.records[0]
	if rec.UserID != "u1" || rec.Name != "Asha" || rec.TicketCount != 2 ||
		rec.VisitDate != "2026-06-01" || rec.VisitPlace != "Kerala" || rec.TourOption != "" {
		t.Errorf("Unexpected record %+v", rec)
	}
}

func TestBookingRecordedWithTourOption(t *testing.T) {
	archive := &fakeArchive{}
	e := New(session.NewMemoryStore(), session.NewCompletedSet(), catalog.New(), archive)
	e.now = func() time.Time { return fixedNow }

	option := catalog.New().ForLanguage("English").TourOptions[1]
	drive(t, e, "u1", "English", "Asha", "3", "2026-06-01", "Delhi", option)

	if len(archive.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(archive.records))
	}
	if archive.records[0].TourOption != option {
		t.Errorf("Expected tour option %q, got %q", option, archive.records[0].TourOption)
	}
	if archive.records[0].VisitPlace != "Delhi" {
		t.Errorf("Expected Delhi, got %q", archive.records[0].VisitPlace)
	}
}

func TestArchiveFailureDoesNotAffectConversation(t *testing.T) {
	archive := &fakeArchive{err: errors.New("disk full")}
	e := New(session.NewMemoryStore(), session.NewCompletedSet(), catalog.New(), archive)
	e.now = func() time.Time { return fixedNow }

	reply := drive(t, e, "u1", "English", "Asha", "2", "2026-06-01", "Kerala")
	if !quickRepliesEqual(reply.QuickReplies, []string{"YES", "NO"}) {
		t.Errorf("Expected confirmation despite archive failure, got %v", reply.QuickReplies)
	}
}
