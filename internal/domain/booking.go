// Package domain contains core domain types for the booking chat service.
package domain

import "time"

// Step identifies which question the conversation is currently awaiting an
// answer to. The numeric values mirror the wire-level step tags of the
// original flow (1..5, 99); any other value is treated as corrupted state.
type Step int

const (
	StepAwaitingName       Step = 1
	StepAwaitingTickets    Step = 2
	StepAwaitingDate       Step = 3
	StepAwaitingPlace      Step = 4
	StepAwaitingTourOption Step = 5
	StepPostConfirm        Step = 99
)

// BookingData is the partially filled booking draft accumulated over a
// conversation. Language is set at session creation and never changes.
type BookingData struct {
	Language    string `json:"language"`
	Name        string `json:"name,omitempty"`
	TicketCount int    `json:"ticket_count,omitempty"`
	VisitDate   string `json:"visit_date,omitempty"` // YYYY-MM-DD
	VisitPlace  string `json:"visit_place,omitempty"`
	TourOption  string `json:"tour_option,omitempty"`
}

// Session is the in-progress conversation record for one caller. A session
// exists iff the caller has a flow that has not been finalized and cleared.
type Session struct {
	UserID string
	Step   Step
	Data   BookingData
}

// Reply is the outcome of one conversation turn. QuickReplies are advisory
// UI hints, never enforced server-side.
type Reply struct {
	Text         string   `json:"reply"`
	QuickReplies []string `json:"quickReplies"`
}

// BookingRecord is a finalized draft persisted to the archive when a
// conversation reaches the post-confirm state.
type BookingRecord struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Language    string    `json:"language"`
	Name        string    `json:"name"`
	TicketCount int       `json:"ticket_count"`
	VisitDate   string    `json:"visit_date"`
	VisitPlace  string    `json:"visit_place"`
	TourOption  string    `json:"tour_option,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
