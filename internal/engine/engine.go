// Package engine implements the conversation state machine that walks a
// caller through the booking question sequence. It is the only component
// that creates, mutates, or deletes sessions.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aadeesh19/ticketingchatbotback1/internal/catalog"
	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
	"github.com/aadeesh19/ticketingchatbotback1/internal/session"
	"github.com/aadeesh19/ticketingchatbotback1/internal/store"
)

// Flow strings the original product keeps in English for every language.
const (
	selectLanguagePrompt   = "Hello! Please select a language: "
	selectTourOption       = "Please select a tour option:"
	selectValidTourOption  = "Please select a valid tour option."
	startingNewBooking     = "Starting new booking..."
	postConfirmCancelReply = "Cancel my booking"
	postConfirmNewReply    = "New booking"
)

// Engine decides, for each inbound message, the next prompt, validation,
// and session transition.
type Engine struct {
	sessions  session.Store
	completed *session.CompletedSet
	catalog   *catalog.Catalog
	archive   store.Archive // optional; nil disables booking records

	// now supplies "today" to the date validator; overridable in tests.
	now func() time.Time

	// userLocks serializes read-modify-write per caller so client retries
	// or double-submits cannot lose updates.
	userLocks sync.Map
}

// New creates an engine. archive may be nil.
func New(sessions session.Store, completed *session.CompletedSet, cat *catalog.Catalog, archive store.Archive) *Engine {
	return &Engine{
		sessions:  sessions,
		completed: completed,
		catalog:   cat,
		archive:   archive,
		now:       time.Now,
	}
}

// Handle processes one caller message and returns the reply. Sessions for
// different callers never contend; messages from the same caller are
// serialized.
func (e *Engine) Handle(ctx context.Context, userID, rawText string) domain.Reply {
	lock, _ := e.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	sess, ok := e.sessions.Get(userID)

	if !ok && !e.completed.Contains(userID) {
		return e.startConversation(userID, rawText)
	}

	if !ok {
		return domain.Reply{
			Text:         selectLanguagePrompt + strings.Join(catalog.SupportedLanguages, ", "),
			QuickReplies: catalog.SupportedLanguages,
		}
	}

	langMsgs := e.catalog.ForLanguage(sess.Data.Language)

	switch sess.Step {
	case domain.StepAwaitingName:
		sess.Data.Name = strings.TrimSpace(rawText)
		sess.Step = domain.StepAwaitingTickets
		e.sessions.Put(sess)
		return domain.Reply{Text: langMsgs.AskTickets, QuickReplies: catalog.TicketQuickReplies()}

	case domain.StepAwaitingTickets:
		n, numeric := parseTicketCount(rawText)
		if !numeric || n < 1 || n > catalog.MaxTickets {
			return domain.Reply{Text: langMsgs.InvalidTickets, QuickReplies: catalog.TicketQuickReplies()}
		}
		sess.Data.TicketCount = n
		sess.Step = domain.StepAwaitingDate
		e.sessions.Put(sess)
		return domain.Reply{Text: langMsgs.AskDate, QuickReplies: catalog.SampleDates}

	case domain.StepAwaitingDate:
		if !validVisitDate(rawText, e.now()) {
			return domain.Reply{Text: langMsgs.InvalidDate, QuickReplies: catalog.SampleDates}
		}
		sess.Data.VisitDate = rawText
		sess.Step = domain.StepAwaitingPlace
		e.sessions.Put(sess)
		return domain.Reply{Text: langMsgs.AskPlace, QuickReplies: catalog.Destinations}

	case domain.StepAwaitingPlace:
		switch rawText {
		case "Delhi":
			sess.Data.VisitPlace = rawText
			sess.Step = domain.StepAwaitingTourOption
			e.sessions.Put(sess)
			return domain.Reply{Text: selectTourOption, QuickReplies: langMsgs.TourOptions}
		case "Kerala":
			// Kerala has no tour circuits; skip straight to confirmation.
			sess.Data.VisitPlace = rawText
			sess.Step = domain.StepPostConfirm
			e.sessions.Put(sess)
			e.recordBooking(ctx, sess)
			return domain.Reply{
				Text:         langMsgs.ConfirmBooking(sess.Data.Name, sess.Data.TicketCount, sess.Data.VisitDate, sess.Data.VisitPlace),
				QuickReplies: []string{"YES", "NO"},
			}
		default:
			return domain.Reply{Text: langMsgs.AskPlace, QuickReplies: catalog.Destinations}
		}

	case domain.StepAwaitingTourOption:
		if !containsString(langMsgs.TourOptions, rawText) {
			return domain.Reply{Text: selectValidTourOption, QuickReplies: langMsgs.TourOptions}
		}
		sess.Data.TourOption = rawText
		sess.Step = domain.StepPostConfirm
		e.sessions.Put(sess)
		e.recordBooking(ctx, sess)
		return domain.Reply{
			Text:         fmt.Sprintf("You selected %q. Book your ticket here: %s", rawText, langMsgs.BookLink),
			QuickReplies: []string{postConfirmCancelReply, postConfirmNewReply},
		}

	case domain.StepPostConfirm:
		// Absorbing state: accept a reset command or loop on unrelated
		// input so the caller never gets stuck.
		lower := strings.ToLower(rawText)
		switch {
		case strings.Contains(lower, "cancel"):
			e.sessions.Delete(userID)
			return domain.Reply{
				Text:         "Cancel your ticket here: " + langMsgs.CancelLink,
				QuickReplies: catalog.SupportedLanguages,
			}
		case strings.Contains(lower, "new"):
			e.sessions.Delete(userID)
			return domain.Reply{Text: startingNewBooking, QuickReplies: catalog.SupportedLanguages}
		default:
			return domain.Reply{Text: langMsgs.HowCanIHelp, QuickReplies: catalog.SupportedLanguages}
		}

	default:
		// Integrity fault: unrecognized step. Reset silently and re-prompt.
		slog.Warn("Resetting session with unrecognized step", "user_id", userID, "step", int(sess.Step))
		e.sessions.Delete(userID)
		return domain.Reply{Text: langMsgs.HowCanIHelp, QuickReplies: catalog.SupportedLanguages}
	}
}

// startConversation handles a caller with no session: either select a
// language and open a session, or greet with the language list.
func (e *Engine) startConversation(userID, rawText string) domain.Reply {
	langChoice := catalog.CanonicalLanguage(rawText)
	langMsgs := e.catalog.ForLanguage(langChoice)

	if strings.TrimSpace(rawText) == "" || !catalog.IsSupported(langChoice) {
		return domain.Reply{
			Text:         langMsgs.Greeting + " " + strings.Join(catalog.SupportedLanguages, ", "),
			QuickReplies: catalog.SupportedLanguages,
		}
	}

	e.sessions.Put(&domain.Session{
		UserID: userID,
		Step:   domain.StepAwaitingName,
		Data:   domain.BookingData{Language: langChoice},
	})
	return domain.Reply{Text: langMsgs.HowCanIHelp, QuickReplies: []string{}}
}

// recordBooking persists the completed draft. Failures are logged and never
// surfaced to the caller or allowed to alter the conversation.
func (e *Engine) recordBooking(ctx context.Context, sess *domain.Session) {
	if e.archive == nil {
		return
	}
	rec := &domain.BookingRecord{
		UserID:      sess.UserID,
		Language:    sess.Data.Language,
		Name:        sess.Data.Name,
		TicketCount: sess.Data.TicketCount,
		VisitDate:   sess.Data.VisitDate,
		VisitPlace:  sess.Data.VisitPlace,
		TourOption:  sess.Data.TourOption,
		CreatedAt:   e.now(),
	}
	if err := e.archive.RecordBooking(ctx, rec); err != nil {
		slog.Error("Failed to record booking", "error", err, "user_id", sess.UserID)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
