package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aadeesh19/ticketingchatbotback1/internal/domain"
	"github.com/aadeesh19/ticketingchatbotback1/internal/store"
	"github.com/go-chi/chi/v5"
)

const internalErrorReply = "Internal server error. Please try again later."

const recentBookingsLimit = 50

// chatRequest is the inbound message envelope.
type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RegisterRoutes registers the chat and booking routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.Chat)
	if h.archive != nil {
		r.Get("/api/bookings", h.RecentBookings)
	}
}

// Chat processes one conversation turn for a caller.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	// Any fault during handling surfaces as a generic 500; internals are
	// logged server-side, never sent to the caller.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Unhandled error in chat handler", "panic", rec)
			JSON(w, http.StatusInternalServerError, domain.Reply{Text: internalErrorReply, QuickReplies: []string{}})
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSON(w, http.StatusBadRequest, domain.Reply{Text: "Invalid request body", QuickReplies: []string{}})
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		JSON(w, http.StatusBadRequest, domain.Reply{Text: "Missing userId", QuickReplies: []string{}})
		return
	}

	reply := h.engine.Handle(r.Context(), req.UserID, req.Message)
	if reply.QuickReplies == nil {
		reply.QuickReplies = []string{}
	}
	JSON(w, http.StatusOK, reply)
}

// RecentBookings returns the newest finalized bookings from the archive.
func (h *Handler) RecentBookings(w http.ResponseWriter, r *http.Request) {
	records, err := h.archive.RecentBookings(r.Context(), recentBookingsLimit)
	if err != nil {
		slog.Error("Failed to list bookings", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	if records == nil {
		records = []domain.BookingRecord{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"bookings": records})
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	archive store.Archive
}

// NewHealthHandler creates a new health handler. archive may be nil.
func NewHealthHandler(archive store.Archive) *HealthHandler {
	return &HealthHandler{archive: archive}
}

// Health returns the health status of the API and its dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]interface{}{
		"status": "healthy",
		"checks": map[string]string{"api": "ok"},
	}
	statusCode := http.StatusOK

	if h.archive != nil {
		if err := h.archive.Ping(ctx); err != nil {
			slog.Error("Health check failed", "error", err)
			status["status"] = "degraded"
			status["checks"].(map[string]string)["database"] = "unreachable"
			statusCode = http.StatusServiceUnavailable
		} else {
			status["checks"].(map[string]string)["database"] = "ok"
		}
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
