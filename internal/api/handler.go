// Package api provides HTTP handlers for the booking chat API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/aadeesh19/ticketingchatbotback1/internal/engine"
	"github.com/aadeesh19/ticketingchatbotback1/internal/store"
)

// Handler provides the chat and booking endpoints.
type Handler struct {
	engine  *engine.Engine
	archive store.Archive
}

// NewHandler creates a new Handler. archive may be nil, which disables the
// bookings listing.
func NewHandler(eng *engine.Engine, archive store.Archive) *Handler {
	return &Handler{engine: eng, archive: archive}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
