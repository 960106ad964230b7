package handler

import (
	"net/http"

	"github.com/mcoot/pocketcasino/internal/web/sse"
)

// EventsHandler streams engine events to the front-end
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles GET /api/v1/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		WriteError(w, NewNotFoundError("event stream disabled"))
		return
	}
	sse.ServeSSE(w, r, h.hub)
}
