package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/model"
)

// Broadcaster publishes engine events to the hub as JSON SSE frames.
// It satisfies progression.Publisher.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish encodes the event and queues it for every client. The SSE
// event name is the event type.
func (b *Broadcaster) Publish(event model.Event) {
	data, err := json.Marshal(response.EventFromModel(event))
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(string(event.Type), string(data))
}
