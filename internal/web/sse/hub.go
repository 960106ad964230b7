package sse

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// hubBufferSize bounds the pending broadcast queue
const hubBufferSize = 256

// Hub fans casino events out to every connected SSE client
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex
	logger  *slog.Logger

	// Channels for managing clients
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a new Hub. Call Run to start it.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("component", "sse")),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, hubBufferSize),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop. It returns after Close.
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client registered",
				slog.String("client_id", client.id),
				slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; !ok {
				h.mu.Unlock()
				continue
			}
			delete(h.clients, client)
			close(client.send)
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client unregistered",
				slog.String("client_id", client.id),
				slog.Duration("connection_duration", time.Since(client.connectedAt)),
				slog.Int("total_clients", clientCount))

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					dropped++
				}
			}
			total := len(h.clients)
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("sse broadcast partial failure",
					slog.Int("sent", total-dropped),
					slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			clientCount := len(h.clients)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("sse hub stopped", slog.Int("disconnected_clients", clientCount))
			return
		}
	}
}

// Register adds a client to the hub. It reports false if the hub is closed.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues a raw SSE frame for every client. It never blocks;
// frames are dropped when the queue is full.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// BroadcastEvent sends an SSE event with a name and data
func (h *Hub) BroadcastEvent(eventName, data string) {
	h.Broadcast(formatSSEMessage(eventName, data))
}

// Close shuts down the hub and disconnects every client
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage frames data as an SSE event. Every line of data gets
// its own "data: " prefix.
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: " + eventName + "\n")
	for _, line := range splitLines(data) {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// splitLines splits on LF, dropping CRs and a single trailing newline
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
