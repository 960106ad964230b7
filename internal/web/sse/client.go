package sse

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// keepalivePeriod is how often an idle stream gets a comment line
	keepalivePeriod = 30 * time.Second

	// retryMillis is the reconnect delay suggested to browsers
	retryMillis = 3000

	// clientBufferSize frames can queue per client before broadcasts drop
	clientBufferSize = 64
)

// Client is one connected event stream
type Client struct {
	id          string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a client with a fresh connection id
func NewClient() *Client {
	return &Client{
		id:          uuid.NewString(),
		send:        make(chan []byte, clientBufferSize),
		connectedAt: time.Now(),
	}
}

// ID returns the client's connection id
func (c *Client) ID() string {
	return c.id
}

type connectedPayload struct {
	ClientID    string    `json:"client_id"`
	ConnectedAt time.Time `json:"connected_at"`
}

// stream writes frames to one response and flushes after each
type stream struct {
	w http.ResponseWriter
	f http.Flusher
}

func (s stream) write(frame []byte) bool {
	if _, err := s.w.Write(frame); err != nil {
		return false
	}
	s.f.Flush()
	return true
}

// ServeSSE streams hub events to one HTTP client until it disconnects or
// the hub closes. The first frame is a "connected" event carrying the
// client id.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	client := NewClient()
	if !hub.Register(client) {
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	}
	defer hub.Unregister(client)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	out := stream{w: w, f: flusher}
	hello, _ := json.Marshal(connectedPayload{ClientID: client.id, ConnectedAt: client.connectedAt.UTC()})
	if !out.write(append(retryFrame(), formatSSEMessage("connected", string(hello))...)) {
		return
	}

	keepalive := time.NewTicker(keepalivePeriod)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			if !out.write([]byte(": keepalive\n\n")) {
				return
			}
		case frame, open := <-client.send:
			if !open || !out.write(frame) {
				return
			}
		}
	}
}

func retryFrame() []byte {
	return []byte("retry: " + strconv.Itoa(retryMillis) + "\n\n")
}
