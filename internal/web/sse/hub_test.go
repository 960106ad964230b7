package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pocketcasino/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "round_settled",
			data:      `{"won":true}`,
			expected:  "event: round_settled\ndata: {\"won\":true}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "update",
			data:      "{\n  \"coins\": 5000\n}",
			expected:  "event: update\ndata: {\ndata:   \"coins\": 5000\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatSSEMessage(tt.eventName, tt.data)))
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single line", "hello", []string{"hello"}},
		{"two lines", "line1\nline2", []string{"line1", "line2"}},
		{"trailing newline", "line1\n", []string{"line1"}},
		{"empty string", "", []string{""}},
		{"crlf line endings", "line1\r\nline2\r\n", []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func receive(t *testing.T, c *Client) string {
	t.Helper()
	select {
	case msg := <-c.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := startHub(t)

	client := NewClient()
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("state_reset", "{}")

	assert.Equal(t, "event: state_reset\ndata: {}\n\n", receive(t, client))
}

func TestHub_Unregister(t *testing.T) {
	hub := startHub(t)

	client := NewClient()
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-client.send
	assert.False(t, ok, "send channel should be closed")

	// a second unregister is a no-op
	hub.Unregister(client)
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := startHub(t)

	clients := []*Client{NewClient(), NewClient(), NewClient()}
	for _, c := range clients {
		hub.Register(c)
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("update", "data")

	for _, c := range clients {
		assert.Equal(t, "event: update\ndata: data\n\n", receive(t, c))
	}
}

func TestHub_SlowClientDoesNotBlockOthers(t *testing.T) {
	hub := startHub(t)

	slow, fast := NewClient(), NewClient()
	hub.Register(slow)
	hub.Register(fast)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	for i := 0; i < clientBufferSize+10; i++ {
		hub.BroadcastEvent("tick", "x")
		receive(t, fast)
	}
	assert.Len(t, slow.send, clientBufferSize)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	stopped := make(chan struct{})
	go func() {
		hub.Run()
		close(stopped)
	}()

	client := NewClient()
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()
	hub.Close()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	_, ok := <-client.send
	assert.False(t, ok)
	assert.False(t, hub.Register(NewClient()), "closed hub rejects new clients")
}
