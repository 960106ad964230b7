package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream live events from a casino server",
		Long: `Connect to the server's event stream and print events as they happen.

Events include:
  - round_settled: A round finished and coins were paid
  - achievement_unlocked: An achievement was earned
  - daily_reward_claimed: The daily reward was collected
  - leaderboard_updated: An entry was added to the leaderboard
  - settings_changed: Presentation settings changed
  - state_reset: Progress was reset

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return streamEvents(ctx, client.BaseURL()+"/api/v1/events", cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")
	return cmd
}

// SSEEvent represents a parsed SSE event
type SSEEvent struct {
	Time  time.Time `json:"time"`
	Event string    `json:"event"`
	Data  string    `json:"data"`
}

func streamEvents(ctx context.Context, url string, w io.Writer, jsonOutput bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for SSE
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	var currentEvent string
	var dataLines []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			currentEvent = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if currentEvent != "" {
				printEvent(w, currentEvent, strings.Join(dataLines, "\n"), jsonOutput)
			}
			currentEvent = ""
			dataLines = nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream error: %w", err)
	}
	if !jsonOutput {
		fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

func printEvent(w io.Writer, event, data string, jsonOutput bool) {
	now := time.Now()

	if jsonOutput {
		line, _ := json.Marshal(SSEEvent{Time: now, Event: event, Data: data})
		fmt.Fprintln(w, string(line))
		return
	}

	display := strings.ReplaceAll(data, "\n", " ")
	if len(display) > 100 {
		display = display[:100] + "..."
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", now.Format("2006-01-02 15:04:05"), event, display)
}
