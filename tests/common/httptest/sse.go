//go:build unit || e2e

package httptest

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type SSEEvent struct {
	Event string
	Data  string
}

// ParseSSE splits a text/event-stream body into events.
func ParseSSE(t *testing.T, body io.Reader) []SSEEvent {
	t.Helper()

	var (
		events []SSEEvent
		cur    SSEEvent
	)
	sc := bufio.NewScanner(body)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if cur.Event != "" || cur.Data != "" {
				events = append(events, cur)
			}
			cur = SSEEvent{}
		case strings.HasPrefix(line, "event:"):
			cur.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.Data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	require.NoError(t, sc.Err())
	if cur.Event != "" || cur.Data != "" {
		events = append(events, cur)
	}
	return events
}

func (e SSEEvent) Decode(t *testing.T, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(e.Data), target), "bad event payload: %s", e.Data)
}
