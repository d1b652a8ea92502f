package summary

import (
	"context"
	"fmt"
	"strings"
)

// Generic is printed when nothing is known about an event.
const Generic = "Hook event"

const maxDetail = 50

// detailKeys are the tool_input fields worth showing, in priority order.
var detailKeys = []string{"file_path", "command", "pattern", "url", "path", "query", "description"}

// Template builds a summary from the event type, tool name and the most
// telling tool input, e.g. "PostToolUse: Read /test/file.txt".
type Template struct{}

func (Template) Summarize(_ context.Context, ev Event) (string, bool, error) {
	typ := strings.TrimSpace(ev.Type)
	if typ == "" {
		return Generic, true, nil
	}

	parts := []string{}
	if tool := stringField(ev.Payload, "tool_name"); tool != "" {
		parts = append(parts, tool)
	}
	if input, ok := ev.Payload["tool_input"].(map[string]any); ok {
		for _, key := range detailKeys {
			if v := stringField(input, key); v != "" {
				parts = append(parts, truncate(v, maxDetail))
				break
			}
		}
	}
	if len(parts) == 0 {
		if prompt := stringField(ev.Payload, "prompt"); prompt != "" {
			parts = append(parts, fmt.Sprintf("%q", truncate(prompt, maxDetail)))
		}
	}

	if len(parts) == 0 {
		return typ, true, nil
	}
	return typ + ": " + strings.Join(parts, " "), true, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// truncate shortens s to limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
