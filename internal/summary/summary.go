// Package summary turns hook event records into one-line summaries.
//
// A Summarizer may fail in any way, including panicking; callers wrap it
// with Safe so a summary is always produced.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Event is a hook event record as hooks emit it on stdin.
type Event struct {
	Payload map[string]any `json:"payload"`
	Type    string         `json:"type"`
}

// Decode reads one event from r. The older "hook_event_type" key is
// accepted in place of "type".
func Decode(r io.Reader) (Event, error) {
	var raw struct {
		Payload       map[string]any `json:"payload"`
		Type          string         `json:"type"`
		HookEventType string         `json:"hook_event_type"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	ev := Event{Type: raw.Type, Payload: raw.Payload}
	if ev.Type == "" {
		ev.Type = raw.HookEventType
	}
	return ev, nil
}

// Summarizer produces a summary for an event. ok is false when it has
// nothing to say.
type Summarizer interface {
	Summarize(ctx context.Context, ev Event) (summary string, ok bool, err error)
}

// Func adapts a function to Summarizer.
type Func func(ctx context.Context, ev Event) (string, bool, error)

func (f Func) Summarize(ctx context.Context, ev Event) (string, bool, error) {
	return f(ctx, ev)
}

// Safe returns a Summarizer that never fails: any error, panic or empty
// result from primary yields fallback's summary instead.
//
//nolint:ireturn // wrapper returns the interface it decorates
func Safe(primary, fallback Summarizer, logger *slog.Logger) Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &safe{primary: primary, fallback: fallback, logger: logger}
}

type safe struct {
	primary  Summarizer
	fallback Summarizer
	logger   *slog.Logger
}

func (s *safe) Summarize(ctx context.Context, ev Event) (string, bool, error) {
	if s.primary != nil {
		text, ok, err := s.try(ctx, s.primary, ev)
		if err == nil && ok && text != "" {
			return text, true, nil
		}
		s.logger.Debug("summarizer fell back to template", "type", ev.Type, "error", err)
	}

	text, ok, err := s.try(ctx, s.fallback, ev)
	if err != nil || !ok || text == "" {
		return Generic, true, nil
	}
	return text, true, nil
}

func (s *safe) try(ctx context.Context, sum Summarizer, ev Event) (text string, ok bool, err error) {
	if sum == nil {
		return "", false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			text, ok, err = "", false, fmt.Errorf("summarizer panic: %v", r)
		}
	}()
	return sum.Summarize(ctx, ev)
}
