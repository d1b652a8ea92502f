package summary

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds an external summarizer. Hooks run inline with the
// agent, so a slow summarizer must not stall it.
const DefaultTimeout = 5 * time.Second

// Command runs an external program with the event as JSON on stdin and
// uses the first non-empty line of its stdout as the summary.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration
}

func (c *Command) Summarize(ctx context.Context, ev Event) (string, bool, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	input, err := json.Marshal(ev)
	if err != nil {
		return "", false, fmt.Errorf("encode event: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("run %s: %w", c.Name, err)
	}

	sc := bufio.NewScanner(&stdout)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, true, nil
		}
	}
	return "", false, sc.Err()
}
