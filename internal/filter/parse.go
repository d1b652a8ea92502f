package filter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads filter rules from a file and appends them to the chain
// in file order. One rule per line:
//
//	+ pattern   include
//	- pattern   exclude
//	pattern     exclude (rsync default)
//	# comment   ignored, as are blank lines
func (c *Chain) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open filter file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		include, pattern, ok := parseRule(scanner.Text())
		if !ok {
			continue
		}
		if err := c.add(pattern, include); err != nil {
			return fmt.Errorf("filter file %s line %d: %w", path, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read filter file %s: %w", path, err)
	}
	return nil
}

// parseRule splits one rule line. ok is false for blanks and comments.
func parseRule(line string) (include bool, pattern string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, "", false
	}
	if rest, found := strings.CutPrefix(line, "+ "); found {
		return true, strings.TrimSpace(rest), true
	}
	if rest, found := strings.CutPrefix(line, "- "); found {
		return false, strings.TrimSpace(rest), true
	}
	return false, line, true
}
