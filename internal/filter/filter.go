// Package filter decides which source files are eligible for sync.
package filter

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions is the extension set used when none is configured.
var DefaultExtensions = []string{".py"}

// Rule represents a single include or exclude filter rule.
type Rule struct {
	Pattern *compiledPattern
	Include bool // true=include, false=exclude
}

// Chain holds an ordered list of filter rules plus an extension gate.
type Chain struct {
	rules      []Rule
	extensions []string
}

// NewChain creates a chain that admits the given extensions. With no
// extensions every regular file passes the gate.
func NewChain(extensions ...string) *Chain {
	c := &Chain{}
	c.SetExtensions(extensions...)
	return c
}

// SetExtensions replaces the extension gate. Extensions are matched
// case-insensitively and may be given with or without the leading dot.
func (c *Chain) SetExtensions(extensions ...string) {
	c.extensions = c.extensions[:0]
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(c.extensions, ext) {
			c.extensions = append(c.extensions, ext)
		}
	}
}

// Extensions returns the normalized extension gate.
func (c *Chain) Extensions() []string {
	return slices.Clone(c.extensions)
}

// AddExclude adds an exclude rule for the given pattern.
func (c *Chain) AddExclude(pattern string) error {
	return c.add(pattern, false)
}

// AddInclude adds an include rule for the given pattern.
func (c *Chain) AddInclude(pattern string) error {
	return c.add(pattern, true)
}

func (c *Chain) add(pattern string, include bool) error {
	cp, err := compilePattern(pattern)
	if err != nil {
		return err
	}
	c.rules = append(c.rules, Rule{Pattern: cp, Include: include})
	return nil
}

// Empty reports whether the chain has no rules and no extension gate.
func (c *Chain) Empty() bool {
	return len(c.rules) == 0 && len(c.extensions) == 0
}

// Match returns true if the path should be INCLUDED (not filtered out).
// relPath is slash- or OS-separated and relative to the source root.
// The extension gate applies to files only; directories are matched
// against the rules so excluded directories can be pruned.
func (c *Chain) Match(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	if !isDir && len(c.extensions) > 0 {
		ext := strings.ToLower(filepath.Ext(relPath))
		if !slices.Contains(c.extensions, ext) {
			return false
		}
	}

	// First match wins.
	for _, rule := range c.rules {
		if rule.Pattern.match(relPath, isDir) {
			return rule.Include
		}
	}

	return true
}
