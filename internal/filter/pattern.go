package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledPattern is an rsync-style glob compiled to a regular expression.
type compiledPattern struct {
	re       *regexp.Regexp
	original string
	dirOnly  bool // trailing "/": matches directories only
}

// compilePattern compiles an rsync-style glob. A leading "/" or any inner
// "/" anchors the pattern at the root; otherwise it matches any path
// suffix that starts at a component boundary.
func compilePattern(pattern string) (*compiledPattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty filter pattern")
	}
	cp := &compiledPattern{original: pattern}

	body, dirOnly := strings.CutSuffix(pattern, "/")
	cp.dirOnly = dirOnly

	body, rooted := strings.CutPrefix(body, "/")
	anchored := rooted || strings.Contains(body, "/")

	prefix := "(^|/)"
	if anchored {
		prefix = "^"
	}

	re, err := regexp.Compile(prefix + translateGlob(body) + "$")
	if err != nil {
		return nil, fmt.Errorf("filter pattern %q: %w", pattern, err)
	}
	cp.re = re
	return cp, nil
}

// match tests whether a slash-separated relative path matches.
func (cp *compiledPattern) match(relPath string, isDir bool) bool {
	if cp.dirOnly && !isDir {
		return false
	}
	return cp.re.MatchString(relPath)
}

func (cp *compiledPattern) String() string { return cp.original }

// translateGlob converts glob syntax to regex syntax:
//
//	**/  zero or more leading directories
//	**   anything, including "/"
//	*    anything within one component
//	?    one character within one component
//	[..] character class, "!" negates
func translateGlob(glob string) string {
	var b strings.Builder
	for rest := glob; rest != ""; {
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString("(.*/)?")
			rest = rest[3:]
		case strings.HasPrefix(rest, "**"):
			b.WriteString(".*")
			rest = rest[2:]
		case rest[0] == '*':
			b.WriteString("[^/]*")
			rest = rest[1:]
		case rest[0] == '?':
			b.WriteString("[^/]")
			rest = rest[1:]
		case rest[0] == '[':
			class, n := charClass(rest)
			if n == 0 {
				b.WriteString(`\[`)
				rest = rest[1:]
				continue
			}
			b.WriteString(class)
			rest = rest[n:]
		default:
			b.WriteString(regexp.QuoteMeta(rest[:1]))
			rest = rest[1:]
		}
	}
	return b.String()
}

// charClass parses a bracket expression at the start of s and returns its
// regex form and its length in s, or n == 0 when the bracket is unclosed.
func charClass(s string) (string, int) {
	i := 1
	if i < len(s) && s[i] == '!' {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}
	end := strings.IndexByte(s[i:], ']')
	if end < 0 {
		return "", 0
	}
	end += i

	body := s[1:end]
	if rest, ok := strings.CutPrefix(body, "!"); ok {
		body = "^" + rest
	}
	return "[" + body + "]", end + 1
}
