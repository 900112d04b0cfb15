// Package ignore matches slash-separated relative paths against
// gitignore-style patterns.
package ignore

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one compiled ignore rule.
type Pattern struct {
	Line    string // Original pattern text.
	Negate  bool   // Pattern started with '!'.
	DirOnly bool   // Pattern ended with '/'.
	re      *regexp.Regexp
}

// Matcher holds patterns in the order they were added. The last matching
// pattern decides, so a later '!' rule can re-include a path.
type Matcher struct {
	patterns []*Pattern
}

// Compile builds a Matcher from pattern lines. Blank lines and '#' comments
// are skipped.
func Compile(lines ...string) (*Matcher, error) {
	m := &Matcher{}
	if err := m.Add(lines...); err != nil {
		return nil, err
	}
	return m, nil
}

// Add compiles and appends more pattern lines.
func (m *Matcher) Add(lines ...string) error {
	for i, line := range lines {
		p, err := parsePatternLine(line)
		if err != nil {
			return fmt.Errorf("ignore pattern %d %q: %w", i+1, line, err)
		}
		if p != nil {
			m.patterns = append(m.patterns, p)
		}
	}
	return nil
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}

// Match reports whether relPath should be ignored. isDir tells whether
// relPath itself names a directory, which directory-only patterns need.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	ok, _ := m.MatchWithPattern(relPath, isDir)
	return ok
}

// MatchWithPattern is Match that also returns the deciding pattern, or nil.
func (m *Matcher) MatchWithPattern(relPath string, isDir bool) (bool, *Pattern) {
	if m == nil {
		return false, nil
	}
	relPath = strings.TrimPrefix(relPath, "./")

	matched := false
	var decided *Pattern
	for _, p := range m.patterns {
		sub := p.re.FindStringSubmatch(relPath)
		if sub == nil {
			continue
		}
		// sub[1] is the part below the matched entry; a directory-only
		// pattern needs either a directory or a path beneath one.
		if p.DirOnly && !isDir && sub[1] == "" {
			continue
		}
		matched = !p.Negate
		decided = p
	}
	return matched, decided
}

func parsePatternLine(line string) (*Pattern, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimRight(trimmed, "/")
	}
	if trimmed == "" {
		return nil, nil
	}

	// A slash anywhere but the end anchors the pattern to the scan root.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	expr := "^"
	if !anchored {
		expr += "(?:.*/)?"
	}
	expr += globToRegex(trimmed) + "(/.*)?$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	p.re = re
	return p, nil
}

// globToRegex converts '*', '?' and '**' wildcards and escapes everything else.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); {
		rest := glob[i:]
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString("(?:.*/)?")
			i += 3
		case rest == "/**":
			b.WriteString("(?:/.*)?")
			i += 3
		case strings.HasPrefix(rest, "**"):
			b.WriteString(".*")
			i += 2
		case rest[0] == '*':
			b.WriteString("[^/]*")
			i++
		case rest[0] == '?':
			b.WriteString("[^/]")
			i++
		default:
			b.WriteString(regexp.QuoteMeta(rest[:1]))
			i++
		}
	}
	return b.String()
}
