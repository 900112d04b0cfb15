// File: pkg/retrieve/config.go
package retrieve

import (
	"strings"

	"coderetriever/pkg/ignore"
)

// DefaultExcludeFiles is the default value of --exclude-files.
const DefaultExcludeFiles = "README.md,LICENSE"

// Arguments holds the options for one retrieval run.
type Arguments struct {
	Source         string   // Local directory or remote repository URL.
	TargetSubdir   string   // Path appended to the resolved root.
	ExcludeFiles   []string // Exact file names to skip.
	Languages      []string // Language identifiers; empty means every known suffix.
	Recursive      bool     // Descend into nested directories.
	IgnorePatterns []string // Gitignore-style patterns relative to the scan root.
	ExtensionsFile string   // Optional YAML file replacing the built-in language table.
	Output         string   // Write to this file instead of the clipboard.
	Tree           bool     // Print a tree of the copied files after completion.
}

// Criteria decides which files are selected. It is built once per run.
type Criteria struct {
	Extensions []string            // Allowed name suffixes.
	Exclude    map[string]struct{} // Exact names to skip.
	Recursive  bool
	Ignore     *ignore.Matcher // May be nil.
}

// NewCriteria builds Criteria from resolved suffixes and exclusions.
func NewCriteria(extensions, exclude []string, recursive bool, ig *ignore.Matcher) Criteria {
	set := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		set[name] = struct{}{}
	}
	return Criteria{
		Extensions: append([]string(nil), extensions...),
		Exclude:    set,
		Recursive:  recursive,
		Ignore:     ig,
	}
}

// Matches reports whether a file name qualifies: not excluded and ending in
// one of the allowed suffixes. The check is a literal suffix comparison.
func (c Criteria) Matches(name string) bool {
	if _, excluded := c.Exclude[name]; excluded {
		return false
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ParseExcludeList splits a comma-separated list of file names. Surrounding
// whitespace is trimmed and empty entries are dropped.
func ParseExcludeList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
