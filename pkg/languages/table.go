// Package languages holds the language to file-suffix table used to decide
// which files are copied.
package languages

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps a language identifier to the file suffixes that belong to it.
// A Table is never mutated after construction; accessors return copies.
type Table struct {
	entries map[string][]string
}

// builtin is the table used when no extensions file is given.
var builtin = map[string][]string{
	"python":     {".py"},
	"javascript": {".js"},
	"java":       {".java"},
	"cpp":        {".cpp", ".cxx", ".h", ".hpp"},
	"csharp":     {".cs"},
	"ruby":       {".rb"},
	"php":        {".php"},
	"swift":      {".swift"},
	"go":         {".go"},
	"typescript": {".ts"},
}

// UnknownLanguageError is returned when a requested language is not in the table.
type UnknownLanguageError struct {
	Name  string   // The identifier that was requested.
	Known []string // Sorted list of valid identifiers.
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q (choose from: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Default returns the built-in table.
func Default() Table {
	t, _ := New(builtin)
	return t
}

// New builds a Table from the given mapping. Empty identifiers and empty
// suffixes are rejected.
func New(entries map[string][]string) (Table, error) {
	copied := make(map[string][]string, len(entries))
	for name, suffixes := range entries {
		name = strings.TrimSpace(name)
		if name == "" {
			return Table{}, fmt.Errorf("language table: empty language identifier")
		}
		if len(suffixes) == 0 {
			return Table{}, fmt.Errorf("language table: %q has no suffixes", name)
		}
		list := make([]string, 0, len(suffixes))
		for _, s := range suffixes {
			if s == "" {
				return Table{}, fmt.Errorf("language table: %q has an empty suffix", name)
			}
			list = append(list, s)
		}
		copied[name] = list
	}
	return Table{entries: copied}, nil
}

// Names returns the sorted language identifiers in the table.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suffixes returns the suffixes registered for a single language.
func (t Table) Suffixes(name string) ([]string, bool) {
	s, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), s...), true
}

// Extensions resolves the allowed suffixes for the requested languages.
// With no languages it returns every suffix in the table. The result is
// deduplicated and sorted.
func (t Table) Extensions(langs []string) ([]string, error) {
	if len(langs) == 0 {
		langs = t.Names()
	}

	seen := make(map[string]struct{})
	var out []string
	for _, lang := range langs {
		suffixes, ok := t.entries[lang]
		if !ok {
			return nil, &UnknownLanguageError{Name: lang, Known: t.Names()}
		}
		for _, s := range suffixes {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}
