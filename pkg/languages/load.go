package languages

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML document mapping language identifiers to suffix lists
// and builds a Table that replaces the built-in one:
//
//	python: [".py", ".pyi"]
//	markdown: [".md"]
func LoadFile(path string, logger *zap.Logger) (Table, error) {
	logger.Debug("Loading language table", zap.String("path", path))

	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read extensions file: %w", err)
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return Table{}, fmt.Errorf("failed to parse extensions file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("extensions file %s defines no languages", path)
	}

	t, err := New(entries)
	if err != nil {
		return Table{}, fmt.Errorf("invalid extensions file %s: %w", path, err)
	}

	logger.Debug("Loaded language table", zap.String("path", path), zap.Strings("languages", t.Names()))
	return t, nil
}
