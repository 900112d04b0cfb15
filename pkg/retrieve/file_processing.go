// File: pkg/retrieve/file_processing.go
package retrieve

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrNotText is returned for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// FileResult is the outcome of reading one selected file. Exactly one of
// Lines and Err is meaningful.
type FileResult struct {
	Path  string
	Lines []string
	Err   error
}

// OK reports whether the file was read.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// ReadSingleFile reads path as UTF-8 text and splits it into lines that keep
// their "\n" terminators. "\r\n" and lone "\r" are read as "\n".
func ReadSingleFile(path string, logger *zap.Logger) FileResult {
	logger.Debug("Reading file content", zap.String("filePath", path))

	b, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("error reading file %s: %w", path, err)}
	}
	if !utf8.Valid(b) {
		return FileResult{Path: path, Err: fmt.Errorf("error reading file %s: %w", path, ErrNotText)}
	}

	lines := splitLines(normalizeNewlines(string(b)))
	logger.Debug("Successfully read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(b)),
		zap.Int("lineCount", len(lines)))
	return FileResult{Path: path, Lines: lines}
}

// ReadFiles reads every path in order. Failures are logged and recorded in
// the corresponding result; they never stop the pass.
func ReadFiles(paths []string, logger *zap.Logger) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		r := ReadSingleFile(path, logger)
		if r.Err != nil {
			logger.Warn("Skipping unreadable file", zap.String("filePath", path), zap.Error(r.Err))
		}
		results = append(results, r)
	}
	return results
}

// CombineLines folds the successful results into one ordered line sequence.
func CombineLines(results []FileResult) []string {
	var lines []string
	for _, r := range results {
		if r.OK() {
			lines = append(lines, r.Lines...)
		}
	}
	return lines
}

// JoinLines concatenates lines without adding separators.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines splits after every "\n"; a trailing fragment without a
// terminator is kept as the last line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
