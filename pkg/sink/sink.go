// Package sink delivers the combined text to its destination.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ErrUnsupported is returned when no clipboard mechanism is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer receives the final text.
type Writer interface {
	Write(text string) error
}

// Clipboard writes to the system clipboard, overwriting its contents.
type Clipboard struct {
	logger *zap.Logger
}

// NewClipboard returns a Clipboard writer.
func NewClipboard(logger *zap.Logger) *Clipboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clipboard{logger: logger}
}

func (c *Clipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Error("Failed to write clipboard", zap.Error(err))
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	c.logger.Debug("Wrote clipboard", zap.Int("bytes", len(text)))
	return nil
}

// File writes the text to a file, replacing it.
type File struct {
	Path   string
	logger *zap.Logger
}

// NewFile returns a File writer for path.
func NewFile(path string, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{Path: path, logger: logger}
}

func (f *File) Write(text string) (err error) {
	f.logger.Debug("Writing combined content to output file", zap.String("outputFile", f.Path))

	out, err := os.Create(f.Path)
	if err != nil {
		f.logger.Error("Failed to create output file", zap.String("file", f.Path), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(text); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
