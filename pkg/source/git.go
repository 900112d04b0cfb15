package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// CloneError reports a clone that did not exit cleanly.
type CloneError struct {
	URL      string
	Dest     string
	ExitCode int // -1 when the process could not be started.
	Stderr   string
	Err      error
}

func (e *CloneError) Error() string {
	msg := fmt.Sprintf("git clone %s %s failed (exit %d)", e.URL, e.Dest, e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// GitCloner runs the git binary to clone repositories.
type GitCloner struct {
	Binary string // Path or name of git; "" means "git".
	Logger *zap.Logger
}

// NewGitCloner returns a GitCloner that logs through logger.
func NewGitCloner(logger *zap.Logger) *GitCloner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitCloner{Binary: "git", Logger: logger}
}

// Clone runs `git clone url dest`.
func (g *GitCloner) Clone(ctx context.Context, url, dest string) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := exec.CommandContext(ctx, bin, "clone", url, dest)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		logger.Debug("git clone finished", zap.String("url", url), zap.String("dest", dest))
		return nil
	}

	exitCode := -1
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		exitCode = ee.ExitCode()
	}
	logger.Error("git clone failed",
		zap.String("url", url),
		zap.Int("exitCode", exitCode),
		zap.String("stderr", strings.TrimSpace(stderr.String())))
	return &CloneError{URL: url, Dest: dest, ExitCode: exitCode, Stderr: stderr.String(), Err: err}
}
