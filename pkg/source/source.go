// Package source turns the user's path-or-URL argument into a directory to scan.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// TempDirName is the fixed name of the directory a remote repository is cloned into.
const TempDirName = "temp_repo"

// DefaultRemotePrefixes lists the URL prefixes treated as remote repositories.
var DefaultRemotePrefixes = []string{
	"https://github.com",
	"https://gitlab.com",
	"https://bitbucket.org",
}

// ErrTempDirExists is returned when the clone destination is already present.
var ErrTempDirExists = errors.New("clone destination already exists")

// Cloner materializes a remote repository at dest.
type Cloner interface {
	Clone(ctx context.Context, url, dest string) error
}

// Resolver classifies inputs and clones remote ones.
type Resolver struct {
	Cloner   Cloner   // Used only for remote inputs.
	WorkDir  string   // Parent of the clone directory; "" means the current directory.
	Prefixes []string // Remote prefixes; nil means DefaultRemotePrefixes.
	// Remove deletes the clone directory; nil means os.RemoveAll.
	Remove func(path string) error
}

// Source is a resolved scan root.
type Source struct {
	Root    string // Directory to scan.
	TempDir string // Clone directory owned by this run, or "" for local input.
	remove  func(path string) error
}

// Remote reports whether the source came from a clone.
func (s Source) Remote() bool {
	return s.TempDir != ""
}

// Cleanup removes the clone directory, if any. Calling it more than once is safe.
func (s Source) Cleanup(logger *zap.Logger) error {
	if s.TempDir == "" {
		return nil
	}
	remove := s.remove
	if remove == nil {
		remove = os.RemoveAll
	}
	if err := remove(s.TempDir); err != nil {
		logger.Error("Failed to remove temporary clone", zap.String("path", s.TempDir), zap.Error(err))
		return fmt.Errorf("failed to remove temporary clone %s: %w", s.TempDir, err)
	}
	logger.Debug("Removed temporary clone", zap.String("path", s.TempDir))
	return nil
}

// IsRemote reports whether input starts with one of the recognized prefixes.
func (r *Resolver) IsRemote(input string) bool {
	prefixes := r.Prefixes
	if prefixes == nil {
		prefixes = DefaultRemotePrefixes
	}
	for _, p := range prefixes {
		if strings.HasPrefix(input, p) {
			return true
		}
	}
	return false
}

// Resolve returns the directory to scan for input and subdir. Local paths are
// joined without checking that they exist. Remote inputs are cloned first;
// on a failed clone the returned Source still carries TempDir so the caller
// can remove whatever the clone left behind.
func (r *Resolver) Resolve(ctx context.Context, input, subdir string, logger *zap.Logger) (Source, error) {
	if !r.IsRemote(input) {
		root := filepath.Join(input, subdir)
		logger.Debug("Resolved local source", zap.String("root", root))
		return Source{Root: root}, nil
	}

	if r.Cloner == nil {
		return Source{}, fmt.Errorf("no cloner configured for remote source %s", input)
	}

	dest := filepath.Join(r.WorkDir, TempDirName)
	if _, err := os.Lstat(dest); err == nil {
		return Source{}, fmt.Errorf("%w: %s", ErrTempDirExists, dest)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Source{}, fmt.Errorf("failed to inspect clone destination %s: %w", dest, err)
	}

	logger.Info("Cloning repository", zap.String("url", input), zap.String("dest", dest))
	src := Source{Root: filepath.Join(dest, subdir), TempDir: dest, remove: r.Remove}
	if err := r.Cloner.Clone(ctx, input, dest); err != nil {
		return src, err
	}
	logger.Debug("Resolved remote source", zap.String("root", src.Root))
	return src, nil
}
