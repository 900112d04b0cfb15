// File: pkg/retrieve/traversal.go
package retrieve

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SelectFiles walks root and returns the files that satisfy c, in walk order.
// Returned paths are under root even when root is a symlink that the walk
// resolves. An inaccessible root is logged and yields no files.
func SelectFiles(root string, c Criteria, logger *zap.Logger) ([]string, error) {
	logger.Debug("Starting file selection",
		zap.String("root", root),
		zap.Strings("extensions", c.Extensions),
		zap.Bool("recursive", c.Recursive))

	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			walkRoot = resolved
		}
	}

	var files []string
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during selection", zap.String("path", path), zap.Error(err))
			return nil
		}

		if path == walkRoot {
			if !d.IsDir() {
				logger.Warn("Scan root is not a directory", zap.String("path", path))
			}
			return nil
		}

		relPath, relErr := filepath.Rel(walkRoot, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if !c.Recursive {
				return filepath.SkipDir
			}
			if c.Ignore.Match(relPath, true) {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !c.Matches(d.Name()) {
			return nil
		}
		if c.Ignore.Match(relPath, false) {
			logger.Debug("Skipping ignored file", zap.String("filePath", path))
			return nil
		}

		selected := path
		if relErr == nil {
			selected = filepath.Join(root, filepath.FromSlash(relPath))
		}
		files = append(files, selected)
		logger.Debug("Selected file", zap.String("filePath", selected))
		return nil
	})
	if err != nil {
		logger.Error("Error during file selection", zap.Error(err))
		return files, err
	}

	logger.Debug("Completed file selection", zap.Int("selectedFiles", len(files)))
	return files, nil
}
