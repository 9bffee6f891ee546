package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
	"go.uber.org/zap"
)

// progressEvery is how many examined entries pass between progress callbacks.
const progressEvery = 100

// ProgressFunc is called periodically during enumeration with the path
// being examined and the running found/skipped counters.
type ProgressFunc func(currentPath string, found, skipped int)

// Walker walks a directory tree up to a maximum depth and collects
// candidate files that pass the filter and the size limit.
type Walker struct {
	filter   *Filter
	logger   *zap.Logger
	maxDepth int
	maxSize  int64

	onProgress ProgressFunc

	found    int
	skipped  int
	examined int
}

// NewWalker creates a new filesystem walker
func NewWalker(filter *Filter, maxDepth int, maxSize int64, logger *zap.Logger) *Walker {
	return &Walker{
		filter:   filter,
		logger:   logger,
		maxDepth: maxDepth,
		maxSize:  maxSize,
	}
}

// SetProgressCallback sets the enumeration progress callback
func (w *Walker) SetProgressCallback(cb ProgressFunc) {
	w.onProgress = cb
}

// Skipped returns the number of entries excluded so far.
func (w *Walker) Skipped() int {
	return w.skipped
}

// Walk enumerates candidates under root. The only fatal error is a root
// that does not exist or is not a directory; everything below root is
// absorbed per entry and counted as skipped.
func (w *Walker) Walk(root string) ([]models.FileCandidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", root)
	}

	w.found = 0
	w.skipped = 0
	w.examined = 0

	var candidates []models.FileCandidate
	w.walkDir(root, root, 0, &candidates)
	return candidates, nil
}

// walkDir processes one directory at the given depth from root.
func (w *Walker) walkDir(root, dir string, depth int, out *[]models.FileCandidate) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Directory-level errors are non-fatal; siblings keep going
		w.logger.Warn("Error listing directory", zap.String("path", dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		w.examined++
		if w.onProgress != nil && w.examined%progressEvery == 0 {
			w.onProgress(path, w.found, w.skipped)
		}

		if entry.IsDir() {
			if w.filter.SkipDir(entry.Name(), relPath) {
				w.logger.Debug("Skipping excluded directory", zap.String("path", relPath))
				w.skipped++
				continue
			}
			if depth+1 > w.maxDepth {
				// Beyond the depth bound: silently excluded, not an error
				w.skipped++
				continue
			}
			w.walkDir(root, path, depth+1, out)
			continue
		}

		if w.filter.SkipFile(entry.Name(), relPath) {
			w.skipped++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.logger.Warn("Error stating file", zap.String("path", path), zap.Error(err))
			w.skipped++
			continue
		}
		if !info.Mode().IsRegular() {
			// Symlinks, sockets, devices: never followed or hashed
			w.skipped++
			continue
		}
		if info.Size() > w.maxSize {
			w.logger.Debug("File too large, skipping",
				zap.String("path", path),
				zap.Int64("size", info.Size()))
			w.skipped++
			continue
		}

		w.found++
		*out = append(*out, models.FileCandidate{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
}
