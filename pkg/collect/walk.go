package collect

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// fileOutcome classifies what happened to one candidate file during the
// walk. Keeping the recoverable paths as explicit outcomes rather than
// errors is what lets a single bad file never abort the run.
type fileOutcome int

const (
	outcomeWritten fileOutcome = iota
	outcomeIgnored
	outcomeBinary
	outcomeUnreadable
	outcomeSelf
)

// walker performs one top-down traversal of the tree rooted at root,
// streaming qualifying file contents into out.
type walker struct {
	root           string // absolute traversal root
	resolvedOutput string // resolved path of the destination file
	patterns       *PatternSet
	out            io.Writer
	logger         *zap.Logger
	stats          Stats
}

// walk visits the tree top-down. Ignored directories are pruned before
// descent and never entered. Per-entry errors are absorbed; only a failure
// to enumerate the root itself, or a write error on the output stream,
// aborts the walk.
func (w *walker) walk() error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return err
			}
			w.logger.Warn("Error accessing path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if path == w.root {
			return nil
		}

		relPath, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			w.logger.Warn("Failed to compute relative path",
				zap.String("path", path),
				zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if w.patterns.Matches(relPath) {
				w.logger.Debug("Pruning ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		outcome, procErr := w.processFile(path, relPath)
		if procErr != nil {
			return procErr
		}
		w.stats.count(outcome)
		return nil
	})
}

// processFile runs one file through the filter chain and, if it qualifies,
// writes its block to the output stream. The returned error is non-nil only
// for output-stream write failures, which are fatal.
func (w *walker) processFile(path, relPath string) (fileOutcome, error) {
	if resolvePath(path) == w.resolvedOutput {
		return outcomeSelf, nil
	}

	if w.patterns.Matches(relPath) {
		w.logger.Debug("Skipping ignored file", zap.String("file", relPath))
		return outcomeIgnored, nil
	}

	if isLikelyBinary(path) {
		w.logger.Debug("Skipping binary file", zap.String("file", relPath))
		return outcomeBinary, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("Failed to read file, emitting skip banner",
			zap.String("file", relPath),
			zap.Error(err))
		return outcomeUnreadable, writeSkippedBanner(w.out, relPath, err.Error())
	}

	if !utf8.Valid(content) {
		w.logger.Warn("File is not valid UTF-8, emitting skip banner",
			zap.String("file", relPath))
		return outcomeUnreadable, writeSkippedBanner(w.out, relPath, "invalid UTF-8 sequence in file content")
	}

	return outcomeWritten, writeFileBlock(w.out, relPath, content)
}

// resolvePath returns the symlink-resolved absolute form of path, falling
// back to the absolute path when resolution fails.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if abs, err := filepath.Abs(resolved); err == nil {
			return abs
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
