// Package collect implements the directory-tree collection core: it walks a
// target directory top-down, filters entries through a glob-based ignore set
// and a binary-content heuristic, and concatenates the surviving text files
// into a single annotated output file inside the target directory.
package collect

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// OutputFileName is the artifact written inside the traversal root. It is
// overwritten on every run and always excluded from its own contents.
const OutputFileName = "repository_contents.txt"

// Arguments holds the configuration for one collection run.
type Arguments struct {
	Directory string // Target directory to collect.
}

// Stats counts the per-file outcomes of one run.
type Stats struct {
	FilesWritten int // Files concatenated into the output.
	Ignored      int // Files excluded by the ignore pattern set.
	Binary       int // Files excluded by the binary heuristic.
	Unreadable   int // Files that produced a skipped-file banner.
}

func (s *Stats) count(outcome fileOutcome) {
	switch outcome {
	case outcomeWritten:
		s.FilesWritten++
	case outcomeIgnored:
		s.Ignored++
	case outcomeBinary:
		s.Binary++
	case outcomeUnreadable:
		s.Unreadable++
	}
}

// Result describes a completed collection run.
type Result struct {
	OutputPath string // Absolute path of the written artifact.
	Stats      Stats
}

// Run performs one full collection pass over args.Directory: it loads the
// effective ignore pattern set, creates the output file, writes the report
// header, and streams every qualifying file's contents into it. Per-file
// problems are absorbed into banners or statistics; only root-level
// failures are returned as errors.
func Run(args Arguments, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()

	root, err := filepath.Abs(args.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}
	logger.Info("Starting collection", zap.String("directory", root))

	patterns, err := LoadPatternSet(root, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", patterns.Len()))

	outputPath := filepath.Join(root, OutputFileName)
	outFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)

	if err := writeHeader(writer, root, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	w := &walker{
		root:           root,
		resolvedOutput: resolvePath(outputPath),
		patterns:       patterns,
		out:            writer,
		logger:         logger,
	}
	if err := w.walk(); err != nil {
		return nil, fmt.Errorf("failed to process directory: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("Collection complete",
		zap.String("outputFile", outputPath),
		zap.Int("filesWritten", w.stats.FilesWritten),
		zap.Int("skippedIgnored", w.stats.Ignored),
		zap.Int("skippedBinary", w.stats.Binary),
		zap.Int("skippedUnreadable", w.stats.Unreadable),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{OutputPath: outputPath, Stats: w.stats}, nil
}
