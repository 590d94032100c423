package collect

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// IgnoreFileName is the optional per-project override file read from the
// traversal root.
const IgnoreFileName = ".repoignore"

// defaultIgnorePatterns is the fixed built-in exclusion list: dependency
// directories, VCS metadata, build caches, environment files, lock files,
// the tool's own output artifact, and a few project data paths.
var defaultIgnorePatterns = []string{
	"node_modules",
	"vendor",
	".vscode",
	"bootstrap/cache",
	"storage",
	"public/vendor",
	"public/.htaccess",
	"public/favicon.ico",
	"public/hot",
	"public/robots.txt",
	"database/data",
	"tests",
	".env",
	".git",
	OutputFileName,
	"artisan",
	"package-lock.json",
	"composer.lock",
	"phpunit.xml",
	"strategy_results",
	"trailing_stop_analysis",
	"50k.csv",
}

// IgnorePattern pairs an original glob line with its compiled form.
type IgnorePattern struct {
	Line    string         // Original pattern text.
	Pattern *regexp.Regexp // Compiled anchored regular expression.
}

// PatternSet is the effective set of ignore patterns for one run. It is
// built once at startup and read-only afterwards.
type PatternSet struct {
	patterns []IgnorePattern
	logger   *zap.Logger
}

// NewPatternSet compiles the given glob lines into a PatternSet. Lines that
// fail to compile are logged and dropped.
func NewPatternSet(lines []string, logger *zap.Logger) *PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}

	ps := &PatternSet{logger: logger}
	for _, line := range lines {
		re, err := compileGlob(line)
		if err != nil {
			logger.Warn("Skipping invalid ignore pattern",
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		ps.patterns = append(ps.patterns, IgnorePattern{Line: line, Pattern: re})
	}
	return ps
}

// LoadPatternSet returns the effective PatternSet for the given traversal
// root: the built-in defaults followed by any patterns read from a
// .repoignore file directly under the root. A missing override file is the
// common case, not an error.
func LoadPatternSet(root string, logger *zap.Logger) (*PatternSet, error) {
	lines := make([]string, 0, len(defaultIgnorePatterns))
	lines = append(lines, defaultIgnorePatterns...)

	ignorePath := filepath.Join(root, IgnoreFileName)
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPatternSet(lines, logger), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ignorePath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	custom := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		custom++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ignorePath, err)
	}

	logger.Debug("Loaded ignore override file",
		zap.String("file", ignorePath),
		zap.Int("customPatterns", custom))

	return NewPatternSet(lines, logger), nil
}

// Len returns the number of compiled patterns in the set.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

// Matches reports whether the given path, relative to the traversal root,
// is excluded by any pattern in the set. A pattern matches when it globs
// the full relative path, the base name alone, or any ancestor prefix of
// the relative path built segment by segment. The ancestor-prefix rule is
// what makes a bare directory pattern like "node_modules" exclude the whole
// subtree beneath it.
func (ps *PatternSet) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	if relPath == "" || relPath == "." {
		return false
	}

	base := path.Base(relPath)
	segments := strings.Split(relPath, "/")

	for _, p := range ps.patterns {
		if p.Pattern.MatchString(relPath) || p.Pattern.MatchString(base) {
			return true
		}
		for i := 1; i < len(segments); i++ {
			if p.Pattern.MatchString(strings.Join(segments[:i], "/")) {
				return true
			}
		}
	}
	return false
}
