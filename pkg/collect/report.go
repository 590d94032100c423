package collect

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// timestampLayout is the format of the header's generation timestamp.
const timestampLayout = "2006-01-02 15:04:05"

// writeHeader emits the fixed report header: a title line, an underline,
// the absolute traversal-root path, and a generation timestamp, followed
// by a blank line.
func writeHeader(w io.Writer, directory string, now time.Time) error {
	_, err := fmt.Fprintf(w, "Repository Contents\n==================\nDirectory: %s\nGenerated on: %s\n\n",
		directory, now.Format(timestampLayout))
	return err
}

// writeFileBlock emits one included file: a header line with the relative
// path, a separator of '=' characters sized to the path, the file content,
// and a blank line. Content that does not already end with a newline gets
// one inserted so every block is newline-terminated before the blank line.
func writeFileBlock(w io.Writer, relPath string, content []byte) error {
	if _, err := fmt.Fprintf(w, "File: %s\n%s\n", relPath, strings.Repeat("=", len(relPath)+6)); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	suffix := "\n"
	if len(content) == 0 || content[len(content)-1] != '\n' {
		suffix = "\n\n"
	}
	_, err := io.WriteString(w, suffix)
	return err
}

// writeSkippedBanner emits the one-line placeholder for a file that could
// not be read or decoded, with the error description truncated to 100
// characters.
func writeSkippedBanner(w io.Writer, relPath, reason string) error {
	_, err := fmt.Fprintf(w, "File: %s (Skipped: %s)\n\n", relPath, truncate(reason, 100))
	return err
}

// truncate limits s to at most max characters.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
