package collect

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// binarySampleSize is how many leading bytes are inspected when classifying
// a file as text or binary.
const binarySampleSize = 8192

// maxControlCharRatio is the fraction of control characters above which a
// sample is classified as binary.
const maxControlCharRatio = 0.1

// isLikelyBinary checks whether a file is likely binary by reading a sample
// of its leading bytes and looking for null bytes or a high ratio of control
// characters. A file that cannot be opened or read is classified as binary
// so the walker skips it silently rather than aborting.
func isLikelyBinary(filePath string) bool {
	f, err := os.Open(filePath)
	if err != nil {
		return true
	}
	defer f.Close()

	buffer := make([]byte, binarySampleSize)
	n, err := io.ReadFull(f, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	sample := buffer[:n]

	// An empty sample has no ratio to compute; treat zero-length files as text.
	if len(sample) == 0 {
		return false
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	controlChars := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			controlChars++
		}
	}

	return float64(controlChars)/float64(len(sample)) > maxControlCharRatio
}
