package collect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIsLikelyBinaryNullByte(t *testing.T) {
	path := writeTempFile(t, "blob.dat", []byte("plain text\x00more text"))
	assert.True(t, isLikelyBinary(path))
}

func TestIsLikelyBinaryPlainText(t *testing.T) {
	path := writeTempFile(t, "plain.txt", []byte("hello world\nwith tabs\tand returns\r\n"))
	assert.False(t, isLikelyBinary(path))
}

func TestIsLikelyBinaryEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", nil)
	assert.False(t, isLikelyBinary(path), "a zero-length sample is text, not a division by zero")
}

func TestIsLikelyBinaryControlCharRatio(t *testing.T) {
	// 11 control bytes out of 100 is above the 10% threshold.
	over := append(bytes.Repeat([]byte{0x01}, 11), bytes.Repeat([]byte("a"), 89)...)
	assert.True(t, isLikelyBinary(writeTempFile(t, "over.dat", over)))

	// Exactly 10% stays within the threshold.
	at := append(bytes.Repeat([]byte{0x01}, 10), bytes.Repeat([]byte("a"), 90)...)
	assert.False(t, isLikelyBinary(writeTempFile(t, "at.dat", at)))
}

func TestIsLikelyBinaryIgnoresCommonWhitespaceControls(t *testing.T) {
	data := bytes.Repeat([]byte{'\t', '\n', '\r', 'a'}, 50)
	assert.False(t, isLikelyBinary(writeTempFile(t, "ws.txt", data)))
}

func TestIsLikelyBinaryOnlyInspectsSample(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), binarySampleSize), 0x00)
	assert.False(t, isLikelyBinary(writeTempFile(t, "late-null.dat", data)),
		"bytes past the sample window must not affect classification")
}

func TestIsLikelyBinaryUnreadableFile(t *testing.T) {
	assert.True(t, isLikelyBinary(filepath.Join(t.TempDir(), "does-not-exist")),
		"unreadable files are conservatively classified as binary")
}
