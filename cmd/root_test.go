package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"repocat/pkg/collect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(zap.NewNop())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandRequiresOneArgument(t *testing.T) {
	_, err := executeCommand(t)
	assert.Error(t, err)

	_, err = executeCommand(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCommandRejectsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x\n"), 0o644))

	_, err := executeCommand(t, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid directory")
}

func TestRootCommandRejectsMissingDirectory(t *testing.T) {
	_, err := executeCommand(t, filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid directory")
}

func TestRootCommandWritesOutputAndReportsPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello\n"), 0o644))

	out, err := executeCommand(t, root)
	require.NoError(t, err)

	outputPath := filepath.Join(root, collect.OutputFileName)
	assert.Contains(t, out, "Successfully created "+outputPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "File: hello.txt")
}

func TestVersionCommandShortFlag(t *testing.T) {
	out, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestVersionCommandFullOutput(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "repocat version dev")
}
