package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command and returns its output lines and stderr.
func execute(t *testing.T, stdin string, args ...string) ([]string, string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	err := cmd.Execute()
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if out.Len() == 0 {
		lines = nil
	}
	return lines, errout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunDemos(t *testing.T) {
	lines, _, err := execute(t, "")
	require.NoError(t, err)
	require.Len(t, lines, len(demos))
	assert.Equal(t, "15", lines[0])
	assert.Equal(t, "35", lines[1])
	assert.Equal(t, "-30", lines[2])
	assert.Equal(t, "84", lines[5])
}

func TestRunArgs(t *testing.T) {
	lines, _, err := execute(t, "", "-x", "1,2.5", "x*2", "x > 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "0", "1"}, lines)
}

func TestRunDefaultInput(t *testing.T) {
	lines, _, err := execute(t, "", "x + 5")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, lines)
}

func TestRunFormat(t *testing.T) {
	lines, _, err := execute(t, "", "--fmt", "%.2f", "-x", "1", "x/3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.33"}, lines)
}

func TestRunEcho(t *testing.T) {
	lines, _, err := execute(t, "", "--echo", "-x", "1", "x+1")
	require.NoError(t, err)
	assert.Equal(t, []string{"((x) + (1)) : 2"}, lines)
}

func TestRunCompileError(t *testing.T) {
	lines, stderr, err := execute(t, "", "x +", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, []string{"0"}, lines)
	assert.Contains(t, stderr, "compile failed")
	assert.Contains(t, stderr, "x +")
}

func TestRunLenient(t *testing.T) {
	_, _, err := execute(t, "", "-x", "3", "x)")
	require.Error(t, err)

	lines, _, err := execute(t, "", "--lenient", "-x", "3", "x)")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines)
}

func TestRunBadInput(t *testing.T) {
	_, _, err := execute(t, "", "-x", "ten", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ten")
}

func TestRunInFile(t *testing.T) {
	path := writeFile(t, "exprs.txt", "x + 1\n\n  \nx * x\n")
	lines, _, err := execute(t, "", "--in", path, "-x", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "9"}, lines)
}

func TestRunStdin(t *testing.T) {
	lines, _, err := execute(t, "ln 1\n2^x\n", "--in", "-", "-x", "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "16"}, lines)
}

func TestRunEmptyIn(t *testing.T) {
	// An empty file means no expressions, not the examples.
	path := writeFile(t, "empty.txt", "\n")
	lines, _, err := execute(t, "", "--in", path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "x+1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "compiled")
	assert.Contains(t, stderr, "((x) + (1))")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
