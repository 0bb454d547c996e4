package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arbiterhq/arbiter/internal/setup/telemetry/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimWriter_PassThrough(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	writer := logger.NewTrimWriter(file, 100, path)

	for range 10 {
		_, err := writer.Write([]byte("line\n"))
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 10)
}

func TestTrimWriter_TrimsToCap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	const maxLines = 5

	writer := logger.NewTrimWriter(file, maxLines, path)

	// Twice the cap triggers the rewrite.
	for i := range maxLines * 2 {
		_, err := writer.Write([]byte(strings.Repeat("x", i+1) + "\n"))
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, maxLines)

	// Only the newest lines survive.
	assert.Equal(t, strings.Repeat("x", maxLines+1), lines[0])
	assert.Equal(t, strings.Repeat("x", maxLines*2), lines[maxLines-1])
}
