// Package logger holds the file-backed log writer used by the telemetry
// manager.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TrimWriter wraps a log file and keeps it at a bounded number of lines.
// Writes pass straight through; once twice the cap has accumulated the file
// is rewritten in place with only the newest lines.
type TrimWriter struct {
	mu       sync.Mutex
	file     io.Writer
	filePath string
	maxLines int
	kept     []string // Newest maxLines lines, oldest first
	seen     int      // Lines written since the last trim
}

// NewTrimWriter creates a writer that keeps filePath at most maxLines long.
func NewTrimWriter(file io.Writer, maxLines int, filePath string) *TrimWriter {
	return &TrimWriter{
		file:     file,
		filePath: filePath,
		maxLines: maxLines,
	}
}

// Write implements io.Writer.
func (w *TrimWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}

		w.kept = append(w.kept, line)
		if len(w.kept) > w.maxLines {
			w.kept = w.kept[1:]
		}

		w.seen++
	}

	if w.seen >= w.maxLines*2 {
		if err := w.trim(); err != nil {
			return n, err
		}

		w.seen = len(w.kept)
	}

	return n, nil
}

// trim rewrites the file with only the kept lines and reopens it for
// appending.
func (w *TrimWriter) trim() error {
	if len(w.kept) == 0 {
		return nil
	}

	temp, err := os.CreateTemp(filepath.Dir(w.filePath), "trim-log-")
	if err != nil {
		return err
	}

	tempPath := temp.Name()

	if _, err := temp.WriteString(strings.Join(w.kept, "\n") + "\n"); err != nil {
		temp.Close()
		os.Remove(tempPath)

		return err
	}

	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if closer, ok := w.file.(io.Closer); ok {
		closer.Close()
	}

	// Remove-then-rename keeps this working on platforms where rename does
	// not replace.
	os.Remove(w.filePath)

	if err := os.Rename(tempPath, w.filePath); err != nil {
		return err
	}

	file, err := os.OpenFile(w.filePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w.file = file

	return nil
}
