package audit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LogFileName is the fixed name of the audit log inside the log directory.
const LogFileName = "zonepath-audit.jsonl"

// Config controls whether and where normalization events are recorded.
type Config struct {
	Enabled      bool   `json:"enabled"`
	LogDirectory string `json:"logDirectory,omitempty"`
}

// DefaultConfig returns the audit defaults: disabled, logging to .zonepath
// under the current directory when enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		LogDirectory: ".zonepath",
	}
}

// Writer appends normalization events to the audit log.
// Writes are append-only and fail fast; a Writer is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	file    *os.File
	writer  *bufio.Writer
	logPath string
}

// NewWriter opens (creating if needed) the audit log for appending.
// The log directory is created if it does not exist.
func NewWriter(config Config) (*Writer, error) {
	dir := config.LogDirectory
	if dir == "" {
		dir = DefaultConfig().LogDirectory
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	logPath := filepath.Join(dir, LogFileName)
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	return &Writer{
		file:    file,
		writer:  bufio.NewWriter(file),
		logPath: logPath,
	}, nil
}

// LogPath returns the path of the audit log file.
func (w *Writer) LogPath() string {
	return w.logPath
}

// Record appends a single event as one JSONL line and flushes it.
func (w *Writer) Record(event Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return fmt.Errorf("audit writer is closed")
	}

	data, err := event.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush audit event: %w", err)
	}

	return nil
}

// Close flushes pending writes and closes the log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	flushErr := w.writer.Flush()
	closeErr := w.file.Close()
	w.file = nil
	w.writer = nil

	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
