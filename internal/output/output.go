// Package output handles CLI output formatting for zonepath, including the
// per-call report block and verbose mode.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"zonepath/internal/lister"
)

// delimiter is the visual separator framing each report block.
const delimiter = "----------------------------------------"

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted output with verbose support.
type Output struct {
	config Config
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{
		config: config,
	}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
	}
}

// Report prints the diagnostic block for one normalization: a delimiter, the
// configured filer root, the raw input, a blank line, a second delimiter, and
// the normalized path. This block is emitted for every call and is the tool's
// only observability mechanism.
func (o *Output) Report(filerRoot, input, normalized string) {
	fmt.Fprintln(o.config.Writer, delimiter)
	fmt.Fprintln(o.config.Writer, filerRoot)
	fmt.Fprintln(o.config.Writer, input)
	fmt.Fprintln(o.config.Writer)
	fmt.Fprintln(o.config.Writer, delimiter)
	fmt.Fprintln(o.config.Writer, normalized)
}

// Result prints just the normalized path, one per line. Stream mode uses this
// instead of the full report block unless verbose mode is enabled.
func (o *Output) Result(normalized string) {
	fmt.Fprintln(o.config.Writer, normalized)
}

// Listing prints the "Test:" label followed by one entry per line.
// Directories are marked with a trailing slash.
func (o *Output) Listing(entries []lister.Entry) {
	fmt.Fprintln(o.config.Writer, "Test:")
	for _, entry := range entries {
		name := entry.Path
		if entry.IsDir {
			name += "/"
		}
		fmt.Fprintln(o.config.Writer, name)
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(o.config.Writer, msg)
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(o.config.Writer, msg)
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(o.config.ErrWriter, msg)
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}
