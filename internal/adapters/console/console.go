// Package console implements the user-facing output stream of the goal.
// Goal results go to stdout; notices go to stderr. Diagnostic logging is
// the logger's job, not this package's.
package console

import (
	"fmt"
	"io"
	"os"
)

// Console writes goal output to a pair of streams.
type Console struct {
	stdout io.Writer
	stderr io.Writer
}

// New creates a Console on the process streams.
func New() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

// NewConsole creates a Console on the given streams.
func NewConsole(stdout, stderr io.Writer) *Console {
	return &Console{stdout: stdout, stderr: stderr}
}

// WriteStdout writes a message to the goal's stdout stream.
func (c *Console) WriteStdout(msg string) {
	_, _ = fmt.Fprint(c.stdout, msg)
}

// WriteStderr writes a message to the goal's stderr stream.
func (c *Console) WriteStderr(msg string) {
	_, _ = fmt.Fprint(c.stderr, msg)
}
