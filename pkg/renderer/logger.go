package renderer

import (
	"fmt"
	"io"
	"os"
)

// Logger receives progress and status messages from the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stderr so that progress
// never mixes with image data written to stdout
type DefaultLogger struct {
	out io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{out: os.Stderr}
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) Logger {
	return &DefaultLogger{out: w}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewDiscardLogger returns a logger that drops every message
func NewDiscardLogger() Logger {
	return discardLogger{}
}
