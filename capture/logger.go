package capture

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger handles diagnostic output for capture tooling. Recorder workers
// share one Logger, so writes are serialized.
type Logger struct {
	mu      sync.Mutex
	enabled bool
	out     io.Writer
	errOut  io.Writer
}

// NewLogger creates a logger writing to stdout and stderr
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput redirects both streams. A nil writer leaves that stream as is.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if out != nil {
		l.out = out
	}
	if errOut != nil {
		l.errOut = errOut
	}
}

func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

func (l *Logger) write(always, toErr bool, prefix, format string, args []interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !always && !l.enabled {
		return
	}
	w := l.out
	if toErr {
		w = l.errOut
	}
	fmt.Fprintf(w, prefix+format+"\n", args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(false, false, "[vkdump DEBUG] ", format, args)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(false, true, "[vkdump WARN] ", format, args)
}

// Error logs an error message. Errors are shown even when the logger is
// disabled.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(true, true, "[vkdump ERROR] ", format, args)
}
