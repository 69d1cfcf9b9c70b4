package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes leveled progress lines to stderr, so stdout stays free for
// piping. Info needs Verbose and Debug needs DebugMode; warnings and errors are
// always shown.
type Logger struct {
	Verbose   bool
	DebugMode bool
	out       io.Writer
}

// NewLogger creates a logger writing to stderr.
func NewLogger(verbose, debug bool) *Logger {
	return &Logger{Verbose: verbose || debug, DebugMode: debug, out: os.Stderr}
}

func (l *Logger) print(level, format string, args ...any) {
	fmt.Fprintf(l.out, "[%s] %s: %s\n", level, time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	if l.Verbose {
		l.print("INFO", format, args...)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	if l.DebugMode {
		l.print("DEBUG", format, args...)
	}
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.print("WARN", format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...any) {
	l.print("ERROR", format, args...)
}
