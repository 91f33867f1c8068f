// Package plastburst extracts homologous regions from annotated plastid
// genomes, aligns each region with MAFFT, and concatenates the alignments
// into one supermatrix.
package plastburst

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	infoTag  = color.New(color.FgGreen).Sprint("INFO")
	warnTag  = color.New(color.FgYellow).Sprint("WARNING")
	errorTag = color.New(color.FgRed).Sprint("ERROR")
	debugTag = color.New(color.FgCyan).Sprint("DEBUG")
)

// Logger writes leveled, timestamped messages to stderr. It is constructed
// once at startup and passed into each component.
type Logger struct {
	out     *log.Logger
	verbose bool
}

// NewLogger returns a Logger. Debug messages are only written when
// verbose is set.
func NewLogger(verbose bool) *Logger {
	return &Logger{
		out:     log.New(os.Stderr, "", log.LstdFlags),
		verbose: verbose,
	}
}

// Info logs progress messages.
func (l *Logger) Info(format string, args ...interface{}) {
	l.out.Printf("[%s] %s", infoTag, fmt.Sprintf(format, args...))
}

// Warn logs non-fatal problems: the affected feature or region is skipped
// and the run continues.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.out.Printf("[%s] %s", warnTag, fmt.Sprintf(format, args...))
}

// Error logs a problem without terminating.
func (l *Logger) Error(format string, args ...interface{}) {
	l.out.Printf("[%s] %s", errorTag, fmt.Sprintf(format, args...))
}

// Fatal logs the message and exits.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.out.Printf("[%s] %s", errorTag, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Debug logs verbose-only messages.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.out.Printf("[%s] %s", debugTag, fmt.Sprintf(format, args...))
}
