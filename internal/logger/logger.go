// Package logger provides verbose diagnostics for cleanpaste.
// Output is suppressed unless verbose mode is on (--verbose or
// CLEANPASTE_VERBOSE), so normal command output on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level prefixes.
const (
	levelDebug = "[DEBUG] "
	levelInfo  = "[INFO] "
	levelWarn  = "[WARN] "
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug logs per-stage and per-request detail.
func Debug(format string, args ...any) {
	logf(levelDebug, format, args...)
}

// Info logs a notable event such as a settings change or a watched write.
func Info(format string, args ...any) {
	logf(levelInfo, format, args...)
}

// Warn logs a recoverable problem, e.g. a clipboard failure or an
// unrecognised case mode that was treated as none.
func Warn(format string, args ...any) {
	logf(levelWarn, format, args...)
}

// Section prints a header separating phases of one command.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
