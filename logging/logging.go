/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package logging provides the hexgen console logger with colored, plain,
// and JSON output. Command code should log through the context-based
// functions (InfoContext, WarnContext, ...) so the configured logger
// propagates through the call tree.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents the severity of a log message, ordered from least to
// most severe.
type Level int

// Log levels.
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the level name used in log prefixes.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Format selects the console output format.
type Format int

// Output formats.
const (
	PlainFormat Format = iota
	ColorFormat
	JSONFormat
)

// Logger writes leveled diagnostics to the console.
type Logger struct {
	mu      sync.Mutex
	level   Level
	format  Format
	quiet   bool
	verbose bool
	writer  io.Writer
}

// New creates a logger from the level and format names used by CLI flags
// and the global config. Unknown names fall back to info/color. Verbose
// forces the debug level; quiet restricts console output to errors.
func New(levelName, formatName string, quiet, verbose bool) *Logger {
	level := parseLevel(levelName)
	if verbose && level > DebugLevel {
		level = DebugLevel
	}

	return &Logger{
		level:   level,
		format:  parseFormat(formatName),
		quiet:   quiet,
		verbose: verbose,
		writer:  os.Stderr,
	}
}

func parseLevel(name string) Level {
	switch name {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func parseFormat(name string) Format {
	switch name {
	case "json":
		return JSONFormat
	case "text", "plain":
		return PlainFormat
	default:
		return ColorFormat
	}
}

// SetWriter redirects console output, primarily for tests.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return
	}
	if l.quiet && level != ErrorLevel {
		return
	}
	if level < l.level {
		return
	}

	switch l.format {
	case JSONFormat:
		entry := map[string]string{
			"time":    time.Now().Format(time.RFC3339),
			"level":   level.String(),
			"message": msg,
		}
		if err := json.NewEncoder(l.writer).Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
		}
	case ColorFormat:
		fmt.Fprintf(l.writer, "%s\n", colorize(level, msg))
	default:
		fmt.Fprintf(l.writer, "[%s] %s\n", level, msg)
	}
}

func colorize(level Level, msg string) string {
	switch level {
	case DebugLevel:
		return color.HiBlackString("[DEBUG] %s", msg)
	case WarnLevel:
		return color.HiYellowString("[WARN] %s", msg)
	case ErrorLevel:
		return color.HiRedString("[ERROR] %s", msg)
	default:
		return color.HiGreenString("[INFO] %s", msg)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(DebugLevel, format, args...) }

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) { l.log(InfoLevel, format, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) { l.log(WarnLevel, format, args...) }

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) { l.log(ErrorLevel, format, args...) }

// Package default logger, replaced by Initialize. Used when no logger has
// been stored in the context yet (flag parsing, config bootstrap).
var (
	defaultMu     sync.RWMutex
	defaultLogger = New("info", "color", false, false)
)

// Initialize installs the process-wide default logger from the final
// flag/env/config values and returns it.
func Initialize(levelName, formatName string, quiet, verbose bool) *Logger {
	l := New(levelName, formatName, quiet, verbose)
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return l
}

// Default returns the process-wide default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Warn logs a warning through the default logger. Intended for bootstrap
// code that runs before a context-scoped logger exists.
func Warn(format string, args ...interface{}) {
	Default().Warn(format, args...)
}
