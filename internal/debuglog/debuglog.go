// Package debuglog writes structured JSON-lines diagnostics to a file.
//
// The logger is process-wide and disabled by default; every call is a no-op
// until Init enables it. Entries carry a sequence number, a timestamp and an
// event name, plus arbitrary fields.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "gantt-debug.log"

// Logger logs events as JSON lines.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

var (
	stdMu sync.Mutex
	std   = &Logger{}
)

// Init enables the logger and points it at path when enabled is true.
// An empty path uses DefaultPath.
func Init(enabled bool, path string) error {
	if !enabled {
		swap(&Logger{})
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	l := &Logger{w: f, closer: f, enabled: true}
	swap(l)
	l.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// SetOutput enables the logger on w and returns a function restoring the
// previous logger. Intended for tests.
func SetOutput(w io.Writer) (restore func()) {
	prev := swap(&Logger{w: w, enabled: true})
	return func() { swap(prev) }
}

// Close flushes the end marker and closes the log file.
func Close() {
	l := current()
	if !l.enabled {
		return
	}
	l.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if l.closer != nil {
		_ = l.closer.Close()
	}
	swap(&Logger{})
}

// Enabled reports whether entries are being written.
func Enabled() bool {
	return current().enabled
}

// Log writes a structured entry for event.
func Log(event string, data map[string]any) {
	current().log(event, data)
}

// Warn logs a recoverable problem.
func Warn(msg string, data map[string]any) {
	l := current()
	if !l.enabled {
		return
	}
	entry := make(map[string]any, len(data)+1)
	for k, v := range data {
		entry[k] = v
	}
	entry["msg"] = msg
	l.log("WARN", entry)
}

// Error logs an error with the operation it came from.
func Error(context string, err error) {
	if err == nil {
		return
	}
	current().log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

func current() *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std
}

func swap(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	prev := std
	std = l
	return prev
}

// log writes a structured log entry.
func (l *Logger) log(event string, data map[string]any) {
	if l == nil || !l.enabled || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// Truncate shortens s to max bytes for log fields.
func Truncate(s string, max int) string {
	if len(s) <= max || max < 4 {
		return s
	}
	return s[:max-3] + "..."
}
