package utils

import (
	"bytes"
	"io"
	"log"
	"sync"
)

// LogFilter suppresses log lines containing any of a fixed set of
// substrings. It is installed on the process-wide default logger with
// explicit acquire/release semantics: Install wraps the current log
// writer, Release restores it. Install/Release pairs are reference
// counted, so nested installs only restore the original writer once the
// last holder releases.
//
// The model decoder and the rendering backend both log through the
// standard logger; the filter keeps their known-noisy lines out of the
// output while a screen that opted in is mounted.
type LogFilter struct {
	mu       sync.Mutex
	patterns []string
	refs     int
	prev     io.Writer
}

// NewLogFilter creates a filter that drops log lines containing any of
// the given substrings. An empty pattern list yields a pass-through
// filter.
func NewLogFilter(patterns []string) *LogFilter {
	return &LogFilter{patterns: patterns}
}

// Install activates the filter on the default logger. The first Install
// captures the current writer and replaces it; later Installs only bump
// the reference count.
func (f *LogFilter) Install() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refs++
	if f.refs == 1 {
		f.prev = log.Writer()
		log.SetOutput(f)
	}
}

// Release undoes one Install. When the last holder releases, the
// original writer is restored. Release without a matching Install is a
// no-op.
func (f *LogFilter) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refs == 0 {
		return
	}
	f.refs--
	if f.refs == 0 {
		log.SetOutput(f.prev)
		f.prev = nil
	}
}

// Installed reports whether the filter currently holds the log output.
func (f *LogFilter) Installed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refs > 0
}

// Write forwards the log line to the wrapped writer unless it matches a
// suppressed pattern. Suppressed lines report success so the logger
// never sees an error.
func (f *LogFilter) Write(p []byte) (int, error) {
	f.mu.Lock()
	prev := f.prev
	patterns := f.patterns
	f.mu.Unlock()

	if prev == nil {
		return len(p), nil
	}
	for _, pattern := range patterns {
		if pattern != "" && bytes.Contains(p, []byte(pattern)) {
			return len(p), nil
		}
	}
	return prev.Write(p)
}
