// Package trace emits one structured JSON event per special-form dispatch
// and per procedure call, for diagnosing evaluation order and recursion
// depth without a debugger attached.
//
// Grounded on the teacher's internal/trace package: a Session wrapping an
// io.Writer (stderr by default, a rotating lumberjack.Logger when a file
// path is configured), one JSON-line event struct, and a monotonic step
// counter. The teacher's port/object lifecycle event helpers have no
// analogue here (SPEC_FULL.md has neither ports nor objects) and are not
// carried over; the call/form event shape and the file-rotation plumbing
// are.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event is a single trace record, written as one line of JSON.
type Event struct {
	Step  int64  `json:"step"`
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Frame int    `json:"frame"`
}

// Session collects and writes trace events for one interpreter run.
type Session struct {
	mu     sync.Mutex
	sink   io.Writer
	logger *lumberjack.Logger
	step   int64
}

// NewSession creates a Session writing to path, rotated by lumberjack once
// it exceeds maxSizeMB. An empty path writes to stderr instead.
func NewSession(path string, maxSizeMB int) *Session {
	if path == "" {
		return &Session{sink: os.Stderr}
	}
	logger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 5,
		Compress:   true,
	}
	return &Session{sink: logger, logger: logger}
}

// Step records one evaluation step: a special form dispatch or a
// procedure call, identified by name, at the given call depth and frame.
func (s *Session) Step(name string, depth, frameIdx int) {
	s.mu.Lock()
	s.step++
	event := Event{Step: s.step, Name: name, Depth: depth, Frame: frameIdx}
	s.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	s.mu.Lock()
	fmt.Fprintf(s.sink, "%s\n", data)
	s.mu.Unlock()
}

// Close flushes and closes the underlying log file, if one was configured.
func (s *Session) Close() error {
	if s.logger != nil {
		return s.logger.Close()
	}
	return nil
}
