// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package linesink // import "go.opentelemetry.io/jsonline/exporter/linesink"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
)

var (
	// ErrNilWriter is returned when a Sink is created without a destination.
	ErrNilWriter = errors.New("linesink: nil writer")
	// ErrSinkClosed is returned by writes issued after Close.
	ErrSinkClosed = errors.New("linesink: sink is closed")
)

// Sink serializes complete lines onto a single writer. It is created once at
// wiring time and handed to every exporter that shares the stream; a line
// written by one exporter is never interleaved with a line from another.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	owned  io.Closer
	closed bool

	lines atomic.Int64
	bytes atomic.Int64
}

// New returns a Sink writing to w. The caller keeps ownership of w: Close
// stops further writes but does not close it.
func New(w io.Writer) (*Sink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Sink{w: w}, nil
}

// NewStdout returns a Sink writing to the process standard output.
func NewStdout() *Sink {
	return &Sink{w: os.Stdout}
}

// OpenFile returns a Sink appending to the file at path, creating it if
// needed. The file is closed by Close.
func OpenFile(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("linesink: open %q: %w", path, err)
	}
	return &Sink{w: f, owned: f}, nil
}

// WriteLine writes line followed by a newline with a single Write call while
// holding the sink lock. line must not contain a newline itself.
func (s *Sink) WriteLine(line []byte) error {
	buf := make([]byte, len(line)+1)
	copy(buf, line)
	buf[len(line)] = '\n'

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	n, err := s.w.Write(buf)
	s.bytes.Add(int64(n))
	if err != nil {
		return err
	}
	if n < len(buf) {
		return io.ErrShortWrite
	}
	s.lines.Inc()
	return nil
}

// Sync flushes the underlying writer when it supports it. The errors returned
// when syncing a terminal or a pipe are ignored.
func (s *Sink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	syncer, ok := s.w.(interface{ Sync() error })
	if !ok {
		return nil
	}
	return filterSyncError(syncer.Sync())
}

// Close stops the sink. Files opened by OpenFile are synced and closed.
// Calling Close more than once is a no-op.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.owned == nil {
		return nil
	}
	if syncer, ok := s.owned.(interface{ Sync() error }); ok {
		if err := filterSyncError(syncer.Sync()); err != nil {
			_ = s.owned.Close()
			return err
		}
	}
	return s.owned.Close()
}

// Lines returns the number of complete lines written.
func (s *Sink) Lines() int64 {
	return s.lines.Load()
}

// Bytes returns the number of bytes accepted by the underlying writer,
// newlines included.
func (s *Sink) Bytes() int64 {
	return s.bytes.Load()
}

func filterSyncError(err error) error {
	// Sync returns a different error depending on the OS.
	// Since these are not actionable ignore them.
	osErr := &os.PathError{}
	if errors.As(err, &osErr) && knownSyncError(osErr.Unwrap()) {
		return nil
	}
	return err
}
