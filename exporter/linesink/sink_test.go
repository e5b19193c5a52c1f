// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package linesink

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilWriter(t *testing.T) {
	s, err := New(nil)
	require.ErrorIs(t, err, ErrNilWriter)
	assert.Nil(t, s)
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, s.WriteLine([]byte(`{"a":1}`)))
	require.NoError(t, s.WriteLine(nil))
	assert.Equal(t, "{\"a\":1}\n\n", buf.String())
	assert.EqualValues(t, 2, s.Lines())
	assert.EqualValues(t, 9, s.Bytes())
}

func TestWriteLineConcurrent(t *testing.T) {
	const writers = 32
	const perWriter = 50

	var buf bytes.Buffer
	s, err := New(&buf)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			line := []byte(fmt.Sprintf("writer-%02d-%s", id, strings.Repeat("x", 512)))
			for j := 0; j < perWriter; j++ {
				assert.NoError(t, s.WriteLine(line))
			}
		}(i)
	}
	wg.Wait()

	counts := map[string]int{}
	scanner := bufio.NewScanner(&buf)
	scanner.Buffer(make([]byte, 4096), 4096)
	for scanner.Scan() {
		line := scanner.Text()
		require.Len(t, line, len("writer-00-")+512, "interleaved line %q", line)
		counts[line[:len("writer-00")]]++
	}
	require.NoError(t, scanner.Err())
	require.Len(t, counts, writers)
	for prefix, n := range counts {
		assert.Equal(t, perWriter, n, prefix)
	}
	assert.EqualValues(t, writers*perWriter, s.Lines())
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestWriteLineErrors(t *testing.T) {
	s, err := New(shortWriter{})
	require.NoError(t, err)
	require.ErrorIs(t, s.WriteLine([]byte("abcd")), io.ErrShortWrite)
	assert.EqualValues(t, 0, s.Lines())

	errBroken := errors.New("broken pipe")
	s, err = New(failingWriter{err: errBroken})
	require.NoError(t, err)
	require.ErrorIs(t, s.WriteLine([]byte("abcd")), errBroken)
}

func TestWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.WriteLine([]byte("late")), ErrSinkClosed)
	require.NoError(t, s.Sync())
	assert.Empty(t, buf.String())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o600))

	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteLine([]byte("appended")))
	require.NoError(t, s.Sync())
	require.NoError(t, s.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing\nappended\n", string(content))
}

func TestOpenFileMissingDir(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing", "out.jsonl"))
	assert.Error(t, err)
}

type syncWriter struct {
	bytes.Buffer
	err error
}

func (s *syncWriter) Sync() error {
	return s.err
}

func TestSyncPropagatesUnknownErrors(t *testing.T) {
	errDisk := errors.New("disk full")
	s, err := New(&syncWriter{err: errDisk})
	require.NoError(t, err)
	require.ErrorIs(t, s.Sync(), errDisk)
}
