// FILE: sink.go
package sinklog

import (
	"io"
	"os"
	"sync"
	"time"
)

// sink is a single output target shared by one or more levels. A
// file-backed sink (path != "") owns its handle and rotation state; a
// stream sink wraps a writer it does not own and never rotates.
// stream, file and creationDate are guarded by mu, including across the
// whole close/rename/reopen sequence of a rotation.
type sink struct {
	mu sync.Mutex

	stream io.Writer // active output; equals file for file-backed sinks
	file   *os.File  // nil for stream sinks and after close
	path   string    // empty => wrapped stream, not owned

	policy       Policy
	maxSizeBytes int64  // size policy only
	maxFiles     int64  // size policy only, >= minArchiveFiles when active
	creationDate string // YYYYMMDD, daily policy only

	done     chan struct{} // signals the daily rotation goroutine to stop
	stopOnce sync.Once

	// diag reports rotation and write faults without an error path back
	// to the caller; wired to the owning logger's internal log.
	diag func(format string, args ...any)
}

// newStreamSink wraps an already-open, externally-owned stream.
func newStreamSink(w io.Writer) *sink {
	return &sink{stream: w, diag: func(string, ...any) {}}
}

// newFileSink opens path for append and installs the rotation policy.
// A failed open is returned to the caller; no sink is constructed.
func newFileSink(path string, policy Policy, maxFiles, maxSizeBytes int64, diag func(string, ...any)) (*sink, error) {
	if diag == nil {
		diag = func(string, ...any) {}
	}
	s := &sink{
		path:   path,
		policy: policy,
		diag:   diag,
	}

	switch policy {
	case PolicySize:
		s.maxSizeBytes = maxSizeBytes
		if maxSizeBytes > 0 && maxFiles < minArchiveFiles {
			maxFiles = minArchiveFiles
		}
		s.maxFiles = maxFiles
	case PolicyDaily:
		s.creationDate = initialDateStamp(path)
	}

	file, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	s.file = file
	s.stream = file

	if policy == PolicyDaily {
		s.done = make(chan struct{})
		go s.dailyRotationLoop()
	}
	return s, nil
}

// openLogFile opens (or creates) a log file for appending.
func openLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	return file, nil
}

// initialDateStamp determines the creation-date stamp of a daily sink:
// the last-modified date of a pre-existing file, today otherwise.
func initialDateStamp(path string) string {
	if fi, err := os.Stat(path); err == nil {
		return fi.ModTime().Format(dateStampFormat)
	}
	return time.Now().Format(dateStampFormat)
}

// write serializes one rendered record to the sink, running the size
// rotation check first. Called with rendered bytes, takes the lock.
func (s *sink) write(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxSizeBytes > 0 {
		s.sizeRotate()
	}
	if _, err := s.stream.Write(data); err != nil {
		s.diag("failed to write to sink '%s': %v\n", s.path, err)
	}
}

// writeHeaderLocked writes a freshly rendered header and returns the
// raw stream for the caller to append to. The lock is released before
// return; a concurrent rotation may swap the file under the caller.
func (s *sink) writeHeaderLocked(header []byte) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxSizeBytes > 0 {
		s.sizeRotate()
	}
	if _, err := s.stream.Write(header); err != nil {
		s.diag("failed to write to sink '%s': %v\n", s.path, err)
	}
	return s.stream
}

// close stops the daily rotation goroutine and releases an owned file.
// Wrapped streams are left untouched. Safe to call more than once.
func (s *sink) close() error {
	s.stopOnce.Do(func() {
		if s.done != nil {
			close(s.done)
		}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" || s.file == nil {
		return nil
	}
	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	s.stream = io.Discard // late writers hit a harmless target
	if syncErr != nil {
		syncErr = fmtErrorf("failed to sync log file '%s': %w", s.path, syncErr)
	}
	if closeErr != nil {
		closeErr = fmtErrorf("failed to close log file '%s': %w", s.path, closeErr)
	}
	return combineErrors(syncErr, closeErr)
}
