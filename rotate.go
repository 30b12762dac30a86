// FILE: rotate.go
package sinklog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// sizeRotate archives the active file once it exceeds the size limit:
// shift path.i -> path.(i+1) for i = maxFiles-2 .. 1, rename the active
// file to path.1, reopen fresh. The oldest archive ages out implicitly
// because index maxFiles is never produced by the shift.
// Caller must hold s.mu.
func (s *sink) sizeRotate() {
	if s.file == nil {
		return
	}
	fi, err := s.file.Stat()
	if err != nil || fi.Size() <= s.maxSizeBytes {
		return
	}

	_ = s.file.Sync()
	if err := s.file.Close(); err != nil {
		s.diag("failed to close log file '%s' before rotation: %v\n", s.path, err)
	}

	for i := s.maxFiles - 2; i > 0; i-- {
		archive := fmt.Sprintf("%s.%d", s.path, i)
		if _, err := os.Stat(archive); err == nil {
			if err := os.Rename(archive, fmt.Sprintf("%s.%d", s.path, i+1)); err != nil {
				s.diag("failed to shift archive '%s': %v\n", archive, err)
			}
		}
	}
	if err := os.Rename(s.path, s.path+".1"); err != nil {
		s.diag("failed to archive log file '%s': %v\n", s.path, err)
	}

	file, err := openLogFile(s.path)
	if err != nil {
		// Terminal for this sink; writers degrade to a discard target.
		s.diag("failed to reopen log file after rotation: %v\n", err)
		s.file = nil
		s.stream = io.Discard
		return
	}
	s.file = file
	s.stream = file
	s.creationDate = time.Now().Format(dateStampFormat)
}

// dailyRotationLoop runs for the lifetime of a daily-policy sink: check
// for a stale date, then sleep until the midnight after the sink's
// creation date. Only closing s.done (sink close / logger shutdown)
// stops it; otherwise it runs until process exit.
func (s *sink) dailyRotationLoop() {
	for {
		s.dailyRotate(time.Now())

		s.mu.Lock()
		wake := nextRotationTime(s.creationDate, time.Now())
		s.mu.Unlock()

		timer := time.NewTimer(time.Until(wake))
		select {
		case <-timer.C:
		case <-s.done:
			timer.Stop()
			return
		}
	}
}

// dailyRotate archives the active file as path.<old-date> and reopens
// it fresh, but only when the calendar date moved past the stored
// creation date and the file has content. The whole rename+reopen runs
// under the sink lock so writers never observe a closed stream.
func (s *sink) dailyRotate(now time.Time) {
	today := now.Format(dateStampFormat)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil || s.creationDate == today {
		return
	}
	fi, err := s.file.Stat()
	if err != nil || fi.Size() == 0 {
		return
	}

	_ = s.file.Sync()
	if err := s.file.Close(); err != nil {
		s.diag("failed to close log file '%s' before daily rotation: %v\n", s.path, err)
	}

	if err := os.Rename(s.path, s.path+"."+s.creationDate); err != nil {
		// Keep appending to the unrenamed file and retry at next wake.
		s.diag("failed to archive daily log file '%s': %v\n", s.path, err)
		file, reopenErr := openLogFile(s.path)
		if reopenErr != nil {
			s.diag("failed to reopen log file after daily rotation: %v\n", reopenErr)
			s.file = nil
			s.stream = io.Discard
			return
		}
		s.file = file
		s.stream = file
		return
	}

	file, err := openLogFile(s.path)
	if err != nil {
		s.diag("failed to reopen log file after daily rotation: %v\n", err)
		s.file = nil
		s.stream = io.Discard
		return
	}
	s.file = file
	s.stream = file
	s.creationDate = today
}

// nextRotationTime is the midnight following the creation-date stamp.
// A stamp already a day or more behind now (file stayed empty across a
// boundary) falls back to the next midnight after now, so the loop
// never spins.
func nextRotationTime(dateStamp string, now time.Time) time.Time {
	created, err := time.ParseInLocation(dateStampFormat, dateStamp, time.Local)
	if err == nil {
		next := created.AddDate(0, 0, 1)
		if next.After(now) {
			return next
		}
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
}
