// FILE: logger.go
package sinklog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Logger routes four log levels to shared sinks with per-sink rotation.
// The sink arena holds every sink ever created by this logger; the
// level table maps each level to an arena handle, so levels assigned
// the same file share one sink record and its rotation state.
type Logger struct {
	mu     sync.RWMutex    // guards sinks and table
	sinks  []*sink         // arena, never shrinks
	table  [numLevels]int  // level -> arena handle
	gate   gate
	timers []time.Time // profiling timer stack, strict LIFO, single-goroutine use

	currentConfig    atomic.Value // stores *Config
	internalToStderr atomic.Bool
	shutdownCalled   atomic.Bool
}

// NewLogger creates a logger with the default sinks installed: stdout
// for DEBUG, INFO and PROFILING, stderr for ERROR. All dynamic levels
// start enabled, profiling timers start disabled.
func NewLogger() *Logger {
	l := &Logger{}
	l.sinks = []*sink{newStreamSink(os.Stdout), newStreamSink(os.Stderr)}
	l.table = [numLevels]int{0, 0, 1, 0}
	l.gate.init()
	l.currentConfig.Store(DefaultConfig())
	return l
}

// Debug writes a debug-level line. No-op while debug is gated off.
func (l *Logger) Debug(args ...any) {
	if !l.gate.write[LevelDebug].Load() {
		return
	}
	l.write(LevelDebug, args)
}

// Info writes an info-level line. No-op while info is gated off.
func (l *Logger) Info(args ...any) {
	if !l.gate.write[LevelInfo].Load() {
		return
	}
	l.write(LevelInfo, args)
}

// Error writes an error-level line. The error write path is never
// disabled by SetLevel, including SetLevel(LevelNone).
func (l *Logger) Error(args ...any) {
	l.write(LevelError, args)
}

// DebugStream writes a debug header and returns the sink's stream for
// the caller to append arbitrary content. The sink lock is released
// before return, so a concurrent rotation can swap the file mid-append;
// use Debug for writes that must be atomic. Gated off, it returns a
// discard writer without touching the sink.
func (l *Logger) DebugStream() io.Writer {
	if !l.gate.stream[LevelDebug].Load() {
		return io.Discard
	}
	return l.stream(LevelDebug)
}

// InfoStream is the info-level stream accessor, see DebugStream.
func (l *Logger) InfoStream() io.Writer {
	if !l.gate.stream[LevelInfo].Load() {
		return io.Discard
	}
	return l.stream(LevelInfo)
}

// ErrorStream is the error-level stream accessor. It stays active under
// SetLevel(LevelError) and is disabled only by SetLevel(LevelNone).
func (l *Logger) ErrorStream() io.Writer {
	if !l.gate.stream[LevelError].Load() {
		return io.Discard
	}
	return l.stream(LevelError)
}

// write renders and appends one line to the level's sink.
func (l *Logger) write(level Level, args []any) {
	buf := make([]byte, 0, 128)
	buf = appendHeader(buf, time.Now(), level)
	buf = appendArgs(buf, args)
	l.sinkFor(level).write(buf)
}

// stream writes the header under the sink lock and hands out the
// underlying stream.
func (l *Logger) stream(level Level) io.Writer {
	header := appendHeader(make([]byte, 0, 64), time.Now(), level)
	return l.sinkFor(level).writeHeaderLocked(header)
}

// sinkFor resolves the sink currently routed for a level.
func (l *Logger) sinkFor(level Level) *sink {
	l.mu.RLock()
	s := l.sinks[l.table[level]]
	l.mu.RUnlock()
	return s
}

// SetLogFile assigns a log file to a single level. It fails if the
// level already has a different file assigned. A path already backing
// another level's sink is reused, so one file is always served by
// exactly one sink; the policy arguments are ignored on reuse.
func (l *Logger) SetLogFile(level Level, path string, policy Policy, maxFiles, maxSizeBytes int64) error {
	if level >= numLevels {
		return fmtErrorf("invalid level for file assignment: %s", level)
	}
	if strings.TrimSpace(path) == "" {
		return fmtErrorf("log file path cannot be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.sinks[l.table[level]]
	if current.path != "" {
		if current.path == path {
			return nil
		}
		return fmtErrorf("log file already assigned to level %s: %s", level, current.path)
	}

	for handle, s := range l.sinks {
		if s.path == path {
			l.table[level] = handle
			return nil
		}
	}

	s, err := newFileSink(path, policy, maxFiles, maxSizeBytes, l.internalLog)
	if err != nil {
		return err
	}
	l.sinks = append(l.sinks, s)
	l.table[level] = len(l.sinks) - 1
	return nil
}

// SetGlobalLogFile assigns one log file to all four levels. It fails if
// any level already has a file assigned; on failure no state changes.
func (l *Logger) SetGlobalLogFile(path string, policy Policy, maxFiles, maxSizeBytes int64) error {
	if strings.TrimSpace(path) == "" {
		return fmtErrorf("log file path cannot be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for lv := Level(0); lv < numLevels; lv++ {
		if assigned := l.sinks[l.table[lv]].path; assigned != "" {
			return fmtErrorf("log file already assigned to a sink: %s", assigned)
		}
	}

	s, err := newFileSink(path, policy, maxFiles, maxSizeBytes, l.internalLog)
	if err != nil {
		return err
	}
	l.sinks = append(l.sinks, s)
	handle := len(l.sinks) - 1
	for lv := range l.table {
		l.table[lv] = handle
	}
	return nil
}

// LogFilePath returns the file path assigned to a level, empty for the
// default stream sinks.
func (l *Logger) LogFilePath(level Level) string {
	if level >= numLevels {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sinks[l.table[level]].path
}

// Shutdown stops every daily rotation goroutine and closes every owned
// file; later writes to those sinks degrade to discard. Wrapped streams
// (the stdout/stderr defaults) are not closed and keep accepting
// writes. Safe to call more than once.
func (l *Logger) Shutdown() error {
	if !l.shutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var finalErr error
	for _, s := range l.sinks {
		finalErr = combineErrors(finalErr, s.close())
	}
	return finalErr
}

// internalLog writes internal diagnostics to stderr when enabled.
// Rotation and write faults have no error path back to the caller and
// surface here instead.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.internalToStderr.Load() {
		return
	}
	if !strings.HasPrefix(format, "sinklog: ") {
		format = "sinklog: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
