// FILE: logger_test.go
package sinklog

import (
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

// createFileLogger creates a logger with one file per level in a temp directory
func createFileLogger(t *testing.T) (*Logger, string) {
	tmpDir := t.TempDir()
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.DebugFile = filepath.Join(tmpDir, "debug.log")
	cfg.InfoFile = filepath.Join(tmpDir, "info.log")
	cfg.ErrorFile = filepath.Join(tmpDir, "error.log")
	cfg.ProfilingFile = filepath.Join(tmpDir, "profiling.log")

	err := logger.ApplyConfig(cfg)
	require.NoError(t, err)

	return logger, tmpDir
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestNewLogger verifies the initial state: stream sinks, no files, all
// dynamic levels enabled, profiling off
func TestNewLogger(t *testing.T) {
	logger := NewLogger()

	assert.NotNil(t, logger)
	assert.Empty(t, logger.LogFilePath(LevelDebug))
	assert.Empty(t, logger.LogFilePath(LevelInfo))
	assert.Empty(t, logger.LogFilePath(LevelError))
	assert.Empty(t, logger.LogFilePath(LevelProfiling))
	assert.False(t, logger.ProfilingEnabled())
	assert.Equal(t, "debug", logger.GetConfig().Level)
}

// TestWriteLevels verifies each write entry point reaches its own sink
// with the correct header
func TestWriteLevels(t *testing.T) {
	logger, tmpDir := createFileLogger(t)
	defer logger.Shutdown()

	logger.Debug("debug message", 42)
	logger.Info("info message")
	logger.Error("error message")

	debugOut := readLog(t, filepath.Join(tmpDir, "debug.log"))
	assert.Contains(t, debugOut, " - DEBUG: debug message 42")
	assert.True(t, strings.HasPrefix(debugOut, "\n"), "records start with a newline")

	infoOut := readLog(t, filepath.Join(tmpDir, "info.log"))
	assert.Contains(t, infoOut, " - INFO: info message")
	assert.NotContains(t, infoOut, "debug message")

	errorOut := readLog(t, filepath.Join(tmpDir, "error.log"))
	assert.Contains(t, errorOut, " - *** ERROR!\n")
	assert.Contains(t, errorOut, "error message")
}

// TestSharedSink verifies that two levels assigned the same path share
// one sink record
func TestSharedSink(t *testing.T) {
	tmpDir := t.TempDir()
	logger := NewLogger()
	defer logger.Shutdown()

	shared := filepath.Join(tmpDir, "shared.log")
	require.NoError(t, logger.SetLogFile(LevelDebug, shared, PolicyNone, 0, 0))
	require.NoError(t, logger.SetLogFile(LevelError, shared, PolicyNone, 0, 0))

	assert.Equal(t, shared, logger.LogFilePath(LevelDebug))
	assert.Equal(t, shared, logger.LogFilePath(LevelError))

	logger.Debug("from debug")
	logger.Error("from error")

	out := readLog(t, shared)
	assert.Contains(t, out, "DEBUG: from debug")
	assert.Contains(t, out, "from error")
}

// TestSetLogFileConflict verifies reassignment rules: a level keeps its
// first file, repeating the same assignment is a no-op
func TestSetLogFileConflict(t *testing.T) {
	tmpDir := t.TempDir()
	logger := NewLogger()
	defer logger.Shutdown()

	first := filepath.Join(tmpDir, "first.log")
	second := filepath.Join(tmpDir, "second.log")

	require.NoError(t, logger.SetLogFile(LevelInfo, first, PolicyNone, 0, 0))

	err := logger.SetLogFile(LevelInfo, second, PolicyNone, 0, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already assigned")
	assert.Equal(t, first, logger.LogFilePath(LevelInfo))

	// Same path again is accepted silently
	assert.NoError(t, logger.SetLogFile(LevelInfo, first, PolicyNone, 0, 0))
}

// TestSetLogFileValidation covers the argument checks
func TestSetLogFileValidation(t *testing.T) {
	logger := NewLogger()
	defer logger.Shutdown()

	assert.Error(t, logger.SetLogFile(LevelNone, "/tmp/x.log", PolicyNone, 0, 0))
	assert.Error(t, logger.SetLogFile(LevelDebug, "", PolicyNone, 0, 0))
	assert.Error(t, logger.SetLogFile(LevelDebug, "   ", PolicyNone, 0, 0))
}

// TestSetGlobalLogFile verifies the all-levels assignment and its
// conflict behavior
func TestSetGlobalLogFile(t *testing.T) {
	t.Run("assigns all levels", func(t *testing.T) {
		tmpDir := t.TempDir()
		logger := NewLogger()
		defer logger.Shutdown()

		global := filepath.Join(tmpDir, "all.log")
		require.NoError(t, logger.SetGlobalLogFile(global, PolicyNone, 0, 0))

		for _, lv := range []Level{LevelDebug, LevelInfo, LevelError, LevelProfiling} {
			assert.Equal(t, global, logger.LogFilePath(lv))
		}

		logger.Debug("d")
		logger.Info("i")
		logger.Error("e")

		out := readLog(t, global)
		assert.Contains(t, out, "DEBUG: d")
		assert.Contains(t, out, "INFO: i")
		assert.Contains(t, out, "ERROR!")
	})

	t.Run("rejected after any per-level assignment", func(t *testing.T) {
		tmpDir := t.TempDir()
		logger := NewLogger()
		defer logger.Shutdown()

		require.NoError(t, logger.SetLogFile(LevelDebug, filepath.Join(tmpDir, "debug.log"), PolicyNone, 0, 0))

		err := logger.SetGlobalLogFile(filepath.Join(tmpDir, "all.log"), PolicyNone, 0, 0)
		assert.Error(t, err)

		// The failed call changed nothing
		assert.Empty(t, logger.LogFilePath(LevelInfo))
	})
}

// TestStreamAccessors verifies header-then-stream behavior
func TestStreamAccessors(t *testing.T) {
	logger, tmpDir := createFileLogger(t)
	defer logger.Shutdown()

	w := logger.InfoStream()
	require.NotNil(t, w)
	fmt.Fprintf(w, "continued %d %s", 7, "values")

	out := readLog(t, filepath.Join(tmpDir, "info.log"))
	assert.Contains(t, out, " - INFO: continued 7 values")
}

// TestShutdown verifies idempotence and that late writes are harmless
func TestShutdown(t *testing.T) {
	logger, tmpDir := createFileLogger(t)

	logger.Info("before shutdown")
	require.NoError(t, logger.Shutdown())
	assert.NoError(t, logger.Shutdown())

	// Closed sinks swallow late writes instead of panicking
	logger.Info("after shutdown")
	logger.Error("after shutdown")

	out := readLog(t, filepath.Join(tmpDir, "info.log"))
	assert.Contains(t, out, "before shutdown")
	assert.NotContains(t, out, "after shutdown")
}

// TestConcurrentWrites verifies that records from many goroutines stay
// whole on a shared sink
func TestConcurrentWrites(t *testing.T) {
	tmpDir := t.TempDir()
	logger := NewLogger()
	defer logger.Shutdown()

	shared := filepath.Join(tmpDir, "concurrent.log")
	require.NoError(t, logger.SetGlobalLogFile(shared, PolicyNone, 0, 0))

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("worker", id, "seq", i)
			}
		}(g)
	}
	wg.Wait()

	out := readLog(t, shared)
	assert.Equal(t, goroutines*perGoroutine, strings.Count(out, "INFO: worker"))
	// Every record begins at a line start
	assert.Equal(t, goroutines*perGoroutine, strings.Count(out, "\n20"))
}

// TestDefaultLoggerStreams verifies the package-level accessors return
// usable writers without file configuration
func TestDefaultLoggerStreams(t *testing.T) {
	assert.NotNil(t, DebugStream())
	assert.NotNil(t, InfoStream())
	assert.NotNil(t, ErrorStream())
	assert.NotEqual(t, io.Discard, ErrorStream())
}
