// FILE: benchmark_test.go
package sinklog

import (
	"path/filepath"
	"testing"
)

func createBenchLogger(b *testing.B) *Logger {
	b.Helper()
	tmpDir := b.TempDir()
	logger := NewLogger()
	if err := logger.SetGlobalLogFile(filepath.Join(tmpDir, "bench.log"), PolicyNone, 0, 0); err != nil {
		b.Fatal(err)
	}
	return logger
}

// BenchmarkLoggerInfo benchmarks the synchronous write path
func BenchmarkLoggerInfo(b *testing.B) {
	logger := createBenchLogger(b)
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkLoggerGated benchmarks a disabled level, which should cost
// one atomic load and no allocation
func BenchmarkLoggerGated(b *testing.B) {
	logger := createBenchLogger(b)
	defer logger.Shutdown()

	logger.SetLevel(LevelError)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("dropped message", i)
	}
}

// BenchmarkLoggerComposite benchmarks the structured value fallback
func BenchmarkLoggerComposite(b *testing.B) {
	logger := createBenchLogger(b)
	defer logger.Shutdown()

	payload := struct {
		UserID int
		Action string
		Value  float64
	}{123, "benchmark", 42.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("structured", payload)
	}
}

// BenchmarkConcurrentLogging benchmarks contention on a shared sink
func BenchmarkConcurrentLogging(b *testing.B) {
	logger := createBenchLogger(b)
	defer logger.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent", i)
			i++
		}
	})
}

// BenchmarkSizeRotationPath benchmarks writes with the size check active
func BenchmarkSizeRotationPath(b *testing.B) {
	tmpDir := b.TempDir()
	logger := NewLogger()
	defer logger.Shutdown()

	// Large threshold keeps rotations out of the hot loop while still
	// exercising the stat check on every write
	if err := logger.SetGlobalLogFile(filepath.Join(tmpDir, "rotating.log"), PolicySize, 4, 1<<30); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("rotation-checked message", i)
	}
}
