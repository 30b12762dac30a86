// FILE: default.go
package sinklog

import (
	"io"
)

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.Debug(args...)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.Info(args...)
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.Error(args...)
}

// DebugStream returns the debug sink's stream after writing a header
func DebugStream() io.Writer {
	return defaultLogger.DebugStream()
}

// InfoStream returns the info sink's stream after writing a header
func InfoStream() io.Writer {
	return defaultLogger.InfoStream()
}

// ErrorStream returns the error sink's stream after writing a header
func ErrorStream() io.Writer {
	return defaultLogger.ErrorStream()
}

// SetLevel sets the minimum enabled level on the default logger
func SetLevel(minLevel Level) {
	defaultLogger.SetLevel(minLevel)
}

// EnableProfiling switches the default logger's profiling timers
func EnableProfiling(enable bool) {
	defaultLogger.EnableProfiling(enable)
}

// SetLogFile assigns a log file to a single level of the default logger
func SetLogFile(level Level, path string, policy Policy, maxFiles, maxSizeBytes int64) error {
	return defaultLogger.SetLogFile(level, path, policy, maxFiles, maxSizeBytes)
}

// SetGlobalLogFile assigns one log file to all levels of the default logger
func SetGlobalLogFile(path string, policy Policy, maxFiles, maxSizeBytes int64) error {
	return defaultLogger.SetGlobalLogFile(path, policy, maxFiles, maxSizeBytes)
}

// TimerStart pushes a profiling timer on the default logger
func TimerStart() {
	defaultLogger.timerStart(3)
}

// TimerStop pops the most recent profiling timer of the default logger
func TimerStop(unit TimeUnit) {
	defaultLogger.timerStop(unit, 3)
}

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies "key=value" overrides to the default logger
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// Shutdown closes the default logger's owned files and rotation tasks
func Shutdown() error {
	return defaultLogger.Shutdown()
}
