// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/sinklog"
)

// FastHTTPAdapter wraps sinklog.Logger to implement fasthttp's Logger
// interface (Printf). fasthttp logs everything through one entry point,
// so the adapter inspects message content to pick a level.
type FastHTTPAdapter struct {
	logger        *sinklog.Logger
	defaultLevel  sinklog.Level
	levelDetector func(string) sinklog.Level // Detects log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *sinklog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  sinklog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level sinklog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) sinklog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		level = a.levelDetector(msg)
	}

	switch level {
	case sinklog.LevelDebug:
		a.logger.Debug("[fasthttp]", msg)
	case sinklog.LevelError:
		a.logger.Error("[fasthttp]", msg)
	default:
		a.logger.Info("[fasthttp]", msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) sinklog.Level {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return sinklog.LevelError
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return sinklog.LevelDebug
	}

	// Default to info level
	return sinklog.LevelInfo
}
