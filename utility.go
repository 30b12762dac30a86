// FILE: utility.go
package sinklog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// fmtErrorf wrapper, ensures the package prefix on every error
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "sinklog: ") {
		format = "sinklog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseLevel converts a level name to its constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	case "profiling":
		return LevelProfiling, nil
	case "none":
		return LevelNone, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, error, profiling, none)", levelStr)
	}
}

// ParsePolicy converts a rotation policy name to its constant.
func ParsePolicy(policyStr string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(policyStr)) {
	case "", "none":
		return PolicyNone, nil
	case "size":
		return PolicySize, nil
	case "daily":
		return PolicyDaily, nil
	default:
		return 0, fmtErrorf("invalid policy string: '%s' (use none, size, or daily)", policyStr)
	}
}

// callerInfo returns the short function name and line of the caller at
// the given skip depth, for tagging profiling timer lines.
func callerInfo(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "(unknown)", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "(unknown)", line
	}
	name := filepath.Base(fn.Name())
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name, line
}
