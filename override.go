// FILE: override.go
package sinklog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's
// current configuration. Each override should be in the format
// "key=value". The configuration is cloned before modification.
//
// Example:
//
//	logger := sinklog.NewLogger()
//	err := logger.ApplyOverride(
//	    "file=/var/log/app/app.log",
//	    "policy=size",
//	    "max_size_bytes=1048576",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.GetConfig()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("sinklog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove package prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "sinklog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		if _, err := ParseLevel(value); err != nil {
			return err
		}
		cfg.Level = value
	case "enable_profiling":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_profiling '%s': %w", value, err)
		}
		cfg.EnableProfiling = boolVal

	case "file":
		cfg.File = value
	case "debug_file":
		cfg.DebugFile = value
	case "info_file":
		cfg.InfoFile = value
	case "error_file":
		cfg.ErrorFile = value
	case "profiling_file":
		cfg.ProfilingFile = value

	case "policy":
		if _, err := ParsePolicy(value); err != nil {
			return err
		}
		cfg.Policy = value
	case "max_files":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_files '%s': %w", value, err)
		}
		cfg.MaxFiles = intVal
	case "max_size_bytes":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_size_bytes '%s': %w", value, err)
		}
		cfg.MaxSizeBytes = intVal

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
