// FILE: config.go
package sinklog

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values. File assignments are
// either global (File, all four levels share one sink) or per level;
// mixing both is a validation error. The rotation settings apply to
// every file the config assigns.
type Config struct {
	// Gates
	Level           string `toml:"level"` // minimum enabled level: debug, info, error, none
	EnableProfiling bool   `toml:"enable_profiling"`

	// File assignments
	File          string `toml:"file"` // assigns all levels when set
	DebugFile     string `toml:"debug_file"`
	InfoFile      string `toml:"info_file"`
	ErrorFile     string `toml:"error_file"`
	ProfilingFile string `toml:"profiling_file"`

	// Rotation
	Policy       string `toml:"policy"`         // none, size, or daily
	MaxFiles     int64  `toml:"max_files"`      // size policy: active file + archives
	MaxSizeBytes int64  `toml:"max_size_bytes"` // size policy: rotation threshold

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:                  "debug",
	EnableProfiling:        false,
	Policy:                 "none",
	MaxFiles:               0,
	MaxSizeBytes:           0,
	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("sinklog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "sinklog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	if _, err := ParsePolicy(c.Policy); err != nil {
		return err
	}

	if c.MaxFiles < 0 {
		return fmtErrorf("max_files cannot be negative: %d", c.MaxFiles)
	}

	if c.MaxSizeBytes < 0 {
		return fmtErrorf("max_size_bytes cannot be negative: %d", c.MaxSizeBytes)
	}

	perLevel := c.DebugFile != "" || c.InfoFile != "" || c.ErrorFile != "" || c.ProfilingFile != ""
	if c.File != "" && perLevel {
		return fmtErrorf("global file and per-level files are mutually exclusive")
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// ApplyConfig applies a validated configuration to the logger: level
// gate, profiling switch, and file assignments. On a file assignment
// error (open failure, conflict with a file already assigned) the gate
// settings are rolled back to their prior state and the error is
// returned; sinks assigned before the failing one stay installed.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	minLevel, _ := ParseLevel(cfg.Level)
	policy, _ := ParsePolicy(cfg.Policy)

	prevGates := l.gate.snapshot()
	prevStderr := l.internalToStderr.Load()
	rollback := func() {
		l.gate.restore(prevGates)
		l.internalToStderr.Store(prevStderr)
	}

	l.internalToStderr.Store(cfg.InternalErrorsToStderr)
	l.SetLevel(minLevel)
	l.EnableProfiling(cfg.EnableProfiling)

	if cfg.File != "" {
		if err := l.SetGlobalLogFile(cfg.File, policy, cfg.MaxFiles, cfg.MaxSizeBytes); err != nil {
			rollback()
			return err
		}
	} else {
		assignments := []struct {
			level Level
			path  string
		}{
			{LevelDebug, cfg.DebugFile},
			{LevelInfo, cfg.InfoFile},
			{LevelError, cfg.ErrorFile},
			{LevelProfiling, cfg.ProfilingFile},
		}
		for _, a := range assignments {
			if a.path == "" {
				continue
			}
			if err := l.SetLogFile(a.level, a.path, policy, cfg.MaxFiles, cfg.MaxSizeBytes); err != nil {
				rollback()
				return err
			}
		}
	}

	l.currentConfig.Store(cfg.Clone())
	return nil
}

// GetConfig returns a copy of the current configuration
func (l *Logger) GetConfig() *Config {
	return l.currentConfig.Load().(*Config).Clone()
}
