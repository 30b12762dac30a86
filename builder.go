// FILE: builder.go
package sinklog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the minimum enabled level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the minimum enabled level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// EnableProfiling switches the profiling timers on.
func (b *Builder) EnableProfiling(enable bool) *Builder {
	b.cfg.EnableProfiling = enable
	return b
}

// File assigns one log file to all four levels.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// DebugFile assigns the debug level's log file.
func (b *Builder) DebugFile(path string) *Builder {
	b.cfg.DebugFile = path
	return b
}

// InfoFile assigns the info level's log file.
func (b *Builder) InfoFile(path string) *Builder {
	b.cfg.InfoFile = path
	return b
}

// ErrorFile assigns the error level's log file.
func (b *Builder) ErrorFile(path string) *Builder {
	b.cfg.ErrorFile = path
	return b
}

// ProfilingFile assigns the profiling level's log file.
func (b *Builder) ProfilingFile(path string) *Builder {
	b.cfg.ProfilingFile = path
	return b
}

// Policy sets the rotation policy for assigned files.
func (b *Builder) Policy(policy Policy) *Builder {
	b.cfg.Policy = policy.String()
	return b
}

// MaxFiles sets the archive count limit for size rotation.
func (b *Builder) MaxFiles(count int64) *Builder {
	b.cfg.MaxFiles = count
	return b
}

// MaxSizeBytes sets the rotation threshold for size rotation.
func (b *Builder) MaxSizeBytes(size int64) *Builder {
	b.cfg.MaxSizeBytes = size
	return b
}

// MaxSizeKB sets the rotation threshold in KB. Convenience.
func (b *Builder) MaxSizeKB(size int64) *Builder {
	b.cfg.MaxSizeBytes = size * 1000
	return b
}

// InternalErrorsToStderr enables internal diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := sinklog.NewBuilder().
//
//	LevelString("info").
//	File("/var/log/app/app.log").
//	Policy(sinklog.PolicySize).
//	MaxFiles(4).
//	MaxSizeKB(512).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("Logger initialized successfully")
//
// }
