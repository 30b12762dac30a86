// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/sinklog"
)

// GnetAdapter wraps sinklog.Logger to implement gnet's logging.Logger
// interface. Warnings map to the info channel with a marker since the
// logger carries no warn level; errors and fatals share the error sink,
// which SetLevel never disables.
type GnetAdapter struct {
	logger       *sinklog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *sinklog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debug("[gnet]", fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info("[gnet]", fmt.Sprintf(format, args...))
}

// Warnf logs at info level with a warning marker
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Info("[gnet] warning:", fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error("[gnet]", fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers the fatal handler. Writes are
// synchronous, so the record is on disk before the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Error("[gnet] fatal:", msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
