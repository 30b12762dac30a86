// FILE: gate.go
package sinklog

import (
	"sync/atomic"
)

// gate holds the per-level runtime switches. Each level has a pair of
// flags, one for the write entry point and one for the stream accessor,
// checked atomically on every call. The error write flag exists for
// symmetry but is never consulted: Error() always writes.
type gate struct {
	write     [numLevels]atomic.Bool
	stream    [numLevels]atomic.Bool
	profiling atomic.Bool
}

// init enables all dynamic levels; profiling stays off until requested.
func (g *gate) init() {
	for lv := LevelDebug; lv <= LevelError; lv++ {
		g.write[lv].Store(true)
		g.stream[lv].Store(true)
	}
}

// gateState is a point-in-time copy of every gate flag, used to roll
// back a partially applied configuration.
type gateState struct {
	write     [numLevels]bool
	stream    [numLevels]bool
	profiling bool
}

func (g *gate) snapshot() gateState {
	var s gateState
	for i := range s.write {
		s.write[i] = g.write[i].Load()
		s.stream[i] = g.stream[i].Load()
	}
	s.profiling = g.profiling.Load()
	return s
}

func (g *gate) restore(s gateState) {
	for i := range s.write {
		g.write[i].Store(s.write[i])
		g.stream[i].Store(s.stream[i])
	}
	g.profiling.Store(s.profiling)
}

// SetLevel enables every level at or above minLevel and disables the
// rest. The error write entry point is exempt and always produces
// output; only its stream accessor honors LevelNone.
func (l *Logger) SetLevel(minLevel Level) {
	l.gate.write[LevelDebug].Store(minLevel <= LevelDebug)
	l.gate.stream[LevelDebug].Store(minLevel <= LevelDebug)
	l.gate.write[LevelInfo].Store(minLevel <= LevelInfo)
	l.gate.stream[LevelInfo].Store(minLevel <= LevelInfo)
	l.gate.write[LevelError].Store(true)
	l.gate.stream[LevelError].Store(minLevel != LevelNone)
}

// EnableProfiling switches the profiling timer entry points on or off.
// Off by default; disabled timers are complete no-ops.
func (l *Logger) EnableProfiling(enable bool) {
	l.gate.profiling.Store(enable)
}

// ProfilingEnabled reports the current profiling gate state.
func (l *Logger) ProfilingEnabled() bool {
	return l.gate.profiling.Load()
}
