// FILE: timer.go
package sinklog

import (
	"fmt"
	"time"
)

// TimeUnit selects the duration granularity reported by TimerStop.
type TimeUnit uint8

const (
	Nanoseconds TimeUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
)

// String returns the unit name as printed in timer lines.
func (u TimeUnit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	default:
		return "unknown"
	}
}

// divisor is the duration of one unit.
func (u TimeUnit) divisor() time.Duration {
	switch u {
	case Microseconds:
		return time.Microsecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	default:
		return time.Nanosecond
	}
}

// TimerStart pushes a timestamp on the profiling timer stack and logs a
// STARTED line tagged with the caller. Timers nest strictly LIFO and
// the stack is not synchronized: concurrent timer use from multiple
// goroutines is unsupported. No-op while profiling is disabled.
func (l *Logger) TimerStart() {
	l.timerStart(3)
}

// TimerStop pops the most recent timer and logs a STOPPED line with the
// elapsed duration in the requested unit. With no open timer it logs
// "Timer not started!" and returns.
func (l *Logger) TimerStop(unit TimeUnit) {
	l.timerStop(unit, 3)
}

func (l *Logger) timerStart(skip int) {
	if !l.gate.profiling.Load() {
		return
	}
	function, line := callerInfo(skip)
	n := len(l.timers) + 1
	l.writeTimerLine(fmt.Sprintf("\nTimer #%d STARTED at %s (Line %d)", n, function, line))
	l.timers = append(l.timers, time.Now())
}

func (l *Logger) timerStop(unit TimeUnit, skip int) {
	if !l.gate.profiling.Load() {
		return
	}
	stop := time.Now()
	function, line := callerInfo(skip)

	n := len(l.timers)
	if n == 0 {
		l.writeTimerLine("Timer not started!\n")
		return
	}
	start := l.timers[n-1]
	l.timers = l.timers[:n-1]

	elapsed := stop.Sub(start) / unit.divisor()
	l.writeTimerLine(fmt.Sprintf("\nTimer #%d STOPPED at %s (Line %d) --- DURATION = %d %s",
		n, function, line, int64(elapsed), unit))
}

// writeTimerLine appends a raw timer line to the profiling sink. Timer
// lines carry their own framing instead of the timestamped header.
func (l *Logger) writeTimerLine(line string) {
	l.sinkFor(LevelProfiling).write([]byte(line))
}
