// FILE: constant.go
package sinklog

// Level selects one of the four output channels. LevelNone is only
// meaningful as a SetLevel threshold that disables dynamic logging.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelProfiling
	LevelNone
)

// numLevels is the size of the level -> sink routing table.
// LevelNone has no sink.
const numLevels = 4

// Policy governs how a file-backed sink archives its active file.
type Policy uint8

const (
	PolicyNone Policy = iota
	PolicySize
	PolicyDaily
)

// Per-level line headers, indexed by Level. The error header pushes the
// message to its own line, indented under the timestamp column.
var levelHeaders = [numLevels]string{
	"DEBUG: ",
	"INFO: ",
	"*** ERROR!\n                         ",
	"",
}

const (
	// Timestamp prefix of every log line, local time with milliseconds
	timestampFormat = "2006-01-02 15:04:05.000"
	// Creation-date stamp of daily sinks and suffix of their archives
	dateStampFormat = "20060102"

	// A size-limited sink always keeps the active file plus at least one archive
	minArchiveFiles = 2
)

// String returns the level name as used in configuration and errors.
func (lv Level) String() string {
	switch lv {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	case LevelProfiling:
		return "profiling"
	case LevelNone:
		return "none"
	default:
		return "unknown"
	}
}

// String returns the policy name as used in configuration and errors.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicySize:
		return "size"
	case PolicyDaily:
		return "daily"
	default:
		return "unknown"
	}
}
