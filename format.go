// FILE: format.go
package sinklog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// spewDumper renders composite values (structs, maps, pointers) in a
// compact, log-friendly form when no scalar fast path applies.
var spewDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// appendHeader appends the line prefix: newline, local timestamp with
// millisecond precision, separator, and the level header.
func appendHeader(buf []byte, timestamp time.Time, level Level) []byte {
	buf = append(buf, '\n')
	buf = timestamp.AppendFormat(buf, timestampFormat)
	buf = append(buf, " - "...)
	buf = append(buf, levelHeaders[level]...)
	return buf
}

// appendArgs appends the message values, space-separated.
func appendArgs(buf []byte, args []any) []byte {
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return buf
}

// appendValue converts a single value to its text representation.
// Strings pass through sanitization so control bytes cannot corrupt the
// log; everything without a scalar fast path is delegated to spew.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return appendSanitized(buf, val)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timestampFormat)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return appendSanitized(buf, val.Error())
	case fmt.Stringer:
		return appendSanitized(buf, val.String())
	case []byte:
		return appendSanitized(buf, string(val))
	default:
		var b bytes.Buffer
		spewDumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}

// appendSanitized appends a string with non-printable runes hex-encoded
// as <XX> (one pair per UTF-8 byte). Printable text passes through
// untouched, including multi-byte runes.
func appendSanitized(buf []byte, str string) []byte {
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		if r == utf8.RuneError && size == 1 {
			buf = appendHexEncoded(buf, str[i:i+1])
			i++
			continue
		}
		if strconv.IsPrint(r) || r == '\n' || r == '\t' {
			buf = append(buf, str[i:i+size]...)
		} else {
			buf = appendHexEncoded(buf, str[i:i+size])
		}
		i += size
	}
	return buf
}

const hexDigits = "0123456789abcdef"

func appendHexEncoded(buf []byte, raw string) []byte {
	buf = append(buf, '<')
	for i := 0; i < len(raw); i++ {
		buf = append(buf, hexDigits[raw[i]>>4], hexDigits[raw[i]&0xF])
	}
	return append(buf, '>')
}
