// Package segparse converts single path segments into typed values.
// Both routers use it so that their captures accept the same segments.
package segparse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Int accepts a base 10 integer that fits in an int.
func Int(segment string) (int, bool) {
	n, err := strconv.Atoi(segment)
	return n, err == nil
}

// Double accepts a decimal or hexadecimal floating point number.
// Digit separators are rejected. Values too large to represent become ±Inf.
func Double(segment string) (float64, bool) {
	if strings.IndexByte(segment, '_') >= 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(segment, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// String accepts any segment.
func String(segment string) (string, bool) {
	return segment, true
}

// UUID accepts any form uuid.Parse understands.
func UUID(segment string) (uuid.UUID, bool) {
	id, err := uuid.Parse(segment)
	return id, err == nil
}
