// Package safe provides overflow-checked conversions for numbers crossing the API boundary.
package safe

import (
	"fmt"
	"math"
	"strconv"
)

// Uint32 converts an integer to uint32, rejecting negative and out-of-range values.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// ParseUint64 parses a decimal string such as the access API uses for 64-bit counters.
// An empty string parses as zero.
func ParseUint64(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse uint64 %q: %w", s, err)
	}
	return v, nil
}

// ParseUint32 parses a decimal string into a uint32 with range validation.
func ParseUint32(s string) (uint32, error) {
	v, err := ParseUint64(s)
	if err != nil {
		return 0, err
	}
	return Uint32(v)
}
