package utils

import (
	"math"
	"strconv"
)

// Float returns the value as a float64 pointer if it decoded from JSON as a
// number, nil otherwise
func Float(v interface{}) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

// String returns the value as a string pointer if it decoded from JSON as a
// string, nil otherwise
func String(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// FloatAt returns the i-th element of a decoded JSON array as a float64
// pointer. Out-of-bounds indices and non-number elements yield nil.
func FloatAt(values []interface{}, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	return Float(values[i])
}

// ParseFinite parses a string as a finite float64. It rejects empty input,
// NaN and infinities.
func ParseFinite(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
