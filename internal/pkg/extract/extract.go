// Package extract provides safe lookups into decoded JSON trees.
//
// Sports APIs return deeply nested, partially filled structures; every
// field access in the pipeline goes through this package so a missing or
// reshaped branch degrades to a default instead of a panic.
package extract

import (
	"math"
	"strconv"
	"time"
)

// Dig walks root following path steps: string steps index into
// map[string]any nodes, int steps index into []any nodes. It returns the
// value at the end of the path and true, or nil and false if any step hits
// a missing key, an out-of-range index or a node of the wrong shape.
func Dig(root any, path ...any) (any, bool) {
	cur := root
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := cur.([]any)
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			cur = s[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path, or def when absent or not a string.
func String(root any, def string, path ...any) string {
	v, ok := Dig(root, path...)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// AsFloat coerces a decoded JSON value to float64. JSON numbers decode as
// float64, but odds frequently arrive as strings ("1.80"), so string values
// are parsed too. ParseFloat accepts "NaN" and "Inf", which would otherwise
// leak non-finite values into the scoring math, so those fail coercion.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns the value at path coerced to float64, or def when the path
// is absent or the value cannot be coerced.
func Float(root any, def float64, path ...any) float64 {
	v, ok := Dig(root, path...)
	if !ok {
		return def
	}
	f, ok := AsFloat(v)
	if !ok {
		return def
	}
	return f
}

// Time parses the RFC 3339 timestamp at path, returning def when the field
// is absent or malformed.
func Time(root any, def time.Time, path ...any) time.Time {
	s := String(root, "", path...)
	if s == "" {
		return def
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return def
	}
	return t
}
