package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity coercion errors.
var (
	// ErrNotAQuantity reports a value that cannot be read as an integer
	// quantity.
	ErrNotAQuantity = errors.New("not an integer quantity")
)

// ParseQuantity parses a string as an integer quantity. Surrounding
// whitespace is tolerated; fractional forms such as "3.5" are not.
func ParseQuantity(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrNotAQuantity)
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAQuantity, s)
	}
	return n, nil
}

// CoerceValue converts a JSON-decoded value to an integer quantity.
//
// Accepted forms: integers, floats (truncated toward zero), numeric
// strings, json.Number, and booleans (true is 1, false is 0). Everything
// else, including null, objects, arrays, and non-finite floats, fails
// with ErrNotAQuantity.
func CoerceValue(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case float64:
		return truncateFloat(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, nil
		}
		f, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotAQuantity, val.String())
		}
		return truncateFloat(f)
	case string:
		return ParseQuantity(val)
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotAQuantity, v)
	}
}

// truncateFloat truncates a float toward zero, rejecting values that do
// not fit in an int64.
func truncateFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotAQuantity, f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v out of range", ErrNotAQuantity, f)
	}
	return int64(t), nil
}
