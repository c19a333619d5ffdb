package validate

import (
	"math"
	"reflect"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// isEmptyValue reports whether in counts as "missing" for the isRequired
// rule: a nil interface, an empty string, or an empty slice, array, or map.
// Any other value, including zero numbers and false, is present.
func isEmptyValue(in any) bool {
	if in == nil {
		return true
	}

	switch v := in.(type) {
	case string:
		return v == ""
	}

	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// stringValue returns the input as a string when it is one. Rules that
// only make sense over strings use the second return to fail closed.
func stringValue(in any) (string, bool) {
	s, ok := in.(string)
	return s, ok
}

// finiteNumber reports whether in is, or parses to, a finite
// floating-point number. Strings go through strconv; every built-in
// numeric type passes directly (floats only when finite).
func finiteNumber(in any) bool {
	switch v := in.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// intArgument coerces a dynamic rule argument to an int. The whole
// built-in numeric set is accepted, matching finiteNumber; JSON numbers
// arrive as float64, so whole-valued floats count too.
func intArgument(arg any) (int, bool) {
	switch v := arg.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		if uint64(v) <= math.MaxInt {
			return int(v), true
		}
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v <= math.MaxInt {
			return int(v), true
		}
	case float32:
		f := float64(v)
		if f == math.Trunc(f) {
			return int(f), true
		}
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// boolArgument coerces a dynamic rule argument to a bool.
func boolArgument(arg any) (bool, bool) {
	b, ok := arg.(bool)
	return b, ok
}

// stringArgument coerces a dynamic rule argument to a string.
func stringArgument(arg any) (string, bool) {
	s, ok := arg.(string)
	return s, ok
}
