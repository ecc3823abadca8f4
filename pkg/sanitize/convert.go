package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	errMissing   = errors.New("missing")
	errNotFinite = errors.New("not a finite number")
)

// toFloat converts any numeric representation the host may send into a float.
// Booleans are never numbers and NaN or Inf is rejected.
func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, errMissing
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		var err error
		f, err = strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n.String())
		}
	case string:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

// listError describes why a list input was rejected.
type listError struct {
	empty  bool
	reason string
}

func (e *listError) Error() string {
	return e.reason
}

// toFloats converts a list of numbers. Any invalid element rejects the whole
// list.
func toFloats(v any) ([]float64, error) {
	if v == nil {
		return nil, errMissing
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &listError{reason: "not a list"}
	}
	if rv.Len() == 0 {
		return nil, &listError{empty: true, reason: "empty"}
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, err := toFloat(rv.Index(i).Interface())
		if err != nil {
			return nil, &listError{reason: fmt.Sprintf("contains an invalid element at index %d (%v)", i, err)}
		}
		out[i] = f
	}
	return out, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// toTime converts a timestamp. Strings without an offset are read as the
// site's wall clock time.
func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, errMissing
	case time.Time:
		if t.IsZero() {
			return time.Time{}, errors.New("zero time")
		}
		return t, nil
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, errors.New("zero time")
		}
		return *t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised timestamp %q", t)
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", v)
	}
}

// toString accepts strings and string based enums.
func toString(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", errMissing
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}
		return "", fmt.Errorf("unexpected type %T", v)
	}
}
