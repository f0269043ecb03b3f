// Package dataset sorts report rows for display.
//
// Values are compared numerically when both sides look like finite numbers
// and case-insensitively as strings otherwise, so that "10" sorts after "2"
// while names still sort alphabetically.
package dataset

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Direction is the sort order of a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Sort returns a sorted copy of data ordered by key. data is not modified.
// The sort is stable in both directions: rows with equal keys keep their
// original relative order.
func Sort[T any](data []T, key func(T) any, dir Direction) []T {
	out := slices.Clone(data)
	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(key(a), key(b))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// Compare orders a and b. It returns a negative number when a sorts first,
// a positive number when b sorts first and zero when they are equal.
func Compare(a, b any) int {
	x, okA := toNumber(a)
	y, okB := toNumber(b)
	if okA && okB {
		return cmp.Compare(x, y)
	}
	return strings.Compare(toText(a), toText(b))
}

// toNumber reports the numeric value of v. nil, empty and blank strings,
// NaN and infinities are not numbers; zero is.
func toNumber(v any) (float64, bool) {
	if isNilPointer(v) {
		return 0, false
	}

	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseNumber(n)
	case json.Number:
		return parseNumber(n.String())
	case time.Time:
		if n.IsZero() {
			return 0, false
		}
		return float64(n.UnixNano()), true
	case fmt.Stringer:
		if isNumericKind(v) {
			f = reflectNumber(v)
			break
		}
		return parseNumber(n.String())
	default:
		if !isNumericKind(v) {
			return 0, false
		}
		f = reflectNumber(v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isNumericKind(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// reflectNumber covers named numeric types such as models.ID.
func reflectNumber(v any) float64 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// isNilPointer reports whether v is a typed nil pointer, which compares
// like nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func toText(v any) string {
	if isNilPointer(v) {
		return ""
	}
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToLower(s)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	default:
		return strings.ToLower(fmt.Sprint(v))
	}
}
