package qsgen

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// timeLayout formats range bounds; fractions of a second are dropped.
const timeLayout = "2006-01-02T15:04:05Z07:00"

// maxBoost is the exclusive upper limit for AddBoost.
const maxBoost = 1e7

// AddBoost appends ^f to whatever precedes it. f is truncated (not
// rounded) to two decimal places; a boost of exactly 1 is left out.
func (q *Query) AddBoost(f float64) error {
	if math.IsNaN(f) || f <= 0 || f >= maxBoost {
		return fmt.Errorf("%w: %v not in (0,%v)", ErrInvalidBoost, f, maxBoost)
	}
	if f == 1 {
		return nil
	}
	q.write("^" + formatFloat(truncateBoost(f)) + " ")
	return nil
}

func truncateBoost(f float64) float64 {
	return math.Floor(f*100) / 100
}

// AddRange appends an inclusive range, [from TO to].
//
// Bounds are written in their textual form, not escaped; pass "*" for an
// open end. Times are written in UTC, eg 2014-01-01T00:00:00Z. When m is
// wildcarded each bound gets a trailing *. Fuzziness and split don't apply.
func (q *Query) AddRange(from, to any, m Modifier) error {
	return q.AddRangeField("", from, to, m)
}

// AddRangeField appends name:[from TO to]. A blank name gives a plain range.
func (q *Query) AddRangeField(name string, from, to any, m Modifier) error {
	lo, err := rangeBound(from, m)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	hi, err := rangeBound(to, m)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	q.write(m.term.Prefix())
	if !isBlank(name) {
		q.write(name + ":")
	}
	q.write("[" + lo + " TO " + hi + "] ")
	return nil
}

func rangeBound(v any, m Modifier) (string, error) {
	if isNil(v) {
		return "", ErrNilRangeBound
	}
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case time.Time:
		s = x.UTC().Format(timeLayout)
	case *time.Time:
		s = x.UTC().Format(timeLayout)
	case float64:
		s = formatFloat(x)
	case float32:
		s = formatFloat(float64(x))
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(v)
	}
	if m.wildcarded {
		s += "*"
	}
	return s, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
