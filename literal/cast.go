package literal

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/shopspring/decimal"
)

// Cast converts l to the given kind.
//
// Numbers convert between each other, truncating toward zero when a
// fraction is dropped and failing when the value is out of range. Any
// literal casts to String; textual literals cast to the other kinds by
// parsing their text. Bool casts to and from numbers as 1 and 0, Date and
// DateTime convert into each other, and TimeSpan converts to and from a
// Long count of milliseconds.
func Cast(l Literal, kind Kind) (Literal, error) {
	if l.Kind() == kind {
		return l, nil
	}
	fail := func() (Literal, error) {
		return nil, errors.NewType(l.String(), "cannot cast %s literal %s to %s", l.Kind(), l, kind)
	}

	if l.Kind().IsTextual() {
		return castText(l, textOf(l), kind)
	}
	if kind == KindString {
		return String(l.String()), nil
	}

	switch x := l.(type) {
	case Bool:
		if kind.IsNumeric() {
			n := int32(0)
			if x {
				n = 1
			}
			return Cast(Int(n), kind)
		}
	case Date:
		if kind == KindDateTime {
			return DateTime(x), nil
		}
	case DateTime:
		if kind == KindDate {
			return Date{t: x.t.Truncate(day)}, nil
		}
	case TimeSpan:
		if kind.IsNumeric() {
			return Cast(Long(time.Duration(x)/time.Millisecond), kind)
		}
	}

	if !l.Kind().IsNumeric() {
		return fail()
	}
	d, ok := decimalOf(l)
	if !ok {
		return fail()
	}
	switch kind {
	case KindBool:
		return Bool(!d.IsZero()), nil
	case KindTimeSpan:
		n, ok := truncInt(d, math.MinInt64/int64(time.Millisecond), math.MaxInt64/int64(time.Millisecond))
		if !ok {
			return fail()
		}
		return TimeSpan(time.Duration(n) * time.Millisecond), nil
	case KindInt:
		n, ok := truncInt(d, math.MinInt32, math.MaxInt32)
		if !ok {
			return fail()
		}
		return Int(n), nil
	case KindLong:
		n, ok := truncInt(d, math.MinInt64, math.MaxInt64)
		if !ok {
			return fail()
		}
		return Long(n), nil
	case KindFloat:
		f, _ := d.Float64()
		if math.Abs(f) > math.MaxFloat32 {
			return fail()
		}
		return Float(f), nil
	case KindDouble:
		f, _ := d.Float64()
		return Double(f), nil
	case KindDecimal:
		return Decimal{d: d}, nil
	}
	return fail()
}

func castText(l Literal, s string, kind Kind) (Literal, error) {
	switch kind {
	case KindString:
		return String(s), nil
	case KindRawString:
		return NewRawString(s)
	case KindChar:
		if utf8.RuneCountInString(s) != 1 {
			return nil, errors.NewType(s, "cannot cast %q to a single character", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	case KindBinary:
		return NewBinary([]byte(s)), nil
	}
	parsed, err := Default().ParseStrict(s)
	if err != nil || parsed.Kind().IsTextual() {
		return nil, errors.NewType(s, "cannot cast %s literal %s to %s", l.Kind(), l, kind)
	}
	return Cast(parsed, kind)
}

func textOf(l Literal) string {
	switch x := l.(type) {
	case String:
		return string(x)
	case RawString:
		return string(x)
	case Char:
		return string(rune(x))
	}
	return l.String()
}

// decimalOf returns the value of a numeric literal. It reports false for
// non-finite floats and for literals that are not numbers.
func decimalOf(l Literal) (decimal.Decimal, bool) {
	switch x := l.(type) {
	case Int:
		return decimal.NewFromInt(int64(x)), true
	case Long:
		return decimal.NewFromInt(int64(x)), true
	case Float:
		if finite(float64(x), "float") != nil {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(float32(x)), true
	case Double:
		if finite(float64(x), "double") != nil {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(float64(x)), true
	case Decimal:
		return x.d, true
	}
	return decimal.Zero, false
}

func truncInt(d decimal.Decimal, lo, hi int64) (int64, bool) {
	t := d.Truncate(0)
	if t.LessThan(decimal.NewFromInt(lo)) || t.GreaterThan(decimal.NewFromInt(hi)) {
		return 0, false
	}
	return t.IntPart(), true
}
