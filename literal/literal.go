// Package literal implements the typed scalar values carried by SDL tags:
// classification of literal tokens, conversion from Go values and the
// canonical text encoding of every kind.
package literal

import (
	"bytes"
)

// Literal is a typed scalar value with a canonical text encoding.
//
// Value returns the Go representation of the literal: string for the textual
// kinds, rune for Char, int32, int64, float32 and float64 for the numeric
// kinds, decimal.Decimal, bool, nil for Null, []byte for Binary, time.Time
// for Date and DateTime and time.Duration for TimeSpan.
//
// String returns the literal as it is written in a document. Parsing the
// result with the registry yields an equal literal for every literal that
// passes Validate.
type Literal interface {
	Kind() Kind
	Value() any
	String() string
}

// Equal reports whether a and b have the same kind and value.
func Equal(a, b Literal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Binary:
		y, ok := b.(Binary)
		return ok && bytes.Equal(x, y)
	case Decimal:
		y, ok := b.(Decimal)
		return ok && x.d.Equal(y.d)
	case Date:
		y, ok := b.(Date)
		return ok && x.t.Equal(y.t)
	case DateTime:
		y, ok := b.(DateTime)
		return ok && x.t.Equal(y.t)
	case String, RawString, Char, Int, Long, Float, Double, Bool, Null, TimeSpan:
		return a == b
	}
	return a.String() == b.String()
}
