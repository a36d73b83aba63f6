package literal

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KimNorgaard/go-sdl/errors"
)

const (
	minYear = 0
	maxYear = 9999
)

// Validate reports whether l can be written as text that reads back as an
// equal literal. It fails with a Type error for text that is not valid
// UTF-8, raw strings holding a backtick or a NUL, non-finite floats and
// dates outside the years 0000 to 9999.
func Validate(l Literal) error {
	switch x := l.(type) {
	case String:
		return validText(string(x))
	case RawString:
		return validRaw(string(x))
	case Char:
		if !utf8.ValidRune(rune(x)) {
			return errors.NewType(l.Kind().String(), "%U is not a valid character", rune(x))
		}
	case Float:
		return finite(float64(x), "float")
	case Double:
		return finite(float64(x), "double")
	case Date:
		return validYear(x.t)
	case DateTime:
		return validYear(x.t)
	case TimeSpan:
		if x == math.MinInt64 {
			return errors.NewType(l.Kind().String(), "timespan out of range")
		}
	}
	return nil
}

func validText(s string) error {
	if !utf8.ValidString(s) {
		return errors.NewType(s, "%q is not valid UTF-8", s)
	}
	return nil
}

func validRaw(s string) error {
	if err := validText(s); err != nil {
		return err
	}
	if strings.ContainsAny(s, "`\x00") {
		return errors.NewType(s, "raw string %q contains a backtick or NUL", s)
	}
	return nil
}

func finite(f float64, kind string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.NewType(kind, "%v has no %s literal form", f, kind)
	}
	return nil
}

func validYear(t time.Time) error {
	if y := t.Year(); y < minYear || y > maxYear {
		return errors.NewType(t.String(), "year %d is outside %04d to %04d", y, minYear, maxYear)
	}
	return nil
}
