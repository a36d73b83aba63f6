package literal

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/shopspring/decimal"
)

var (
	reInt     = regexp.MustCompile(`^[+-]?\d+$`)
	reLong    = regexp.MustCompile(`(?i)^[+-]?\d+l$`)
	reFloat   = regexp.MustCompile(`(?i)^[+-]?(?:\d+\.?\d*|\.\d+)f$`)
	reDouble  = regexp.MustCompile(`(?i)^[+-]?(?:(?:\d+\.\d*|\.\d+)d?|\d+d)$`)
	reDecimal = regexp.MustCompile(`(?i)^[+-]?(?:\d+\.?\d*|\.\d+)bd$`)
)

// Int is a 32-bit signed integer written as bare digits.
type Int int32

func (i Int) Kind() Kind     { return KindInt }
func (i Int) Value() any     { return int32(i) }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// ParseInt decodes an optionally signed run of digits that fits in 32 bits.
func ParseInt(text string) (Int, error) {
	if !reInt.MatchString(text) {
		return 0, errors.NewType(text, "%q is not an integer literal", text)
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, errors.NewType(text, "integer literal %q is out of range", text)
	}
	return Int(n), nil
}

// Long is a 64-bit signed integer written with an L suffix.
type Long int64

func (l Long) Kind() Kind     { return KindLong }
func (l Long) Value() any     { return int64(l) }
func (l Long) String() string { return strconv.FormatInt(int64(l), 10) + "L" }

// ParseLong decodes an integer with an L or l suffix.
func ParseLong(text string) (Long, error) {
	if !reLong.MatchString(text) {
		return 0, errors.NewType(text, "%q is not a long integer literal", text)
	}
	n, err := strconv.ParseInt(text[:len(text)-1], 10, 64)
	if err != nil {
		return 0, errors.NewType(text, "long integer literal %q is out of range", text)
	}
	return Long(n), nil
}

// Float is a 32-bit floating point number, always written with an f suffix.
type Float float32

func (f Float) Kind() Kind { return KindFloat }
func (f Float) Value() any { return float32(f) }
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32) + "f"
}

// ParseFloat decodes a number with an f or F suffix.
func ParseFloat(text string) (Float, error) {
	if !reFloat.MatchString(text) {
		return 0, errors.NewType(text, "%q is not a float literal", text)
	}
	v, err := strconv.ParseFloat(text[:len(text)-1], 32)
	if err != nil {
		return 0, errors.NewType(text, "float literal %q is out of range", text)
	}
	return Float(v), nil
}

// Double is a 64-bit floating point number. It is written with a decimal
// point and no suffix.
type Double float64

func (d Double) Kind() Kind { return KindDouble }
func (d Double) Value() any { return float64(d) }
func (d Double) String() string {
	s := strconv.FormatFloat(float64(d), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ParseDouble decodes a number with a decimal point, a d suffix, or both.
func ParseDouble(text string) (Double, error) {
	if !reDouble.MatchString(text) {
		return 0, errors.NewType(text, "%q is not a double literal", text)
	}
	v, err := strconv.ParseFloat(strings.TrimRight(text, "dD"), 64)
	if err != nil {
		return 0, errors.NewType(text, "double literal %q is out of range", text)
	}
	return Double(v), nil
}

// Decimal is an arbitrary precision decimal number written with a bd
// suffix.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal returns d as a Decimal.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{d: d} }

func (d Decimal) Kind() Kind               { return KindDecimal }
func (d Decimal) Value() any               { return d.d }
func (d Decimal) Decimal() decimal.Decimal { return d.d }
func (d Decimal) String() string           { return d.d.String() + "bd" }

// ParseDecimal decodes a number with a bd suffix without losing precision.
func ParseDecimal(text string) (Decimal, error) {
	if !reDecimal.MatchString(text) {
		return Decimal{}, errors.NewType(text, "%q is not a decimal literal", text)
	}
	d, err := parseDecimalDigits(text[:len(text)-2])
	if err != nil {
		return Decimal{}, errors.NewType(text, "%q is not a decimal literal", text)
	}
	return Decimal{d: d}, nil
}

func parseDecimalDigits(s string) (decimal.Decimal, error) {
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return decimal.NewFromString(sign + s)
}

// classifyInteger returns an Int when text fits in 32 bits, a Long when it
// fits in 64 and a Decimal otherwise.
func classifyInteger(text string) (Literal, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		d, derr := parseDecimalDigits(text)
		if derr != nil {
			return nil, errors.NewType(text, "%q is not an integer literal", text)
		}
		return Decimal{d: d}, nil
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return Long(n), nil
	}
	return Int(n), nil
}
