package literal

import "fmt"

// Kind identifies the type of a Literal.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindRawString
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindDecimal
	KindBool
	KindNull
	KindBinary
	KindDate
	KindDateTime
	KindTimeSpan

	// KindCustom is the first kind available to literals produced by
	// registered entries.
	KindCustom Kind = 100
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindString:    "string",
	KindRawString: "raw string",
	KindChar:      "char",
	KindInt:       "int",
	KindLong:      "long",
	KindFloat:     "float",
	KindDouble:    "double",
	KindDecimal:   "decimal",
	KindBool:      "bool",
	KindNull:      "null",
	KindBinary:    "binary",
	KindDate:      "date",
	KindDateTime:  "datetime",
	KindTimeSpan:  "timespan",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	if k >= KindCustom {
		return fmt.Sprintf("custom(%d)", int(k-KindCustom))
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsNumeric reports whether k holds a number.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt, KindLong, KindFloat, KindDouble, KindDecimal:
		return true
	}
	return false
}

// IsTextual reports whether k holds text.
func (k Kind) IsTextual() bool {
	switch k {
	case KindString, KindRawString, KindChar:
		return true
	}
	return false
}
