package literal

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/KimNorgaard/go-sdl/errors"
)

const binaryWrap = 75

var (
	reBool   = regexp.MustCompile(`(?i)^(yes|true|on|no|false|off)$`)
	reNull   = regexp.MustCompile(`^null$`)
	reBinary = regexp.MustCompile(`(?s)^\[(.*)\]$`)
)

// Bool is a boolean. It decodes from yes, true or on and their negations,
// regardless of case, and always encodes as yes or no.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) Value() any { return bool(b) }
func (b Bool) String() string {
	if b {
		return "yes"
	}
	return "no"
}

// ParseBool decodes a boolean keyword.
func ParseBool(text string) (Bool, error) {
	if !reBool.MatchString(text) {
		return false, errors.NewType(text, "%q is not a boolean literal", text)
	}
	switch strings.ToLower(text) {
	case "yes", "true", "on":
		return true, nil
	}
	return false, nil
}

// Null is the null literal.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) Value() any     { return nil }
func (Null) String() string { return "null" }

// ParseNull decodes the null keyword.
func ParseNull(text string) (Null, error) {
	if !reNull.MatchString(text) {
		return Null{}, errors.NewType(text, "%q is not null", text)
	}
	return Null{}, nil
}

// Binary is a base64 encoded blob written between square brackets.
type Binary []byte

// NewBinary returns a copy of b as a Binary.
func NewBinary(b []byte) Binary {
	c := make([]byte, len(b))
	copy(c, b)
	return Binary(c)
}

func (b Binary) Kind() Kind { return KindBinary }
func (b Binary) Value() any { return []byte(b) }

// String encodes the blob, wrapping the base64 text at 75 columns. Wrapped
// blobs open and close the brackets on lines of their own.
func (b Binary) String() string {
	enc := base64.StdEncoding.EncodeToString(b)
	if len(enc) <= binaryWrap {
		return "[" + enc + "]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for len(enc) > 0 {
		n := min(binaryWrap, len(enc))
		sb.WriteString("    ")
		sb.WriteString(enc[:n])
		sb.WriteByte('\n')
		enc = enc[n:]
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseBinary decodes a bracketed base64 blob. Whitespace inside the
// brackets is ignored.
func ParseBinary(text string) (Binary, error) {
	m := reBinary.FindStringSubmatch(text)
	if m == nil {
		return nil, errors.NewType(text, "%q is not a binary literal", text)
	}
	b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(m[1]), ""))
	if err != nil {
		return nil, errors.NewType(text, "binary literal: %v", err)
	}
	return Binary(b), nil
}
