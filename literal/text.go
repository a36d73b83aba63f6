package literal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-sdl/errors"
)

var (
	reString    = regexp.MustCompile(`(?s)^"(.*)"$`)
	reRawString = regexp.MustCompile("(?s)^`([^`]*)`$")
	reChar      = regexp.MustCompile(`^'(\\u[0-9a-fA-F]{4}|\\.|[^'\\])'$`)
)

// String is a double quoted string literal.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) Value() any     { return string(s) }
func (s String) String() string { return `"` + escape(string(s), '"') + `"` }

// ParseString decodes a double quoted literal. A backslash at the end of a
// line continues the string on the next line with leading blanks removed.
func ParseString(text string) (String, error) {
	m := reString.FindStringSubmatch(text)
	if m == nil {
		return "", errors.NewType(text, "%q is not a string literal", text)
	}
	s, err := unescape(m[1])
	if err != nil {
		return "", errors.NewType(text, "%q: %v", text, err)
	}
	return String(s), nil
}

// RawString is a backtick quoted string. Its content is taken verbatim and
// may span lines.
type RawString string

func (s RawString) Kind() Kind     { return KindRawString }
func (s RawString) Value() any     { return string(s) }
func (s RawString) String() string { return "`" + string(s) + "`" }

// NewRawString returns s as a RawString. Raw strings must be valid UTF-8
// and cannot contain a backtick or a NUL.
func NewRawString(s string) (RawString, error) {
	if err := validRaw(s); err != nil {
		return "", err
	}
	return RawString(s), nil
}

// ParseRawString decodes a backtick quoted literal.
func ParseRawString(text string) (RawString, error) {
	m := reRawString.FindStringSubmatch(text)
	if m == nil {
		return "", errors.NewType(text, "%q is not a raw string literal", text)
	}
	return RawString(m[1]), nil
}

// Char is a single quoted character.
type Char rune

func (c Char) Kind() Kind     { return KindChar }
func (c Char) Value() any     { return rune(c) }
func (c Char) String() string { return "'" + escape(string(rune(c)), '\'') + "'" }

// ParseChar decodes a single quoted literal holding exactly one character.
func ParseChar(text string) (Char, error) {
	m := reChar.FindStringSubmatch(text)
	if m == nil {
		return 0, errors.NewType(text, "%q is not a character literal", text)
	}
	s, err := unescape(m[1])
	if err != nil || utf8.RuneCountInString(s) != 1 {
		return 0, errors.NewType(text, "%q is not a character literal", text)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

func escape(s string, quote rune) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case quote:
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 > len(s) {
				return "", fmt.Errorf("short unicode escape")
			}
			n, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("bad unicode escape %q", s[i-1:i+5])
			}
			b.WriteRune(rune(n))
			i += 4
		case '\r', '\n':
			// Line continuation: drop the break and the next line's indentation.
			if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			for i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t') {
				i++
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
