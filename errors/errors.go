// Package errors defines the error taxonomy shared by the SDL lexer, parser,
// literal registry and tag tree.
package errors

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	// Structural reports unbalanced braces, a brace closed at the top level
	// or any other malformed nesting.
	Structural Kind = iota + 1
	// InvalidIdentifier reports a tag or attribute name that does not satisfy
	// the identifier grammar.
	InvalidIdentifier
	// Type reports a value or token that cannot be mapped to a literal kind.
	Type
	// NotImplemented reports input the library knowingly does not support,
	// such as datetime literals carrying a timezone.
	NotImplemented
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural error"
	case InvalidIdentifier:
		return "invalid identifier"
	case Type:
		return "type error"
	case NotImplemented:
		return "not implemented"
	default:
		return "error"
	}
}

// Error represents a single failure. Line is zero when the position is
// unknown, for instance when a setter is called on a programmatically built
// tree.
type Error struct {
	Kind    Kind
	Message string
	Text    string
	Line    int
}

// Sentinels for use with errors.Is.
var (
	ErrStructural        = &Error{Kind: Structural}
	ErrInvalidIdentifier = &Error{Kind: InvalidIdentifier}
	ErrType              = &Error{Kind: Type}
	ErrNotImplemented    = &Error{Kind: NotImplemented}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Line > 0 {
		return fmt.Sprintf("sdl: %s at line %d: %s", e.Kind, e.Line, msg)
	}
	return fmt.Sprintf("sdl: %s: %s", e.Kind, msg)
}

// Is reports whether target is a sentinel of the same kind, or an identical
// error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" && t.Text == "" && t.Line == 0 {
		return t.Kind == e.Kind
	}
	return *t == *e
}

// NewStructural returns a Structural error at line.
func NewStructural(line int, format string, args ...any) *Error {
	return &Error{Kind: Structural, Message: fmt.Sprintf(format, args...), Line: line}
}

// NewInvalidIdentifier returns an InvalidIdentifier error for text.
func NewInvalidIdentifier(text string, line int) *Error {
	return &Error{
		Kind:    InvalidIdentifier,
		Message: fmt.Sprintf("%q is not a valid identifier", text),
		Text:    text,
		Line:    line,
	}
}

// NewMissingName returns an InvalidIdentifier error for an '=' at line
// with no attribute name in front of it.
func NewMissingName(line int) *Error {
	return &Error{
		Kind:    InvalidIdentifier,
		Message: "missing attribute name before '='",
		Text:    "=",
		Line:    line,
	}
}

// NewType returns a Type error naming the offending token or value kind.
func NewType(text string, format string, args ...any) *Error {
	return &Error{Kind: Type, Message: fmt.Sprintf(format, args...), Text: text}
}

// NewNotImplemented returns a NotImplemented error.
func NewNotImplemented(text string, format string, args ...any) *Error {
	return &Error{Kind: NotImplemented, Message: fmt.Sprintf(format, args...), Text: text}
}

// AtLine returns a copy of err positioned at line when err is an *Error
// without a position. Other errors are returned unchanged.
func AtLine(err error, line int) error {
	e, ok := err.(*Error)
	if !ok || e.Line != 0 || line <= 0 {
		return err
	}
	c := *e
	c.Line = line
	return &c
}
