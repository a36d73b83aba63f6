package literal

import (
	stderrors "errors"
	"fmt"
	"regexp"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/internal/debug"
)

// Entry pairs a pattern with the function that decodes text matching it.
type Entry struct {
	Name    string
	Pattern *regexp.Regexp
	Parse   func(text string) (Literal, error)
}

// Registry classifies literal tokens. Built-in kinds are tried first in a
// fixed order, then registered entries, then the boolean and null keywords.
// The zero value is not usable; create registries with NewRegistry.
type Registry struct {
	builtin  []Entry
	custom   []Entry
	keywords []Entry
	ignoreTZ bool
	readOnly bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry) error

// IgnoreTimezone makes the registry accept datetime literals with a timezone
// suffix. The zone is discarded and the time is read as UTC.
func IgnoreTimezone() RegistryOption {
	return func(r *Registry) error {
		r.ignoreTZ = true
		return nil
	}
}

// WithEntry registers e on the new registry.
func WithEntry(e Entry) RegistryOption {
	return func(r *Registry) error {
		return r.Register(e)
	}
}

var defaultRegistry = newDefault()

func newDefault() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	r.readOnly = true
	return r
}

// Default returns the shared registry holding the built-in kinds. It cannot
// be extended.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.builtin = []Entry{
		entry("string", reString, ParseString),
		entry("raw string", reRawString, ParseRawString),
		entry("char", reChar, ParseChar),
		entry("binary", reBinary, ParseBinary),
		entry("decimal", reDecimal, ParseDecimal),
		entry("double", reDouble, ParseDouble),
		entry("float", reFloat, ParseFloat),
		{Name: "int", Pattern: reInt, Parse: classifyInteger},
		entry("long", reLong, ParseLong),
		{Name: "datetime", Pattern: reDateTime, Parse: func(text string) (Literal, error) {
			return parseDateTime(text, r.ignoreTZ)
		}},
		entry("date", reDate, ParseDate),
		entry("timespan", reTimeSpan, ParseTimeSpan),
	}
	r.keywords = []Entry{
		entry("bool", reBool, ParseBool),
		entry("null", reNull, ParseNull),
	}
	return r, nil
}

func entry[T Literal](name string, re *regexp.Regexp, parse func(string) (T, error)) Entry {
	return Entry{Name: name, Pattern: re, Parse: func(text string) (Literal, error) {
		l, err := parse(text)
		if err != nil {
			return nil, err
		}
		return l, nil
	}}
}

// Register adds e after the built-in kinds and any earlier entries, ahead of
// the boolean and null keywords.
func (r *Registry) Register(e Entry) error {
	if r.readOnly {
		return fmt.Errorf("sdl: the default literal registry is read-only")
	}
	if e.Pattern == nil || e.Parse == nil {
		return fmt.Errorf("sdl: literal entry %q needs a pattern and a parse function", e.Name)
	}
	r.custom = append(r.custom, e)
	return nil
}

// IgnoresTimezone reports whether zone suffixed datetimes are accepted.
func (r *Registry) IgnoresTimezone() bool {
	return r.ignoreTZ
}

// Names returns the entry names in the order they are tried.
func (r *Registry) Names() []string {
	var names []string
	for _, group := range [][]Entry{r.builtin, r.custom, r.keywords} {
		for _, e := range group {
			names = append(names, e.Name)
		}
	}
	return names
}

// Parse classifies text. Text that matches no entry, or that a matching
// entry cannot decode, becomes a String holding text as is. Only
// NotImplemented errors are returned.
func (r *Registry) Parse(text string) (Literal, error) {
	l, err := r.classify(text)
	if err == nil {
		return l, nil
	}
	if stderrors.Is(err, errors.ErrNotImplemented) {
		return nil, err
	}
	if debug.Literal() {
		debug.Logger().Debugw("literal falls back to string", "text", text, "reason", err)
	}
	return String(text), nil
}

// ParseStrict classifies text and fails with a Type error when no entry
// matches or the matching entry cannot decode it.
func (r *Registry) ParseStrict(text string) (Literal, error) {
	return r.classify(text)
}

func (r *Registry) classify(text string) (Literal, error) {
	var firstErr error
	for _, group := range [][]Entry{r.builtin, r.custom, r.keywords} {
		for _, e := range group {
			if !e.Pattern.MatchString(text) {
				continue
			}
			l, err := e.Parse(text)
			if err == nil {
				return l, nil
			}
			if stderrors.Is(err, errors.ErrNotImplemented) {
				return nil, err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, errors.NewType(text, "no literal kind matches %q", text)
}
