package sdl

import (
	"fmt"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/literal"
	"github.com/KimNorgaard/go-sdl/parser"
)

const defaultIndent = 4

// Option configures parsing and encoding. Options that do not apply to an
// operation are ignored by it.
type Option func(*options) error

type options struct {
	indent   *int
	style    *ast.CommentStyle
	colors   *Colors
	ignoreTZ bool
	registry *literal.Registry
	parser   []parser.Option
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// parserOptions returns the options for a parser.Parser.
func (o *options) parserOptions() ([]parser.Option, error) {
	popts := append([]parser.Option(nil), o.parser...)
	switch {
	case o.registry != nil:
		popts = append(popts, parser.WithRegistry(o.registry))
	case o.ignoreTZ:
		r, err := literal.NewRegistry(literal.IgnoreTimezone())
		if err != nil {
			return nil, err
		}
		popts = append(popts, parser.WithRegistry(r))
	}
	return popts, nil
}

// Indent sets the number of spaces per nesting level. Zero writes children
// flush left. The default is 4.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("sdl: indent must be a non-negative integer")
		}
		o.indent = &n
		return nil
	}
}

// Style writes every comment with the given marker. Without it each comment
// keeps the marker it was created with.
func Style(s ast.CommentStyle) Option {
	return func(o *options) error {
		if s < ast.SlashStyle || s > ast.DashStyle {
			return fmt.Errorf("sdl: unknown comment style %d", s)
		}
		o.style = &s
		return nil
	}
}

// WithColors adds ANSI colors to the encoding.
func WithColors(c *Colors) Option {
	return func(o *options) error {
		o.colors = c
		return nil
	}
}

// IgnoreTimezone accepts datetime literals carrying a zone and discards
// the zone. It has no effect together with WithRegistry.
func IgnoreTimezone() Option {
	return func(o *options) error {
		o.ignoreTZ = true
		return nil
	}
}

// WithRegistry classifies literals with r.
func WithRegistry(r *literal.Registry) Option {
	return func(o *options) error {
		if r == nil {
			return fmt.Errorf("sdl: literal registry must not be nil")
		}
		o.registry = r
		return nil
	}
}

// SkipComments drops comments while parsing.
func SkipComments() Option {
	return func(o *options) error {
		o.parser = append(o.parser, parser.SkipComments())
		return nil
	}
}

// MaxDepth limits how deeply blocks may nest while parsing.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("sdl: max depth must be a positive integer")
		}
		o.parser = append(o.parser, parser.MaxDepth(n))
		return nil
	}
}
