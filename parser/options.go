package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-sdl/literal"
)

// DefaultMaxDepth is the nesting depth allowed unless MaxDepth says
// otherwise.
const DefaultMaxDepth = 1000

// Option configures a Parser.
type Option func(*Parser) error

// WithRegistry classifies literals with r instead of literal.Default().
func WithRegistry(r *literal.Registry) Option {
	return func(p *Parser) error {
		if r == nil {
			return fmt.Errorf("sdl: literal registry must not be nil")
		}
		p.registry = r
		return nil
	}
}

// SkipComments drops comments instead of adding them to the tree.
func SkipComments() Option {
	return func(p *Parser) error {
		p.skipComments = true
		return nil
	}
}

// MaxDepth limits how deeply blocks may nest. This protects the recursive
// parser from stack exhaustion on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(p *Parser) error {
		if n <= 0 {
			return fmt.Errorf("sdl: max depth must be a positive integer")
		}
		p.maxDepth = n
		return nil
	}
}
