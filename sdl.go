package sdl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/mapper"
	"github.com/KimNorgaard/go-sdl/parser"
)

// Marshaler is the interface implemented by types that can build
// themselves into an SDL tag.
type Marshaler interface {
	MarshalSDL() (*ast.Tag, error)
}

// Unmarshaler is the interface implemented by types that can fill
// themselves from a parsed document.
type Unmarshaler interface {
	UnmarshalSDL(root *ast.Tag) error
}

// Marshal returns the SDL encoding of v.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse parses an SDL document and returns the root of its tree.
func Parse(data []byte, opts ...Option) (*ast.Tag, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	popts, err := o.parserOptions()
	if err != nil {
		return nil, err
	}
	return parser.Parse(data, popts...)
}

// Unmarshal parses data and stores the result in the value pointed to by v.
// An Unmarshaler receives the root tag; any other v must point to a struct,
// which is filled as described in package mapper.
func Unmarshal(data []byte, v any, opts ...Option) error {
	root, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalSDL(root)
	}
	return mapper.Decode(root, v)
}

// ParseString parses an SDL document held in a string.
func ParseString(s string, opts ...Option) (*ast.Tag, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*ast.Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sdl: reading input: %w", err)
	}
	return Parse(data, opts...)
}

// ParseFile parses the SDL document stored at path.
func ParseFile(path string, opts ...Option) (*ast.Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return Parse(data, opts...)
}
