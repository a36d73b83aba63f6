package sdl

import (
	"fmt"
	"io"
	"reflect"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/mapper"
)

// Encoder writes SDL documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the SDL encoding of v to the stream. v is an ast.Node, a
// Marshaler, or a struct mapped to tags as described in package mapper. A nameless root tag is written as its children, one per line;
// any other node is written followed by a newline.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	node, err := toNode(v)
	if err != nil {
		return err
	}
	return newFormatter(e.w, o).format(node)
}

func toNode(v any) (ast.Node, error) {
	switch n := v.(type) {
	case *ast.Tag:
		if n == nil {
			return nil, fmt.Errorf("sdl: cannot encode a nil tag")
		}
		return n, nil
	case *ast.Comment:
		if n == nil {
			return nil, fmt.Errorf("sdl: cannot encode a nil comment")
		}
		return n, nil
	case Marshaler:
		t, err := n.MarshalSDL()
		if err != nil {
			return nil, &MarshalerError{Type: reflect.TypeOf(v), Err: err}
		}
		if t == nil {
			return nil, &MarshalerError{Type: reflect.TypeOf(v), Err: fmt.Errorf("MarshalSDL returned a nil tag")}
		}
		return t, nil
	default:
		if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
			return nil, fmt.Errorf("sdl: cannot encode value of type %T", v)
		}
		t, err := mapper.Encode(v)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}
