package mapper

import (
	"fmt"
	"reflect"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/literal"
)

// Encode returns a nameless root tag built from the struct v, or the struct
// v points to. It is the inverse of Decode.
func Encode(v any) (*ast.Tag, error) {
	root := ast.NewRoot()
	if err := EncodeInto(root, v); err != nil {
		return nil, err
	}
	return root, nil
}

// EncodeInto adds the fields of the struct v to t.
func EncodeInto(t *ast.Tag, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return fmt.Errorf("sdl: cannot encode nil %T", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || isScalar(rv.Type()) {
		return fmt.Errorf("sdl: cannot encode Go value of type %s as a tag", rv.Type())
	}
	e := &encoder{maxDepth: DefaultMaxDepth}
	return e.encodeStruct(t, rv, 0)
}

type encoder struct {
	maxDepth int
}

func (e *encoder) encodeStruct(t *ast.Tag, rv reflect.Value, depth int) error {
	if depth > e.maxDepth {
		return fmt.Errorf("sdl: exceeded max depth of %d encoding %s", e.maxDepth, rv.Type())
	}
	for _, f := range cachedFields(rv.Type()) {
		fv := rv.FieldByIndex(f.idx)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		var err error
		switch f.mode {
		case valueMode:
			var l literal.Literal
			if l, err = literal.FromNative(fv.Interface()); err == nil {
				t.AddValue(l)
			}
		case valuesMode:
			err = e.encodeValues(t, fv)
		case attrMode:
			err = t.SetNativeAttribute(f.name, fv.Interface())
		default:
			err = e.encodeChild(t, f.name, fv, depth)
		}
		if err != nil {
			return fmt.Errorf("field %s of %s: %w", f.name, rv.Type(), err)
		}
	}
	return nil
}

func (e *encoder) encodeValues(t *ast.Tag, fv reflect.Value) error {
	if fv.Kind() != reflect.Slice && fv.Kind() != reflect.Array {
		return fmt.Errorf("sdl: cannot encode Go value of type %s as values", fv.Type())
	}
	for i := 0; i < fv.Len(); i++ {
		if err := t.AddNativeValues(fv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeChild(t *ast.Tag, name string, fv reflect.Value, depth int) error {
	ft := fv.Type()
	if isScalar(ft) {
		_, err := t.CreateChild(name, fv.Interface())
		return err
	}
	if ft.Kind() == reflect.Slice || ft.Kind() == reflect.Array {
		if isScalar(ft.Elem()) {
			c, err := t.CreateChild(name)
			if err != nil {
				return err
			}
			return e.encodeValues(c, fv)
		}
		for i := 0; i < fv.Len(); i++ {
			if err := e.encodeNested(t, name, fv.Index(i), depth); err != nil {
				return err
			}
		}
		return nil
	}
	return e.encodeNested(t, name, fv, depth)
}

// encodeNested adds a child tag holding the struct behind fv. Nil pointers
// add nothing.
func (e *encoder) encodeNested(t *ast.Tag, name string, fv reflect.Value, depth int) error {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	if fv.Kind() != reflect.Struct {
		return fmt.Errorf("sdl: cannot encode Go value of type %s as a tag", fv.Type())
	}
	c, err := t.CreateChild(name)
	if err != nil {
		return err
	}
	return e.encodeStruct(c, fv, depth+1)
}
