package mapper

import (
	"fmt"
	"reflect"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/literal"
)

// Decode fills the struct v points to from the values, attributes and
// children of t. Tags and attributes without a matching field are ignored.
func Decode(t *ast.Tag, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("sdl: Decode(non-pointer %T or nil)", v)
	}
	return decodeTag(t, rv.Elem())
}

// decodeTag allocates pointers as needed and fills the struct behind rv.
func decodeTag(t *ast.Tag, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || isScalar(rv.Type()) {
		return fmt.Errorf("sdl: cannot decode tag %q into Go value of type %s", t.Name(), rv.Type())
	}

	for _, f := range cachedFields(rv.Type()) {
		fv := rv.FieldByIndex(f.idx)
		var err error
		switch f.mode {
		case valueMode:
			if l := t.Value(); l != nil {
				err = assign(l, fv)
			}
		case valuesMode:
			err = assignAll(t.Values(), fv)
		case attrMode:
			if l := t.Attribute(f.name); l != nil {
				err = assign(l, fv)
			}
		default:
			if children := t.ChildrenByName(f.name); len(children) > 0 {
				err = decodeChildren(children, fv)
			}
		}
		if err != nil {
			return fmt.Errorf("field %s of %s: %w", f.name, rv.Type(), err)
		}
	}
	return nil
}

func decodeChildren(children []*ast.Tag, fv reflect.Value) error {
	ft := fv.Type()
	switch {
	case !isScalar(ft) && ft.Kind() == reflect.Slice:
		if isScalar(ft.Elem()) {
			return assignAll(children[0].Values(), fv)
		}
		s := reflect.MakeSlice(ft, len(children), len(children))
		for i, c := range children {
			if err := decodeTag(c, s.Index(i)); err != nil {
				return err
			}
		}
		fv.Set(s)
		return nil
	case !isScalar(ft):
		return decodeTag(children[0], fv)
	}
	if l := children[0].Value(); l != nil {
		return assign(l, fv)
	}
	return nil
}

func assign(l literal.Literal, fv reflect.Value) error {
	return literal.Assign(l, fv.Addr().Interface())
}

func assignAll(values []literal.Literal, fv reflect.Value) error {
	if fv.Kind() != reflect.Slice || fv.Type().Elem().Kind() == reflect.Uint8 {
		return fmt.Errorf("sdl: cannot decode values into Go value of type %s", fv.Type())
	}
	s := reflect.MakeSlice(fv.Type(), len(values), len(values))
	for i, l := range values {
		if err := assign(l, s.Index(i)); err != nil {
			return err
		}
	}
	fv.Set(s)
	return nil
}
