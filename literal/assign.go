package literal

import (
	"fmt"
	"math"
	"reflect"

	"github.com/KimNorgaard/go-sdl/errors"
)

// Assign stores the value of l in the Go value dst points to. Numbers are
// range checked against the destination type, Null sets the zero value and
// pointers are allocated as needed.
func Assign(l Literal, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("sdl: Assign(non-pointer %T or nil)", dst)
	}
	return assign(l, rv.Elem())
}

func assign(l Literal, rv reflect.Value) error {
	if !rv.CanSet() {
		return fmt.Errorf("sdl: cannot set value of type %s", rv.Type())
	}
	mismatch := func() error {
		return errors.NewType(l.String(), "cannot assign %s literal to Go value of type %s", l.Kind(), rv.Type())
	}

	if _, ok := l.(Null); ok {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	if rv.Type().Implements(reflect.TypeOf((*Literal)(nil)).Elem()) && reflect.TypeOf(l).AssignableTo(rv.Type()) {
		rv.Set(reflect.ValueOf(l))
		return nil
	}

	switch rv.Type() {
	case timeType:
		switch x := l.(type) {
		case Date:
			rv.Set(reflect.ValueOf(x.t))
		case DateTime:
			rv.Set(reflect.ValueOf(x.t))
		default:
			return mismatch()
		}
		return nil
	case durationType:
		x, ok := l.(TimeSpan)
		if !ok {
			return mismatch()
		}
		rv.SetInt(int64(x))
		return nil
	case decimalType:
		d, ok := decimalOf(l)
		if !ok {
			return mismatch()
		}
		rv.Set(reflect.ValueOf(d))
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return assign(l, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch()
		}
		rv.Set(reflect.ValueOf(l.Value()))
		return nil
	case reflect.String:
		if !l.Kind().IsTextual() {
			return mismatch()
		}
		rv.SetString(textOf(l))
		return nil
	case reflect.Bool:
		b, ok := l.(Bool)
		if !ok {
			return mismatch()
		}
		rv.SetBool(bool(b))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := wholeNumber(l)
		if !ok {
			return mismatch()
		}
		if rv.OverflowInt(n) {
			return errors.NewType(l.String(), "integer value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := wholeNumber(l)
		if !ok {
			return mismatch()
		}
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return errors.NewType(l.String(), "integer value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		var f float64
		switch x := l.(type) {
		case Float:
			f = float64(x)
		case Double:
			f = float64(x)
		default:
			d, ok := decimalOf(l)
			if !ok {
				return mismatch()
			}
			f, _ = d.Float64()
		}
		if !math.IsInf(f, 0) && rv.OverflowFloat(f) {
			return errors.NewType(l.String(), "float value %g overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	case reflect.Slice:
		b, ok := l.(Binary)
		if !ok || rv.Type().Elem().Kind() != reflect.Uint8 {
			return mismatch()
		}
		rv.SetBytes(NewBinary(b))
		return nil
	}
	return mismatch()
}

// wholeNumber returns the value of an Int, Long or Char literal, or of a
// Decimal without a fraction.
func wholeNumber(l Literal) (int64, bool) {
	switch x := l.(type) {
	case Int:
		return int64(x), true
	case Long:
		return int64(x), true
	case Char:
		return int64(x), true
	case Decimal:
		if x.d.IsInteger() {
			n, ok := truncInt(x.d, -1<<63, 1<<63-1)
			return n, ok
		}
	}
	return 0, false
}
