package literal

import (
	"math"
	"reflect"
	"time"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/shopspring/decimal"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	decimalType  = reflect.TypeOf(decimal.Decimal{})
)

// FromNative returns the default literal for a Go value. Integers become
// Int when they fit in 32 bits and Long otherwise, float32 becomes Float
// and float64 Double. Pointers are followed and nil becomes Null.
// Aggregates such as maps, structs and slices other than []byte fail with a
// Type error naming the Go type, as do strings that are not valid UTF-8 and
// times outside the years 0000 to 9999.
func FromNative(v any) (Literal, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Literal:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		if err := validText(x); err != nil {
			return nil, err
		}
		return String(x), nil
	case []byte:
		return NewBinary(x), nil
	case time.Time:
		return dateTime(x)
	case time.Duration:
		return NewTimeSpan(x), nil
	case decimal.Decimal:
		return NewDecimal(x), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(v reflect.Value) (Literal, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Null{}, nil
		}
		v = v.Elem()
	}

	switch v.Type() {
	case timeType:
		return dateTime(v.Interface().(time.Time))
	case durationType:
		return NewTimeSpan(time.Duration(v.Int())), nil
	case decimalType:
		return NewDecimal(v.Interface().(decimal.Decimal)), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool()), nil
	case reflect.String:
		if err := validText(v.String()); err != nil {
			return nil, err
		}
		return String(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if n > math.MaxInt64 {
			return nil, errors.NewType(v.Type().String(), "unsigned value %d overflows a long literal", n)
		}
		return integer(int64(n)), nil
	case reflect.Float32:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.NewType(v.Type().String(), "%v has no literal form", f)
		}
		return Float(f), nil
	case reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.NewType(v.Type().String(), "%v has no literal form", f)
		}
		return Double(f), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return NewBinary(v.Bytes()), nil
		}
	}
	return nil, errors.NewType(v.Type().String(), "no literal kind for Go type %s", v.Type())
}

func dateTime(t time.Time) (Literal, error) {
	d, err := NewDateTime(t)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func integer(n int64) Literal {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return Long(n)
	}
	return Int(n)
}

// FromValue returns a literal of the given kind holding v.
func FromValue(kind Kind, v any) (Literal, error) {
	l, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	return Cast(l, kind)
}

// Replace returns a literal of the same kind as l holding v.
func Replace(l Literal, v any) (Literal, error) {
	return FromValue(l.Kind(), v)
}
