// Package mapper maps SDL tag trees onto Go structs and back.
//
// Struct fields are matched by the sdl struct tag, or by the field name
// when the tag gives none:
//
//	type Server struct {
//		Host    string        `sdl:",value"`
//		Port    int           `sdl:"port,attr"`
//		Aliases []string      `sdl:"alias,values"`
//		Limits  *Limits       `sdl:"limits"`
//		Routes  []Route       `sdl:"route"`
//		Timeout time.Duration `sdl:"timeout,omitempty"`
//	}
//
// ",value" binds the first value of the tag, ",values" all of them and
// ",attr" the attribute of the given name. Any other field binds the child
// tags of that name: structs are filled from the first such child, slices of
// structs from all of them, and scalars from the values of the first child.
// Scalars are converted with the literal package.
package mapper

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KimNorgaard/go-sdl/literal"
)

// DefaultMaxDepth bounds the nesting of structs during encoding.
const DefaultMaxDepth = 1000

var (
	literalType = reflect.TypeFor[literal.Literal]()
	timeType    = reflect.TypeFor[time.Time]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
)

// isScalar reports whether values of t are held by a single literal rather
// than by a tag of their own.
func isScalar(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(literalType) || t == timeType || t == decimalType {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		return false
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	}
	return true
}

// isEmptyValue reports whether v is empty: false, 0, a nil pointer, a nil
// interface value, any empty array, slice, map or string, or a value whose
// IsZero method reports true.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	if z, ok := v.Interface().(interface{ IsZero() bool }); ok {
		return z.IsZero()
	}
	return false
}
