package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// mode says which part of a tag a struct field maps to.
type mode int

const (
	childMode  mode = iota // child tags named after the field (default)
	attrMode               // ",attr": the attribute named after the field
	valueMode              // ",value": the first value
	valuesMode             // ",values": all values
)

// field represents a cached struct field.
type field struct {
	name      string
	idx       []int
	mode      mode
	omitEmpty bool
}

// fieldCache caches the fields of struct types, keyed by reflect.Type.
var fieldCache sync.Map

// cachedFields parses the sdl tags of a struct type once and returns its
// fields in declaration order. Unexported fields, embedded fields and fields
// tagged "-" are skipped.
func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}

	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("sdl")
		if tag == "-" {
			continue
		}

		f := field{idx: sf.Index, name: sf.Name}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		}
		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			switch strings.TrimSpace(opt) {
			case "omitempty":
				f.omitEmpty = true
			case "attr":
				f.mode = attrMode
			case "value":
				f.mode = valueMode
			case "values":
				f.mode = valuesMode
			}
		}
		fields = append(fields, f)
	}

	fieldCache.Store(t, fields)
	return fields
}
