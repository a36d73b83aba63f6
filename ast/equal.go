package ast

import "github.com/KimNorgaard/go-sdl/literal"

// Equal reports whether a and b are structurally equal: same names, values
// and attributes, and equal children in the same order. Attribute order and
// comment styles are ignored.
//
// Adjacent comments are written as one run of comment lines and the parser
// reads such a run back as a single comment. A tree holding two comments
// side by side is therefore not equal to the tree parsed from its encoding;
// the texts of both are joined with a newline instead.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Tag:
		y, ok := b.(*Tag)
		return ok && tagsEqual(x, y)
	case *Comment:
		y, ok := b.(*Comment)
		return ok && x.Text == y.Text
	}
	return a == nil && b == nil
}

func tagsEqual(a, b *Tag) bool {
	if a.name != b.name || len(a.values) != len(b.values) || len(a.attrs) != len(b.attrs) || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.values {
		if !literal.Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	for name, l := range a.attrs {
		m, ok := b.attrs[name]
		if !ok || !literal.Equal(l, m) {
			return false
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
