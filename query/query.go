// Package query selects tags from a document tree with slash separated
// paths:
//
//	/library/shelf/book[attrs.year > 1980]
//
// Each step names the tags to match among the children of the current
// tags; "*" matches any tag. A path starting with "/" is resolved from the
// root of the tree, any other path from the tag it is applied to.
//
// A step may carry any number of bracketed predicates, written in the
// expression language of github.com/expr-lang/expr and evaluated against
// each candidate tag. The following names are available:
//
//	name      the tag name
//	value     the first value, or nil
//	values    all values
//	attrs     the attributes by name
//	attr(n)   the attribute n, or nil
//	has(n)    whether attribute n is set
//	child(n)  the first value of the first child tag named n, or nil
//	count(n)  the number of child tags named n
//	num(v)    v converted to a float64
//
// Values are the Go values of the literals: dates and datetimes are
// time.Time, timespans time.Duration and decimals decimal.Decimal.
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/KimNorgaard/go-sdl/ast"
)

// Wildcard matches a tag of any name.
const Wildcard = "*"

// Selector is a compiled path. It is safe for concurrent use.
type Selector struct {
	src      string
	absolute bool
	steps    []step
}

type step struct {
	name  string
	preds []predicate
}

type predicate struct {
	src string
	prg *vm.Program
}

// Compile parses path and compiles its predicates.
func Compile(path string) (*Selector, error) {
	s := &Selector{src: path}
	rest := path
	if strings.HasPrefix(rest, "/") {
		s.absolute = true
		rest = rest[1:]
	}
	segs, err := split(rest)
	if err != nil {
		return nil, fmt.Errorf("sdl: query %q: %w", path, err)
	}
	for _, seg := range segs {
		st, err := compileStep(seg)
		if err != nil {
			return nil, fmt.Errorf("sdl: query %q: %w", path, err)
		}
		s.steps = append(s.steps, st)
	}
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("sdl: query %q: empty path", path)
	}
	return s, nil
}

// MustCompile is like Compile but panics if path cannot be compiled.
func MustCompile(path string) *Selector {
	s, err := Compile(path)
	if err != nil {
		panic(err)
	}
	return s
}

// Select compiles path and applies it to t.
func Select(t *ast.Tag, path string) ([]*ast.Tag, error) {
	s, err := Compile(path)
	if err != nil {
		return nil, err
	}
	return s.Select(t)
}

func (s *Selector) String() string { return s.src }

// Select returns the matching tags in document order.
func (s *Selector) Select(t *ast.Tag) ([]*ast.Tag, error) {
	if s.absolute {
		t = t.Root()
	}
	current := []*ast.Tag{t}
	for _, st := range s.steps {
		var next []*ast.Tag
		for _, c := range current {
			for _, child := range c.Tags() {
				ok, err := st.match(child)
				if err != nil {
					return nil, fmt.Errorf("sdl: query %q: %w", s.src, err)
				}
				if ok {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			return nil, nil
		}
		current = next
	}
	return current, nil
}

// First returns the first matching tag, or nil.
func (s *Selector) First(t *ast.Tag) (*ast.Tag, error) {
	tags, err := s.Select(t)
	if err != nil || len(tags) == 0 {
		return nil, err
	}
	return tags[0], nil
}

func (st step) match(t *ast.Tag) (bool, error) {
	if st.name != Wildcard && st.name != t.Name() {
		return false, nil
	}
	if len(st.preds) == 0 {
		return true, nil
	}
	e := newEnv(t)
	for _, p := range st.preds {
		out, err := expr.Run(p.prg, e)
		if err != nil {
			return false, fmt.Errorf("predicate [%s] on %q: %w", p.src, t.Name(), err)
		}
		if ok, _ := out.(bool); !ok {
			return false, nil
		}
	}
	return true, nil
}

func compileStep(seg string) (step, error) {
	name, rest, _ := strings.Cut(seg, "[")
	if rest != "" {
		rest = "[" + rest
	}
	name = strings.TrimSpace(name)
	if name != Wildcard && !ast.IsValidIdentifier(name) {
		return step{}, fmt.Errorf("invalid step name %q", name)
	}
	st := step{name: name}
	for rest != "" {
		src, tail, err := cutPredicate(rest)
		if err != nil {
			return step{}, err
		}
		prg, err := expr.Compile(src, exprOpts()...)
		if err != nil {
			return step{}, fmt.Errorf("predicate [%s]: %w", src, err)
		}
		st.preds = append(st.preds, predicate{src: src, prg: prg})
		rest = strings.TrimSpace(tail)
	}
	return st, nil
}

// split cuts a path at slashes that are outside predicates.
func split(path string) ([]string, error) {
	var (
		segs  []string
		start int
		depth int
		quote rune
	)
	for i := 0; i < len(path); i++ {
		c := rune(path[i])
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			if depth > 0 {
				quote = c
			}
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ']' at offset %d", i)
			}
		case c == '/' && depth == 0:
			if i == start {
				return nil, fmt.Errorf("empty step at offset %d", i)
			}
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	if depth != 0 || quote != 0 {
		return nil, fmt.Errorf("unterminated predicate")
	}
	if start < len(path) {
		segs = append(segs, path[start:])
	} else if start > 0 {
		return nil, fmt.Errorf("trailing '/'")
	}
	return segs, nil
}

// cutPredicate returns the body of the bracketed predicate s starts with
// and the text after it.
func cutPredicate(s string) (string, string, error) {
	if !strings.HasPrefix(s, "[") {
		return "", "", fmt.Errorf("unexpected %q after predicate", s)
	}
	depth := 0
	var quote rune
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				body := strings.TrimSpace(s[1:i])
				if body == "" {
					return "", "", fmt.Errorf("empty predicate")
				}
				return body, s[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("unterminated predicate")
}
