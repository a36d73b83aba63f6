package sdl

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/literal"
)

// formatter writes an SDL tree to an output stream.
type formatter struct {
	w      io.Writer
	indent string
	depth  int
	opts   *options
}

func newFormatter(w io.Writer, opts *options) *formatter {
	spaces := defaultIndent
	if opts.indent != nil {
		spaces = *opts.indent
	}
	return &formatter{w: w, indent: strings.Repeat(" ", spaces), opts: opts}
}

func (f *formatter) format(node ast.Node) error {
	t, ok := node.(*ast.Tag)
	if ok && t.IsRoot() && t.Name() == "" {
		return f.writeChildren(t)
	}
	if err := f.writeNode(node); err != nil {
		return err
	}
	return f.write("\n")
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writeIndent() error {
	return f.write(strings.Repeat(f.indent, f.depth))
}

func (f *formatter) writeChildren(t *ast.Tag) error {
	for _, child := range t.Children() {
		if err := f.writeIndent(); err != nil {
			return err
		}
		if err := f.writeNode(child); err != nil {
			return err
		}
		if err := f.write("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Tag:
		return f.writeTag(n)
	case *ast.Comment:
		return f.writeComment(n)
	default:
		return fmt.Errorf("sdl: unsupported node type for formatting: %T", n)
	}
}

func (f *formatter) writeTag(t *ast.Tag) error {
	var parts []string
	if !t.ElideName() {
		parts = append(parts, f.color(literal.KindInvalid, NameColor, t.Name()))
	}
	var prev literal.Literal
	for _, v := range t.Values() {
		s, err := f.value(v, prev)
		if err != nil {
			return fmt.Errorf("sdl: cannot encode value of %q: %w", t.Name(), err)
		}
		parts = append(parts, s)
		prev = v
	}
	for _, name := range t.AttributeNames() {
		s, err := f.value(t.Attribute(name), nil)
		if err != nil {
			return fmt.Errorf("sdl: cannot encode attribute %s of %q: %w", name, t.Name(), err)
		}
		parts = append(parts, f.color(literal.KindInvalid, AttrNameColor, name)+
			f.color(literal.KindInvalid, SepColor, "=")+s)
	}
	if err := f.write(strings.Join(parts, " ")); err != nil {
		return err
	}
	if !t.HasChildren() {
		return nil
	}
	if err := f.write(" " + f.color(literal.KindInvalid, SepColor, "{") + "\n"); err != nil {
		return err
	}
	f.depth++
	if err := f.writeChildren(t); err != nil {
		return err
	}
	f.depth--
	if err := f.writeIndent(); err != nil {
		return err
	}
	return f.write(f.color(literal.KindInvalid, SepColor, "}"))
}

// value encodes v, which follows prev in the list of values. Continuation
// lines of wrapped binary blobs are indented to the current depth.
func (f *formatter) value(v, prev literal.Literal) (string, error) {
	if err := literal.Validate(v); err != nil {
		return "", err
	}
	s := v.String()
	switch x := v.(type) {
	case literal.TimeSpan:
		if prev != nil {
			s = x.StringAfter(prev)
		}
	case literal.Binary:
		if strings.Contains(s, "\n") {
			s = strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(f.indent, f.depth))
		}
	}
	return f.color(v.Kind(), ValueColor, s), nil
}

func (f *formatter) writeComment(c *ast.Comment) error {
	style := c.Style
	if f.opts.style != nil {
		style = *f.opts.style
	}
	lines := strings.Split(c.Format(style), "\n")
	for i, l := range lines {
		if i > 0 {
			if err := f.write("\n"); err != nil {
				return err
			}
			if err := f.writeIndent(); err != nil {
				return err
			}
		}
		if err := f.write(f.color(literal.KindInvalid, CommentColor, l)); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) color(k literal.Kind, a ColorAttr, s string) string {
	return f.opts.colors.Color(k, a, s)
}
