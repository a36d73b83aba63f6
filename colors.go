package sdl

import (
	"strings"

	"github.com/fatih/color"

	"github.com/KimNorgaard/go-sdl/literal"
)

// ColorAttr names the part of a tag a color applies to.
type ColorAttr int

const (
	NameColor ColorAttr = iota
	AttrNameColor
	ValueColor
	SepColor
	CommentColor
)

// Colorable selects a color. Kind is only meaningful for ValueColor.
type Colorable struct {
	Kind literal.Kind
	Attr ColorAttr
}

// Colors maps parts of the encoding to ANSI color functions. Each function
// is called with the text to color as its only argument. A nil *Colors
// encodes without escape sequences.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	c.Map[Colorable{Attr: NameColor}] = color.RGB(74, 92, 138).SprintfFunc()
	c.Map[Colorable{Attr: AttrNameColor}] = color.RGB(196, 96, 16).SprintfFunc()
	c.Map[Colorable{Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	c.Map[Colorable{Attr: CommentColor}] = color.BlueString

	able := Colorable{Attr: ValueColor}
	for _, k := range []literal.Kind{literal.KindString, literal.KindRawString, literal.KindChar} {
		able.Kind = k
		c.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	for _, k := range []literal.Kind{
		literal.KindInt, literal.KindLong, literal.KindFloat,
		literal.KindDouble, literal.KindDecimal,
	} {
		able.Kind = k
		c.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for _, k := range []literal.Kind{literal.KindDate, literal.KindDateTime, literal.KindTimeSpan} {
		able.Kind = k
		c.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	}
	able.Kind = literal.KindBool
	c.Map[able] = color.CyanString
	able.Kind = literal.KindNull
	c.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = literal.KindBinary
	c.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range c.Map {
		c.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return c
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s with the color registered for k and a.
func (c *Colors) Color(k literal.Kind, a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(k, a)(s)
}

// Get returns the color function for k and a, or the default.
func (c *Colors) Get(k literal.Kind, a ColorAttr) func(string, ...any) string {
	if a != ValueColor {
		k = literal.KindInvalid
	}
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
