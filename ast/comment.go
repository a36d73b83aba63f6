package ast

import (
	"fmt"
	"strings"
)

// CommentStyle selects the marker a comment is written with.
type CommentStyle int

const (
	SlashStyle CommentStyle = iota // "// comment"
	HashStyle                      // "# comment"
	DashStyle                      // "-- comment"
)

// Marker returns the line comment marker for s.
func (s CommentStyle) Marker() string {
	switch s {
	case HashStyle:
		return "#"
	case DashStyle:
		return "--"
	default:
		return "//"
	}
}

func (s CommentStyle) String() string { return s.Marker() }

// ParseCommentStyle accepts a marker ("//", "#", "--") or its name
// ("slash", "hash", "dash").
func ParseCommentStyle(s string) (CommentStyle, error) {
	switch s {
	case "//", "slash":
		return SlashStyle, nil
	case "#", "hash":
		return HashStyle, nil
	case "--", "dash":
		return DashStyle, nil
	}
	return 0, fmt.Errorf("sdl: unknown comment style %q", s)
}

// Comment is a comment node. It has no name, values, attributes or
// children.
type Comment struct {
	Text   string
	Style  CommentStyle
	parent *Tag
}

// NewComment returns a detached comment.
func NewComment(text string, style CommentStyle) *Comment {
	return &Comment{Text: text, Style: style}
}

// ParseComment converts the text of a comment token, marker included, into a
// Comment. Block comments keep one line of text per source line.
func ParseComment(raw string) *Comment {
	if body, ok := strings.CutPrefix(raw, "/*"); ok {
		body = strings.ReplaceAll(strings.TrimSuffix(body, "*/"), "\r", "")
		lines := strings.Split(body, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "*"))
		}
		for len(lines) > 0 && lines[0] == "" {
			lines = lines[1:]
		}
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		return &Comment{Text: strings.Join(lines, "\n")}
	}
	for _, style := range []CommentStyle{SlashStyle, HashStyle, DashStyle} {
		if body, ok := strings.CutPrefix(raw, style.Marker()); ok {
			return &Comment{Text: strings.TrimPrefix(body, " "), Style: style}
		}
	}
	return &Comment{Text: raw}
}

// Parent returns the tag holding c, or nil.
func (c *Comment) Parent() *Tag { return c.parent }

func (c *Comment) setParent(t *Tag) { c.parent = t }

// Lines returns the comment text split into lines.
func (c *Comment) Lines() []string {
	return strings.Split(c.Text, "\n")
}

// Format writes every line of c behind the marker of style.
func (c *Comment) Format(style CommentStyle) string {
	lines := c.Lines()
	for i, l := range lines {
		if l == "" {
			lines[i] = style.Marker()
			continue
		}
		lines[i] = style.Marker() + " " + l
	}
	return strings.Join(lines, "\n")
}

func (c *Comment) String() string {
	return c.Format(c.Style)
}
