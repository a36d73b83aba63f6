package ast

import (
	"testing"
	"time"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/literal"
	"github.com/stretchr/testify/require"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"foo:bar", true},
		{"Foo:Bar", true},
		{"Foo:b.ar$", true},
		{"foob-ar$", true},
		{"_fizz", true},
		{"ünïcode", true},
		{"@foo", false},
		{"~far", false},
		{"!faz", false},
		{"", false},
		{"1abc", false},
		{"foo:", false},
		{":foo", false},
		{"a:b:c", false},
		{"foo bar", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, IsValidIdentifier(tt.input))
		})
	}
}

func TestSetNameKeepsPreviousNameOnFailure(t *testing.T) {
	tag, err := NewTag("foo")
	require.NoError(t, err)

	err = tag.SetName("@foo")
	require.ErrorIs(t, err, errors.ErrInvalidIdentifier)
	require.ErrorContains(t, err, "@foo")
	require.Equal(t, "foo", tag.Name())

	require.NoError(t, tag.SetName("ns:bar"))
	require.Equal(t, "ns", tag.Namespace())
	require.Equal(t, "bar", tag.LocalName())

	_, err = NewTag("~far")
	require.ErrorIs(t, err, errors.ErrInvalidIdentifier)
}

func TestValues(t *testing.T) {
	tag, err := NewTag("point", 1, 2.5, "x")
	require.NoError(t, err)
	require.Equal(t, []literal.Literal{literal.Int(1), literal.Double(2.5), literal.String("x")}, tag.Values())
	require.Equal(t, literal.Int(1), tag.Value())
	require.Equal(t, []any{int32(1), 2.5, "x"}, tag.NativeValues())

	require.NoError(t, tag.SetValueAt(2, literal.Bool(true)))
	require.Error(t, tag.SetValueAt(3, literal.Null{}))

	require.NoError(t, tag.ReplaceValueAt(1, 7))
	require.Equal(t, literal.Double(7), tag.Values()[1])

	tag.SetValues(literal.Long(3), literal.Long(4))
	var a, b int
	require.NoError(t, tag.ScanValues(&a, &b))
	require.Equal(t, 3, a)
	require.Equal(t, 4, b)

	require.NoError(t, tag.SetNativeValue(time.Minute))
	require.Equal(t, []literal.Literal{literal.TimeSpan(time.Minute)}, tag.Values())

	err = tag.AddNativeValues(1, map[string]int{})
	require.ErrorIs(t, err, errors.ErrType)
	require.Len(t, tag.Values(), 1)

	var empty Tag
	require.Nil(t, empty.Value())
}

func TestAttributes(t *testing.T) {
	tag, err := NewTag("connection")
	require.NoError(t, err)

	require.NoError(t, tag.SetNativeAttribute("charset", "UTF-8"))
	require.NoError(t, tag.SetAttribute("timeout", literal.Int(30)))
	require.NoError(t, tag.SetAttribute("charset", literal.String("latin1")))
	require.Equal(t, []string{"charset", "timeout"}, tag.AttributeNames())
	require.True(t, tag.HasAttribute("timeout"))
	require.Equal(t, literal.String("latin1"), tag.Attribute("charset"))
	require.Nil(t, tag.Attribute("missing"))
	require.Equal(t, map[string]any{"charset": "latin1", "timeout": int32(30)}, tag.NativeAttributes())

	err = tag.SetAttribute("!bad", literal.Null{})
	require.ErrorIs(t, err, errors.ErrInvalidIdentifier)

	require.True(t, tag.RemoveAttribute("charset"))
	require.False(t, tag.RemoveAttribute("charset"))
	require.Equal(t, []string{"timeout"}, tag.AttributeNames())

	require.Equal(t, "connection timeout=30", tag.String())
}

func TestChildren(t *testing.T) {
	root := NewRoot()
	require.True(t, root.IsRoot())

	db, err := root.CreateChild("database")
	require.NoError(t, err)
	root.AddComment("users live here", SlashStyle)
	users, err := root.CreateChild("table", "users")
	require.NoError(t, err)
	posts, err := root.CreateChild("table", "posts")
	require.NoError(t, err)

	require.Len(t, root.Children(), 4)
	require.Equal(t, []*Tag{db, users, posts}, root.Tags())
	require.Equal(t, []*Tag{users, posts}, root.ChildrenByName("table"))
	require.Same(t, users, root.Child("table"))
	require.Nil(t, root.Child("missing"))
	require.Same(t, root, posts.Parent())
	require.False(t, posts.IsRoot())

	col, err := users.CreateChild("column", "id")
	require.NoError(t, err)
	require.Same(t, root, col.Root())
	require.True(t, users.HasChildren())

	require.True(t, root.RemoveChild(posts))
	require.Nil(t, posts.Parent())
	require.False(t, root.RemoveChild(posts))
	require.Len(t, root.Tags(), 2)

	// Moving a node detaches it from its previous parent.
	require.NoError(t, db.AddChild(col))
	require.Same(t, db, col.Parent())
	require.False(t, users.HasChildren())

	require.ErrorIs(t, col.AddChild(root), errors.ErrStructural)
	require.ErrorIs(t, db.AddChild(db), errors.ErrStructural)

	var names []string
	root.Walk(func(t *Tag) bool {
		names = append(names, t.Name())
		return true
	})
	require.Equal(t, []string{"", "database", "column", "table"}, names)
}

func TestAnonymousString(t *testing.T) {
	tag, err := NewTag(ContentName, "hello", 5)
	require.NoError(t, err)
	require.True(t, tag.IsAnonymous())
	require.Equal(t, `"hello" 5`, tag.String())

	tag.SetValues()
	require.Equal(t, "content", tag.String())

	keyword, err := NewTag(ContentName, true, nil)
	require.NoError(t, err)
	require.False(t, keyword.ElideName())
	require.Equal(t, "content yes null", keyword.String())
}

func TestComments(t *testing.T) {
	tests := []struct {
		raw   string
		text  string
		style CommentStyle
	}{
		{"// hello", "hello", SlashStyle},
		{"# hello", "hello", HashStyle},
		{"-- hello", "hello", DashStyle},
		{"//", "", SlashStyle},
		{"/* one\n * two\n */", "one\ntwo", SlashStyle},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := ParseComment(tt.raw)
			require.Equal(t, tt.text, c.Text)
			require.Equal(t, tt.style, c.Style)
		})
	}

	c := NewComment("first\n\nthird", HashStyle)
	require.Equal(t, "# first\n#\n# third", c.String())
	require.Equal(t, "-- first\n--\n-- third", c.Format(DashStyle))

	for _, s := range []string{"//", "#", "--", "slash", "hash", "dash"} {
		_, err := ParseCommentStyle(s)
		require.NoError(t, err)
	}
	_, err := ParseCommentStyle("%")
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	build := func(order []string) *Tag {
		root := NewRoot()
		c, _ := root.CreateChild("conn", "db")
		for _, name := range order {
			_ = c.SetNativeAttribute(name, name)
		}
		root.AddComment("note", HashStyle)
		return root
	}

	a := build([]string{"x", "y"})
	b := build([]string{"y", "x"})
	require.True(t, Equal(a, b))

	b.Child("conn").AddValue(literal.Int(1))
	require.False(t, Equal(a, b))

	require.False(t, Equal(NewComment("a", SlashStyle), NewComment("b", SlashStyle)))
	require.True(t, Equal(NewComment("a", SlashStyle), NewComment("a", HashStyle)))
	require.False(t, Equal(NewRoot(), NewComment("a", SlashStyle)))
}
