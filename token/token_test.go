package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeClasses(t *testing.T) {
	tests := []struct {
		typ     Type
		isPunct bool
		isValue bool
	}{
		{WORD, false, true},
		{STRING, false, true},
		{BINARY, false, true},
		{LBRACE, true, false},
		{DCOLON, true, false},
		{COMMENT, false, false},
		{NEWLINE, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			require.Equal(t, tt.isPunct, tt.typ.IsPunct())
			require.Equal(t, tt.isValue, tt.typ.IsValue())
		})
	}
}

func TestTerminatorsAndBlanks(t *testing.T) {
	require.True(t, Token{Type: SEMICOLON, Literal: ";"}.IsTerminator())
	require.True(t, Token{Type: NEWLINE, Literal: "\n"}.IsTerminator())
	require.True(t, Token{Type: EOF}.IsTerminator())
	require.False(t, Token{Type: ASSIGN, Literal: "="}.IsTerminator())

	require.True(t, Token{Type: SPACE, Literal: "  "}.IsBlank())
	require.False(t, Token{Type: SPACE, Literal: " \n "}.IsBlank())
}

func TestStream(t *testing.T) {
	toks := []Token{
		{Type: WORD, Literal: "foo", Line: 1, Column: 1},
		{Type: SPACE, Literal: " ", Line: 1, Column: 4},
		{Type: WORD, Literal: "1", Line: 1, Column: 5},
		{Type: SEMICOLON, Literal: ";", Line: 1, Column: 6},
	}

	t.Run("peek and next", func(t *testing.T) {
		s := NewStream(toks)
		require.Equal(t, 4, s.Len())
		require.Equal(t, "foo", s.Peek(0).Literal)
		require.Equal(t, "1", s.Peek(2).Literal)
		require.Equal(t, EOF, s.Peek(10).Type)
		require.Equal(t, "foo", s.Next().Literal)
		require.Equal(t, 1, s.Pos())
		s.Reset()
		require.Equal(t, 0, s.Pos())
	})

	t.Run("next past the end yields EOF", func(t *testing.T) {
		s := NewStream(toks[:1])
		s.Next()
		require.False(t, s.Valid())
		eof := s.Next()
		require.Equal(t, EOF, eof.Type)
		require.Equal(t, 4, eof.Column)
	})

	t.Run("consume while and until", func(t *testing.T) {
		s := NewStream(toks)
		got := s.ConsumeUntil(func(t Token) bool { return t.Type == SEMICOLON })
		require.Len(t, got, 3)
		require.Equal(t, SEMICOLON, s.Peek(0).Type)

		s.Reset()
		words := s.ConsumeWhile(func(t Token) bool { return t.Type == WORD })
		require.Len(t, words, 1)
		require.Equal(t, SPACE, s.Peek(0).Type)
	})

	t.Run("filter map", func(t *testing.T) {
		s := NewStream(toks).FilterMap(func(t Token) (Token, bool) {
			if t.IsBlank() {
				return t, false
			}
			return t, true
		})
		require.Equal(t, []string{"foo", "1", ";"}, s.Literals())
	})

	t.Run("source slice is not aliased", func(t *testing.T) {
		src := []Token{{Type: WORD, Literal: "a"}}
		s := NewStream(src)
		src[0].Literal = "b"
		require.Equal(t, "a", s.Peek(0).Literal)
	})
}
