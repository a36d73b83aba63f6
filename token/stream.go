package token

// Stream is a cursor over an immutable slice of tokens. Reading past the end
// yields an EOF token positioned after the last token.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream returns a Stream positioned at the first of toks. The slice is
// copied and never modified.
func NewStream(toks []Token) *Stream {
	c := make([]Token, len(toks))
	copy(c, toks)
	return &Stream{toks: c}
}

// Len returns the total number of tokens in the stream.
func (s *Stream) Len() int { return len(s.toks) }

// Pos returns the index of the next token Next would return.
func (s *Stream) Pos() int { return s.pos }

// Reset moves the cursor back to the first token.
func (s *Stream) Reset() { s.pos = 0 }

// Valid reports whether tokens remain.
func (s *Stream) Valid() bool { return s.pos < len(s.toks) }

// Peek returns the token n positions ahead of the cursor without consuming
// anything. Peek(0) is the token Next would return.
func (s *Stream) Peek(n int) Token {
	i := s.pos + n
	if i < 0 || i >= len(s.toks) {
		return s.eof()
	}
	return s.toks[i]
}

// Next consumes and returns the token under the cursor.
func (s *Stream) Next() Token {
	tok := s.Peek(0)
	if s.pos < len(s.toks) {
		s.pos++
	}
	return tok
}

// ConsumeWhile consumes tokens as long as match holds and returns them.
func (s *Stream) ConsumeWhile(match func(Token) bool) []Token {
	var out []Token
	for s.Valid() && match(s.toks[s.pos]) {
		out = append(out, s.toks[s.pos])
		s.pos++
	}
	return out
}

// ConsumeUntil consumes tokens up to, but not including, the first token for
// which match holds.
func (s *Stream) ConsumeUntil(match func(Token) bool) []Token {
	return s.ConsumeWhile(func(t Token) bool { return !match(t) })
}

// FilterMap returns a new stream holding fn applied to every token. Tokens
// for which fn reports false are dropped.
func (s *Stream) FilterMap(fn func(Token) (Token, bool)) *Stream {
	out := make([]Token, 0, len(s.toks))
	for _, t := range s.toks {
		if m, ok := fn(t); ok {
			out = append(out, m)
		}
	}
	return &Stream{toks: out}
}

// Tokens returns a copy of all tokens in the stream.
func (s *Stream) Tokens() []Token {
	c := make([]Token, len(s.toks))
	copy(c, s.toks)
	return c
}

// Literals returns the literal text of every token.
func (s *Stream) Literals() []string {
	out := make([]string, len(s.toks))
	for i, t := range s.toks {
		out[i] = t.Literal
	}
	return out
}

func (s *Stream) eof() Token {
	if len(s.toks) == 0 {
		return Token{Type: EOF, Line: 1, Column: 1}
	}
	last := s.toks[len(s.toks)-1]
	if last.Type == EOF {
		return last
	}
	return Token{Type: EOF, Line: last.Line, Column: last.Column + len(last.Literal)}
}
