package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-sdl/token"
)

// Lexer holds the state for tokenizing SDL source. It never fails: spans it
// cannot close are returned as ILLEGAL tokens carrying the raw text.
type Lexer struct {
	input        []byte
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.advance()
	return l
}

// Tokenize returns every token of input, excluding the trailing EOF.
func Tokenize(input []byte) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// NextToken scans the input and returns the next token. Tokens holding
// bytes that are not valid UTF-8 come back as ILLEGAL.
func (l *Lexer) NextToken() token.Token {
	tok := l.next()
	if tok.Type != token.ILLEGAL && !utf8.ValidString(tok.Literal) {
		tok.Type = token.ILLEGAL
	}
	return tok
}

func (l *Lexer) next() token.Token {
	tok := token.Token{Line: l.line, Column: l.column}
	if l.atEOF() {
		tok.Type = token.EOF
		return tok
	}
	switch l.ch {
	case ' ', '\t', '\r', '\n':
		tok.Type = token.SPACE
		tok.Literal = l.readSpace()
		return tok
	case '\\':
		if l.peekChar() == '\n' || (l.peekChar() == '\r' && l.peekNextChar() == '\n') {
			// Line continuation outside of a string reads as plain blank space.
			l.advance()
			l.readSpace()
			tok.Type = token.SPACE
			tok.Literal = " "
			return tok
		}
	case '{', '}', '=', ';':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
		l.advance()
		return tok
	case ':':
		if l.peekChar() == ':' {
			l.advance()
			l.advance()
			tok.Type = token.DCOLON
			tok.Literal = "::"
			return tok
		}
		l.advance()
		tok.Type = token.COLON
		tok.Literal = ":"
		return tok
	case '"':
		tok.Literal, tok.Type = l.readString()
		return tok
	case '`':
		tok.Literal, tok.Type = l.readDelimited('`', token.RAW)
		return tok
	case '[':
		tok.Literal, tok.Type = l.readDelimited(']', token.BINARY)
		return tok
	case '\'':
		tok.Literal, tok.Type = l.readChar()
		return tok
	case '#':
		tok.Type = token.COMMENT
		tok.Literal = l.readLineComment()
		return tok
	case '-':
		if l.peekChar() == '-' {
			tok.Type = token.COMMENT
			tok.Literal = l.readLineComment()
			return tok
		}
	case '/':
		switch l.peekChar() {
		case '/':
			tok.Type = token.COMMENT
			tok.Literal = l.readLineComment()
			return tok
		case '*':
			tok.Literal, tok.Type = l.readBlockComment()
			return tok
		}
	}
	if !isWordChar(l.ch) {
		tok.Type = token.ILLEGAL
		tok.Literal = string(l.ch)
		l.advance()
		return tok
	}
	tok.Type = token.WORD
	tok.Literal = l.readWord()
	return tok
}

// atEOF reports whether the input is exhausted. A NUL byte inside the input
// is not the end; it reads as an ILLEGAL token.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}
	r, size := utf8.DecodeRune(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekNextChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	_, size := utf8.DecodeRune(l.input[l.readPosition:])
	if l.readPosition+size >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.readPosition+size:])
	return r
}

func (l *Lexer) slice(start int) string {
	end := l.position
	if end > len(l.input) {
		end = len(l.input)
	}
	return string(l.input[start:end])
}

// readSpace consumes a run of blanks. Tabs become single spaces and carriage
// returns are dropped so that CRLF input yields plain newlines.
func (l *Lexer) readSpace() string {
	var b strings.Builder
	for {
		switch l.ch {
		case ' ', '\t':
			b.WriteByte(' ')
		case '\n':
			b.WriteByte('\n')
		case '\r':
		default:
			return b.String()
		}
		l.advance()
	}
}

func (l *Lexer) readWord() string {
	start := l.position
	for isWordChar(l.ch) {
		if l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*') {
			break
		}
		l.advance()
	}
	return l.slice(start)
}

// readString reads a double quoted string. A newline is only allowed right
// after a backslash, which continues the string on the next line.
func (l *Lexer) readString() (string, token.Type) {
	start := l.position
	l.advance() // consume opening quote
	for {
		switch l.ch {
		case 0, '\n':
			return l.slice(start), token.ILLEGAL
		case '\\':
			l.advance()
			if l.ch == 0 {
				return l.slice(start), token.ILLEGAL
			}
		case '"':
			l.advance()
			return l.slice(start), token.STRING
		}
		l.advance()
	}
}

// readDelimited reads from the current opening character through the next
// occurrence of end, newlines included.
func (l *Lexer) readDelimited(end rune, typ token.Type) (string, token.Type) {
	start := l.position
	l.advance() // consume opening delimiter
	for l.ch != end {
		if l.ch == 0 {
			return l.slice(start), token.ILLEGAL
		}
		l.advance()
	}
	l.advance()
	return l.slice(start), typ
}

func (l *Lexer) readChar() (string, token.Type) {
	start := l.position
	l.advance() // consume opening quote
	for {
		switch l.ch {
		case 0, '\n':
			return l.slice(start), token.ILLEGAL
		case '\\':
			l.advance()
		case '\'':
			l.advance()
			return l.slice(start), token.CHAR
		}
		l.advance()
	}
}

func (l *Lexer) readLineComment() string {
	start := l.position
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.advance()
	}
	return l.slice(start)
}

func (l *Lexer) readBlockComment() (string, token.Type) {
	start := l.position
	l.advance() // consume '/'
	l.advance() // consume '*'
	for {
		if l.ch == 0 {
			return l.slice(start), token.ILLEGAL
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.advance()
			l.advance()
			return l.slice(start), token.COMMENT
		}
		l.advance()
	}
}

func isWordChar(ch rune) bool {
	switch ch {
	case 0, ' ', '\t', '\r', '\n', '{', '}', '=', ';', ':', '"', '`', '\'', '[', ']':
		return false
	}
	return true
}
