package token

import "strings"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unterminated quoted or bracketed span
	EOF     Type = "EOF"     // End of file

	// Identifier-like and literal spans
	WORD   Type = "WORD"   // foo, ns, 12, 3.14f, 2024/01/31, yes
	STRING Type = "STRING" // "hello world"
	RAW    Type = "RAW"    // `raw text`
	CHAR   Type = "CHAR"   // 'c'
	BINARY Type = "BINARY" // [SGVsbG8=]

	// Punctuation
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	ASSIGN    Type = "="
	SEMICOLON Type = ";"
	COLON     Type = ":"
	DCOLON    Type = "::"

	// Comments and whitespace
	COMMENT Type = "COMMENT" // // a comment, # a comment, -- a comment, /* a comment */
	SPACE   Type = "SPACE"   // run of blanks, possibly containing newlines
	NEWLINE Type = "NEWLINE" // line-end marker produced from a SPACE run
)

// IsPunct reports whether t is a punctuation token type.
func (t Type) IsPunct() bool {
	switch t {
	case LBRACE, RBRACE, ASSIGN, SEMICOLON, COLON, DCOLON:
		return true
	}
	return false
}

// IsValue reports whether tokens of type t can carry a literal.
func (t Type) IsValue() bool {
	switch t {
	case WORD, STRING, RAW, CHAR, BINARY:
		return true
	}
	return false
}

// IsTerminator reports whether tok ends a statement.
func (tok Token) IsTerminator() bool {
	switch tok.Type {
	case SEMICOLON, NEWLINE, LBRACE, RBRACE, EOF:
		return true
	}
	return false
}

// IsBlank reports whether tok is whitespace without a line break.
func (tok Token) IsBlank() bool {
	return tok.Type == SPACE && !strings.Contains(tok.Literal, "\n")
}
