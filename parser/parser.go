// Package parser builds SDL tag trees from source text.
//
// Parsing runs in two passes. The first prepares the raw token slice:
// directly adjacent WORD ':' WORD runs are spliced into one word
// (namespaced names and times of day), whitespace containing a line break
// becomes a NEWLINE token and other whitespace is dropped. The second pass
// is a state machine, run once per block, that collects names, values and
// attributes into tags.
package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-sdl/ast"
	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/internal/debug"
	"github.com/KimNorgaard/go-sdl/lexer"
	"github.com/KimNorgaard/go-sdl/literal"
	"github.com/KimNorgaard/go-sdl/token"
)

var (
	reBareDate  = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
	reTimeOfDay = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2}(\.\d{1,3})?)?(-.+)?$`)
)

type state int

const (
	expectName state = iota
	expectValue
	expectAttrValue
)

func (s state) String() string {
	switch s {
	case expectName:
		return "expectName"
	case expectValue:
		return "expectValue"
	default:
		return "expectAttrValue"
	}
}

// Parser holds the configuration and state of a parse. A Parser can be
// reused but not shared between goroutines.
type Parser struct {
	registry     *literal.Registry
	skipComments bool
	maxDepth     int

	stream  *token.Stream
	comment *ast.Comment
}

// New returns a Parser configured by opts.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{registry: literal.Default(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse parses input and returns the root of the document tree.
func Parse(input []byte, opts ...Option) (*ast.Tag, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// ParseString parses s and returns the root of the document tree.
func ParseString(s string, opts ...Option) (*ast.Tag, error) {
	return Parse([]byte(s), opts...)
}

// Parse parses input and returns the root of the document tree. Any error
// aborts the whole document.
func (p *Parser) Parse(input []byte) (*ast.Tag, error) {
	return p.ParseTokens(lexer.Tokenize(input))
}

// ParseString parses s.
func (p *Parser) ParseString(s string) (*ast.Tag, error) {
	return p.Parse([]byte(s))
}

// ParseTokens parses an already tokenized document.
func (p *Parser) ParseTokens(toks []token.Token) (*ast.Tag, error) {
	p.stream = Prepare(toks)
	p.comment = nil
	root := ast.NewRoot()
	if err := p.parseBlock(root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// Prepare splices namespaced words, turns whitespace holding a line break
// into NEWLINE tokens and drops the remaining whitespace.
func Prepare(toks []token.Token) *token.Stream {
	spliced := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Type == token.COLON && i+1 < len(toks) && len(spliced) > 0 {
			prev := &spliced[len(spliced)-1]
			next := toks[i+1]
			if prev.Type == token.WORD && next.Type == token.WORD && adjacent(*prev, tok) && adjacent(tok, next) {
				prev.Literal += ":" + next.Literal
				i++
				continue
			}
		}
		spliced = append(spliced, tok)
	}

	return token.NewStream(spliced).FilterMap(func(t token.Token) (token.Token, bool) {
		if t.Type != token.SPACE {
			return t, true
		}
		if t.IsBlank() {
			return t, false
		}
		return token.Token{Type: token.NEWLINE, Literal: "\n", Line: t.Line, Column: t.Column}, true
	})
}

func adjacent(a, b token.Token) bool {
	return a.Line == b.Line && a.Column+utf8.RuneCountInString(a.Literal) == b.Column
}

// buffer collects the text of the value being read. Several tokens end up
// in one buffer for binary blobs split across lines and for a date followed
// by a time of day.
type buffer struct {
	text string
	line int
	set  bool
}

func (b *buffer) start(tok token.Token) {
	*b = buffer{text: tok.Literal, line: tok.Line, set: true}
}

func (b *buffer) reset() { *b = buffer{} }

func (b *buffer) openBracket() bool {
	return b.set && strings.HasPrefix(b.text, "[") && !strings.Contains(b.text, "]")
}

// continues reports whether tok extends the buffer instead of starting a new
// value, and extends it if so.
func (b *buffer) continues(tok token.Token) bool {
	if !b.set {
		return false
	}
	if b.openBracket() && (tok.Type == token.NEWLINE || tok.Type.IsValue()) {
		b.text += tok.Literal
		return true
	}
	if tok.Type == token.WORD && reBareDate.MatchString(b.text) && reTimeOfDay.MatchString(tok.Literal) {
		b.text += " " + tok.Literal
		return true
	}
	return false
}

func (p *Parser) parseBlock(parent *ast.Tag, depth int) error {
	if depth > p.maxDepth {
		return errors.NewStructural(p.stream.Peek(0).Line, "exceeded max depth of %d", p.maxDepth)
	}

	var (
		st   = expectName
		cur  *ast.Tag
		buf  buffer
		attr string
		tok  token.Token
		redo bool
	)

	for {
		if !redo {
			tok = p.stream.Next()
		}
		redo = false

		if debug.Parse() {
			debug.Logger().Debugw("parse", "state", st, "depth", depth, "line", tok.Line, "type", tok.Type, "token", tok.Literal)
		}

		switch tok.Type {
		case token.ILLEGAL:
			return errors.NewStructural(tok.Line, "unterminated or illegal token %q", tok.Literal)
		case token.COLON, token.DCOLON:
			return errors.NewStructural(tok.Line, "unexpected %q", tok.Literal)
		case token.COMMENT:
			p.addComment(tok)
			continue
		}

		switch st {
		case expectName:
			switch tok.Type {
			case token.NEWLINE, token.SEMICOLON:
				continue
			case token.EOF:
				if depth > 0 {
					return errors.NewStructural(tok.Line, "missing '}' to close %q", parent.Name())
				}
				p.flushComments(parent)
				return nil
			case token.RBRACE:
				if depth == 0 {
					return errors.NewStructural(tok.Line, "unexpected '}' at top level")
				}
				p.flushComments(parent)
				return nil
			case token.LBRACE:
				return errors.NewStructural(tok.Line, "'{' without a tag")
			case token.ASSIGN:
				return errors.NewMissingName(tok.Line)
			}
			p.flushComments(parent)
			if tok.Type == token.WORD && ast.IsValidIdentifier(tok.Literal) {
				cur, _ = ast.NewTag(tok.Literal)
			} else {
				cur, _ = ast.NewTag(ast.ContentName)
				buf.start(tok)
			}
			st = expectValue

		case expectValue:
			switch tok.Type {
			case token.ASSIGN:
				if !buf.set {
					return errors.NewMissingName(tok.Line)
				}
				if !ast.IsValidIdentifier(buf.text) {
					return errors.NewInvalidIdentifier(buf.text, buf.line)
				}
				attr = buf.text
				buf.reset()
				st = expectAttrValue
				continue
			case token.SEMICOLON, token.NEWLINE, token.LBRACE, token.RBRACE, token.EOF:
				if buf.continues(tok) {
					continue
				}
				if err := p.flushValue(cur, &buf); err != nil {
					return err
				}
				done, err := p.finish(parent, cur, tok, depth)
				if err != nil || done {
					return err
				}
				cur = nil
				st = expectName
				continue
			}
			if buf.continues(tok) {
				continue
			}
			if err := p.flushValue(cur, &buf); err != nil {
				return err
			}
			buf.start(tok)

		case expectAttrValue:
			if !buf.set {
				if !tok.Type.IsValue() {
					return errors.NewStructural(tok.Line, "attribute %q has no value", attr)
				}
				buf.start(tok)
				continue
			}
			if buf.continues(tok) {
				continue
			}
			l, err := p.literal(&buf)
			if err != nil {
				return err
			}
			if err := cur.SetAttribute(attr, l); err != nil {
				return errors.AtLine(err, tok.Line)
			}
			st = expectValue
			redo = true
		}
	}
}

// finish appends a completed tag to parent. A '{' first parses the child
// block into the tag. It reports whether tok also closed the current block.
func (p *Parser) finish(parent, cur *ast.Tag, tok token.Token, depth int) (bool, error) {
	switch tok.Type {
	case token.LBRACE:
		p.flushComments(parent)
		if err := p.parseBlock(cur, depth+1); err != nil {
			return true, err
		}
		_ = parent.AddChild(cur)
		return false, nil
	case token.RBRACE:
		_ = parent.AddChild(cur)
		p.flushComments(parent)
		if depth == 0 {
			return true, errors.NewStructural(tok.Line, "unexpected '}' at top level")
		}
		return true, nil
	case token.EOF:
		_ = parent.AddChild(cur)
		p.flushComments(parent)
		if depth > 0 {
			return true, errors.NewStructural(tok.Line, "missing '}' to close %q", parent.Name())
		}
		return true, nil
	}
	_ = parent.AddChild(cur)
	return false, nil
}

func (p *Parser) flushValue(cur *ast.Tag, buf *buffer) error {
	if !buf.set {
		return nil
	}
	l, err := p.literal(buf)
	if err != nil {
		return err
	}
	cur.AddValue(l)
	return nil
}

func (p *Parser) literal(buf *buffer) (literal.Literal, error) {
	l, err := p.registry.Parse(buf.text)
	line := buf.line
	buf.reset()
	if err != nil {
		return nil, errors.AtLine(err, line)
	}
	return l, nil
}

// addComment merges consecutive comments into one pending comment. It is
// placed in front of the next tag or at the end of the block, so a comment
// trailing a statement lands between that tag and the next.
func (p *Parser) addComment(tok token.Token) {
	if p.skipComments {
		return
	}
	c := ast.ParseComment(tok.Literal)
	if p.comment == nil {
		p.comment = c
		return
	}
	p.comment.Text += "\n" + c.Text
}

func (p *Parser) flushComments(parent *ast.Tag) {
	if p.comment == nil {
		return
	}
	_ = parent.AddChild(p.comment)
	p.comment = nil
}
