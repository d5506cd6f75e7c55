// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package mi

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/mivalue/internal/escape"

	"go4.org/mem"
)

// Parse parses a single line of MI output into a Record. Trailing carriage
// return and newline characters are removed. In case of a syntax error, the
// returned error has type [*SyntaxError].
func Parse(line string) (_ *Record, err error) {
	line = strings.TrimRight(line, "\r\n")
	if rest, ok := strings.CutPrefix(line, "(gdb)"); ok && strings.TrimSpace(rest) == "" {
		return &Record{Kind: Prompt}, nil
	}

	p := &parser{line: line}
	defer p.recoverParseError(&err)
	return p.parseRecord(), nil
}

// A parser consumes the tokens of a single record.
type parser struct {
	line string
	s    *scanner
}

// parseRecord consumes a complete record.
func (p *parser) parseRecord() *Record {
	src := mem.S(p.line)

	i := 0
	for i < src.Len() && isDigit(src.At(i)) {
		i++
	}
	if i == src.Len() {
		return &Record{Kind: Output, Text: p.line}
	}
	kind, ok := prefixKind(src.At(i))
	if !ok || (i > 0 && kind.IsStream()) {
		return &Record{Kind: Output, Text: p.line}
	}

	rec := &Record{Kind: kind}
	p.s = newScanner(src)
	p.s.end = i + 1
	if i > 0 {
		v, err := mem.ParseUint(src.SliceTo(i), 10, 64)
		if err != nil {
			p.syntaxError(err, "invalid token %q", p.line[:i])
		}
		rec.Token, rec.HasToken = v, true
	}

	if kind.IsStream() {
		p.advance(String)
		rec.Text = p.unquote()
		if p.more() {
			p.syntaxError(nil, "unexpected %v after string", p.s.tok)
		}
		return rec
	}

	p.advance(Name)
	rec.Class = p.s.text().StringCopy()
	for p.more() {
		p.require(Comma)
		p.advance(Name)
		rec.Results = append(rec.Results, p.parseResult())
	}
	return rec
}

// parseResult consumes a single name=value result.
// Precondition: token == Name.
func (p *parser) parseResult() Result {
	name := p.s.text().StringCopy()
	p.advance(Equal)
	p.advance()
	return Result{Name: name, Value: p.parseValue()}
}

// parseValue consumes a single value of any type.
// Precondition: token != Invalid.
func (p *parser) parseValue() Value {
	switch tok := p.s.tok; tok {
	case String:
		return Const(p.unquote())

	case LBrace:
		t := Tuple{}
		if p.advance(RBrace, Name) == RBrace {
			return t // empty tuple
		}
		for {
			t = append(t, p.parseResult())
			if p.advance(RBrace, Comma) == RBrace {
				return t
			}
			p.advance(Name)
		}

	case LSquare:
		l := List{}
		next := p.advance()
		if next == RSquare {
			return l // empty list
		}
		for {
			if next == Name {
				l = append(l, p.parseResult())
			} else {
				l = append(l, p.parseValue())
			}
			if p.advance(RSquare, Comma) == RSquare {
				return l
			}
			next = p.advance()
		}

	default:
		panic(p.fail(nil, "unexpected %v", tok))
	}
}

// unquote decodes the c-string of the current token.
// Precondition: token == String.
func (p *parser) unquote() string {
	text := p.s.text()
	dec, err := escape.UnquoteC(text.Slice(1, text.Len()-1))
	if err != nil {
		p.syntaxError(err, "invalid string: %v", err)
	}
	return string(dec)
}

// more advances to the next token and reports whether one was found.
func (p *parser) more() bool {
	if err := p.s.next(); err == io.EOF {
		return false
	} else if err != nil {
		p.syntaxError(err, "%v", err)
	}
	return true
}

// advance moves to the next token, which must be one of tokens if any are
// given, and returns its type.
func (p *parser) advance(tokens ...Token) Token {
	if err := p.s.next(); err == io.EOF {
		p.syntaxError(err, "%v", tokLabel(tokens, "end of input"))
	} else if err != nil {
		p.syntaxError(err, "%v", err)
	}
	tok := p.s.tok
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		p.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

func (p *parser) require(token Token) {
	if tok := p.s.tok; tok != token {
		p.syntaxError(nil, "expected %v, got %v", token, tok)
	}
}

func (p *parser) syntaxError(err error, msg string, args ...any) {
	panic(p.fail(err, msg, args...))
}

func (p *parser) fail(err error, msg string, args ...any) *SyntaxError {
	var off int
	if p.s != nil {
		off = p.s.pos
	}
	return &SyntaxError{
		Offset:  off,
		Message: fmt.Sprintf(msg, args...),
		err:     err,
	}
}

func (p *parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*errp = err
			return
		}
		panic(serr)
	}
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("expected value, got %v", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// SyntaxError is the concrete type of errors reported by Parse.
type SyntaxError struct {
	Offset  int // byte offset in the line, 0-based
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

func prefixKind(ch byte) (Kind, bool) {
	switch ch {
	case '^':
		return ResultRecord, true
	case '*':
		return Exec, true
	case '+':
		return Status, true
	case '=':
		return Notify, true
	case '~':
		return Console, true
	case '@':
		return Target, true
	case '&':
		return Log, true
	}
	return Output, false
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
