// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mivalue

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/creachadair/mivalue/internal/escape"

	"go4.org/mem"
)

// Parse parses s as a single value expression. Apart from leading and
// trailing whitespace, the value must span the whole input. In case of
// error, the returned error has type [*SyntaxError].
func Parse(s string) (Value, error) {
	p := NewParser(s)
	v, err := p.ParseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.AtEOF() {
		return nil, p.errorf(ExtraInput, "unexpected %s after value", p.describe())
	}
	return v, nil
}

// MustParse is as Parse, but panics if s cannot be parsed.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("mivalue: parse %q: %v", s, err))
	}
	return v
}

// A Parser reads a value expression from the front of a string.
// A Parser is not safe for concurrent use, and is meant to be discarded after
// parsing one expression.
type Parser struct {
	src   mem.RO
	pos   int
	valid bool // src is valid UTF-8
}

// NewParser constructs a Parser that consumes input from s.
func NewParser(s string) *Parser {
	return &Parser{src: mem.S(s), valid: utf8.ValidString(s)}
}

// ParseValue parses a single value starting at the current offset, and
// leaves the offset just past the end of the value. Any text after the value
// is not examined. In case of error, the returned error has type
// [*SyntaxError] and the offset is unspecified.
func (p *Parser) ParseValue() (_ Value, err error) {
	defer p.recoverParseError(&err)

	if !p.valid {
		return nil, p.errorf(InvalidEncoding, "input is not valid UTF-8")
	}
	return p.parseValue(), nil
}

// AtEOF reports whether p has consumed all its input.
func (p *Parser) AtEOF() bool { return p.pos >= p.src.Len() }

// Offset reports the current byte offset of p in its input.
func (p *Parser) Offset() int { return p.pos }

// at reports whether the input at the current offset begins with tok.
func (p *Parser) at(tok string) bool {
	return mem.HasPrefix(p.src.SliceFrom(p.pos), mem.S(tok))
}

// eat consumes tok and reports true if the input at the current offset
// begins with tok. Otherwise it reports false and the offset is unchanged.
func (p *Parser) eat(tok string) bool {
	if p.at(tok) {
		p.seek(p.pos + len(tok))
		return true
	}
	return false
}

func (p *Parser) seek(pos int) { p.pos = pos }

func (p *Parser) skipSpace() {
	for !p.AtEOF() && isSpace(p.current()) {
		p.advance()
	}
}

// current returns the byte at the current offset, or 0 at the end of input.
func (p *Parser) current() byte {
	if p.AtEOF() {
		return 0
	}
	return p.src.At(p.pos)
}

func (p *Parser) advance() {
	if !p.AtEOF() {
		p.pos++
	}
}

// next returns the current byte and advances past it.
func (p *Parser) next() byte {
	ch := p.current()
	p.advance()
	return ch
}

// parseValue consumes a single value of any type.
func (p *Parser) parseValue() Value {
	p.skipSpace()
	switch {
	case p.eat("{"):
		return p.parseListOrMap()
	case p.eat(`"`):
		return String(p.parseString())
	case isDigit(p.current()):
		return Number(p.parseNumber())
	case p.eat("true"):
		return Bool(true)
	case p.eat("false"):
		return Bool(false)
	case p.eat("@0x"):
		p.stripReference()
		return p.parseValue()
	}
	panic(p.errorf(ExpectedValue, "expected a value, got %s", p.describe()))
}

// A shape records whether a container has been fixed as a list or a map.
type shape byte

const (
	undetermined shape = iota
	listShape
	mapShape
)

func (s shape) String() string {
	switch s {
	case listShape:
		return "list"
	case mapShape:
		return "map"
	}
	return "undetermined"
}

// entryKind is the syntactic form of a single container entry.
type entryKind byte

const (
	elemEntry  entryKind = iota // value
	fieldEntry                  // identifier = value
	indexEntry                  // [value] = value
)

func (k entryKind) shape() shape {
	if k == elemEntry {
		return listShape
	}
	return mapShape
}

// parseListOrMap consumes the entries of a container and its closing brace.
// Precondition: the open brace has been consumed.
func (p *Parser) parseListOrMap() Value {
	var mode shape
	var list List
	var pairs Map

	for first := true; ; first = false {
		p.skipSpace()
		comma := p.eat(",")
		p.skipSpace()
		if first && comma {
			panic(p.errorf(LeadingSeparator, `"," not allowed before the first entry`))
		}
		if p.eat("}") {
			break
		}
		if !first && !comma {
			panic(p.errorf(MissingSeparator, `expected "," or "}", got %s`, p.describe()))
		}

		kind := p.classify()
		if mode == undetermined {
			mode = kind.shape()
		} else if got := kind.shape(); got != mode {
			panic(p.errorf(MixedContainerShape, "%s entry in a %s", got, mode))
		}

		switch kind {
		case indexEntry:
			p.advance() // "["
			key := p.parseValue()
			p.skipSpace()
			p.require("]")
			p.skipSpace()
			p.require("=")
			pairs = append(pairs, Entry{Key: key, Value: p.parseValue()})

		case fieldEntry:
			key := String(p.scanIdent().StringCopy())
			p.skipSpace()
			p.require("=")
			pairs = append(pairs, Entry{Key: key, Value: p.parseValue()})

		default:
			list = append(list, p.parseValue())
		}
	}

	if mode == mapShape {
		return pairs
	}
	if list == nil {
		return List{}
	}
	return list
}

// classify reports the form of the container entry at the current offset,
// without consuming any input. Any entry beginning with a letter is a struct
// field, so a Boolean constant cannot be a bare container entry.
func (p *Parser) classify() entryKind {
	switch ch := p.current(); {
	case ch == '[':
		return indexEntry
	case isIdentStart(ch):
		return fieldEntry
	}
	return elemEntry
}

// scanIdent consumes an identifier and returns its text.
func (p *Parser) scanIdent() mem.RO {
	start := p.pos
	for isIdentRune(p.current()) {
		p.advance()
	}
	return p.src.Slice(start, p.pos)
}

// parseString consumes the body of a string and its closing quote.
// Precondition: the open quote has been consumed.
func (p *Parser) parseString() string {
	open := p.pos - 1

	var buf []byte
	for !p.AtEOF() && !p.at(`"`) {
		if p.eat(`\`) {
			esc := p.pos - 1
			ch := p.next()
			dec, ok := escape.Lookup(ch)
			if !ok {
				panic(p.errorAt(esc, UnknownEscapeSequence, "unknown escape %s", describeByte(ch)))
			}
			buf = append(buf, dec)
		} else {
			buf = append(buf, p.next())
		}
	}
	if !p.eat(`"`) {
		panic(p.errorAt(open, UnterminatedString, "missing closing quote for string"))
	}
	return string(buf)
}

// parseNumber consumes a number: digits with an optional fraction.
// Precondition: the current byte is a digit.
func (p *Parser) parseNumber() float64 {
	start := p.pos
	p.skipDigits()
	if p.eat(".") {
		if !isDigit(p.current()) {
			panic(p.errorf(InvalidNumber, "expected digit after decimal point, got %s", p.describe()))
		}
		p.skipDigits()
	}
	if p.current() == '.' {
		panic(p.errorf(InvalidNumber, "unexpected %q in number", '.'))
	}

	// A digit run too long for float64 is +Inf, not an error.
	text := p.src.Slice(start, p.pos)
	v, err := mem.ParseFloat(text, 64)
	if err != nil && !math.IsInf(v, 1) {
		serr := p.errorAt(start, InvalidNumber, "invalid number %q", text.StringCopy())
		serr.err = err
		panic(serr)
	}
	return v
}

func (p *Parser) skipDigits() {
	for isDigit(p.current()) {
		p.advance()
	}
}

// stripReference discards a reference annotation up to and including the
// next colon. The address is not checked.
func (p *Parser) stripReference() {
	for !p.AtEOF() && !p.eat(":") {
		p.advance()
	}
}

func (p *Parser) recoverParseError(errp *error) {
	if x := recover(); x != nil {
		if serr, ok := x.(*SyntaxError); ok {
			*errp = serr
			return
		}
		panic(x)
	}
}

// require consumes tok, or panics with a MissingSeparator error.
func (p *Parser) require(tok string) {
	if !p.eat(tok) {
		panic(p.errorf(MissingSeparator, "expected %q, got %s", tok, p.describe()))
	}
}

func (p *Parser) errorf(kind ErrorKind, msg string, args ...any) *SyntaxError {
	return p.errorAt(p.pos, kind, msg, args...)
}

func (p *Parser) errorAt(pos int, kind ErrorKind, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Offset:   pos,
		Location: lineColAt(p.src, pos),
		Message:  fmt.Sprintf(msg, args...),
	}
}

// describe returns a human-readable label for the input at the current offset.
func (p *Parser) describe() string {
	if p.AtEOF() {
		return "end of input"
	}
	return describeByte(p.current())
}

func describeByte(ch byte) string {
	if ch == 0 {
		return "at end of input"
	} else if ch >= utf8.RuneSelf {
		return fmt.Sprintf("byte %#x", ch)
	}
	return fmt.Sprintf("%q", ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentRune(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
