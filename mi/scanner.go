// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package mi

import (
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in an MI record payload.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Equal                // equal sign "="
	String               // c-string
	Name                 // variable or class name

	// Do not modify the order of these constants without updating the
	// self-delimiting token check below.
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Equal:   `"="`,
	String:  "string",
	Name:    "name",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A scanner reads lexical tokens from a single line of MI output.
// MI output contains no insignificant whitespace.
type scanner struct {
	src mem.RO
	tok Token
	pos int // start offset of current token
	end int // end offset of current token
}

func newScanner(src mem.RO) *scanner { return &scanner{src: src} }

// next advances s to the next token of the input, or reports an error.
// At the end of the input, next returns io.EOF.
func (s *scanner) next() error {
	s.tok = Invalid
	s.pos = s.end
	if s.end >= s.src.Len() {
		return io.EOF
	}

	ch := s.src.At(s.end)
	if t, ok := selfDelim(ch); ok {
		s.end++
		s.tok = t
		return nil
	}
	if ch == '"' {
		return s.scanString()
	}
	if isNameStart(ch) {
		s.end++
		for s.end < s.src.Len() && isNameByte(s.src.At(s.end)) {
			s.end++
		}
		s.tok = Name
		return nil
	}
	return s.failf("unexpected %q", ch)
}

// text returns the undecoded text of the current token.
func (s *scanner) text() mem.RO { return s.src.Slice(s.pos, s.end) }

// scanString scans a c-string up to and including its closing quote.
func (s *scanner) scanString() error {
	var esc bool
	for i := s.end + 1; i < s.src.Len(); i++ {
		ch := s.src.At(i)
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.end = i + 1
			s.tok = String
			return nil
		}
	}
	return s.failf("unterminated string")
}

// failf reports a lexical error. The parser attaches the offset of the
// current token.
func (s *scanner) failf(msg string, args ...any) error {
	return fmt.Errorf(msg, args...)
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Equal}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],=", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func isNameStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isNameByte(ch byte) bool {
	return isNameStart(ch) || ch == '-' || ('0' <= ch && ch <= '9')
}
