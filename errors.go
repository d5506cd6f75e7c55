// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mivalue

import "fmt"

// ErrorKind classifies the syntax errors reported by the parser.
// An ErrorKind is itself an error, so that callers can write:
//
//	if errors.Is(err, mivalue.MissingSeparator) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	Unknown               ErrorKind = iota // unknown error
	ExpectedValue                          // no value production matches
	UnterminatedString                     // string literal is never closed
	UnknownEscapeSequence                  // backslash before an unrecognized character
	LeadingSeparator                       // comma before the first container entry
	MissingSeparator                       // missing ",", "=", or "]"
	MixedContainerShape                    // list and map entries in one container
	InvalidNumber                          // ill-formed numeric literal
	ExtraInput                             // text remains after a complete value
	InvalidEncoding                        // input is not valid UTF-8
)

var kindStr = [...]string{
	Unknown:               "unknown error",
	ExpectedValue:         "expected value",
	UnterminatedString:    "unterminated string",
	UnknownEscapeSequence: "unknown escape sequence",
	LeadingSeparator:      "leading separator",
	MissingSeparator:      "missing separator",
	MixedContainerShape:   "mixed container shape",
	InvalidNumber:         "invalid number",
	ExtraInput:            "extra input",
	InvalidEncoding:       "invalid encoding",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Unknown]
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // byte offset of the error in the input, 0-based
	Location LineCol // line and column of Offset
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Is reports whether target is the ErrorKind of s.
func (s *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == s.Kind
}
