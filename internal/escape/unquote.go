// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape defines the escape sequences of embedded value strings,
// handles unquoting of MI c-strings, and quoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// valueEsc maps the character after a backslash in an embedded value string
// to the byte it denotes. Zero entries are not valid escapes.
var valueEsc = [...]byte{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// cEsc maps the character after a backslash in an MI c-string to the byte
// it denotes. Octal escapes are handled separately.
var cEsc = [...]byte{
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'a':  '\a',
	'b':  '\b',
	'e':  0x1b,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// Lookup reports the byte denoted by the escape sequence "\" + ch in an
// embedded value string, and whether the sequence is valid.
func Lookup(ch byte) (byte, bool) {
	if int(ch) < len(valueEsc) && valueEsc[ch] != 0 {
		return valueEsc[ch], true
	}
	return 0, false
}

// ErrIncomplete is reported for a backslash at the end of the input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// An UnknownError reports an escape sequence that is not recognized.
type UnknownError struct {
	Offset int  // offset of the backslash
	Char   byte // the character after the backslash
}

func (u *UnknownError) Error() string {
	return fmt.Sprintf("unknown escape \"\\%c\" (offset %d)", u.Char, u.Offset)
}

// UnquoteC decodes the body of an MI c-string. The input must have the
// enclosing double quotation marks already removed.
//
// The C escapes \" \' \\ \a \b \e \f \n \r \t \v and 1 to 3 digit octal
// escapes are recognized. Any other escape is reported as an *UnknownError.
func UnquoteC(src mem.RO) ([]byte, error) {
	return unquote(src, func(src mem.RO, pos int) (byte, int, error) {
		ch := src.At(pos)
		if isOctal(ch) {
			var v, n int
			for n < 3 && pos+n < src.Len() && isOctal(src.At(pos+n)) {
				v = v*8 + int(src.At(pos+n)-'0')
				n++
			}
			if v > 0xff {
				return 0, 0, fmt.Errorf("octal escape out of range (offset %d)", pos-1)
			}
			return byte(v), n, nil
		}
		if int(ch) < len(cEsc) && cEsc[ch] != 0 {
			return cEsc[ch], 1, nil
		}
		return 0, 0, &UnknownError{Offset: pos - 1, Char: ch}
	})
}

// decodeFunc decodes the escape whose first character is at src[pos].
// It returns the decoded byte and the number of input bytes consumed.
type decodeFunc func(src mem.RO, pos int) (byte, int, error)

func unquote(src mem.RO, decode decodeFunc) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	pos := 0
	for i >= 0 {
		dec = mem.Append(dec, src.Slice(pos, pos+i))
		pos += i + 1
		if pos >= src.Len() {
			return nil, ErrIncomplete
		}
		b, n, err := decode(src, pos)
		if err != nil {
			return nil, err
		}
		dec = append(dec, b)
		pos += n

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src.SliceFrom(pos), '\\')
	}
	return mem.Append(dec, src.SliceFrom(pos)), nil
}

func isOctal(ch byte) bool { return '0' <= ch && ch <= '7' }
