// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote appends the JSON encoding of src to buf, including the enclosing
// double quotation marks, and returns the extended buffer.
//
// Invalid UTF-8 is encoded as the Unicode replacement rune, since decoded
// c-strings may carry raw bytes from octal escapes.
func Quote(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' {
				buf = append(buf, '\\', byte(r))
			} else {
				buf = append(buf, byte(r))
			}
		} else {
			switch r {
			case utf8.RuneError:
				buf = append(buf, `\ufffd`...)
			case '\u2028': // line separator
				buf = append(buf, `\u2028`...)
			case '\u2029': // paragraph separator
				buf = append(buf, `\u2029`...)
			default:
				buf = utf8.AppendRune(buf, r)
			}
		}
		if n == 0 {
			n = 1
		}
		src = src.SliceFrom(n)
	}
	return append(buf, '"')
}
