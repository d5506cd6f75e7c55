// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mivalue

import (
	"errors"
	"strings"
)

// Unquote decodes a string literal in the embedded value syntax. Double
// quotation marks are removed, and the escapes \\, \n, \r, and \t are
// replaced with the characters they denote. Any other escape is an error.
// A malformed literal is reported as a [*SyntaxError].
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	p := NewParser(src)
	v, err := p.ParseValue()
	if err != nil {
		return "", err
	}
	if !p.AtEOF() {
		return "", p.errorf(ExtraInput, "unexpected %s after string", p.describe())
	}
	return string(v.(String)), nil
}
