package mivalue

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt reports the line and column of the byte at offset pos of src.
func lineColAt(src mem.RO, pos int) LineCol {
	lc := LineCol{Line: 1}
	for i := 0; i < pos && i < src.Len(); i++ {
		if src.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
