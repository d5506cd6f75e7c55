// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mivalue

import "testing"

func TestStripReference(t *testing.T) {
	p := NewParser("@0x83fd: foobar_random_stuff")
	p.stripReference()
	if p.pos != 8 {
		t.Errorf("Offset: got %d, want 8", p.pos)
	}
	if ch := p.current(); ch != ' ' {
		t.Errorf("Current: got %q, want ' '", ch)
	}

	p = NewParser("@0x83fd")
	p.stripReference()
	if !p.AtEOF() {
		t.Errorf("AtEOF: got false at offset %d, want true", p.pos)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  entryKind
		shape shape
	}{
		{"[1] = 2", indexEntry, mapShape},
		{"x = 2", fieldEntry, mapShape},
		{"x", fieldEntry, mapShape},
		{"_y1 = 2", fieldEntry, mapShape},
		{"true = 2", fieldEntry, mapShape},
		{"false  =2", fieldEntry, mapShape},
		{"true", fieldEntry, mapShape},
		{"false}", fieldEntry, mapShape},
		{"1", elemEntry, listShape},
		{`"x" = 1`, elemEntry, listShape},
		{"{}", elemEntry, listShape},
		{"@0x1: 2", elemEntry, listShape},
	}
	for _, test := range tests {
		p := NewParser(test.input)
		got := p.classify()
		if got != test.want {
			t.Errorf("classify(%#q): got %v, want %v", test.input, got, test.want)
		}
		if s := got.shape(); s != test.shape {
			t.Errorf("classify(%#q): got shape %v, want %v", test.input, s, test.shape)
		}
		if p.pos != 0 {
			t.Errorf("classify(%#q): offset moved to %d", test.input, p.pos)
		}
	}
}

func TestPrimitives(t *testing.T) {
	p := NewParser("  true")
	if p.at("true") {
		t.Error(`at("true") before whitespace: got true, want false`)
	}
	p.skipSpace()
	if !p.at("true") || p.at("truest") {
		t.Error(`at: lookahead mismatch after skipSpace`)
	}
	if p.eat("tree") || p.pos != 2 {
		t.Errorf(`eat("tree"): consumed input, offset %d`, p.pos)
	}
	if !p.eat("true") || !p.AtEOF() {
		t.Errorf(`eat("true"): offset %d, want end of input`, p.pos)
	}
	if ch := p.next(); ch != 0 || p.pos != 6 {
		t.Errorf("next at end of input: got %q at %d, want 0 at 6", ch, p.pos)
	}
}
