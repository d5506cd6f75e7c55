// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package render_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/mivalue"
	"github.com/creachadair/mivalue/mi"
	"github.com/creachadair/mivalue/render"
)

func TestValue(t *testing.T) {
	tests := []struct {
		input mivalue.Value
		want  string
	}{
		{nil, `null`},
		{mivalue.Bool(true), `true`},
		{mivalue.Number(0.5), `0.5`},
		{mivalue.Number(1e21), `1e+21`},
		{mivalue.Number(math.Inf(1)), `null`},
		{mivalue.MustParse("{" + strings.Repeat("9", 400) + ", 1}"), `[null,1]`},
		{mivalue.String("a\"b\\c\x01"), `"a\"b\\c\u0001"`},
		{mivalue.MustParse(`{}`), `[]`},
		{mivalue.MustParse(`{1, 2.5, "a\tb"}`), `[1,2.5,"a\tb"]`},
		{mivalue.MustParse(`{a = 1, b = {}}`), `[["a",1],["b",[]]]`},
		{mivalue.MustParse(`{[1] = "x", [1] = "y"}`), `[[1,"x"],[1,"y"]]`},
		{mivalue.MustParse(`{[{1}] = {x = false}}`), `[[[1],[["x",false]]]]`},
		{mivalue.MustParse(`@0x7ffc3a8: {1}`), `[1]`},
	}
	for _, tc := range tests {
		if got := render.Value(tc.input); got != tc.want {
			t.Errorf("Value %v: got %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestRecord(t *testing.T) {
	tests := []struct {
		input    string
		embedded render.EmbeddedFunc
		want     string
	}{
		{"(gdb)", nil, `{"type":"prompt"}`},
		{"hello", nil, `{"type":"stdout","message":"hello"}`},
		{`~"Hello\n"`, nil, `{"type":"console","message":"Hello\n"}`},
		{`@"\033[0m"`, nil, `{"type":"target","message":"\u001b[0m"}`},
		{`&"warning"`, nil, `{"type":"log","message":"warning"}`},
		{"^done", nil, `{"type":"result","token":null,"message":"done","payload":null}`},
		{`12^done,value="{1, 2}"`, mivalue.Parse,
			`{"type":"result","token":12,"message":"done","payload":{"value":[1,2]}}`},
		{`12^done,value="{1, 2}"`, nil,
			`{"type":"result","token":12,"message":"done","payload":{"value":"{1, 2}"}}`},
		{`^done,value={x="1"},name="value"`, mivalue.Parse,
			`{"type":"result","token":null,"message":"done","payload":{"value":{"x":"1"},"name":"value"}}`},
		{`*stopped,frame={addr="0x1",args=[]},bkpt=[number="1"],l=["a",["b"]]`, nil,
			`{"type":"exec","token":null,"message":"stopped","payload":` +
				`{"frame":{"addr":"0x1","args":[]},"bkpt":[{"number":"1"}],"l":["a",["b"]]}}`},
		{`=thread-created,id="1"`, nil,
			`{"type":"notify","token":null,"message":"thread-created","payload":{"id":"1"}}`},
		{`+download`, nil, `{"type":"status","token":null,"message":"download","payload":null}`},
	}
	for _, tc := range tests {
		rec, err := mi.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse %q: unexpected error: %v", tc.input, err)
		}
		got, err := render.Record(rec, tc.embedded)
		if err != nil {
			t.Errorf("Record %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Record %q:\ngot  %s\nwant %s", tc.input, got, tc.want)
		}
	}
}

func TestRecordError(t *testing.T) {
	rec, err := mi.Parse(`^done,value="{1 2}"`)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	got, err := render.Record(rec, mivalue.Parse)
	if !errors.Is(err, mivalue.MissingSeparator) {
		t.Errorf("Record: got %q, %v; want %v", got, err, mivalue.MissingSeparator)
	}
	if got != "" {
		t.Errorf("Record: got output %q, want none", got)
	}
}
