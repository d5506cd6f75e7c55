// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package render encodes parsed values and MI records as compact JSON.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/mivalue"
	"github.com/creachadair/mivalue/internal/escape"
	"github.com/creachadair/mivalue/mi"

	"go4.org/mem"
)

// Value renders v as JSON. A Map is rendered as an array of [key, value]
// pairs, since its keys are arbitrary values and need not be unique.
// A Number too large for float64 is rendered as null.
func Value(v mivalue.Value) string { return string(appendValue(nil, v)) }

func appendValue(buf []byte, v mivalue.Value) []byte {
	switch t := v.(type) {
	case mivalue.Bool:
		return strconv.AppendBool(buf, bool(t))
	case mivalue.Number:
		if f := float64(t); math.IsInf(f, 0) || math.IsNaN(f) {
			return append(buf, "null"...) // JSON has no infinities
		}
		return strconv.AppendFloat(buf, float64(t), 'g', -1, 64)
	case mivalue.String:
		return escape.Quote(buf, mem.S(string(t)))
	case mivalue.List:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, elt)
		}
		return append(buf, ']')
	case mivalue.Map:
		buf = append(buf, '[')
		for i, e := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, '[')
			buf = appendValue(buf, e.Key)
			buf = append(buf, ',')
			buf = appendValue(buf, e.Value)
			buf = append(buf, ']')
		}
		return append(buf, ']')
	case nil:
		return append(buf, "null"...)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

// An EmbeddedFunc parses the text of an embedded value expression.
type EmbeddedFunc func(string) (mivalue.Value, error)

// Record renders r as a single-line JSON object.
//
// Every record has a "type" field naming its kind. Result and async records
// also carry "token" (a number, or null if r has no token), "message" (the
// class), and "payload" (an object of the results, or null if there are
// none). Stream and output records carry "message" (the text).
//
// If embedded != nil, each top-level result named "value" holding a string
// is parsed by embedded and rendered as a value tree. Otherwise such results
// are rendered as strings. If embedded reports an error, Record returns that
// error without output.
func Record(r *mi.Record, embedded EmbeddedFunc) (string, error) {
	w := &writer{embedded: embedded}
	if err := w.record(r); err != nil {
		return "", err
	}
	return string(w.buf), nil
}

type writer struct {
	buf      []byte
	embedded EmbeddedFunc
}

func (w *writer) record(r *mi.Record) error {
	w.buf = append(w.buf, `{"type":`...)
	w.quote(r.Kind.String())

	switch {
	case r.Kind == mi.Prompt:
		// no other fields

	case r.Kind == mi.Output || r.Kind.IsStream():
		w.buf = append(w.buf, `,"message":`...)
		w.quote(r.Text)

	default:
		w.buf = append(w.buf, `,"token":`...)
		if r.HasToken {
			w.buf = strconv.AppendUint(w.buf, r.Token, 10)
		} else {
			w.buf = append(w.buf, "null"...)
		}
		w.buf = append(w.buf, `,"message":`...)
		w.quote(r.Class)
		w.buf = append(w.buf, `,"payload":`...)
		if len(r.Results) == 0 {
			w.buf = append(w.buf, "null"...)
		} else if err := w.payload(r.Results); err != nil {
			return err
		}
	}
	w.buf = append(w.buf, '}')
	return nil
}

// payload renders the top-level results of a record as an object.
func (w *writer) payload(rs []mi.Result) error {
	w.buf = append(w.buf, '{')
	for i, res := range rs {
		if i > 0 {
			w.buf = append(w.buf, ',')
		}
		w.quote(res.Name)
		w.buf = append(w.buf, ':')

		if res.IsEmbedded() && w.embedded != nil {
			v, err := w.embedded(string(res.Value.(mi.Const)))
			if err != nil {
				return err
			}
			w.buf = appendValue(w.buf, v)
			continue
		}
		w.value(res.Value)
	}
	w.buf = append(w.buf, '}')
	return nil
}

func (w *writer) value(v mi.Value) {
	switch t := v.(type) {
	case mi.Const:
		w.quote(string(t))
	case mi.Tuple:
		w.buf = append(w.buf, '{')
		for i, res := range t {
			if i > 0 {
				w.buf = append(w.buf, ',')
			}
			w.result(res)
		}
		w.buf = append(w.buf, '}')
	case mi.List:
		w.buf = append(w.buf, '[')
		for i, elt := range t {
			if i > 0 {
				w.buf = append(w.buf, ',')
			}
			w.value(elt)
		}
		w.buf = append(w.buf, ']')
	case mi.Result:
		// A result in a list renders as a one-member object.
		w.buf = append(w.buf, '{')
		w.result(t)
		w.buf = append(w.buf, '}')
	default:
		panic(fmt.Sprintf("unknown MI value type %T", v))
	}
}

func (w *writer) result(res mi.Result) {
	w.quote(res.Name)
	w.buf = append(w.buf, ':')
	w.value(res.Value)
}

func (w *writer) quote(s string) { w.buf = escape.Quote(w.buf, mem.S(s)) }
