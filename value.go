// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mivalue

import (
	"fmt"
	"strconv"
)

// A Value is a node of a parsed value tree.
// The concrete type is one of Bool, Number, String, List, or Map.
type Value interface {
	fmt.Stringer

	isValue()
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// A Number is a non-negative numeric value.
type Number float64

func (Number) isValue() {}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A String is a string value with its escapes decoded.
type String string

func (String) isValue() {}

func (s String) String() string { return strconv.Quote(string(s)) }

// A List is an ordered sequence of values.
type List []Value

func (List) isValue() {}

// Len reports the number of elements in l.
func (l List) Len() int { return len(l) }

func (l List) String() string { return fmt.Sprintf("List(len=%d)", len(l)) }

// An Entry is a single key-value pair belonging to a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Field constructs a map entry with a string key.
func Field(name string, v Value) Entry { return Entry{Key: String(name), Value: v} }

// A Map is an ordered collection of key-value entries. Keys are not required
// to be unique; a Map preserves every entry in source order.
type Map []Entry

func (Map) isValue() {}

// Len reports the number of entries in m.
func (m Map) Len() int { return len(m) }

func (m Map) String() string { return fmt.Sprintf("Map(len=%d)", len(m)) }

// Find returns the first entry of m whose key is equal to key, or nil.
func (m Map) Find(key Value) *Entry {
	for i, e := range m {
		if Equal(e.Key, key) {
			return &m[i]
		}
	}
	return nil
}

// Field returns the value of the first entry of m whose key is the string
// name, or nil if there is no such entry.
func (m Map) Field(name string) Value {
	if e := m.Find(String(name)); e != nil {
		return e.Value
	}
	return nil
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Value) bool {
	switch at := a.(type) {
	case List:
		bt, ok := b.(List)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case Map:
		bt, ok := b.(Map)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i].Key, bt[i].Key) || !Equal(at[i].Value, bt[i].Value) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
