// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package mivalue

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting map keys) or
// integers (denoting offsets into lists).  If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// If a path element is a string, the corresponding value must be a map, and
// the string resolves the first entry whose key is that String.
//
// If a path element is an integer, the corresponding value must be a list,
// and the integer resolves to an index in the list. Negative indices count
// backward from the end of the list (-1 is last, -2 second last, etc.).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(mivalue.Value) (mivalue.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			m, ok := cur.(Map)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			e := m.Find(String(t))
			if e == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = e.Value
		case int:
			l, ok := cur.(List)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %v", cur, t)
			}
			i, ok := fixListBound(len(l), t)
			if !ok {
				return v, fmt.Errorf("list index %d out of bounds (n=%d)", t, len(l))
			}
			cur = l[i]
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixListBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
