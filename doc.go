// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mivalue implements a parser for the embedded value syntax that
// debuggers print inside GDB/MI output, such as the result of evaluating an
// expression:
//
//	{x = 5, items = {1, 2, 3}, index = {[1] = "one", [2] = "two"}}
//
// # Values
//
// Parsing produces a tree of Value nodes. The concrete type of each node is
// one of Bool, Number, String, List, or Map:
//
//	Syntax            | Type   | Description
//	----------------- | ------ | ---------------------------------------
//	true, false       | Bool   | Boolean constant
//	12, 3.25          | Number | unsigned decimal, no exponent
//	"a\tb"            | String | \\ \n \r \t escapes are decoded
//	{1, 2}            | List   | bare entries
//	{x = 1}           | Map    | struct entries, keyed by String("x")
//	{[1] = 2}         | Map    | map entries, keyed by any value
//	@0x7ffe: value    | --     | reference annotation, discarded
//
// A Map is an association list: entries keep their source order and keys
// may repeat.
//
// # Containers
//
// Both lists and maps are written with braces. The shape of a container is
// decided by its first entry, and every later entry must agree with it:
// struct and map entries may be mixed with each other, but not with bare
// list entries. An entry that begins with a letter is always a struct entry,
// so "{true}" is an error rather than a list. An empty container "{}" is an
// empty List.
//
// # Parsing
//
// Call Parse to parse a complete value expression:
//
//	v, err := mivalue.Parse(`{x = 5}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, no partial value is returned and the error has concrete
// type *mivalue.SyntaxError. Its Kind can be tested with errors.Is:
//
//	if errors.Is(err, mivalue.MixedContainerShape) {
//	   // ...
//	}
//
// To parse a single value from the front of a longer input, construct a
// Parser with NewParser and call its ParseValue method.
package mivalue
