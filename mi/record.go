// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package mi implements framing for GDB machine interface (MI) output.
//
// Each line of MI output is a record. Parse classifies a single line and
// decodes its payload, but does not interpret the meaning of any record:
//
//	rec, err := mi.Parse(`^done,value="{1, 2}"`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, r := range rec.Embedded() {
//	   log.Printf("Embedded value: %s", r.Value)
//	}
//
// Lines that do not begin with an MI record prefix are reported as Output
// records holding the raw line, since the inferior program may write to the
// same stream as the debugger.
package mi

// Kind is the type of an MI output record.
type Kind byte

// Constants defining the valid Kind values.
const (
	Output       Kind = iota // inferior program output
	ResultRecord             // result record: [token] "^" class ("," result)*
	Exec                     // exec async record: [token] "*" class ("," result)*
	Status                   // status async record: [token] "+" class ("," result)*
	Notify                   // notify async record: [token] "=" class ("," result)*
	Console                  // console stream record: "~" c-string
	Target                   // target stream record: "@" c-string
	Log                      // log stream record: "&" c-string
	Prompt                   // end of a group of records: "(gdb)"
)

var kindStr = [...]string{
	Output:       "stdout",
	ResultRecord: "result",
	Exec:         "exec",
	Status:       "status",
	Notify:       "notify",
	Console:      "console",
	Target:       "target",
	Log:          "log",
	Prompt:       "prompt",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[v]
}

// IsAsync reports whether k is one of the async record kinds.
func (k Kind) IsAsync() bool { return k == Exec || k == Status || k == Notify }

// IsStream reports whether k is one of the stream record kinds.
func (k Kind) IsStream() bool { return k == Console || k == Target || k == Log }

// A Record is a single line of MI output.
type Record struct {
	Kind Kind

	// Token is the numeric token of a result or async record.
	// It is meaningful only if HasToken is true.
	Token    uint64
	HasToken bool

	// Class is the result class ("done", "error", ...) or async class
	// ("stopped", "breakpoint-modified", ...) of the record.
	Class string

	// Results are the results of a result or async record, in order.
	Results []Result

	// Text is the decoded text of a stream record, or the raw line of an
	// Output record.
	Text string
}

// Find returns the first result of r with the given name, or nil.
func (r *Record) Find(name string) *Result {
	for i, res := range r.Results {
		if res.Name == name {
			return &r.Results[i]
		}
	}
	return nil
}

// Embedded returns the results of r named "value" whose values are strings.
// The text of each is an embedded value expression.
func (r *Record) Embedded() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.IsEmbedded() {
			out = append(out, res)
		}
	}
	return out
}

// A Value is an MI value. The concrete type is one of Const, Tuple, List,
// or Result (as an element of a List).
type Value interface{ isValue() }

// A Const is a decoded c-string constant.
type Const string

func (Const) isValue() {}

// A Tuple is a sequence of named results: {name=value,...}.
type Tuple []Result

func (Tuple) isValue() {}

// Find returns the first result of t with the given name, or nil.
func (t Tuple) Find(name string) *Result {
	for i, res := range t {
		if res.Name == name {
			return &t[i]
		}
	}
	return nil
}

// A List is a sequence of values [value,...] or of results [name=value,...].
// In the latter case each element has concrete type Result.
type List []Value

func (List) isValue() {}

// A Result is a named value: name=value.
type Result struct {
	Name  string
	Value Value
}

func (Result) isValue() {}

// IsEmbedded reports whether r is named "value" and holds a string.
// At the top level of a record, such a string is an embedded value
// expression.
func (r Result) IsEmbedded() bool {
	_, ok := r.Value.(Const)
	return ok && r.Name == "value"
}
