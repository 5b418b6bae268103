// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pathexec is the core path-query evaluator: it walks a
// pre-compiled ast.AST against a document.Value and produces the
// ordered, possibly-empty value-list results the Value-list model
// describes.
package pathexec

import "github.com/jpathql/pathquery/document"

// ValueList is the ordered, duplicate-preserving sequence of
// document.Values threaded through every step of evaluation (the
// Value-list: "each evaluation step consumes and produces a sequence of
// values, not a single value"). The zero ValueList is empty and ready
// to use.
//
// Grounded on theory/sqljson/path/exec/exec.go's valueList, which
// preallocates a length-1 backing slice so the overwhelmingly common
// single-result case allocates once (see DESIGN.md).
type ValueList struct {
	items []document.Value
}

// NewValueList returns an empty ValueList sized for n appends.
func NewValueList(n int) *ValueList {
	return &ValueList{items: make([]document.Value, 0, n)}
}

// Single returns a ValueList holding exactly v.
func Single(v document.Value) *ValueList {
	return &ValueList{items: []document.Value{v}}
}

// Empty returns an empty ValueList.
func Empty() *ValueList { return &ValueList{} }

// Append adds v to the end of the list and returns the receiver, so
// calls can be chained the way the exec.go original does.
func (l *ValueList) Append(v document.Value) *ValueList {
	l.items = append(l.items, v)
	return l
}

// AppendList appends every item of other to l, in order.
func (l *ValueList) AppendList(other *ValueList) *ValueList {
	if other == nil {
		return l
	}
	l.items = append(l.items, other.items...)
	return l
}

// Len reports how many values l holds.
func (l *ValueList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// IsEmpty reports whether l holds no values.
func (l *ValueList) IsEmpty() bool { return l.Len() == 0 }

// Head returns the first value in l. ok is false if l is empty.
func (l *ValueList) Head() (v document.Value, ok bool) {
	if l.IsEmpty() {
		return document.Value{}, false
	}
	return l.items[0], true
}

// At returns the i'th value in l.
func (l *ValueList) At(i int) document.Value { return l.items[i] }

// Items returns the underlying slice of values, in order. Callers must
// not mutate the returned slice.
func (l *ValueList) Items() []document.Value {
	if l == nil {
		return nil
	}
	return l.items
}

// ForEach calls fn for every value in l, stopping early if fn returns
// an error.
func (l *ValueList) ForEach(fn func(document.Value) error) error {
	if l == nil {
		return nil
	}
	for _, v := range l.items {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
