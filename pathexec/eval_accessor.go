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

package pathexec

import (
	"fmt"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

func (e *Executor) execKey(n *ast.Key, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if handled, status, err := e.tryAutoUnwrap(n, rest, st, out); handled {
		return status, err
	}

	if !st.item.IsObject() {
		return e.structuralMiss(`object member "%s" accessed on non-object`, n.Name)
	}
	c, _ := st.item.AsContainer()
	v, ok := c.FindInObject(n.Name)
	if !ok {
		if e.lax || e.ignoreStructuralErrors {
			return StatusNotFound, nil
		}
		return StatusNotFound, ErrNoSuchKey.New(n.Name)
	}
	return e.next(rest, v, e.objectID(c), out)
}

func (e *Executor) execAnyKey(n *ast.AnyKey, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if handled, status, err := e.tryAutoUnwrap(n, rest, st, out); handled {
		return status, err
	}
	if !st.item.IsObject() {
		return e.structuralMiss("`.*` applied to non-object")
	}
	c, _ := st.item.AsContainer()
	status := StatusNotFound
	for _, entry := range c.Entries() {
		s, err := e.next(rest, entry.Val, e.objectID(c), out)
		if err != nil {
			return status, err
		}
		if s == StatusOK {
			status = StatusOK
			if !out.active() {
				return status, nil
			}
		}
	}
	return status, nil
}

func (e *Executor) execAnyArray(n *ast.AnyArray, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if !st.item.IsArray() {
		if e.lax {
			return e.next(rest, st.item, st.baseObjectID, out)
		}
		return e.structuralMiss("`[*]` applied to non-array")
	}
	c, _ := st.item.AsContainer()
	status := StatusNotFound
	for _, elem := range c.Elements() {
		s, err := e.next(rest, elem, e.objectID(c), out)
		if err != nil {
			return status, err
		}
		if s == StatusOK {
			status = StatusOK
			if !out.active() {
				return status, nil
			}
		}
	}
	return status, nil
}

// structuralMiss implements the shared "lax/ignore-structural-errors
// ⇒ produce no item; else error" branch used by accessors that are
// not covered by tryAutoUnwrap's array re-entry (e.g. a key access on
// a scalar, which is not an array at all).
func (e *Executor) structuralMiss(format string, args ...interface{}) (Status, error) {
	if e.lax || e.ignoreStructuralErrors {
		return StatusNotFound, nil
	}
	return StatusNotFound, ErrStructural.New(fmt.Sprintf(format, args...))
}

func (e *Executor) execArrayIndex(n *ast.ArrayIndex, rest []ast.Node, st evalState, out *sink) (Status, error) {
	var c *document.Container
	var size int
	switch {
	case st.item.IsArray():
		c, _ = st.item.AsContainer()
		size = c.Size()
	case e.lax:
		// Auto-wrap: treat the scalar as a 1-element array.
		size = 1
	default:
		return e.structuralMiss("array subscript applied to non-array")
	}

	status := StatusNotFound
	for _, sub := range n.Subscripts {
		from, to, err := e.evalSubscriptBounds(sub, size, st)
		if err != nil {
			return status, err
		}
		if to < from {
			if e.lax {
				continue
			}
			return status, ErrArrayIndexOOB.New()
		}
		for idx := from; idx <= to; idx++ {
			var elem document.Value
			if c != nil {
				v, ok := c.GetAtIndex(idx)
				if !ok {
					if e.lax {
						continue
					}
					return status, ErrArrayIndexOOB.New()
				}
				elem = v
			} else {
				elem = st.item
			}
			base := st.baseObjectID
			if c != nil {
				base = e.objectID(c)
			}
			s, err := e.next(rest, elem, base, out)
			if err != nil {
				return status, err
			}
			if s == StatusOK {
				status = StatusOK
				if !out.active() {
					return status, nil
				}
			}
		}
	}
	return status, nil
}

// evalSubscriptBounds evaluates one IndexSubscript (single index or
// `from TO to` range) against the current item, clipping to [0,
// size-1] in lax mode and erroring in strict mode when out of bounds.
func (e *Executor) evalSubscriptBounds(sub ast.IndexSubscript, size int, st evalState) (from, to int, err error) {
	restore := e.withSubscriptSize(size)
	defer restore()

	fromN, err := e.evalSingletonInt(sub.From, st)
	if err != nil {
		return 0, 0, err
	}
	toN := fromN
	if sub.To != nil {
		toN, err = e.evalSingletonInt(sub.To, st)
		if err != nil {
			return 0, 0, err
		}
	}

	if e.lax {
		if fromN < 0 {
			fromN = 0
		}
		if toN > size-1 {
			toN = size - 1
		}
		return fromN, toN, nil
	}
	if fromN < 0 || fromN > size-1 || toN < 0 || toN > size-1 {
		return 0, 0, ErrArrayIndexOOB.New()
	}
	return fromN, toN, nil
}

// evalSingletonInt evaluates node (a subscript bound expression) to a
// single int: expected to yield exactly one numeric which is
// truncated to a 32-bit integer.
func (e *Executor) evalSingletonInt(node ast.Node, st evalState) (int, error) {
	list := NewValueList(1)
	_, err := e.exec(node, nil, evalState{item: st.item, baseObjectID: st.baseObjectID, unwrapTarget: true}, &sink{list: list})
	if err != nil {
		return 0, err
	}
	if list.Len() != 1 {
		return 0, ErrSingletonRequired.New()
	}
	v, _ := list.Head()
	n, ok := v.AsNumeric()
	if !ok {
		return 0, ErrNumericArg.New("subscript")
	}
	i32, ok := n.Int32()
	if !ok {
		return 0, ErrNumericArg.New("subscript")
	}
	return int(i32), nil
}

func (e *Executor) execSize(n *ast.Size, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if !st.item.IsArray() {
		if e.lax {
			return e.next(rest, document.Num(document.NumericFromInt64(1)), st.baseObjectID, out)
		}
		return e.structuralMiss("`.size()` applied to non-array")
	}
	c, _ := st.item.AsContainer()
	return e.next(rest, document.Num(document.NumericFromInt64(int64(c.Size()))), st.baseObjectID, out)
}

func (e *Executor) execTypeMethod(n *ast.TypeMethod, rest []ast.Node, st evalState, out *sink) (Status, error) {
	return e.next(rest, document.Str(st.item.TypeName()), st.baseObjectID, out)
}

func (e *Executor) execKeyValue(n *ast.KeyValue, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if !st.item.IsObject() {
		return e.structuralMiss("`.keyvalue()` applied to non-object")
	}
	c, _ := st.item.AsContainer()
	baseID := e.objectID(c)
	status := StatusNotFound
	for i, entry := range c.Entries() {
		obj := document.Bin(document.BuildObject([]document.Entry{
			{Key: "key", Val: document.Str(entry.Key)},
			{Key: "value", Val: entry.Val},
			{Key: "id", Val: document.Num(document.NumericFromInt64(keyvalueID(baseID, i, entry.Key)))},
		}))
		newC, _ := obj.AsContainer()
		s, err := e.next(rest, obj, e.objectID(newC), out)
		if err != nil {
			return status, err
		}
		if s == StatusOK {
			status = StatusOK
			if !out.active() {
				return status, nil
			}
		}
	}
	return status, nil
}

// keyvalueID implements the id scheme: 10^10 * base_id +
// byte_offset_of_container_within_base. Since this document model has
// no addressable byte offsets (unlike a true binary codec), the
// entry's ordinal position idx within its object stands in for "byte
// offset", which preserves the scheme's essential property: distinct
// entries of the same base object get distinct ids, and ids are stable
// across repeated evaluations of the same document. idx is folded in
// ahead of the key's own characters so that duplicate keys in the same
// object (which Entries() preserves in source order) still get
// distinct ids.
func keyvalueID(baseID, idx int, key string) int64 {
	const base = 10000000000
	offset := int64(idx+1) * 1000003
	for i, r := range key {
		offset += int64(r) * int64(i+1)
	}
	return int64(baseID)*base + offset%base
}
