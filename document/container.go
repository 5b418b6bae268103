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

package document

// ContainerKind distinguishes the structured kinds a Container can hold.
// Scalar is part of the codec contract for completeness, but this
// package's own builders (BuildArray, BuildObject) never produce one:
// scalars are represented directly as a Value, never boxed.
type ContainerKind uint8

const (
	ContainerObject ContainerKind = iota
	ContainerArray
	ContainerScalar
)

// Entry is a single key/value pair of an object Container, in the
// container's native (insertion) order.
type Entry struct {
	Key string
	Val Value
}

// Container is the codec's opaque handle onto a structured (array or
// object) value. Its own kind and contents are obtained through
// inspectors rather than direct field access, standing in for the
// document codec's container-layout primitives.
type Container struct {
	kind    ContainerKind
	arr     []Value
	obj     []Entry
	objIdx  map[string]int
	scalar  Value
}

// BuildArray constructs a fresh array Container from items, in order.
func BuildArray(items []Value) *Container {
	return &Container{kind: ContainerArray, arr: items}
}

// BuildObject constructs a fresh object Container from entries, preserving
// their order as the container's native key order. If the same key
// appears more than once, the last occurrence wins for lookups but all
// entries remain in Entries() (matching how JSON objects with duplicate
// keys degrade in most codecs: last-value-wins, first-position-kept).
func BuildObject(entries []Entry) *Container {
	idx := make(map[string]int, len(entries))
	for i, e := range entries {
		idx[e.Key] = i
	}
	return &Container{kind: ContainerObject, obj: entries, objIdx: idx}
}

// buildScalar wraps v as a Scalar-kind container. Exists only to satisfy
// the codec contract's container_kind() possibility space; extract_scalar
// immediately unwraps these where they'd otherwise appear.
func buildScalar(v Value) *Container {
	return &Container{kind: ContainerScalar, scalar: v}
}

// Kind reports whether c is an object, array, or (degenerate) scalar.
func (c *Container) Kind() ContainerKind { return c.kind }

// Size returns the number of elements (array) or entries (object) in c.
// It is the size bound to LAST inside an array subscript.
func (c *Container) Size() int {
	switch c.kind {
	case ContainerArray:
		return len(c.arr)
	case ContainerObject:
		return len(c.obj)
	default:
		return 1
	}
}

// GetAtIndex returns the i'th array element. ok is false if c is not an
// array or i is out of bounds.
func (c *Container) GetAtIndex(i int) (Value, bool) {
	if c.kind != ContainerArray || i < 0 || i >= len(c.arr) {
		return Value{}, false
	}
	return c.arr[i], true
}

// Elements returns all array elements of c, in order. Returns nil if c is
// not an array.
func (c *Container) Elements() []Value {
	if c.kind != ContainerArray {
		return nil
	}
	return c.arr
}

// FindInObject looks up key in c. ok is false if c is not an object or
// has no such key.
func (c *Container) FindInObject(key string) (Value, bool) {
	if c.kind != ContainerObject {
		return Value{}, false
	}
	i, ok := c.objIdx[key]
	if !ok {
		return Value{}, false
	}
	return c.obj[i].Val, true
}

// Entries returns all key/value entries of c, in the container's native
// order. Returns nil if c is not an object.
func (c *Container) Entries() []Entry {
	if c.kind != ContainerObject {
		return nil
	}
	return c.obj
}

// ExtractScalar returns v unboxed if it encodes a top-level scalar
// Container, and ok=false otherwise. Present for codec-contract
// completeness; this package's own values never produce a scalar
// Container in the first place.
func ExtractScalar(v Value) (Value, bool) {
	c, ok := v.AsContainer()
	if !ok || c.kind != ContainerScalar {
		return Value{}, false
	}
	return c.scalar, true
}
