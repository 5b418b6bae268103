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

// Package document implements the binary, self-describing JSON value model
// that the path-query interpreter evaluates against. It stands in for the
// low-level document codec that the interpreter treats as an opaque reader:
// Null, Bool, Numeric, String and Datetime are extracted eagerly, while
// Array and Object are always represented by a Binary handle onto a
// Container whose concrete kind is discovered through an inspector.
package document

import "fmt"

// Kind tags the variant a Value currently holds.
type Kind uint8

// The complete set of Value variants.
const (
	KindNull Kind = iota
	KindBool
	KindNumeric
	KindString
	KindDatetime
	KindBinary
)

// String renders k for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindDatetime:
		return "datetime"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Value is a tagged document value. The zero Value is Null.
//
// Scalar kinds (Null, Bool, Numeric, String, Datetime) never appear
// wrapped in a Binary at interpreter boundaries: extraction of a scalar
// from a container is always eager. A Value classified as "array" or
// "object" is always KindBinary, and its concrete kind is obtained from
// the Container's Kind method.
type Value struct {
	kind Kind
	b    bool
	num  Numeric
	str  string
	dt   Datetime
	bin  *Container
}

// Null is the JSON null value.
var Null = Value{kind: KindNull}

// Bool returns a Value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num returns a Value wrapping n.
func Num(n Numeric) Value { return Value{kind: KindNumeric, num: n} }

// Str returns a Value wrapping s. The interpreter treats the bytes as an
// opaque, not-necessarily-NUL-terminated byte sequence; Go's string type
// already has those properties.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// DT returns a Value wrapping a Datetime.
func DT(d Datetime) Value { return Value{kind: KindDatetime, dt: d} }

// Bin wraps c as a Binary value. c must not be nil.
func Bin(c *Container) Value {
	if c == nil {
		panic("document.Bin: nil container")
	}
	return Value{kind: KindBinary, bin: c}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns v's boolean payload. ok is false if v is not KindBool.
func (v Value) AsBool() (b, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumeric returns v's numeric payload. ok is false if v is not KindNumeric.
func (v Value) AsNumeric() (n Numeric, ok bool) {
	if v.kind != KindNumeric {
		return Numeric{}, false
	}
	return v.num, true
}

// AsString returns v's string payload. ok is false if v is not KindString.
func (v Value) AsString() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsDatetime returns v's datetime payload. ok is false if v is not KindDatetime.
func (v Value) AsDatetime() (d Datetime, ok bool) {
	if v.kind != KindDatetime {
		return Datetime{}, false
	}
	return v.dt, true
}

// AsContainer returns v's container, if v is KindBinary.
func (v Value) AsContainer() (c *Container, ok bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return v.bin, true
}

// IsArray reports whether v is a Binary whose container is an array.
func (v Value) IsArray() bool {
	c, ok := v.AsContainer()
	return ok && c.Kind() == ContainerArray
}

// IsObject reports whether v is a Binary whose container is an object.
func (v Value) IsObject() bool {
	c, ok := v.AsContainer()
	return ok && c.Kind() == ContainerObject
}

// TypeName returns the `.type()` method's result string for v: one of
// "null", "boolean", "number", "string", "array", "object", "date", "time
// without time zone", "time with time zone", "timestamp without time
// zone", or "timestamp with time zone". The exact spellings are part of
// the interpreter's contract.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumeric:
		return "number"
	case KindString:
		return "string"
	case KindDatetime:
		switch v.dt.Kind {
		case DTDate:
			return "date"
		case DTTime:
			return "time without time zone"
		case DTTimeTZ:
			return "time with time zone"
		case DTTimestamp:
			return "timestamp without time zone"
		case DTTimestampTZ:
			return "timestamp with time zone"
		}
		return "timestamp without time zone"
	case KindBinary:
		if v.bin.Kind() == ContainerArray {
			return "array"
		}
		return "object"
	default:
		return "unknown"
	}
}

// String renders v for diagnostics and error messages only; it is not a
// JSON or path-language encoding.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindNumeric:
		return v.num.String()
	case KindString:
		return v.str
	case KindDatetime:
		return v.dt.String()
	case KindBinary:
		return fmt.Sprintf("<%s of size %d>", v.TypeName(), v.bin.Size())
	default:
		return "<invalid>"
	}
}
