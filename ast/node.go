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

// Package ast provides the pre-compiled abstract syntax tree consumed by
// the path evaluator. The parser that produces these nodes from path
// source text is out of scope for this module; this
// package instead exposes constructors that a parser, or a test, builds
// trees with directly -- largely ported in spirit from PostgreSQL's
// jsonpath.c by way of the theory/sqljson Go port, adapted to this
// module's node set and naming.
package ast

import (
	"math"

	"github.com/jpathql/pathquery/document"
)

// Kind identifies which concrete node type a Node is.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindVariable
	KindRoot         // $
	KindCurrent      // @
	KindLast         // LAST
	KindKey          // .foo
	KindAnyKey       // .*
	KindAnyArray     // [*]
	KindArrayIndex   // [ idx | from to, ... ]
	KindAnyDepth     // .**
	KindSize         // .size()
	KindArithmetic   // + - * / % (binary or unary)
	KindComparison   // == != < > <= >=
	KindLogical      // && || !
	KindStartsWith   // starts with
	KindLikeRegex    // like_regex
	KindExists       // exists(...)
	KindIsUnknown    // ... is unknown
	KindFilter       // ? (...)
	KindTypeMethod   // .type()
	KindMathMethod   // .abs() .floor() .ceiling()
	KindDoubleMethod // .double()
	KindIntCast      // .bigint() .integer()
	KindDecimalCast  // .decimal(p,s) .number()
	KindBooleanCast  // .boolean()
	KindStringCast   // .string()
	KindDatetimeCast // .datetime(tmpl) .date() .time() .time_tz() .timestamp() .timestamp_tz()
	KindKeyValue     // .keyvalue()
	KindSequence     // chained accessor steps
)

// Node is a single node in the path AST. Every concrete node type in this
// package implements it.
type Node interface {
	Kind() Kind
}

// Literal is a constant Null/Bool/Numeric/String value parsed from the
// path text. Val is one of document.Null, document.Bool(b), document.Num(n)
// or document.Str(s) — arithmetic and other non-scalar kinds never appear
// here.
type Literal struct{ Val document.Value }

func (Literal) Kind() Kind { return KindLiteral }

// Variable resolves a named path variable, e.g. $x.
type Variable struct{ Name string }

func (Variable) Kind() Kind { return KindVariable }

// Root is the $ accessor.
type Root struct{}

func (Root) Kind() Kind { return KindRoot }

// Current is the @ accessor, valid only inside a filter.
type Current struct{}

func (Current) Kind() Kind { return KindCurrent }

// LastNode is the LAST keyword, valid only inside an array subscript.
type LastNode struct{}

func (LastNode) Kind() Kind { return KindLast }

// Key is a `.name` object-member accessor.
type Key struct{ Name string }

func (Key) Kind() Kind { return KindKey }

// AnyKey is the `.*` wildcard object-member accessor.
type AnyKey struct{}

func (AnyKey) Kind() Kind { return KindAnyKey }

// AnyArray is the `[*]` wildcard array accessor.
type AnyArray struct{}

func (AnyArray) Kind() Kind { return KindAnyArray }

// IndexSubscript is one element of an ArrayIndex's subscript list: either
// a single index (To == nil) or a `from TO to` range.
type IndexSubscript struct {
	From Node
	To   Node // nil for a single-index subscript
}

// ArrayIndex is the `[ s1, s2, ... ]` array subscript accessor.
type ArrayIndex struct{ Subscripts []IndexSubscript }

func (ArrayIndex) Kind() Kind { return KindArrayIndex }

// Unbounded marks an AnyDepth bound as unlimited.
const Unbounded = math.MaxUint32

// AnyDepth is the `.**` (optionally `.**{m}`, `.**{m to n}`) any-depth
// descent accessor.
type AnyDepth struct{ First, Last uint32 }

func (AnyDepth) Kind() Kind { return KindAnyDepth }

// Size is the `.size()` method.
type Size struct{}

func (Size) Kind() Kind { return KindSize }

// ArithOp enumerates the arithmetic operators.
type ArithOp uint8

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
	ArithPlus  // unary +
	ArithMinus // unary -
)

// Arithmetic is a binary (Right != nil) or unary (Right == nil) numeric
// operator.
type Arithmetic struct {
	Op          ArithOp
	Left, Right Node
}

func (Arithmetic) Kind() Kind { return KindArithmetic }

// CompareOp enumerates the comparison operators.
type CompareOp uint8

const (
	CmpEqual CompareOp = iota
	CmpNotEqual
	CmpLess
	CmpGreater
	CmpLessOrEqual
	CmpGreaterOrEqual
)

// Comparison is a cross-type comparison predicate.
type Comparison struct {
	Op          CompareOp
	Left, Right Node
}

func (Comparison) Kind() Kind { return KindComparison }

// LogicalOp enumerates the boolean combinators.
type LogicalOp uint8

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
	LogicalNot // Right is unused
)

// Logical is a tri-valued boolean combinator.
type Logical struct {
	Op          LogicalOp
	Left, Right Node // Right is nil for LogicalNot
}

func (Logical) Kind() Kind { return KindLogical }

// StartsWith is the `starts with` predicate.
type StartsWith struct{ Left, Right Node }

func (StartsWith) Kind() Kind { return KindStartsWith }

// LikeRegex is the `like_regex` predicate.
type LikeRegex struct {
	Operand Node
	Pattern string
	Flags   string
}

func (LikeRegex) Kind() Kind { return KindLikeRegex }

// Exists is the `exists(...)` predicate.
type Exists struct{ Operand Node }

func (Exists) Kind() Kind { return KindExists }

// IsUnknown is the `... is unknown` predicate.
type IsUnknown struct{ Operand Node }

func (IsUnknown) Kind() Kind { return KindIsUnknown }

// Filter is the `? (predicate)` accessor.
type Filter struct{ Predicate Node }

func (Filter) Kind() Kind { return KindFilter }

// TypeMethod is the `.type()` method.
type TypeMethod struct{}

func (TypeMethod) Kind() Kind { return KindTypeMethod }

// MathOp enumerates the scalar-numeric methods.
type MathOp uint8

const (
	MathAbs MathOp = iota
	MathFloor
	MathCeiling
)

// MathMethod is `.abs()`, `.floor()` or `.ceiling()`.
type MathMethod struct{ Op MathOp }

func (MathMethod) Kind() Kind { return KindMathMethod }

// DoubleMethod is the `.double()` method.
type DoubleMethod struct{}

func (DoubleMethod) Kind() Kind { return KindDoubleMethod }

// IntCastOp distinguishes `.bigint()` from `.integer()`. The interpreter
// treats both as range-checked integer coercions; IntCastOp only affects
// the width of the range check.
type IntCastOp uint8

const (
	IntCastBigint IntCastOp = iota
	IntCastInteger
)

// IntCast is `.bigint()` or `.integer()`.
type IntCast struct{ Op IntCastOp }

func (IntCast) Kind() Kind { return KindIntCast }

// DecimalCast is `.decimal(p, s)` or `.number()` (Number == true). P and S
// are nil when not specified.
type DecimalCast struct {
	Precision, Scale *int
	Number           bool
}

func (DecimalCast) Kind() Kind { return KindDecimalCast }

// BooleanCast is the `.boolean()` method.
type BooleanCast struct{}

func (BooleanCast) Kind() Kind { return KindBooleanCast }

// StringCast is the `.string()` method.
type StringCast struct{}

func (StringCast) Kind() Kind { return KindStringCast }

// DatetimeMethod distinguishes the datetime-cast method family.
type DatetimeMethod uint8

const (
	DTMDatetime DatetimeMethod = iota
	DTMDate
	DTMTime
	DTMTimeTZ
	DTMTimestamp
	DTMTimestampTZ
)

// DatetimeCast is `.datetime(template?)`, `.date()`, `.time()`,
// `.time_tz()`, `.timestamp()` or `.timestamp_tz()`. Template is non-nil
// only for Method == DTMDatetime with an explicit template argument.
// Precision is non-nil for the methods that accept one (all but
// .datetime() and .date()).
type DatetimeCast struct {
	Method    DatetimeMethod
	Template  *string
	Precision *int
}

func (DatetimeCast) Kind() Kind { return KindDatetimeCast }

// KeyValue is the `.keyvalue()` method.
type KeyValue struct{}

func (KeyValue) Kind() Kind { return KindKeyValue }

// Sequence chains accessor Steps left to right: the result of evaluating
// Steps[i] against an item becomes the input to Steps[i+1]. This uses an
// explicit slice the evaluator walks in place of a threaded "next step"
// pointer, which is simpler to construct and to reason about in Go than
// a linked list.
type Sequence struct{ Steps []Node }

func (Sequence) Kind() Kind { return KindSequence }

// NewSequence flattens nested Sequences so that Steps is always a flat,
// non-nested step list, the way the parser's AccessorListNode
// construction does (see the ast survey in DESIGN.md).
func NewSequence(steps ...Node) *Sequence {
	var flat []Node
	for _, s := range steps {
		if seq, ok := s.(*Sequence); ok {
			flat = append(flat, seq.Steps...)
			continue
		}
		flat = append(flat, s)
	}
	return &Sequence{Steps: flat}
}
