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

package ast

import "github.com/jpathql/pathquery/document"

// This file collects convenience constructors standing in for the
// parser's node-building calls (the parser itself, which turns path
// source text into these calls, is out of scope for this module).

// NewLiteral returns a Literal node wrapping val.
func NewLiteral(val document.Value) *Literal { return &Literal{Val: val} }

// NewVariable returns a Variable node named name.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

// NewKey returns a Key node for the named member.
func NewKey(name string) *Key { return &Key{Name: name} }

// NewArrayIndex returns an ArrayIndex node over subscripts.
func NewArrayIndex(subscripts ...IndexSubscript) *ArrayIndex {
	return &ArrayIndex{Subscripts: subscripts}
}

// Index returns a single-element IndexSubscript.
func Index(n Node) IndexSubscript { return IndexSubscript{From: n} }

// Range returns a `from TO to` IndexSubscript.
func Range(from, to Node) IndexSubscript { return IndexSubscript{From: from, To: to} }

// NewAnyDepth returns an AnyDepth node. A negative first or last means
// unbounded.
func NewAnyDepth(first, last int) *AnyDepth {
	n := &AnyDepth{First: Unbounded, Last: Unbounded}
	if first >= 0 {
		n.First = uint32(first)
	}
	if last >= 0 {
		n.Last = uint32(last)
	}
	return n
}

// NewArithmetic returns a binary Arithmetic node.
func NewArithmetic(op ArithOp, left, right Node) *Arithmetic {
	return &Arithmetic{Op: op, Left: left, Right: right}
}

// NewUnaryArithmetic returns a unary Arithmetic node (+x or -x).
func NewUnaryArithmetic(op ArithOp, operand Node) *Arithmetic {
	return &Arithmetic{Op: op, Left: operand}
}

// NewComparison returns a Comparison node.
func NewComparison(op CompareOp, left, right Node) *Comparison {
	return &Comparison{Op: op, Left: left, Right: right}
}

// NewAnd returns a Logical AND node.
func NewAnd(left, right Node) *Logical { return &Logical{Op: LogicalAnd, Left: left, Right: right} }

// NewOr returns a Logical OR node.
func NewOr(left, right Node) *Logical { return &Logical{Op: LogicalOr, Left: left, Right: right} }

// NewNot returns a Logical NOT node.
func NewNot(operand Node) *Logical { return &Logical{Op: LogicalNot, Left: operand} }

// NewStartsWith returns a StartsWith node.
func NewStartsWith(left, right Node) *StartsWith { return &StartsWith{Left: left, Right: right} }

// NewLikeRegex returns a LikeRegex node.
func NewLikeRegex(operand Node, pattern, flags string) *LikeRegex {
	return &LikeRegex{Operand: operand, Pattern: pattern, Flags: flags}
}

// NewExists returns an Exists node.
func NewExists(operand Node) *Exists { return &Exists{Operand: operand} }

// NewIsUnknown returns an IsUnknown node.
func NewIsUnknown(operand Node) *IsUnknown { return &IsUnknown{Operand: operand} }

// NewFilter returns a Filter node.
func NewFilter(predicate Node) *Filter { return &Filter{Predicate: predicate} }

// NewMathMethod returns a MathMethod node.
func NewMathMethod(op MathOp) *MathMethod { return &MathMethod{Op: op} }

// NewIntCast returns an IntCast node.
func NewIntCast(op IntCastOp) *IntCast { return &IntCast{Op: op} }

// NewDecimalCast returns a DecimalCast node. Pass nil, nil for unspecified
// precision/scale.
func NewDecimalCast(number bool, precision, scale *int) *DecimalCast {
	return &DecimalCast{Number: number, Precision: precision, Scale: scale}
}

// NewDatetimeCast returns a DatetimeCast node.
func NewDatetimeCast(method DatetimeMethod, template *string, precision *int) *DatetimeCast {
	return &DatetimeCast{Method: method, Template: template, Precision: precision}
}

// IntPtr is a small helper for building optional int arguments
// (precision/scale) inline.
func IntPtr(n int) *int { return &n }

// StrPtr is a small helper for building optional string arguments
// (datetime templates) inline.
func StrPtr(s string) *string { return &s }
