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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpathql/pathquery/document"
)

// String renders a as SQL/JSON path source text. This is the inverse of
// parsing (still out of scope for this module): it exists for
// diagnostics, so an execution error can name the failing path, and for
// the demo CLI. Grounded in theory/sqljson/path/ast's writeTo approach
// (see DESIGN.md).
func (a *AST) String() string {
	var b strings.Builder
	if !a.lax {
		b.WriteString("strict ")
	}
	writeNode(&b, a.root)
	return b.String()
}

func (n ArithOp) String() string {
	switch n {
	case ArithAdd, ArithPlus:
		return "+"
	case ArithSub, ArithMinus:
		return "-"
	case ArithMul:
		return "*"
	case ArithDiv:
		return "/"
	case ArithMod:
		return "%"
	default:
		return "?"
	}
}

func (n CompareOp) String() string {
	switch n {
	case CmpEqual:
		return "=="
	case CmpNotEqual:
		return "!="
	case CmpLess:
		return "<"
	case CmpGreater:
		return ">"
	case CmpLessOrEqual:
		return "<="
	case CmpGreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

//nolint:gocyclo
func writeNode(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Literal:
		writeLiteral(b, t)
	case *Variable:
		fmt.Fprintf(b, "$%s", strconv.Quote(t.Name))
	case *Root:
		b.WriteString("$")
	case *Current:
		b.WriteString("@")
	case *LastNode:
		b.WriteString("last")
	case *Key:
		fmt.Fprintf(b, ".%s", strconv.Quote(t.Name))
	case *AnyKey:
		b.WriteString(".*")
	case *AnyArray:
		b.WriteString("[*]")
	case *ArrayIndex:
		b.WriteByte('[')
		for i, s := range t.Subscripts {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, s.From)
			if s.To != nil {
				b.WriteString(" to ")
				writeNode(b, s.To)
			}
		}
		b.WriteByte(']')
	case *AnyDepth:
		writeAnyDepth(b, t)
	case *Size:
		b.WriteString(".size()")
	case *Arithmetic:
		writeArithmetic(b, t)
	case *Comparison:
		writeNode(b, t.Left)
		fmt.Fprintf(b, " %s ", t.Op)
		writeNode(b, t.Right)
	case *Logical:
		writeLogical(b, t)
	case *StartsWith:
		writeNode(b, t.Left)
		b.WriteString(" starts with ")
		writeNode(b, t.Right)
	case *LikeRegex:
		writeNode(b, t.Operand)
		fmt.Fprintf(b, " like_regex %s", strconv.Quote(t.Pattern))
		if t.Flags != "" {
			fmt.Fprintf(b, " flag %q", t.Flags)
		}
	case *Exists:
		b.WriteString("exists(")
		writeNode(b, t.Operand)
		b.WriteByte(')')
	case *IsUnknown:
		b.WriteByte('(')
		writeNode(b, t.Operand)
		b.WriteString(") is unknown")
	case *Filter:
		b.WriteString("?(")
		writeNode(b, t.Predicate)
		b.WriteByte(')')
	case *TypeMethod:
		b.WriteString(".type()")
	case *MathMethod:
		switch t.Op {
		case MathAbs:
			b.WriteString(".abs()")
		case MathFloor:
			b.WriteString(".floor()")
		case MathCeiling:
			b.WriteString(".ceiling()")
		}
	case *DoubleMethod:
		b.WriteString(".double()")
	case *IntCast:
		if t.Op == IntCastBigint {
			b.WriteString(".bigint()")
		} else {
			b.WriteString(".integer()")
		}
	case *DecimalCast:
		writeDecimalCast(b, t)
	case *BooleanCast:
		b.WriteString(".boolean()")
	case *StringCast:
		b.WriteString(".string()")
	case *DatetimeCast:
		writeDatetimeCast(b, t)
	case *KeyValue:
		b.WriteString(".keyvalue()")
	case *Sequence:
		for _, s := range t.Steps {
			writeNode(b, s)
		}
	default:
		b.WriteString("<?>")
	}
}

func writeLiteral(b *strings.Builder, t *Literal) {
	switch t.Val.Kind() {
	case document.KindNull:
		b.WriteString("null")
	case document.KindString:
		s, _ := t.Val.AsString()
		b.WriteString(strconv.Quote(s))
	default:
		fmt.Fprintf(b, "%s", t.Val.String())
	}
}

func writeAnyDepth(b *strings.Builder, t *AnyDepth) {
	switch {
	case t.First == 0 && t.Last == Unbounded:
		b.WriteString(".**")
	case t.First == t.Last:
		fmt.Fprintf(b, ".**{%d}", t.First)
	case t.Last == Unbounded:
		fmt.Fprintf(b, ".**{%d to last}", t.First)
	default:
		fmt.Fprintf(b, ".**{%d to %d}", t.First, t.Last)
	}
}

func writeArithmetic(b *strings.Builder, t *Arithmetic) {
	if t.Right == nil {
		fmt.Fprintf(b, "%s", t.Op)
		writeNode(b, t.Left)
		return
	}
	writeNode(b, t.Left)
	fmt.Fprintf(b, " %s ", t.Op)
	writeNode(b, t.Right)
}

func writeLogical(b *strings.Builder, t *Logical) {
	switch t.Op {
	case LogicalNot:
		b.WriteString("!(")
		writeNode(b, t.Left)
		b.WriteByte(')')
	case LogicalAnd:
		writeNode(b, t.Left)
		b.WriteString(" && ")
		writeNode(b, t.Right)
	case LogicalOr:
		writeNode(b, t.Left)
		b.WriteString(" || ")
		writeNode(b, t.Right)
	}
}

func writeDecimalCast(b *strings.Builder, t *DecimalCast) {
	name := ".decimal("
	if t.Number {
		name = ".number("
	}
	b.WriteString(name)
	if t.Precision != nil {
		fmt.Fprintf(b, "%d", *t.Precision)
		if t.Scale != nil {
			fmt.Fprintf(b, ",%d", *t.Scale)
		}
	}
	b.WriteByte(')')
}

func writeDatetimeCast(b *strings.Builder, t *DatetimeCast) {
	var name string
	switch t.Method {
	case DTMDatetime:
		name = ".datetime("
	case DTMDate:
		name = ".date("
	case DTMTime:
		name = ".time("
	case DTMTimeTZ:
		name = ".time_tz("
	case DTMTimestamp:
		name = ".timestamp("
	case DTMTimestampTZ:
		name = ".timestamp_tz("
	}
	b.WriteString(name)
	switch {
	case t.Template != nil:
		fmt.Fprintf(b, "%s", strconv.Quote(*t.Template))
	case t.Precision != nil:
		fmt.Fprintf(b, "%d", *t.Precision)
	}
	b.WriteByte(')')
}
