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
	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

// CompareValues implements the comparison-operator semantics:
// Null vs non-Null compares `!=`→True, any other op→False; mismatched
// non-Null kinds→Unknown; same-kind scalars compare per their type;
// Binary (array/object) operands are never comparable.
func CompareValues(useTZ bool, op ast.CompareOp, l, r document.Value) (Tri, error) {
	if l.IsNull() || r.IsNull() {
		if l.IsNull() && r.IsNull() {
			return applyOrder(op, 0), nil
		}
		if op == ast.CmpNotEqual {
			return True, nil
		}
		return False, nil
	}

	if l.Kind() != r.Kind() {
		return Unknown, nil
	}

	switch l.Kind() {
	case document.KindBool:
		lb, _ := l.AsBool()
		rb, _ := r.AsBool()
		return applyOrder(op, boolCmp(lb, rb)), nil
	case document.KindNumeric:
		ln, _ := l.AsNumeric()
		rn, _ := r.AsNumeric()
		c, ok := ln.Cmp(rn)
		if !ok {
			return Unknown, nil
		}
		return applyOrder(op, c), nil
	case document.KindString:
		ls, _ := l.AsString()
		rs, _ := r.AsString()
		if op == ast.CmpEqual {
			return boolToTri(ls == rs), nil
		}
		if op == ast.CmpNotEqual {
			return boolToTri(ls != rs), nil
		}
		return applyOrder(op, document.CompareUTF8(ls, rs)), nil
	case document.KindDatetime:
		ld, _ := l.AsDatetime()
		rd, _ := r.AsDatetime()
		c, unknown, err := CompareDatetime(ld, rd, useTZ)
		if err != nil {
			return Unknown, err
		}
		if unknown {
			return Unknown, nil
		}
		return applyOrder(op, c), nil
	default:
		// Binary (array/object) scalars are never comparable.
		return Unknown, nil
	}
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func boolToTri(b bool) Tri {
	if b {
		return True
	}
	return False
}

// applyOrder turns a three-way comparison result c (negative, zero,
// positive) into the Tri the requested op yields.
func applyOrder(op ast.CompareOp, c int) Tri {
	switch op {
	case ast.CmpEqual:
		return boolToTri(c == 0)
	case ast.CmpNotEqual:
		return boolToTri(c != 0)
	case ast.CmpLess:
		return boolToTri(c < 0)
	case ast.CmpGreater:
		return boolToTri(c > 0)
	case ast.CmpLessOrEqual:
		return boolToTri(c <= 0)
	case ast.CmpGreaterOrEqual:
		return boolToTri(c >= 0)
	default:
		return Unknown
	}
}
