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

// evalOperandList evaluates node (an operand sub-expression) to its
// full value-list with lax auto-unwrap applied, the way every
// arithmetic/comparison operand is evaluated.
func (e *Executor) evalOperandList(node ast.Node, st evalState) (*ValueList, error) {
	list := NewValueList(1)
	_, err := e.exec(node, nil, evalState{item: st.item, baseObjectID: st.baseObjectID, unwrapTarget: true}, &sink{list: list})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (e *Executor) execArithmetic(n *ast.Arithmetic, rest []ast.Node, st evalState, out *sink) (Status, error) {
	lefts, err := e.evalOperandList(n.Left, st)
	if err != nil {
		return StatusNotFound, err
	}

	if n.Right == nil {
		return e.execUnaryArithmetic(n, lefts, rest, st, out)
	}

	rights, err := e.evalOperandList(n.Right, st)
	if err != nil {
		return StatusNotFound, err
	}
	if lefts.Len() != 1 || rights.Len() != 1 {
		return StatusNotFound, ErrSingletonRequired.New()
	}
	lv, _ := lefts.Head()
	rv, _ := rights.Head()
	ln, ok := lv.AsNumeric()
	if !ok {
		return StatusNotFound, ErrNumericArg.New("left operand")
	}
	rn, ok := rv.AsNumeric()
	if !ok {
		return StatusNotFound, ErrNumericArg.New("right operand")
	}

	result, err := applyArith(n.Op, ln, rn)
	if err != nil {
		return StatusNotFound, err
	}
	return e.next(rest, document.Num(result), st.baseObjectID, out)
}

func applyArith(op ast.ArithOp, l, r document.Numeric) (document.Numeric, error) {
	switch op {
	case ast.ArithAdd:
		return l.Add(r)
	case ast.ArithSub:
		return l.Sub(r)
	case ast.ArithMul:
		return l.Mul(r)
	case ast.ArithDiv:
		return l.Div(r)
	case ast.ArithMod:
		return l.Mod(r)
	default:
		return document.Numeric{}, ErrStructural.New("unrecognized arithmetic operator")
	}
}

// execUnaryArithmetic implements unary + and -, which iterate their
// operand's value-list rather than requiring a singleton: "iterates
// numerics, skipping non-numerics only when no result sink and no next
// step; otherwise non-numeric is an error."
func (e *Executor) execUnaryArithmetic(n *ast.Arithmetic, operands *ValueList, rest []ast.Node, st evalState, out *sink) (Status, error) {
	skipNonNumeric := len(rest) == 0 && !out.active()
	status := StatusNotFound
	for _, v := range operands.Items() {
		num, ok := v.AsNumeric()
		if !ok {
			if skipNonNumeric {
				continue
			}
			return status, ErrNumericArg.New("unary operand")
		}
		var result document.Numeric
		if n.Op == ast.ArithMinus {
			result = num.Neg()
		} else {
			result = num
		}
		s, err := e.next(rest, document.Num(result), st.baseObjectID, out)
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

func (e *Executor) execComparison(n *ast.Comparison, rest []ast.Node, st evalState, out *sink) (Status, error) {
	lefts, err := e.evalOperandList(n.Left, st)
	if err != nil {
		return StatusNotFound, err
	}
	rights, err := e.evalRightOperand(n.Right, st)
	if err != nil {
		return StatusNotFound, err
	}

	res, err := Drive(lefts, rights, e.lax, false, func(l, r document.Value) (Tri, error) {
		return CompareValues(e.useTZ, n.Op, l, r)
	})
	if err != nil {
		return StatusNotFound, err
	}
	return e.emitPredicateResult(res, rest, st, out)
}

// evalRightOperand evaluates a predicate's right operand: "conditionally
// unwrap" collapses, in this interpreter, to the same lax-mode
// auto-unwrap as any other operand, since no operator here asks for a
// non-unwrapped right side explicitly.
func (e *Executor) evalRightOperand(node ast.Node, st evalState) (*ValueList, error) {
	if node == nil {
		return Empty(), nil
	}
	return e.evalOperandList(node, st)
}

// emitPredicateResult wraps a Tri result via the boolean-result
// wrapping rule only when there is no further step and no sink (i.e.
// this predicate is the whole top-level expression); inside a larger
// expression (there is a next step, or a sink expects every item) the
// Tri still needs converting to a Value to flow onward, since Value
// has no native tri-valued representation -- so the same WrapResult
// conversion is used either way, and only the *emission* differs.
func (e *Executor) emitPredicateResult(res Tri, rest []ast.Node, st evalState, out *sink) (Status, error) {
	return e.next(rest, res.WrapResult(), st.baseObjectID, out)
}

func (e *Executor) execLogical(n *ast.Logical, rest []ast.Node, st evalState, out *sink) (Status, error) {
	left, err := e.evalPredicate(n.Left, st)
	if err != nil {
		return StatusNotFound, err
	}
	var res Tri
	switch n.Op {
	case ast.LogicalNot:
		res = left.Not()
	case ast.LogicalAnd:
		right, err := e.evalPredicate(n.Right, st)
		if err != nil {
			return StatusNotFound, err
		}
		res = left.And(right)
	case ast.LogicalOr:
		right, err := e.evalPredicate(n.Right, st)
		if err != nil {
			return StatusNotFound, err
		}
		res = left.Or(right)
	}
	return e.emitPredicateResult(res, rest, st, out)
}

// evalPredicate evaluates node, a predicate-valued sub-expression, down
// to a single Tri, unwrapping the Bool/Null result the sub-evaluation
// produces (predicate sub-expressions always bottom out in a
// boolean-wrapped Value).
func (e *Executor) evalPredicate(node ast.Node, st evalState) (Tri, error) {
	list := NewValueList(1)
	_, err := e.exec(node, nil, evalState{item: st.item, baseObjectID: st.baseObjectID, unwrapTarget: true}, &sink{list: list})
	if err != nil {
		if IsSuppressible(err) {
			return Unknown, nil
		}
		return Unknown, err
	}
	v, ok := list.Head()
	if !ok {
		return Unknown, nil
	}
	if v.IsNull() {
		return Unknown, nil
	}
	b, ok := v.AsBool()
	if !ok {
		return Unknown, nil
	}
	if b {
		return True, nil
	}
	return False, nil
}

func (e *Executor) execStartsWith(n *ast.StartsWith, rest []ast.Node, st evalState, out *sink) (Status, error) {
	lefts, err := e.evalOperandList(n.Left, st)
	if err != nil {
		return StatusNotFound, err
	}
	rights, err := e.evalOperandList(n.Right, st)
	if err != nil {
		return StatusNotFound, err
	}
	res, err := Drive(lefts, rights, e.lax, false, func(l, r document.Value) (Tri, error) {
		ls, ok := l.AsString()
		if !ok {
			return Unknown, nil
		}
		rs, ok := r.AsString()
		if !ok {
			return Unknown, nil
		}
		return boolToTri(hasPrefix(ls, rs)), nil
	})
	if err != nil {
		return StatusNotFound, err
	}
	return e.emitPredicateResult(res, rest, st, out)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func (e *Executor) execExists(n *ast.Exists, rest []ast.Node, st evalState, out *sink) (Status, error) {
	list := NewValueList(1)
	prevIgnore := e.ignoreStructuralErrors
	e.ignoreStructuralErrors = true
	_, err := e.exec(n.Operand, nil, evalState{item: st.item, baseObjectID: st.baseObjectID, unwrapTarget: true}, &sink{list: list})
	e.ignoreStructuralErrors = prevIgnore

	var res Tri
	switch {
	case err != nil:
		if !IsSuppressible(err) {
			return StatusNotFound, err
		}
		res = Unknown
	case list.Len() > 0:
		res = True
	default:
		res = False
	}
	return e.emitPredicateResult(res, rest, st, out)
}

func (e *Executor) execIsUnknown(n *ast.IsUnknown, rest []ast.Node, st evalState, out *sink) (Status, error) {
	inner, err := e.evalPredicate(n.Operand, st)
	if err != nil {
		return StatusNotFound, err
	}
	return e.emitPredicateResult(boolToTri(inner == Unknown), rest, st, out)
}

func (e *Executor) execFilter(n *ast.Filter, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if handled, status, err := e.tryAutoUnwrap(n, rest, st, out); handled {
		return status, err
	}

	restore := e.withFilter()
	res, err := e.evalPredicate(n.Predicate, evalState{item: st.item, baseObjectID: st.baseObjectID, unwrapTarget: true})
	restore()
	if err != nil {
		return StatusNotFound, err
	}
	if res != True {
		return StatusNotFound, nil
	}
	return e.next(rest, st.item, st.baseObjectID, out)
}
