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

// Status is the three-way disposition of a single evaluation step
// ("execute(ctx, node, item, found?) → {Ok, NotFound,
// Error}"). Error is carried separately, as a Go error, rather than as
// a Status value, so callers can use ordinary error propagation; the
// Status returned alongside a non-nil error carries no meaning.
type Status uint8

const (
	StatusOK Status = iota
	StatusNotFound
)

// evalState is per-call evaluation state threaded through the
// recursive dispatcher: the current item, the base-object id bound to
// it, whether the caller wants this node's result unwrapped if it
// turns out to be an array (the "unwrap_target" flag). The steps
// remaining after this node are passed separately, as exec's rest.
type evalState struct {
	item         document.Value
	baseObjectID int
	unwrapTarget bool
}

// sink is the optional result sink (`found` in the public contract): nil means
// "exists mode", short-circuiting at the first produced item.
type sink struct {
	list *ValueList
}

func (s *sink) active() bool { return s != nil }

func (s *sink) emit(v document.Value) {
	if s != nil {
		s.list.Append(v)
	}
}

// exec is the recursive dispatcher at the heart of component F. step
// is the node currently being evaluated; rest are the steps still to
// run afterward (the "next step", modeled as the remainder of an
// ast.Sequence). It returns StatusOK if at least one item was
// produced (or, in exists mode, as soon as one item would be),
// StatusNotFound if the evaluation produced nothing structurally, and
// a non-nil error for any failure -- suppressible errors are the
// caller's responsibility to catch via IsSuppressible in lax mode.
func (e *Executor) exec(node ast.Node, rest []ast.Node, st evalState, out *sink) (Status, error) {
	leave, err := e.enter()
	if err != nil {
		return StatusNotFound, err
	}
	defer leave()

	switch n := node.(type) {
	case *ast.Sequence:
		return e.execSequence(n.Steps, rest, st, out)
	case *ast.Literal:
		return e.execLiteral(n, rest, st, out)
	case *ast.Variable:
		return e.execVariable(n, rest, st, out)
	case *ast.Root:
		return e.execRoot(n, rest, st, out)
	case *ast.Current:
		return e.execCurrent(n, rest, st, out)
	case *ast.LastNode:
		return e.execLast(n, rest, st, out)
	case *ast.Key:
		return e.execKey(n, rest, st, out)
	case *ast.AnyKey:
		return e.execAnyKey(n, rest, st, out)
	case *ast.AnyArray:
		return e.execAnyArray(n, rest, st, out)
	case *ast.ArrayIndex:
		return e.execArrayIndex(n, rest, st, out)
	case *ast.AnyDepth:
		return e.execAnyDepth(n, rest, st, out)
	case *ast.Size:
		return e.execSize(n, rest, st, out)
	case *ast.Arithmetic:
		return e.execArithmetic(n, rest, st, out)
	case *ast.Comparison:
		return e.execComparison(n, rest, st, out)
	case *ast.Logical:
		return e.execLogical(n, rest, st, out)
	case *ast.StartsWith:
		return e.execStartsWith(n, rest, st, out)
	case *ast.LikeRegex:
		return e.execLikeRegex(n, rest, st, out)
	case *ast.Exists:
		return e.execExists(n, rest, st, out)
	case *ast.IsUnknown:
		return e.execIsUnknown(n, rest, st, out)
	case *ast.Filter:
		return e.execFilter(n, rest, st, out)
	case *ast.TypeMethod:
		return e.execTypeMethod(n, rest, st, out)
	case *ast.MathMethod:
		return e.execMathMethod(n, rest, st, out)
	case *ast.DoubleMethod:
		return e.execDoubleMethod(n, rest, st, out)
	case *ast.IntCast:
		return e.execIntCast(n, rest, st, out)
	case *ast.DecimalCast:
		return e.execDecimalCast(n, rest, st, out)
	case *ast.BooleanCast:
		return e.execBooleanCast(n, rest, st, out)
	case *ast.StringCast:
		return e.execStringCast(n, rest, st, out)
	case *ast.DatetimeCast:
		return e.execDatetimeCast(n, rest, st, out)
	case *ast.KeyValue:
		return e.execKeyValue(n, rest, st, out)
	default:
		return StatusNotFound, ErrStructural.New("unrecognized node kind")
	}
}

// next runs the remainder of the step list (rest) against produced
// item v, which inherits baseObjectID unless the step that produced it
// (Variable, $, .keyvalue()) installed a new one -- those call next
// directly with their own evalState instead of going through this
// helper.
func (e *Executor) next(rest []ast.Node, v document.Value, baseObjectID int, out *sink) (Status, error) {
	if len(rest) == 0 {
		out.emit(v)
		return StatusOK, nil
	}
	return e.exec(rest[0], rest[1:], evalState{item: v, baseObjectID: baseObjectID, unwrapTarget: true}, out)
}

func (e *Executor) execSequence(steps []ast.Node, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if len(steps) == 0 {
		return e.next(rest, st.item, st.baseObjectID, out)
	}
	return e.exec(steps[0], append(steps[1:], rest...), st, out)
}

// tryAutoUnwrap re-enters node elementwise over item's array elements
// when lax mode and the unwrap policy apply; it reports (handled)
// whether it actually happened so callers needing the "else structural
// error" branch can tell.
func (e *Executor) tryAutoUnwrap(node ast.Node, rest []ast.Node, st evalState, out *sink) (handled bool, status Status, err error) {
	if !e.lax || !st.unwrapTarget {
		return false, StatusNotFound, nil
	}
	if !st.item.IsArray() {
		return false, StatusNotFound, nil
	}
	c, _ := st.item.AsContainer()
	status = StatusNotFound
	for _, elem := range c.Elements() {
		elemSt := evalState{item: elem, baseObjectID: st.baseObjectID, unwrapTarget: false}
		s, err := e.exec(node, rest, elemSt, out)
		if err != nil {
			if !e.lax || !IsSuppressible(err) {
				return true, StatusNotFound, err
			}
			continue
		}
		if s == StatusOK {
			status = StatusOK
			if !out.active() {
				return true, status, nil
			}
		}
	}
	return true, status, nil
}

func (e *Executor) execLiteral(n *ast.Literal, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if len(rest) == 0 && !out.active() {
		return StatusOK, nil
	}
	return e.next(rest, n.Val, st.baseObjectID, out)
}

func (e *Executor) execVariable(n *ast.Variable, rest []ast.Node, st evalState, out *sink) (Status, error) {
	v, ok := e.vars.Get(n.Name)
	if !ok {
		return StatusNotFound, ErrVariableNotFound.New(n.Name)
	}
	id, _ := e.vars.ID(n.Name)
	return e.next(rest, v, id, out)
}

func (e *Executor) execRoot(n *ast.Root, rest []ast.Node, st evalState, out *sink) (Status, error) {
	return e.next(rest, e.root, 0, out)
}

func (e *Executor) execCurrent(n *ast.Current, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if e.filterDepth == 0 {
		return StatusNotFound, ErrCurrentOutsideFilter.New()
	}
	return e.next(rest, st.item, st.baseObjectID, out)
}

func (e *Executor) execLast(n *ast.LastNode, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if e.innermostArraySize < 0 {
		return StatusNotFound, ErrLastOutsideSubscript.New()
	}
	return e.next(rest, document.Num(document.NumericFromInt64(int64(e.innermostArraySize-1))), st.baseObjectID, out)
}
