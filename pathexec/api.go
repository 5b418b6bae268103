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

// Disposition is the three-way result of a top-level evaluator call
// OK (sequence non-empty, or exists found a match),
// NotFound (the evaluation produced nothing, with no error), or Errored
// (a suppressible failure occurred and was swallowed per the caller's
// suppress flag).
type Disposition uint8

const (
	OK Disposition = iota
	NotFound
	Errored
)

func rootState(doc document.Value) evalState {
	return evalState{item: doc, baseObjectID: 0, unwrapTarget: true}
}

// runRoot is the shared entry point every top-level surface function
// uses: build an Executor, run the AST's root against doc, and fold a
// suppressible failure into (NotFound-shaped, Errored, nil) when
// suppress is requested, or propagate it otherwise.
func runRoot(doc document.Value, path *ast.AST, suppress bool, opts []Option, sinkList *ValueList) (Disposition, error) {
	e := NewExecutor(doc, path.IsLax(), opts...)
	var s *sink
	if sinkList != nil {
		s = &sink{list: sinkList}
	}
	status, err := e.exec(path.Root(), nil, rootState(doc), s)
	if err != nil {
		if suppress && IsSuppressible(err) {
			return Errored, nil
		}
		return NotFound, err
	}
	if status == StatusOK {
		return OK, nil
	}
	return NotFound, nil
}

// PathExists implements the path_exists: whether the path produces
// at least one item against doc. It runs in "exists mode" (no result
// sink), so the evaluator short-circuits at the first match.
func PathExists(doc document.Value, path *ast.AST, suppress bool, opts ...Option) (Disposition, bool, error) {
	disp, err := runRoot(doc, path, suppress, opts, nil)
	if err != nil {
		return Errored, false, err
	}
	return disp, disp == OK, nil
}

// PathQuery implements the path_query: the full, ordered result
// sequence.
func PathQuery(doc document.Value, path *ast.AST, suppress bool, opts ...Option) (Disposition, []document.Value, error) {
	list := NewValueList(4)
	disp, err := runRoot(doc, path, suppress, opts, list)
	if err != nil {
		return Errored, nil, err
	}
	if disp == Errored {
		return Errored, nil, nil
	}
	return disp, list.Items(), nil
}

// PathQueryFirst implements path_query_first: per the invariant
// `query_first = query().head()`, this is exactly that.
func PathQueryFirst(doc document.Value, path *ast.AST, suppress bool, opts ...Option) (Disposition, document.Value, error) {
	disp, items, err := PathQuery(doc, path, suppress, opts...)
	if err != nil || disp != OK {
		return disp, document.Value{}, err
	}
	return disp, items[0], nil
}

// PathMatch implements the path_match: the query result must
// collapse to a single Bool or Null value (boolean-result wrapping
// guarantees this for predicate-valued paths; a non-predicate path
// or a multi-item result is ErrSingletonRequired).
func PathMatch(doc document.Value, path *ast.AST, suppress bool, opts ...Option) (Disposition, bool, error) {
	disp, items, err := PathQuery(doc, path, suppress, opts...)
	if err != nil {
		return Errored, false, err
	}
	if disp != OK {
		return disp, false, nil
	}
	if len(items) != 1 {
		if suppress {
			return Errored, false, nil
		}
		return Errored, false, ErrSingletonRequired.New()
	}
	v := items[0]
	if v.IsNull() {
		return OK, false, nil
	}
	b, ok := v.AsBool()
	if !ok {
		if suppress {
			return Errored, false, nil
		}
		return Errored, false, ErrSingletonRequired.New()
	}
	return OK, b, nil
}

// Wrapper selects how PathValue reconciles a non-singleton result
// sequence into the single scalar JSON_VALUE-style callers want:
// one of None, Unconditional, Conditional, or Unspec.
type Wrapper uint8

const (
	WrapperNone Wrapper = iota
	WrapperUnconditional
	WrapperConditional
	WrapperUnspec
)

// PathValue implements the path_value: extract a single scalar,
// wrapping a multi-item (or, for Unconditional, any) result sequence
// into an array Value per wrapper's policy.
func PathValue(doc document.Value, path *ast.AST, wrapper Wrapper, suppress bool, opts ...Option) (Disposition, document.Value, error) {
	disp, items, err := PathQuery(doc, path, suppress, opts...)
	if err != nil {
		return Errored, document.Value{}, err
	}
	if disp != OK {
		return disp, document.Value{}, nil
	}

	switch wrapper {
	case WrapperUnconditional:
		return OK, document.Bin(document.BuildArray(items)), nil
	case WrapperConditional, WrapperUnspec:
		if len(items) == 1 {
			return OK, items[0], nil
		}
		return OK, document.Bin(document.BuildArray(items)), nil
	default: // WrapperNone
		if len(items) != 1 {
			if suppress {
				return Errored, document.Value{}, nil
			}
			return Errored, document.Value{}, ErrSingletonRequired.New()
		}
		return OK, items[0], nil
	}
}
