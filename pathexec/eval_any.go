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

// execAnyDepth implements `.**` (optionally `.**{m}`, `.**{m to n}`):
// depth-first traversal of item and its descendant containers, emitting
// every node whose depth falls within [first, last]. The
// depth-0 probe runs with structural errors suppressed, matching "first
// tries at depth 0 with structural errors suppressed; then recurses
// into binary children".
func (e *Executor) execAnyDepth(n *ast.AnyDepth, rest []ast.Node, st evalState, out *sink) (Status, error) {
	return e.anyDepthLevel(rest, st, 0, n.First, n.Last, out)
}

func (e *Executor) anyDepthLevel(rest []ast.Node, st evalState, level, first, last uint32, out *sink) (Status, error) {
	status := StatusNotFound

	if level >= first {
		restore := e.withIgnoreStructuralErrors()
		s, err := e.next(rest, st.item, st.baseObjectID, out)
		restore()
		if err != nil {
			if !IsSuppressible(err) {
				return status, err
			}
		} else if s == StatusOK {
			status = StatusOK
			if !out.active() {
				return status, nil
			}
		}
	}

	if level >= last {
		return status, nil
	}

	c, ok := st.item.AsContainer()
	if !ok {
		return status, nil
	}

	descend := func(child document.Value) (Status, error) {
		childSt := evalState{item: child, baseObjectID: e.objectID(c), unwrapTarget: st.unwrapTarget}
		return e.anyDepthLevel(rest, childSt, level+1, first, last, out)
	}

	switch c.Kind() {
	case document.ContainerArray:
		for _, elem := range c.Elements() {
			s, err := descend(elem)
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
	case document.ContainerObject:
		for _, entry := range c.Entries() {
			s, err := descend(entry.Val)
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
