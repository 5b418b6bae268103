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

// Package jsontable is the tabular driver: it composes
// per-row path evaluation (pathexec) with parent/child (outer-join) and
// sibling (union-all) joins to produce rows of typed columns, the way
// a JSON_TABLE-style construct sits on top of a plain path evaluator.
package jsontable

import (
	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
	"github.com/jpathql/pathquery/pathexec"
)

// Plan is a tabular driver plan node: either a *PathScan or a
// *SiblingJoin.
type Plan interface {
	reset(parent document.Value, opts []pathexec.Option) error
	fetch(opts []pathexec.Option) (bool, error)
}

// Column describes one output column of a PathScan: either an ORDINAL
// column (Expr == nil, value is the scan's row counter) or a JsonExpr
// column evaluated against the scan's current row.
type Column struct {
	Expr *ast.AST
}

// PathScan evaluates Path against its parent plan's current row (or,
// for a root scan, the table's document) and iterates the resulting
// value-list as this plan's row stream. ColMin/ColMax name the column
// index range this scan owns; Columns is
// indexed by colnum - ColMin. Child is the nested plan, if any,
// evaluated in outer-join lockstep with this one (Row fetch).
type PathScan struct {
	Path           *ast.AST
	ColMin, ColMax int
	Columns        []Column
	Child          Plan

	found      []document.Value
	idx        int
	current    document.Value
	hasCurrent bool
	ordinal    int
}

// SiblingJoin concatenates Left's row stream followed by Right's
// (the "no actual merging: sibling rows are concatenated" --
// UNION-ALL semantics).
type SiblingJoin struct {
	Left, Right Plan

	onRight bool
	done    bool
}

// reset re-runs p.Path against parent, refilling p.found and resetting
// the iterator and ordinal counter (the "Reset nested plan against
// parent row").
func (p *PathScan) reset(parent document.Value, opts []pathexec.Option) error {
	_, items, err := pathexec.PathQuery(parent, p.Path, true, opts...)
	if err != nil {
		return err
	}
	p.found = items
	p.idx = 0
	p.ordinal = 0
	p.hasCurrent = false
	p.current = document.Value{}
	if p.Child != nil {
		if err := p.Child.reset(document.Value{}, opts); err != nil {
			return err
		}
	}
	return nil
}

// fetch implements the PathScan row-fetch algorithm.
func (p *PathScan) fetch(opts []pathexec.Option) (bool, error) {
	if p.hasCurrent && p.Child != nil {
		ok, err := p.Child.fetch(opts)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	if p.idx >= len(p.found) {
		p.hasCurrent = false
		p.current = document.Value{}
		return false, nil
	}

	p.current = p.found[p.idx]
	p.idx++
	p.hasCurrent = true
	p.ordinal++

	if p.Child != nil {
		if err := p.Child.reset(p.current, opts); err != nil {
			return false, err
		}
		// Prime the nested plan by fetching its first row; an empty
		// nested result is still a valid row with NULLs for the
		// nested columns (outer-join semantics) -- fetch's error, if
		// any, still propagates, but "no row" is not itself an error.
		if _, err := p.Child.fetch(opts); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (j *SiblingJoin) reset(parent document.Value, opts []pathexec.Option) error {
	j.onRight = false
	j.done = false
	if err := j.Left.reset(parent, opts); err != nil {
		return err
	}
	return j.Right.reset(parent, opts)
}

// fetch implements the SiblingJoin row-fetch: exhaust Left, then
// Right; exhausting Right exhausts the join.
func (j *SiblingJoin) fetch(opts []pathexec.Option) (bool, error) {
	if j.done {
		return false, nil
	}
	if !j.onRight {
		ok, err := j.Left.fetch(opts)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		j.onRight = true
	}
	ok, err := j.Right.fetch(opts)
	if err != nil {
		return false, err
	}
	if !ok {
		j.done = true
	}
	return ok, nil
}
