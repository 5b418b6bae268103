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

package main

import (
	"fmt"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
	"github.com/jpathql/pathquery/jsontable"
)

// scenario is one named, hand-built AST the demo CLI can run, standing
// in for the textual jsonpath source a real caller would parse (this
// module evaluates compiled ASTs; it does not parse path syntax).
type scenario struct {
	name string
	desc string
	lax  bool
	path *ast.AST
}

func num(i int64) *ast.Literal { return ast.NewLiteral(document.Num(document.NumericFromInt64(i))) }

var scenarios = []scenario{
	{
		name: "filter-gt",
		desc: `strict $.a[*] ? (@ > 1)`,
		lax:  false,
		path: ast.New(false, ast.NewSequence(
			&ast.Root{}, ast.NewKey("a"), &ast.AnyArray{},
			ast.NewFilter(ast.NewComparison(ast.CmpGreater, &ast.Current{}, num(1))),
		)),
	},
	{
		name: "size-lax",
		desc: `lax $.b.size()`,
		lax:  true,
		path: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("b"), &ast.Size{})),
	},
	{
		name: "range-clip",
		desc: `lax $.a[1 to 10]`,
		lax:  true,
		path: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("a"),
			ast.NewArrayIndex(ast.Range(num(1), num(10))))),
	},
	{
		name: "exists-missing",
		desc: `strict $ ? (exists(@.missing))`,
		lax:  false,
		path: ast.New(false, ast.NewSequence(&ast.Root{},
			ast.NewFilter(ast.NewExists(ast.NewSequence(&ast.Current{}, ast.NewKey("missing")))))),
	},
	{
		name: "like-regex",
		desc: `strict $.c like_regex "^h" flag "i"`,
		lax:  false,
		path: ast.New(false, ast.NewLikeRegex(ast.NewSequence(&ast.Root{}, ast.NewKey("c")), "^h", "i")),
	},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

// rowsTablePlan builds a single-scan plan with one ordinal column over
// $.rows[*], each row numbered by its position in the array.
func rowsTablePlan() jsontable.Plan {
	return &jsontable.PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("rows"), &ast.AnyArray{})),
		ColMin:  0,
		ColMax:  0,
		Columns: []jsontable.Column{{}},
	}
}

func printScenarios() {
	for _, s := range scenarios {
		fmt.Printf("%-16s %s\n", s.name, s.desc)
	}
}
