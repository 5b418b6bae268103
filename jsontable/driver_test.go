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

package jsontable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

func mustParse(t *testing.T, src string) document.Value {
	t.Helper()
	v, err := document.ParseJSON([]byte(src))
	require.NoError(t, err)
	return v
}

// Scenario 8: doc {"rows":[{"k":1},{"k":2}]}, root path $.rows[*], nested
// $.k ordinal -- produces two rows (1, 1), (2, 2).
func TestPathScanNestedOrdinalRows(t *testing.T) {
	require := require.New(t)

	doc := mustParse(t, `{"rows":[{"k":1},{"k":2}]}`)

	root := &PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("rows"), &ast.AnyArray{})),
		ColMin:  0,
		ColMax:  1,
		Columns: []Column{
			{Expr: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("k")))},
			{Expr: nil}, // ordinal column
		},
	}

	d := NewDriver(root)
	require.NoError(d.SetDocument(doc))

	var rows [][2]int64
	for {
		ok, err := d.FetchRow()
		require.NoError(err)
		if !ok {
			break
		}
		kVal, err := d.GetValue(0)
		require.NoError(err)
		n, _ := kVal.AsNumeric()
		k, _ := n.Int64()

		ordVal, err := d.GetValue(1)
		require.NoError(err)
		n, _ = ordVal.AsNumeric()
		ord, _ := n.Int64()

		rows = append(rows, [2]int64{k, ord})
	}
	require.Equal([][2]int64{{1, 1}, {2, 2}}, rows)
}

// A nested scan with no matching rows still yields the outer row once,
// with NULL for the nested column (outer-join semantics).
func TestPathScanOuterJoinNoNestedMatch(t *testing.T) {
	require := require.New(t)

	doc := mustParse(t, `{"rows":[{"k":1},{"k":2}]}`)

	nested := &PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("missing"), &ast.AnyArray{})),
		ColMin:  1,
		ColMax:  1,
		Columns: []Column{{Expr: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("k")))}},
	}
	root := &PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("rows"), &ast.AnyArray{})),
		ColMin:  0,
		ColMax:  0,
		Columns: []Column{{Expr: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("k")))}},
		Child:   nested,
	}

	d := NewDriver(root)
	require.NoError(d.SetDocument(doc))

	rowCount := 0
	for {
		ok, err := d.FetchRow()
		require.NoError(err)
		if !ok {
			break
		}
		rowCount++
		nestedVal, err := d.GetValue(1)
		require.NoError(err)
		require.True(nestedVal.IsNull())
	}
	require.Equal(2, rowCount)
}

// SiblingJoin concatenates left then right rows (union-all).
func TestSiblingJoinConcatenatesRows(t *testing.T) {
	require := require.New(t)

	doc := mustParse(t, `{"rows":[{"k":1},{"k":2}]}`)

	left := &PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("rows"), ast.NewArrayIndex(ast.Index(ast.NewLiteral(document.Num(document.NumericFromInt64(0))))))),
		ColMin:  0,
		ColMax:  0,
		Columns: []Column{{Expr: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("k")))}},
	}
	right := &PathScan{
		Path:    ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("rows"), ast.NewArrayIndex(ast.Index(ast.NewLiteral(document.Num(document.NumericFromInt64(1))))))),
		ColMin:  0,
		ColMax:  0,
		Columns: []Column{{Expr: ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("k")))}},
	}
	join := &SiblingJoin{Left: left, Right: right}

	d := NewDriver(join)
	require.NoError(d.SetDocument(doc))

	var ks []int64
	for {
		ok, err := d.FetchRow()
		require.NoError(err)
		if !ok {
			break
		}
		v, err := d.GetValue(0)
		require.NoError(err)
		n, _ := v.AsNumeric()
		k, _ := n.Int64()
		ks = append(ks, k)
	}
	require.Equal([]int64{1, 2}, ks)
}
