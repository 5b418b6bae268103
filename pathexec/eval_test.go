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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

func testDoc(t *testing.T) document.Value {
	t.Helper()
	v, err := document.ParseJSON([]byte(`{"a":[1,2,3], "b":"xy", "c":null}`))
	require.NoError(t, err)
	return v
}

func num(i int64) *ast.Literal { return ast.NewLiteral(document.Num(document.NumericFromInt64(i))) }

func asInts(t *testing.T, items []document.Value) []int64 {
	t.Helper()
	out := make([]int64, len(items))
	for i, v := range items {
		n, ok := v.AsNumeric()
		require.True(t, ok)
		iv, ok := n.Int64()
		require.True(t, ok)
		out[i] = iv
	}
	return out
}

// $.a[*] ? (@ > 1) -> [2, 3] in both modes (spec scenario 1).
func TestScenario_FilterGreaterThan(t *testing.T) {
	doc := testDoc(t)
	root := ast.NewSequence(
		&ast.Root{},
		ast.NewKey("a"),
		&ast.AnyArray{},
		ast.NewFilter(ast.NewComparison(ast.CmpGreater, &ast.Current{}, num(1))),
	)

	for _, lax := range []bool{true, false} {
		path := ast.New(lax, root)
		disp, items, err := PathQuery(doc, path, false)
		require.NoError(t, err)
		require.Equal(t, OK, disp)
		require.Equal(t, []int64{2, 3}, asInts(t, items))
	}
}

// $.a.size() -> [3] in strict; $.b.size() -> error in strict, [1] in lax
// (auto-wrap) (spec scenario 2).
func TestScenario_Size(t *testing.T) {
	doc := testDoc(t)

	aSize := ast.New(false, ast.NewSequence(&ast.Root{}, ast.NewKey("a"), &ast.Size{}))
	disp, items, err := PathQuery(doc, aSize, false)
	require.NoError(t, err)
	require.Equal(t, OK, disp)
	require.Equal(t, []int64{3}, asInts(t, items))

	bSizeStrict := ast.New(false, ast.NewSequence(&ast.Root{}, ast.NewKey("b"), &ast.Size{}))
	_, _, err = PathQuery(doc, bSizeStrict, false)
	require.Error(t, err)

	bSizeLax := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("b"), &ast.Size{}))
	disp, items, err = PathQuery(doc, bSizeLax, false)
	require.NoError(t, err)
	require.Equal(t, OK, disp)
	require.Equal(t, []int64{1}, asInts(t, items))
}

// $.a[1 to 10] -> error in strict; [2, 3] in lax (clipped) (spec scenario 3).
func TestScenario_RangeSubscriptClipping(t *testing.T) {
	doc := testDoc(t)
	root := ast.NewSequence(&ast.Root{}, ast.NewKey("a"),
		ast.NewArrayIndex(ast.Range(num(1), num(10))))

	strict := ast.New(false, root)
	_, _, err := PathQuery(doc, strict, false)
	require.Error(t, err)
	require.True(t, ErrArrayIndexOOB.Is(err))

	lax := ast.New(true, root)
	disp, items, err := PathQuery(doc, lax, false)
	require.NoError(t, err)
	require.Equal(t, OK, disp)
	require.Equal(t, []int64{2, 3}, asInts(t, items))
}

// $ ? (exists(@.missing)) -> [] in lax and strict (spec scenario 4).
func TestScenario_ExistsMissingMemberInFilter(t *testing.T) {
	doc := testDoc(t)
	root := ast.NewSequence(&ast.Root{},
		ast.NewFilter(ast.NewExists(ast.NewSequence(&ast.Current{}, ast.NewKey("missing")))))

	for _, lax := range []bool{true, false} {
		path := ast.New(lax, root)
		disp, _, err := PathQuery(doc, path, false)
		require.NoError(t, err)
		require.Equal(t, NotFound, disp)
	}
}

// ($.a[0] + "x") -> error in both modes; with suppress, Errored + empty
// (spec scenario 5).
func TestScenario_ArithmeticTypeMismatch(t *testing.T) {
	doc := testDoc(t)
	root := ast.NewArithmetic(ast.ArithAdd,
		ast.NewSequence(&ast.Root{}, ast.NewKey("a"), ast.NewArrayIndex(ast.Index(num(0)))),
		ast.NewLiteral(document.Str("x")))

	for _, lax := range []bool{true, false} {
		path := ast.New(lax, root)
		_, _, err := PathQuery(doc, path, false)
		require.Error(t, err)
		require.True(t, ErrNumericArg.Is(err))

		disp, items, err := PathQuery(doc, path, true)
		require.NoError(t, err)
		require.Equal(t, Errored, disp)
		require.Nil(t, items)
	}
}

// null == null -> true, null != null -> false, null == 1 -> false,
// null != 1 -> true (spec scenario 6).
func TestScenario_NullComparison(t *testing.T) {
	doc := document.Null

	cases := []struct {
		op   ast.CompareOp
		rhs  document.Value
		want bool
	}{
		{ast.CmpEqual, document.Null, true},
		{ast.CmpNotEqual, document.Null, false},
		{ast.CmpEqual, document.Num(document.NumericFromInt64(1)), false},
		{ast.CmpNotEqual, document.Num(document.NumericFromInt64(1)), true},
	}
	for _, c := range cases {
		path := ast.New(false, ast.NewComparison(c.op, ast.NewLiteral(document.Null), ast.NewLiteral(c.rhs)))
		disp, matched, err := PathMatch(doc, path, false)
		require.NoError(t, err)
		require.Equal(t, OK, disp)
		require.Equal(t, c.want, matched)
	}
}

// strict $.a.b -> Error (member accessor applied to an array) (spec
// scenario 7).
func TestScenario_MemberAccessOnArrayStrict(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(false, ast.NewSequence(&ast.Root{}, ast.NewKey("a"), ast.NewKey("b")))
	_, _, err := PathQuery(doc, path, false)
	require.Error(t, err)
	require.True(t, ErrStructural.Is(err))
}

// Universal invariant: exists(D,P) = !query(D,P).is_empty() when no error.
func TestInvariant_ExistsMatchesQuery(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("a"), &ast.AnyArray{}))

	existsDisp, found, err := PathExists(doc, path, false)
	require.NoError(t, err)

	queryDisp, items, err := PathQuery(doc, path, false)
	require.NoError(t, err)

	require.Equal(t, queryDisp == OK, found)
	require.Equal(t, existsDisp, queryDisp)
	require.NotEmpty(t, items)
}

// Universal invariant: query_first = query().head().
func TestInvariant_QueryFirstIsQueryHead(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("a"), &ast.AnyArray{}))

	_, items, err := PathQuery(doc, path, false)
	require.NoError(t, err)

	_, first, err := PathQueryFirst(doc, path, false)
	require.NoError(t, err)
	require.Equal(t, items[0], first)
}

// Universal invariant: boolean-wrap law.
func TestInvariant_BooleanWrapLaw(t *testing.T) {
	doc := testDoc(t)

	truePath := ast.New(true, ast.NewComparison(ast.CmpEqual, num(1), num(1)))
	_, items, err := PathQuery(doc, truePath, false)
	require.NoError(t, err)
	b, ok := items[0].AsBool()
	require.True(t, ok)
	require.True(t, b)

	unknownPath := ast.New(true, ast.NewComparison(ast.CmpEqual,
		ast.NewLiteral(document.Str("x")), num(1)))
	_, items, err = PathQuery(doc, unknownPath, false)
	require.NoError(t, err)
	require.True(t, items[0].IsNull())
}

// .keyvalue() id uniqueness within one evaluation.
func TestInvariant_KeyvalueIDsUnique(t *testing.T) {
	doc, err := document.ParseJSON([]byte(`{"x":1,"y":2,"z":3}`))
	require.NoError(t, err)

	path := ast.New(true, ast.NewSequence(&ast.Root{}, &ast.KeyValue{}))
	_, items, err := PathQuery(doc, path, false)
	require.NoError(t, err)
	require.Len(t, items, 3)

	seen := map[int64]bool{}
	for _, v := range items {
		c, ok := v.AsContainer()
		require.True(t, ok)
		idv, ok := c.FindInObject("id")
		require.True(t, ok)
		n, _ := idv.AsNumeric()
		id, _ := n.Int64()
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestInvariant_KeyvalueIDsUniqueWithDuplicateKeys(t *testing.T) {
	doc, err := document.ParseJSON([]byte(`{"a":1,"a":2}`))
	require.NoError(t, err)

	path := ast.New(true, ast.NewSequence(&ast.Root{}, &ast.KeyValue{}))
	_, items, err := PathQuery(doc, path, false)
	require.NoError(t, err)
	require.Len(t, items, 2)

	seen := map[int64]bool{}
	for _, v := range items {
		c, ok := v.AsContainer()
		require.True(t, ok)
		idv, ok := c.FindInObject("id")
		require.True(t, ok)
		n, _ := idv.AsNumeric()
		id, _ := n.Int64()
		require.False(t, seen[id], "duplicate id %d for repeated key \"a\"", id)
		seen[id] = true
	}
}

func TestVariableResolution(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, ast.NewVariable("x"))
	disp, v, err := PathQueryFirst(doc, path, false, WithVars(map[string]document.Value{
		"x": document.Str("hello"),
	}))
	require.NoError(t, err)
	require.Equal(t, OK, disp)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "hello", s)
}

func TestLastInsideSubscript(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewKey("a"),
		ast.NewArrayIndex(ast.Index(&ast.LastNode{}))))
	_, items, err := PathQuery(doc, path, false)
	require.NoError(t, err)
	require.Equal(t, []int64{3}, asInts(t, items))
}

func TestLastOutsideSubscriptIsError(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, &ast.LastNode{})
	_, _, err := PathQuery(doc, path, false)
	require.True(t, ErrLastOutsideSubscript.Is(err))
}

func TestCurrentOutsideFilterIsError(t *testing.T) {
	doc := testDoc(t)
	path := ast.New(true, &ast.Current{})
	_, _, err := PathQuery(doc, path, false)
	require.True(t, ErrCurrentOutsideFilter.Is(err))
}
