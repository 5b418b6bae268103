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

func TestMathMethods(t *testing.T) {
	require := require.New(t)
	doc := document.Num(document.NumericFromFloat64(-2.5))

	for _, tc := range []struct {
		op   ast.MathOp
		want float64
	}{
		{ast.MathAbs, 2.5},
		{ast.MathFloor, -3},
		{ast.MathCeiling, -2},
	} {
		path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewMathMethod(tc.op)))
		_, v, err := PathQueryFirst(doc, path, false)
		require.NoError(err)
		n, ok := v.AsNumeric()
		require.True(ok)
		require.Equal(tc.want, n.Float64())
	}
}

func TestStringCastEachScalarKind(t *testing.T) {
	require := require.New(t)

	path := ast.New(true, ast.NewSequence(&ast.Root{}, &ast.StringCast{}))

	_, v, err := PathQueryFirst(document.Bool(true), path, false)
	require.NoError(err)
	s, _ := v.AsString()
	require.Equal("true", s)

	_, v, err = PathQueryFirst(document.Num(document.NumericFromInt64(42)), path, false)
	require.NoError(err)
	s, _ = v.AsString()
	require.Equal("42", s)
}

func TestBooleanCastFromString(t *testing.T) {
	require := require.New(t)
	path := ast.New(true, ast.NewSequence(&ast.Root{}, &ast.BooleanCast{}))

	_, v, err := PathQueryFirst(document.Str("yes"), path, false)
	require.NoError(err)
	b, ok := v.AsBool()
	require.True(ok)
	require.True(b)

	_, _, err = PathQueryFirst(document.Str("not a bool"), path, false)
	require.True(ErrInvalidArgForMethod.Is(err))
}

func TestIntCastRangeCheck(t *testing.T) {
	require := require.New(t)

	integerCast := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewIntCast(ast.IntCastInteger)))
	_, _, err := PathQuery(document.Num(document.NumericFromInt64(1<<40)), integerCast, false)
	require.True(document.ErrNumericOverflow.Is(err))

	bigintCast := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewIntCast(ast.IntCastBigint)))
	_, v, err := PathQueryFirst(document.Num(document.NumericFromInt64(1<<40)), bigintCast, false)
	require.NoError(err)
	n, _ := v.AsNumeric()
	i, _ := n.Int64()
	require.Equal(int64(1<<40), i)
}

func TestDecimalCastAppliesTypmod(t *testing.T) {
	require := require.New(t)

	path := ast.New(true, ast.NewSequence(&ast.Root{},
		ast.NewDecimalCast(false, ast.IntPtr(5), ast.IntPtr(2))))
	_, v, err := PathQueryFirst(document.Num(document.NumericFromFloat64(123.456)), path, false)
	require.NoError(err)
	n, _ := v.AsNumeric()
	require.Equal("123.46", n.String())
}

func TestDatetimeCastMethod(t *testing.T) {
	require := require.New(t)

	path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewDatetimeCast(ast.DTMDate, nil, nil)))
	_, v, err := PathQueryFirst(document.Str("2023-05-01"), path, false)
	require.NoError(err)
	d, ok := v.AsDatetime()
	require.True(ok)
	require.Equal(document.DTDate, d.Kind)
}

// .datetime(template) never constrains the target kind, even when a
// template is given: the template restricts only how the text parses.
// A date-only template must not be forced through the cast matrix
// toward timestamptz (which would spuriously demand use_tz).
func TestDatetimeCastBareMethodWithTemplateKeepsParsedKind(t *testing.T) {
	require := require.New(t)

	template := "2006-01-02"
	path := ast.New(true, ast.NewSequence(&ast.Root{}, ast.NewDatetimeCast(ast.DTMDatetime, &template, nil)))
	_, v, err := PathQueryFirst(document.Str("2023-05-01"), path, false)
	require.NoError(err)
	d, ok := v.AsDatetime()
	require.True(ok)
	require.Equal(document.DTDate, d.Kind)
}
