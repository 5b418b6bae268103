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

func TestLikeRegexMatches(t *testing.T) {
	require := require.New(t)
	doc := document.Str("Hello World")

	path := ast.New(false, ast.NewLikeRegex(&ast.Root{}, "^hello", "i"))
	_, matched, err := PathMatch(doc, path, false)
	require.NoError(err)
	require.True(matched)
}

func TestLikeRegexNoMatchIsFalseNotError(t *testing.T) {
	require := require.New(t)
	doc := document.Str("Hello World")

	path := ast.New(false, ast.NewLikeRegex(&ast.Root{}, "^bye", ""))
	_, matched, err := PathMatch(doc, path, false)
	require.NoError(err)
	require.False(matched)
}

func TestLikeRegexNonStringOperandIsUnknown(t *testing.T) {
	require := require.New(t)
	doc := document.Num(document.NumericFromInt64(42))

	path := ast.New(false, ast.NewLikeRegex(&ast.Root{}, "4.*", ""))
	_, _, err := PathMatch(doc, path, false)
	require.NoError(err)

	// Unknown is wrapped as a single null item by the boolean-result rule.
	_, items, err := PathQuery(doc, path, false)
	require.NoError(err)
	require.Len(items, 1)
	require.True(items[0].IsNull())
}

func TestLikeRegexInvalidFlagsIsError(t *testing.T) {
	doc := document.Str("x")
	path := ast.New(false, ast.NewLikeRegex(&ast.Root{}, "x", "z"))
	_, _, err := PathMatch(doc, path, false)
	require.True(t, ErrRegexFlags.Is(err))
}

// matcherFor compiles lazily and caches per LikeRegex node within one
// Executor; the same path also runs again, with a fresh Executor,
// against a different document.
func TestLikeRegexCachesCompiledMatcher(t *testing.T) {
	require := require.New(t)
	n := ast.NewLikeRegex(&ast.Root{}, "^a", "")
	path := ast.New(false, n)

	_, m1, err := PathMatch(document.Str("abc"), path, false)
	require.NoError(err)
	require.True(m1)

	_, m2, err := PathMatch(document.Str("xyz"), path, false)
	require.NoError(err)
	require.False(m2)

	e := NewExecutor(document.Str("abc"), false)
	first, err := e.matcherFor(n)
	require.NoError(err)
	require.Contains(e.regexCache, n)
	second, err := e.matcherFor(n)
	require.NoError(err)
	require.Same(first, second)
}
