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

package regex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileLikeRegexCaseInsensitive(t *testing.T) {
	re, err := CompileLikeRegex("abc", "i")
	require.NoError(t, err)
	require.True(t, re.MatchString("ABC"))
}

func TestCompileLikeRegexDotMatchesNewline(t *testing.T) {
	re, err := CompileLikeRegex("a.b", "s")
	require.NoError(t, err)
	require.True(t, re.MatchString("a\nb"))
}

func TestCompileLikeRegexExtendedWhitespaceAndComments(t *testing.T) {
	re, err := CompileLikeRegex("a b   c # trailing comment\nd", "x")
	require.NoError(t, err)
	require.True(t, re.MatchString("abcd"))
	require.False(t, re.MatchString("a b c d"))
}

func TestCompileLikeRegexExtendedPreservesEscapedSpace(t *testing.T) {
	re, err := CompileLikeRegex(`a\ b`, "x")
	require.NoError(t, err)
	require.True(t, re.MatchString("a b"))
}

func TestCompileLikeRegexExtendedPreservesCharClassWhitespace(t *testing.T) {
	re, err := CompileLikeRegex(`[a b]+`, "x")
	require.NoError(t, err)
	require.True(t, re.MatchString("a b"))
}

func TestCompileLikeRegexQuoteMeta(t *testing.T) {
	re, err := CompileLikeRegex("a.b*c", "q")
	require.NoError(t, err)
	require.True(t, re.MatchString("a.b*c"))
	require.False(t, re.MatchString("aXbYYc"))
}

func TestCompileLikeRegexInvalidFlag(t *testing.T) {
	_, err := CompileLikeRegex("abc", "z")
	require.True(t, ErrInvalidFlag.Is(err))
}

func TestCompileLikeRegexCombinedFlags(t *testing.T) {
	re, err := CompileLikeRegex("A.C", "is")
	require.NoError(t, err)
	require.True(t, re.MatchString("a\nc"))
}
