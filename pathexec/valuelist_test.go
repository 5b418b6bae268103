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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpathql/pathquery/document"
)

func TestValueListAppendAndIterate(t *testing.T) {
	require := require.New(t)

	l := NewValueList(2)
	require.True(l.IsEmpty())

	l.Append(document.Str("a")).Append(document.Str("b"))
	require.Equal(2, l.Len())

	head, ok := l.Head()
	require.True(ok)
	s, _ := head.AsString()
	require.Equal("a", s)

	s2, _ := l.At(1).AsString()
	require.Equal("b", s2)
}

func TestValueListAppendList(t *testing.T) {
	require := require.New(t)

	a := Single(document.Str("x"))
	b := NewValueList(1).Append(document.Str("y"))

	a.AppendList(b)
	require.Equal(2, a.Len())
	require.Equal([]document.Value{document.Str("x"), document.Str("y")}, a.Items())
}

func TestValueListForEachShortCircuits(t *testing.T) {
	l := NewValueList(3)
	l.Append(document.Str("a")).Append(document.Str("b")).Append(document.Str("c"))

	visited := 0
	sentinel := errors.New("stop")
	err := l.ForEach(func(v document.Value) error {
		visited++
		if visited == 2 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 2, visited)
}

func TestEmptyValueListIsEmpty(t *testing.T) {
	require := require.New(t)
	e := Empty()
	require.True(e.IsEmpty())
	require.Equal(0, e.Len())
	require.Nil(e.Items())
}

func TestVarsAssignsStableOrdinalIDs(t *testing.T) {
	require := require.New(t)

	vars := NewVars(map[string]document.Value{
		"z": document.Str("z-val"),
		"a": document.Str("a-val"),
		"m": document.Str("m-val"),
	})
	require.Equal(3, vars.Count())

	aID, ok := vars.ID("a")
	require.True(ok)
	mID, ok := vars.ID("m")
	require.True(ok)
	zID, ok := vars.ID("z")
	require.True(ok)

	require.Equal(1, aID)
	require.Equal(2, mID)
	require.Equal(3, zID)

	_, ok = vars.Get("missing")
	require.False(ok)
}

func TestNilVarsAreSafe(t *testing.T) {
	var vars *Vars
	require.Equal(t, 0, vars.Count())
	_, ok := vars.Get("x")
	require.False(t, ok)
	_, ok = vars.ID("x")
	require.False(t, ok)
}
