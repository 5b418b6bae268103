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

package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, KindNull, v.Kind())
}

func TestValueTypeNames(t *testing.T) {
	require := require.New(t)

	require.Equal("null", Null.TypeName())
	require.Equal("boolean", Bool(true).TypeName())
	require.Equal("number", Num(NumericFromInt64(1)).TypeName())
	require.Equal("string", Str("x").TypeName())
	require.Equal("array", Bin(BuildArray(nil)).TypeName())
	require.Equal("object", Bin(BuildObject(nil)).TypeName())

	dt := Datetime{Kind: DTTimestampTZ}
	require.Equal("timestamp with time zone", DT(dt).TypeName())
}

func TestContainerObjectOrderAndLookup(t *testing.T) {
	require := require.New(t)

	c := BuildObject([]Entry{
		{Key: "b", Val: Num(NumericFromInt64(2))},
		{Key: "a", Val: Num(NumericFromInt64(1))},
	})
	require.Equal(ContainerObject, c.Kind())
	require.Equal(2, c.Size())

	entries := c.Entries()
	require.Len(entries, 2)
	require.Equal("b", entries[0].Key)
	require.Equal("a", entries[1].Key)

	v, ok := c.FindInObject("a")
	require.True(ok)
	n, _ := v.AsNumeric()
	i, _ := n.Int64()
	require.Equal(int64(1), i)

	_, ok = c.FindInObject("missing")
	require.False(ok)
}

func TestContainerObjectDuplicateKeyLastWins(t *testing.T) {
	require := require.New(t)

	c := BuildObject([]Entry{
		{Key: "a", Val: Num(NumericFromInt64(1))},
		{Key: "a", Val: Num(NumericFromInt64(2))},
	})
	require.Len(c.Entries(), 2)

	v, ok := c.FindInObject("a")
	require.True(ok)
	n, _ := v.AsNumeric()
	i, _ := n.Int64()
	require.Equal(int64(2), i)
}

func TestContainerArrayAccess(t *testing.T) {
	require := require.New(t)

	c := BuildArray([]Value{Str("x"), Str("y"), Str("z")})
	require.Equal(3, c.Size())

	v, ok := c.GetAtIndex(1)
	require.True(ok)
	s, _ := v.AsString()
	require.Equal("y", s)

	_, ok = c.GetAtIndex(10)
	require.False(ok)
}

func TestParseJSONPreservesKeyOrder(t *testing.T) {
	require := require.New(t)

	v, err := ParseJSON([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(err)

	c, ok := v.AsContainer()
	require.True(ok)
	keys := make([]string, 0, 3)
	for _, e := range c.Entries() {
		keys = append(keys, e.Key)
	}
	require.Equal([]string{"z", "a", "m"}, keys)
}

func TestParseJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	src := []byte(`{"a":[1,2.5,"x",true,null]}`)
	v, err := ParseJSON(src)
	require.NoError(err)

	out, err := MarshalJSON(v)
	require.NoError(err)

	v2, err := ParseJSON(out)
	require.NoError(err)

	c1, _ := v.AsContainer()
	c2, _ := v2.AsContainer()
	require.Equal(c1.Size(), c2.Size())
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	_, err := ParseJSON([]byte(`1 2`))
	require.Error(t, err)
}
