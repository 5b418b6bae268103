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

func TestNumericFromString(t *testing.T) {
	require := require.New(t)

	n, err := NumericFromString("42.5")
	require.NoError(err)
	require.True(n.IsFinite())
	require.Equal("42.5", n.String())

	n, err = NumericFromString("nan")
	require.NoError(err)
	require.True(n.IsNaN())

	n, err = NumericFromString("-Infinity")
	require.NoError(err)
	require.True(n.IsInf())
	require.Equal("-inf", n.String())

	_, err = NumericFromString("not a number")
	require.Error(err)
	require.True(ErrNotANumber.Is(err))
}

func TestNumericCmpNaNUnordered(t *testing.T) {
	require := require.New(t)

	nan, _ := NumericFromString("nan")
	one := NumericFromInt64(1)

	_, ok := nan.Cmp(one)
	require.False(ok)

	_, ok = nan.Cmp(nan)
	require.False(ok)
}

func TestNumericCmpAcrossInfinity(t *testing.T) {
	require := require.New(t)

	posInf, _ := NumericFromString("inf")
	negInf, _ := NumericFromString("-inf")
	one := NumericFromInt64(1)

	result, ok := one.Cmp(posInf)
	require.True(ok)
	require.Equal(-1, result)

	result, ok = one.Cmp(negInf)
	require.True(ok)
	require.Equal(1, result)
}

func TestNumericDivByZero(t *testing.T) {
	require := require.New(t)

	a := NumericFromInt64(10)
	zero := NumericFromInt64(0)

	_, err := a.Div(zero)
	require.True(ErrDivisionByZero.Is(err))

	_, err = a.Mod(zero)
	require.True(ErrDivisionByZero.Is(err))
}

func TestNumericInt32Range(t *testing.T) {
	require := require.New(t)

	small := NumericFromInt64(5)
	v, ok := small.Int32()
	require.True(ok)
	require.Equal(int32(5), v)

	huge := NumericFromInt64(1 << 40)
	_, ok = huge.Int32()
	require.False(ok)
}

func TestApplyTypmodOverflow(t *testing.T) {
	require := require.New(t)

	n := NumericFromInt64(12345)
	_, err := ApplyTypmod(n, 3, 0)
	require.True(ErrNumericOverflow.Is(err))

	rounded, err := ApplyTypmod(NumericFromFloat64(1.005), 3, 2)
	require.NoError(err)
	require.True(rounded.IsFinite())
}
