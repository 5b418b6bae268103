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

func TestParseDatetimeTextISOCascade(t *testing.T) {
	require := require.New(t)

	d, err := ParseDatetimeText("2023-05-01", nil)
	require.NoError(err)
	require.Equal(document.DTDate, d.Kind)

	d, err = ParseDatetimeText("2023-05-01 10:30:00", nil)
	require.NoError(err)
	require.Equal(document.DTTimestamp, d.Kind)

	d, err = ParseDatetimeText("2023-05-01T10:30:00Z", nil)
	require.NoError(err)
	require.Equal(document.DTTimestampTZ, d.Kind)

	d, err = ParseDatetimeText("10:30:00", nil)
	require.NoError(err)
	require.Equal(document.DTTime, d.Kind)
}

func TestParseDatetimeTextRejectsUnrecognized(t *testing.T) {
	_, err := ParseDatetimeText("not a date", nil)
	require.True(t, document.ErrDatetimeFormat.Is(err))
}

// date -> timestamp promotes; date -> time errs; date -> timestamptz
// needs tz (cast matrix cells).
func TestCastDatetimeMatrixCells(t *testing.T) {
	require := require.New(t)

	date, err := ParseDatetimeText("2023-05-01", nil)
	require.NoError(err)

	promoted, err := CastDatetime(date, ast.DTMTimestamp, nil, false)
	require.NoError(err)
	require.Equal(document.DTTimestamp, promoted.Kind)

	_, err = CastDatetime(date, ast.DTMTime, nil, false)
	require.True(document.ErrDatetimeCast.Is(err))

	_, err = CastDatetime(date, ast.DTMTimestampTZ, nil, false)
	require.True(document.ErrDatetimeNeedsTZ.Is(err))

	withTZ, err := CastDatetime(date, ast.DTMTimestampTZ, nil, true)
	require.NoError(err)
	require.Equal(document.DTTimestampTZ, withTZ.Kind)
}

func TestCompareDatetimeSameKind(t *testing.T) {
	require := require.New(t)

	a, err := ParseDatetimeText("2023-05-01", nil)
	require.NoError(err)
	b, err := ParseDatetimeText("2023-06-01", nil)
	require.NoError(err)

	cmp, unknown, err := CompareDatetime(a, b, false)
	require.NoError(err)
	require.False(unknown)
	require.Negative(cmp)
}

func TestCompareDatetimeCrossKindNeedsTZErrorsWhenForbidden(t *testing.T) {
	date, err := ParseDatetimeText("2023-05-01", nil)
	require.NoError(t, err)
	ts, err := ParseDatetimeText("2023-05-01 00:00:00", nil)
	require.NoError(t, err)

	// date vs timestamp: castMatrix[timestamp][date] = castTruncate, not
	// needs-tz, so this one succeeds without a timezone.
	_, unknown, err := CompareDatetime(date, ts, false)
	require.NoError(t, err)
	require.False(t, unknown)

	// date vs timestamptz: castMatrix[timestamptz][date] = castNeedsTZ, so
	// with use_tz forbidden the comparison fails.
	tstz, err := ParseDatetimeText("2023-05-01T00:00:00Z", nil)
	require.NoError(t, err)
	_, _, err = CompareDatetime(date, tstz, false)
	require.True(t, document.ErrDatetimeNeedsTZ.Is(err))
}

func TestCompareDatetimeCrossKindMismatchYieldsUnknown(t *testing.T) {
	timeOnly, err := ParseDatetimeText("10:30:00", nil)
	require.NoError(t, err)
	date, err := ParseDatetimeText("2023-05-01", nil)
	require.NoError(t, err)

	_, unknown, err := CompareDatetime(date, timeOnly, false)
	require.NoError(t, err)
	require.True(t, unknown)
}
