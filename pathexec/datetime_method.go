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
	"strings"
	"time"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

// isoFormats lists the fixed cascade of formats ParseDatetimeText tries,
// in order, when no explicit template is given. The first successful
// parse wins.
// Layouts are Go reference-time layouts; each entry also records which
// document.DatetimeKind a successful parse produces.
var isoFormats = []struct {
	layout string
	kind   document.DatetimeKind
	hasTZ  bool
}{
	{"2006-01-02 15:04:05.999999Z07:00", document.DTTimestampTZ, true},
	{"2006-01-02 15:04:05Z07:00", document.DTTimestampTZ, true},
	{"2006-01-02T15:04:05.999999Z07:00", document.DTTimestampTZ, true},
	{"2006-01-02T15:04:05Z07:00", document.DTTimestampTZ, true},
	{"2006-01-02 15:04:05.999999", document.DTTimestamp, false},
	{"2006-01-02 15:04:05", document.DTTimestamp, false},
	{"2006-01-02T15:04:05.999999", document.DTTimestamp, false},
	{"2006-01-02T15:04:05", document.DTTimestamp, false},
	{"2006-01-02", document.DTDate, false},
	{"15:04:05.999999Z07:00", document.DTTimeTZ, true},
	{"15:04:05Z07:00", document.DTTimeTZ, true},
	{"15:04:05.999999", document.DTTime, false},
	{"15:04:05", document.DTTime, false},
}

// ParseDatetimeText implements string-to-datetime parsing: with an
// explicit template, parse once and fail hard on mismatch; otherwise
// try the fixed ISO cascade, first match wins.
//
// The template mini-language itself (yyyy/mm/dd/HH24/MI/SS/US/TZ
// tokens) is treated as a host-library black box here; a template is
// accepted as a Go reference-time layout directly, which is the
// adaptation this interpreter makes of that black-box contract (see
// DESIGN.md).
func ParseDatetimeText(s string, template *string) (document.Datetime, error) {
	if template != nil {
		t, err := time.Parse(*template, s)
		if err != nil {
			return document.Datetime{}, document.ErrDatetimeFormat.New(s)
		}
		return datetimeFromParsed(t, *template, s), nil
	}

	for _, f := range isoFormats {
		t, err := time.Parse(f.layout, s)
		if err != nil {
			continue
		}
		d := document.Datetime{Kind: f.kind, Value: t, Typmod: document.NoTypmod}
		if f.hasTZ {
			_, offset := t.Zone()
			d.TZOffsetSeconds = offset
		}
		return d, nil
	}
	return document.Datetime{}, document.ErrDatetimeFormat.New(s)
}

func datetimeFromParsed(t time.Time, layout, original string) document.Datetime {
	hasDate := strings.ContainsAny(layout, "2Y") && strings.Contains(layout, "2006")
	hasTime := strings.Contains(layout, "15")
	hasTZ := strings.Contains(layout, "Z07") || strings.Contains(layout, "-0700") || strings.Contains(layout, "MST")

	d := document.Datetime{Value: t, Typmod: document.NoTypmod}
	switch {
	case hasDate && hasTime && hasTZ:
		d.Kind = document.DTTimestampTZ
	case hasDate && hasTime:
		d.Kind = document.DTTimestamp
	case hasDate:
		d.Kind = document.DTDate
	case hasTime && hasTZ:
		d.Kind = document.DTTimeTZ
	default:
		d.Kind = document.DTTime
	}
	if hasTZ {
		_, offset := t.Zone()
		d.TZOffsetSeconds = offset
	}
	return d
}

// castCell records one cell of the cast matrix.
type castCell uint8

const (
	castOK castCell = iota
	castErr
	castPromote  // widen without dropping information (date -> timestamp)
	castTruncate // narrow, dropping information (timestamp -> date)
	castNeedsTZ  // requires use_tz; hard error if forbidden
)

// castMatrix[produced][target]. Index order matches
// document.DatetimeKind's declaration order (date, time, timetz,
// timestamp, timestamptz).
var castMatrix = [5][5]castCell{
	document.DTDate:         {castOK, castErr, castErr, castPromote, castNeedsTZ},
	document.DTTime:         {castErr, castOK, castNeedsTZ, castErr, castErr},
	document.DTTimeTZ:       {castErr, castNeedsTZ, castOK, castErr, castErr},
	document.DTTimestamp:    {castTruncate, castTruncate, castErr, castOK, castNeedsTZ},
	document.DTTimestampTZ:  {castNeedsTZ, castNeedsTZ, castTruncate, castNeedsTZ, castOK},
}

// targetKind maps a DatetimeCast AST method to the DatetimeKind the
// matrix's column axis indexes. ast.DTMDatetime is never passed in:
// execDatetimeCast short-circuits before calling CastDatetime for it,
// since `.datetime()`/`.datetime(template)` never constrain the
// target kind.
func targetKind(m ast.DatetimeMethod) document.DatetimeKind {
	switch m {
	case ast.DTMDate:
		return document.DTDate
	case ast.DTMTime:
		return document.DTTime
	case ast.DTMTimeTZ:
		return document.DTTimeTZ
	case ast.DTMTimestamp:
		return document.DTTimestamp
	default:
		return document.DTTimestampTZ
	}
}

// CastDatetime applies the cast matrix to move d from its parsed
// kind to target, honoring useTZ for any "needs tz" cell, then applies
// precision if non-nil (all targets but .datetime()/.date() accept
// one).
func CastDatetime(d document.Datetime, target ast.DatetimeMethod, precision *int, useTZ bool) (document.Datetime, error) {
	to := targetKind(target)
	cell := castMatrix[d.Kind][to]

	out := d
	switch cell {
	case castOK:
		out.Kind = to
	case castPromote, castTruncate:
		out.Kind = to
	case castNeedsTZ:
		if !useTZ {
			return document.Datetime{}, document.ErrDatetimeNeedsTZ.New(d.Kind, to)
		}
		out.Kind = to
	case castErr:
		return document.Datetime{}, document.ErrDatetimeCast.New(d.Kind, to)
	}

	if precision != nil {
		return out.WithPrecision(*precision)
	}
	return out, nil
}

// CompareDatetime implements cross-kind comparison: same-kind datetimes compare
// directly; cross-kind pairs are resolved by casting the right operand
// onto the left's kind through the cast matrix. unknown is true for an
// "err" cell (a type mismatch, not a policy violation, so it yields
// Unknown rather than an error). A "needs tz" cell with use_tz
// forbidden is instead a hard, non-suppressible error -- failure here
// is always a hard error, never Unknown.
func CompareDatetime(a, b document.Datetime, useTZ bool) (cmp int, unknown bool, err error) {
	if a.Kind == b.Kind {
		return a.Compare(b), false, nil
	}

	cell := castMatrix[b.Kind][a.Kind]
	if cell == castErr {
		return 0, true, nil
	}
	if cell == castNeedsTZ && !useTZ {
		return 0, false, document.ErrDatetimeNeedsTZ.New(b.Kind, a.Kind)
	}

	method := datetimeMethodOf(a.Kind)
	cast, castErr2 := CastDatetime(b, method, nil, useTZ)
	if castErr2 != nil {
		return 0, false, castErr2
	}
	return a.Compare(cast), false, nil
}

func datetimeMethodOf(k document.DatetimeKind) ast.DatetimeMethod {
	switch k {
	case document.DTDate:
		return ast.DTMDate
	case document.DTTime:
		return ast.DTMTime
	case document.DTTimeTZ:
		return ast.DTMTimeTZ
	case document.DTTimestamp:
		return ast.DTMTimestamp
	default:
		return ast.DTMTimestampTZ
	}
}
