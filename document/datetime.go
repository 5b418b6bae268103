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
	"fmt"
	"time"

	"gopkg.in/src-d/go-errors.v1"
)

// DatetimeKind distinguishes the five SQL/JSON datetime variants.
type DatetimeKind uint8

const (
	DTDate DatetimeKind = iota
	DTTime
	DTTimeTZ
	DTTimestamp
	DTTimestampTZ
)

// String renders k for diagnostics.
func (k DatetimeKind) String() string {
	switch k {
	case DTDate:
		return "date"
	case DTTime:
		return "time"
	case DTTimeTZ:
		return "timetz"
	case DTTimestamp:
		return "timestamp"
	case DTTimestampTZ:
		return "timestamptz"
	default:
		return "unknown"
	}
}

// NoTypmod marks a Datetime that carries no explicit fractional-second
// precision.
const NoTypmod = -1

// Datetime is a SQL/JSON path datetime value. Value always carries a full
// wall-clock time.Time; for DTTime/DTTimeTZ only the time-of-day fields
// are meaningful and the date fields are pinned to the Go zero date.
// TZOffsetSeconds is meaningful only for the TZ-aware kinds.
type Datetime struct {
	Kind            DatetimeKind
	Value           time.Time
	Typmod          int // fractional-second precision, or NoTypmod
	TZOffsetSeconds int
}

// ErrDatetimeFormat is returned when no recognized format matches the
// input text.
var ErrDatetimeFormat = errors.NewKind("invalid input syntax for datetime: %q")

// ErrDatetimeCast is returned by CastTo for a produced/target pairing
// that the cast matrix marks "err".
var ErrDatetimeCast = errors.NewKind("cannot cast %s to %s")

// ErrDatetimeNeedsTZ is returned by CastTo for a "needs tz" pairing when
// useTZ is false. It is always a hard, non-suppressible error.
var ErrDatetimeNeedsTZ = errors.NewKind("cannot cast %s to %s without time zone usage")

// ErrDatetimePrecision is returned when a fractional-second precision is
// out of the supported range.
var ErrDatetimePrecision = errors.NewKind("precision %d is out of range")

// String renders d as an ISO-ish encoding matching its variant. This is a
// diagnostic/`.string()` rendering, not a parser round-trip guarantee.
func (d Datetime) String() string {
	switch d.Kind {
	case DTDate:
		return d.Value.Format("2006-01-02")
	case DTTime:
		return formatFractional(d.Value, "15:04:05", d.Typmod)
	case DTTimeTZ:
		return formatFractional(d.Value, "15:04:05", d.Typmod) + tzSuffix(d.TZOffsetSeconds)
	case DTTimestamp:
		return formatFractional(d.Value, "2006-01-02 15:04:05", d.Typmod)
	case DTTimestampTZ:
		return formatFractional(d.Value, "2006-01-02 15:04:05", d.Typmod) + tzSuffix(d.TZOffsetSeconds)
	default:
		return d.Value.String()
	}
}

func formatFractional(t time.Time, layout string, typmod int) string {
	s := t.Format(layout)
	if typmod <= 0 {
		if t.Nanosecond() == 0 {
			return s
		}
		typmod = 6
	}
	frac := t.Format(".000000")
	if typmod < 6 {
		frac = frac[:typmod+1]
	}
	return s + frac
}

func tzSuffix(offsetSeconds int) string {
	sign := "+"
	off := offsetSeconds
	if off < 0 {
		sign = "-"
		off = -off
	}
	h := off / 3600
	m := (off % 3600) / 60
	if m == 0 {
		return fmt.Sprintf("%s%02d", sign, h)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// Compare compares a and b, which must be the same Kind; cross-type
// comparison is handled by the interpreter's comparison logic,
// not here. typmod/precision differences are ignored, matching the
// source system's observable behavior (see the Open Question in DESIGN.md).
func (a Datetime) Compare(b Datetime) int {
	switch {
	case a.Value.Before(b.Value):
		return -1
	case a.Value.After(b.Value):
		return 1
	default:
		return 0
	}
}

// WithPrecision returns d with its fractional-second precision clamped
// and applied, mirroring the host typmod adjustment for time/timestamp
// values.
func (d Datetime) WithPrecision(p int) (Datetime, error) {
	if p < 0 {
		return Datetime{}, ErrDatetimePrecision.New(p)
	}
	if p > 6 {
		p = 6
	}
	out := d
	out.Typmod = p
	round := time.Second
	for i := 0; i < p; i++ {
		round /= 10
	}
	out.Value = out.Value.Round(round)
	return out, nil
}
