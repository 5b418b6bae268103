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
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrNumericOverflow is returned by arithmetic and range-checked casts
// that overflow the requested width.
var ErrNumericOverflow = errors.NewKind("numeric overflow")

// ErrDivisionByZero is returned by Div and Mod when the divisor is zero.
var ErrDivisionByZero = errors.NewKind("division by zero")

// ErrNotANumber is returned when a string fails to parse as a number.
var ErrNotANumber = errors.NewKind("invalid input syntax for type numeric: %q")

// numKind distinguishes the special IEEE states shopspring/decimal cannot
// itself represent from ordinary finite decimals.
type numKind uint8

const (
	numFinite numKind = iota
	numNaN
	numPosInf
	numNegInf
)

// Numeric is an arbitrary-precision decimal value, extended with explicit
// NaN/+Inf/-Inf states the way the host numeric library's SQL/JSON
// counterpart requires but shopspring/decimal.Decimal alone does not
// provide.
type Numeric struct {
	kind numKind
	dec  decimal.Decimal
}

// NumericFromInt64 returns a finite Numeric equal to i.
func NumericFromInt64(i int64) Numeric {
	return Numeric{dec: decimal.NewFromInt(i)}
}

// NumericFromFloat64 returns a Numeric equal to f, preserving NaN and
// +/-Inf as distinguished states.
func NumericFromFloat64(f float64) Numeric {
	switch {
	case math.IsNaN(f):
		return Numeric{kind: numNaN}
	case math.IsInf(f, 1):
		return Numeric{kind: numPosInf}
	case math.IsInf(f, -1):
		return Numeric{kind: numNegInf}
	default:
		return Numeric{dec: decimal.NewFromFloat(f)}
	}
}

// NumericFromDecimal returns a finite Numeric wrapping d.
func NumericFromDecimal(d decimal.Decimal) Numeric {
	return Numeric{dec: d}
}

// NumericFromString parses s as a JSON or SQL/JSON path numeric literal.
// "nan", "inf"/"infinity" and "-inf"/"-infinity" (case-insensitively) are
// accepted as the special states; everything else is handed to
// decimal.NewFromString.
func NumericFromString(s string) (Numeric, error) {
	switch strings.ToLower(s) {
	case "nan":
		return Numeric{kind: numNaN}, nil
	case "inf", "infinity":
		return Numeric{kind: numPosInf}, nil
	case "-inf", "-infinity":
		return Numeric{kind: numNegInf}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{}, ErrNotANumber.New(s)
	}
	return Numeric{dec: d}, nil
}

// IsNaN reports whether n is the NaN state.
func (n Numeric) IsNaN() bool { return n.kind == numNaN }

// IsInf reports whether n is +Inf or -Inf.
func (n Numeric) IsInf() bool { return n.kind == numPosInf || n.kind == numNegInf }

// IsFinite reports whether n is an ordinary finite decimal.
func (n Numeric) IsFinite() bool { return n.kind == numFinite }

// Decimal returns n's underlying decimal.Decimal. It is only meaningful
// when n.IsFinite().
func (n Numeric) Decimal() decimal.Decimal { return n.dec }

// Float64 converts n to a float64, mapping the special states to their
// IEEE 754 counterparts.
func (n Numeric) Float64() float64 {
	switch n.kind {
	case numNaN:
		return math.NaN()
	case numPosInf:
		return math.Inf(1)
	case numNegInf:
		return math.Inf(-1)
	default:
		f, _ := n.dec.Float64()
		return f
	}
}

// Int64 truncates n to an int64. ok is false if n is non-finite or out of
// range.
func (n Numeric) Int64() (val int64, ok bool) {
	if !n.IsFinite() {
		return 0, false
	}
	if n.dec.GreaterThan(maxInt64Dec) || n.dec.LessThan(minInt64Dec) {
		return 0, false
	}
	return n.dec.Truncate(0).IntPart(), true
}

// Int32 truncates n to an int32. ok is false if n is non-finite or out of
// range. Used for array subscripts (Array subscript).
func (n Numeric) Int32() (val int32, ok bool) {
	i, ok := n.Int64()
	if !ok || i > math.MaxInt32 || i < math.MinInt32 {
		return 0, false
	}
	return int32(i), true
}

var (
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

// String renders n the way a SQL/JSON path numeric literal would be
// rendered back: canonical decimal text, or "nan"/"inf"/"-inf".
func (n Numeric) String() string {
	switch n.kind {
	case numNaN:
		return "nan"
	case numPosInf:
		return "inf"
	case numNegInf:
		return "-inf"
	default:
		return n.dec.String()
	}
}

// binaryOp applies fn to two finite operands, propagating non-finite
// states using IEEE-ish rules (NaN is absorbing; Inf arithmetic follows
// standard float semantics by routing through Float64 for the rare
// non-finite paths since shopspring/decimal has no such concept).
func binaryOp(
	a, b Numeric,
	finite func(x, y decimal.Decimal) (decimal.Decimal, error),
	float func(x, y float64) float64,
) (Numeric, error) {
	if a.IsFinite() && b.IsFinite() {
		d, err := finite(a.dec, b.dec)
		if err != nil {
			return Numeric{}, err
		}
		return Numeric{dec: d}, nil
	}
	return NumericFromFloat64(float(a.Float64(), b.Float64())), nil
}

// Add returns a + b.
func (a Numeric) Add(b Numeric) (Numeric, error) {
	return binaryOp(a, b,
		func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Add(y), nil },
		func(x, y float64) float64 { return x + y },
	)
}

// Sub returns a - b.
func (a Numeric) Sub(b Numeric) (Numeric, error) {
	return binaryOp(a, b,
		func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Sub(y), nil },
		func(x, y float64) float64 { return x - y },
	)
}

// Mul returns a * b.
func (a Numeric) Mul(b Numeric) (Numeric, error) {
	return binaryOp(a, b,
		func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Mul(y), nil },
		func(x, y float64) float64 { return x * y },
	)
}

// Div returns a / b. Returns ErrDivisionByZero if b is the finite zero.
func (a Numeric) Div(b Numeric) (Numeric, error) {
	if b.IsFinite() && b.dec.IsZero() {
		return Numeric{}, ErrDivisionByZero.New()
	}
	return binaryOp(a, b,
		func(x, y decimal.Decimal) (decimal.Decimal, error) {
			return x.DivRound(y, divisionScale(x, y)), nil
		},
		func(x, y float64) float64 { return x / y },
	)
}

// Mod returns a % b (truncated remainder, matching SQL semantics).
// Returns ErrDivisionByZero if b is the finite zero.
func (a Numeric) Mod(b Numeric) (Numeric, error) {
	if b.IsFinite() && b.dec.IsZero() {
		return Numeric{}, ErrDivisionByZero.New()
	}
	return binaryOp(a, b,
		func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Mod(y), nil },
		func(x, y float64) float64 { return math.Mod(x, y) },
	)
}

// divisionScale picks a generous fixed scale for DivRound so that a/b for
// typical path-query operands doesn't silently truncate.
func divisionScale(x, y decimal.Decimal) int32 {
	scale := x.Exponent()
	if y.Exponent() < scale {
		scale = y.Exponent()
	}
	const minScale = -20
	if scale > minScale {
		scale = minScale
	}
	return -scale
}

// Neg returns -n.
func (n Numeric) Neg() Numeric {
	switch n.kind {
	case numNaN:
		return n
	case numPosInf:
		return Numeric{kind: numNegInf}
	case numNegInf:
		return Numeric{kind: numPosInf}
	default:
		return Numeric{dec: n.dec.Neg()}
	}
}

// Abs returns |n|.
func (n Numeric) Abs() Numeric {
	switch n.kind {
	case numNaN:
		return n
	case numPosInf, numNegInf:
		return Numeric{kind: numPosInf}
	default:
		return Numeric{dec: n.dec.Abs()}
	}
}

// Floor returns the largest integer Numeric <= n.
func (n Numeric) Floor() Numeric {
	if !n.IsFinite() {
		return n
	}
	return Numeric{dec: n.dec.Floor()}
}

// Ceil returns the smallest integer Numeric >= n.
func (n Numeric) Ceil() Numeric {
	if !n.IsFinite() {
		return n
	}
	return Numeric{dec: n.dec.Ceil()}
}

// Cmp compares a and b. ok is false when either operand is NaN, since NaN
// is unordered even with respect to itself.
func (a Numeric) Cmp(b Numeric) (result int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	af, bf := a.kind, b.kind
	if af == numFinite && bf == numFinite {
		return a.dec.Cmp(b.dec), true
	}
	// At least one side is +/-Inf: compare via the float domain, which
	// correctly orders finite values against +/-Inf.
	x, y := a.Float64(), b.Float64()
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	default:
		return 0, true
	}
}

// ApplyTypmod reparses n through precision/scale rounding the way the
// host numeric typmod apparatus would, rejecting values whose integral
// part doesn't fit in precision-scale digits.
func ApplyTypmod(n Numeric, precision, scale int) (Numeric, error) {
	if !n.IsFinite() {
		return Numeric{}, errTypmodOnNonFinite.New(n.String())
	}
	rounded := n.dec.Round(int32(scale))
	digits := len(rounded.Abs().Coefficient().String())
	if digits > precision {
		return Numeric{}, ErrNumericOverflow.New()
	}
	return Numeric{dec: rounded}, nil
}

var errTypmodOnNonFinite = errors.NewKind("precision cannot be applied to %s")

// FormatInt renders i as a base-10 string, used for canonical integer
// output in the .string() method.
func FormatInt(i int64) string { return strconv.FormatInt(i, 10) }

// ParseBigintText parses s as a lexical integer, used by .bigint()/.integer()
// string coercion.
func ParseBigintText(s string) (Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{}, ErrNotANumber.New(s)
	}
	if !d.Equal(d.Truncate(0)) {
		return Numeric{}, ErrNotANumber.New(s)
	}
	return Numeric{dec: d}, nil
}
