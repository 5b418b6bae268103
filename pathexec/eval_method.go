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
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
)

func (e *Executor) execMathMethod(n *ast.MathMethod, rest []ast.Node, st evalState, out *sink) (Status, error) {
	num, ok := st.item.AsNumeric()
	if !ok {
		return StatusNotFound, ErrNumericArg.New(".abs()/.floor()/.ceiling() operand")
	}
	var result document.Numeric
	switch n.Op {
	case ast.MathAbs:
		result = num.Abs()
	case ast.MathFloor:
		result = num.Floor()
	case ast.MathCeiling:
		result = num.Ceil()
	}
	return e.next(rest, document.Num(result), st.baseObjectID, out)
}

func (e *Executor) execDoubleMethod(n *ast.DoubleMethod, rest []ast.Node, st evalState, out *sink) (Status, error) {
	num, err := e.coerceToNumeric(st.item, ".double()")
	if err != nil {
		return StatusNotFound, err
	}
	if num.IsNaN() || num.IsInf() {
		return StatusNotFound, ErrNumericArg.New(".double() of NaN/Inf")
	}
	return e.next(rest, document.Num(document.NumericFromFloat64(num.Float64())), st.baseObjectID, out)
}

// coerceToNumeric implements the shared "numeric or string" operand
// rule several methods share: .double(), .decimal(), .number().
func (e *Executor) coerceToNumeric(v document.Value, method string) (document.Numeric, error) {
	if n, ok := v.AsNumeric(); ok {
		return n, nil
	}
	if s, ok := v.AsString(); ok {
		n, err := document.NumericFromString(strings.TrimSpace(s))
		if err != nil {
			return document.Numeric{}, ErrNumericArg.New(method + " operand")
		}
		return n, nil
	}
	return document.Numeric{}, ErrNumericArg.New(method + " operand")
}

func (e *Executor) execIntCast(n *ast.IntCast, rest []ast.Node, st evalState, out *sink) (Status, error) {
	methodName := ".integer()"
	if n.Op == ast.IntCastBigint {
		methodName = ".bigint()"
	}

	var num document.Numeric
	if s, ok := st.item.AsString(); ok {
		parsed, err := document.ParseBigintText(strings.TrimSpace(s))
		if err != nil {
			return StatusNotFound, ErrInvalidArgForMethod.New(methodName)
		}
		num = parsed
	} else {
		v, ok := st.item.AsNumeric()
		if !ok {
			return StatusNotFound, ErrNumericArg.New(methodName + " operand")
		}
		num = v
	}

	i64, ok := num.Int64()
	if !ok {
		return StatusNotFound, document.ErrNumericOverflow.New()
	}
	if n.Op == ast.IntCastInteger && (i64 > int64(1<<31-1) || i64 < int64(-1<<31)) {
		return StatusNotFound, document.ErrNumericOverflow.New()
	}
	return e.next(rest, document.Num(document.NumericFromInt64(i64)), st.baseObjectID, out)
}

func (e *Executor) execDecimalCast(n *ast.DecimalCast, rest []ast.Node, st evalState, out *sink) (Status, error) {
	method := ".number()"
	if !n.Number {
		method = ".decimal()"
	}
	num, err := e.coerceToNumeric(st.item, method)
	if err != nil {
		return StatusNotFound, err
	}
	if num.IsNaN() || num.IsInf() {
		return StatusNotFound, ErrNumericArg.New(method + " of NaN/Inf")
	}
	if n.Precision != nil {
		scale := 0
		if n.Scale != nil {
			scale = *n.Scale
		}
		num, err = document.ApplyTypmod(num, *n.Precision, scale)
		if err != nil {
			return StatusNotFound, err
		}
	}
	return e.next(rest, document.Num(num), st.baseObjectID, out)
}

func (e *Executor) execBooleanCast(n *ast.BooleanCast, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if b, ok := st.item.AsBool(); ok {
		return e.next(rest, document.Bool(b), st.baseObjectID, out)
	}
	if num, ok := st.item.AsNumeric(); ok {
		i64, ok := num.Int64()
		if !ok {
			return StatusNotFound, ErrInvalidArgForMethod.New(".boolean()")
		}
		return e.next(rest, document.Bool(i64 != 0), st.baseObjectID, out)
	}
	if s, ok := st.item.AsString(); ok {
		b, ok := parseBooleanText(s)
		if !ok {
			return StatusNotFound, ErrInvalidArgForMethod.New(".boolean()")
		}
		return e.next(rest, document.Bool(b), st.baseObjectID, out)
	}
	return StatusNotFound, ErrInvalidArgForMethod.New(".boolean()")
}

// parseBooleanText accepts the usual SQL boolean literal spellings.
func parseBooleanText(s string) (bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	default:
		return false, false
	}
}

func (e *Executor) execStringCast(n *ast.StringCast, rest []ast.Node, st evalState, out *sink) (Status, error) {
	if st.item.IsNull() {
		return e.structuralMiss(".string() applied to null")
	}
	var s string
	switch {
	case isBool(st.item):
		b, _ := st.item.AsBool()
		s = strconv.FormatBool(b)
	case isNumeric(st.item):
		num, _ := st.item.AsNumeric()
		s = num.String()
	case isString(st.item):
		s, _ = st.item.AsString()
	case isDatetime(st.item):
		dt, _ := st.item.AsDatetime()
		s = dt.String()
	default:
		return StatusNotFound, ErrStructural.New(".string() applied to non-scalar")
	}
	return e.next(rest, document.Str(s), st.baseObjectID, out)
}

func isBool(v document.Value) bool     { _, ok := v.AsBool(); return ok }
func isNumeric(v document.Value) bool  { _, ok := v.AsNumeric(); return ok }
func isString(v document.Value) bool   { _, ok := v.AsString(); return ok }
func isDatetime(v document.Value) bool { _, ok := v.AsDatetime(); return ok }

func (e *Executor) execDatetimeCast(n *ast.DatetimeCast, rest []ast.Node, st evalState, out *sink) (Status, error) {
	s, ok := st.item.AsString()
	if !ok {
		return StatusNotFound, ErrInvalidArgForMethod.New("datetime method")
	}

	dt, err := ParseDatetimeText(s, n.Template)
	if err != nil {
		return StatusNotFound, ErrDatetimeArg.New(err.Error())
	}
	if n.Template == nil {
		e.logTrace("datetime format cascade", logrus.Fields{"kind": dt.Kind.String()})
	}

	if n.Method == ast.DTMDatetime {
		// `.datetime()` and `.datetime(template)` never constrain the
		// target kind -- a template only restricts how the text is
		// parsed, not what it parses to.
		return e.next(rest, document.DT(dt), st.baseObjectID, out)
	}

	cast, err := CastDatetime(dt, n.Method, n.Precision, e.useTZ)
	if err != nil {
		if document.ErrDatetimeNeedsTZ.Is(err) {
			return StatusNotFound, err
		}
		return StatusNotFound, ErrDatetimeArg.New(err.Error())
	}
	return e.next(rest, document.DT(cast), st.baseObjectID, out)
}
