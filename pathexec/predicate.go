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

import "github.com/jpathql/pathquery/document"

// Tri is the interpreter's tri-valued boolean: True, False, or Unknown
// (tri-valued logic). Every predicate-producing node -- comparisons,
// starts_with, like_regex, exists, is_unknown, and the &&/||/! logical
// combinators -- produces a Tri rather than a Go bool.
type Tri uint8

const (
	False Tri = iota
	True
	Unknown
)

// String renders t for diagnostics.
func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// And implements SQL three-valued conjunction: False dominates, then
// Unknown, then True.
func (t Tri) And(o Tri) Tri {
	if t == False || o == False {
		return False
	}
	if t == Unknown || o == Unknown {
		return Unknown
	}
	return True
}

// Or implements SQL three-valued disjunction: True dominates, then
// Unknown, then False.
func (t Tri) Or(o Tri) Tri {
	if t == True || o == True {
		return True
	}
	if t == Unknown || o == Unknown {
		return Unknown
	}
	return False
}

// Not implements tri-valued negation; Unknown negates to itself.
func (t Tri) Not() Tri {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// WrapResult converts t to the Bool/Null document.Value the evaluator
// emits when a predicate-valued path is the whole expression rather
// than the operand of a filter ("Boolean-result wrapping").
func (t Tri) WrapResult() document.Value {
	switch t {
	case True:
		return document.Bool(true)
	case False:
		return document.Bool(false)
	default:
		return document.Null
	}
}

// CompareFunc compares one (left, right) value pair, returning the
// pair's Tri disposition. A non-nil error is always a hard,
// non-suppressible failure (e.g. a datetime cast that needs a
// timezone the caller forbade) and aborts the whole predicate
// evaluation immediately, in both lax and strict mode: failure is a
// hard error, not Unknown. For a unary predicate (e.g.
// like_regex) right is the zero Value and is ignored.
type CompareFunc func(left, right document.Value) (Tri, error)

// Drive runs the predicate driver over every (l, r) pair drawn from
// lefts × rights (or, when unary, every l alone), short-circuiting per
// its six-step algorithm: strict mode stops at the first Unknown pair,
// lax mode stops at the first True pair.
func Drive(lefts, rights *ValueList, lax, unary bool, cmp CompareFunc) (Tri, error) {
	sawUnknown := false
	sawTrue := false

	eval := func(l, r document.Value) (Tri, error) { return cmp(l, r) }

	err := lefts.ForEach(func(l document.Value) error {
		if unary {
			res, err := eval(l, document.Value{})
			if err != nil {
				return err
			}
			return driveStep(res, lax, &sawTrue, &sawUnknown)
		}
		return rights.ForEach(func(r document.Value) error {
			res, err := eval(l, r)
			if err != nil {
				return err
			}
			return driveStep(res, lax, &sawTrue, &sawUnknown)
		})
	})
	if err != nil {
		if stop, ok := err.(driveStop); ok {
			return stop.result, nil
		}
		return Unknown, err
	}

	if !lax {
		if sawTrue {
			return True, nil
		}
		if sawUnknown {
			return Unknown, nil
		}
		return False, nil
	}
	if sawUnknown {
		return Unknown, nil
	}
	return False, nil
}

// driveStop is a sentinel "error" used purely to unwind ForEach's
// nested closures once the driver's short-circuit condition fires; it
// never reaches a caller as a real error.
type driveStop struct{ result Tri }

func (driveStop) Error() string { return "predicate driver short-circuit" }

func driveStep(res Tri, lax bool, sawTrue, sawUnknown *bool) error {
	switch res {
	case Unknown:
		if !lax {
			return driveStop{Unknown}
		}
		*sawUnknown = true
	case True:
		if lax {
			return driveStop{True}
		}
		*sawTrue = true
	}
	return nil
}
