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

import errorkinds "gopkg.in/src-d/go-errors.v1"

// Error kinds raised by the evaluator. Each is checked with errors.Is
// against these sentinels, following the gopkg.in/src-d/go-errors.v1
// NewKind convention (see DESIGN.md).
//
// The suppressible/non-suppressible split (Error taxonomy) is
// captured by IsSuppressible: in lax mode, a suppressible error simply
// removes the offending item from the value-list instead of aborting
// evaluation; a non-suppressible error always aborts, lax or strict.
var (
	// ErrStructural is raised when an accessor is applied to a value
	// of the wrong shape and lax auto-unwrap/auto-wrap does not apply
	// (e.g. `.foo` on a number in strict mode). Suppressible.
	ErrStructural = errorkinds.NewKind("jsonpath: structural error: %s")

	// ErrNoSuchKey is raised by `.foo` when foo is absent from a
	// strict-mode object. Suppressible.
	ErrNoSuchKey = errorkinds.NewKind("jsonpath: JSON object does not contain key %q")

	// ErrArrayIndexOOB is raised by `[n]` when n is out of bounds in
	// strict mode. Suppressible.
	ErrArrayIndexOOB = errorkinds.NewKind("jsonpath: jsonpath array subscript is out of bounds")

	// ErrNumericArg is raised when a method or operator needs a number
	// but was given a non-numeric, non-coercible operand. Suppressible.
	ErrNumericArg = errorkinds.NewKind("jsonpath: argument %q is not numeric")

	// ErrDatetimeArg wraps the document datetime parse and cast errors
	// raised by the datetime methods, except ErrDatetimeNeedsTZ, which
	// is passed through unwrapped. Suppressible.
	ErrDatetimeArg = errorkinds.NewKind("jsonpath: %s")

	// ErrInvalidArgForMethod covers malformed method arguments (e.g. an
	// .integer() whose string operand is not an integer, or a .boolean()
	// of an unrecognized string) that are
	// never suppressed, even in lax mode, because they indicate the
	// expression itself is unsound rather than the data being an
	// unexpected shape.
	ErrInvalidArgForMethod = errorkinds.NewKind("jsonpath: invalid argument for %s method")

	// ErrVariableNotFound is raised when a Variable node names a
	// variable absent from the Vars environment. Non-suppressible.
	ErrVariableNotFound = errorkinds.NewKind("jsonpath: could not find jsonpath variable %q")

	// ErrCurrentOutsideFilter is raised when @ is evaluated outside a
	// filter's predicate. Non-suppressible: it is a malformed
	// expression, not a data-shape surprise.
	ErrCurrentOutsideFilter = errorkinds.NewKind("jsonpath: @ is not allowed in root expressions")

	// ErrLastOutsideSubscript mirrors ErrCurrentOutsideFilter for LAST.
	ErrLastOutsideSubscript = errorkinds.NewKind("jsonpath: LAST is allowed only in array subscripts")

	// ErrDivisionByZero is raised by the `/` and `%` operators.
	// Suppressible.
	ErrDivisionByZero = errorkinds.NewKind("jsonpath: division by zero")

	// ErrSingletonRequired is raised when an operator needing a
	// singleton (an operand of a binary arithmetic operator, an array
	// subscript bound, or the result PathMatch/PathValue read) instead
	// receives a value-list that does not hold exactly one item.
	// Non-suppressible ("a singleton-required context fed
	// a non-singleton sequence is always a hard error").
	ErrSingletonRequired = errorkinds.NewKind("jsonpath: singleton SQL/JSON item required")

	// ErrMaxDepthExceeded guards against runaway recursion through
	// deeply nested containers or pathological `.**` descents.
	ErrMaxDepthExceeded = errorkinds.NewKind("jsonpath: evaluator recursion limit exceeded")

	// ErrRegexFlags is raised when a like_regex flag string contains a
	// character outside "imsxq". Non-suppressible.
	ErrRegexFlags = errorkinds.NewKind("jsonpath: invalid LIKE_REGEX flag %q")
)

// suppressible is the set of error kinds that a lax-mode evaluation
// silently filters out of its result rather than propagating, per
// the unwrap/error-suppression policy.
var suppressible = map[*errorkinds.Kind]bool{
	ErrStructural:          true,
	ErrNoSuchKey:           true,
	ErrArrayIndexOOB:       true,
	ErrNumericArg:          true,
	ErrDatetimeArg:         true,
	ErrDivisionByZero:      true,
}

// IsSuppressible reports whether err is of a suppressible kind: one that
// lax auto-unwrap, predicates, exists, .** and the API's suppress flag
// swallow instead of aborting the whole evaluation.
func IsSuppressible(err error) bool {
	if err == nil {
		return false
	}
	for kind, yes := range suppressible {
		if yes && kind.Is(err) {
			return true
		}
	}
	return false
}
