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
	"github.com/sirupsen/logrus"

	"github.com/jpathql/pathquery/ast"
	"github.com/jpathql/pathquery/document"
	"github.com/jpathql/pathquery/internal/regex"
)

// maxRecursionDepth bounds the evaluator's recursive descent so a
// pathological `.**` over a deeply nested document, or a filter that
// recurses into itself, fails with ErrMaxDepthExceeded instead of
// overflowing the Go stack.
const maxRecursionDepth = 10000

// Option configures an Executor at construction time, following the
// functional-options pattern used elsewhere in this codebase for
// engine and session types (see DESIGN.md).
type Option func(*Executor)

// WithVars binds named path variables ($x, $y, ...) for the
// evaluation.
func WithVars(vars map[string]document.Value) Option {
	return func(e *Executor) { e.vars = NewVars(vars) }
}

// WithLogger overrides the default logrus logger, e.g. to attach
// request-scoped fields.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Executor) { e.log = log }
}

// WithRegexEngine selects a non-default regular expression engine for
// like_regex (see internal/regex); the default is the "go" engine.
func WithRegexEngine(name string) Option {
	return func(e *Executor) { e.regexEngine = name }
}

// WithTZ permits (true) or forbids (false, the default) timezone-
// sensitive datetime casts, per the `use_tz` mode flag. A cast
// that needs a timezone while this is false is always a hard,
// non-suppressible error.
func WithTZ(useTZ bool) Option {
	return func(e *Executor) { e.useTZ = useTZ }
}

// Executor is the execution context: it carries the
// document root, the lax/strict mode, the variable environment, and
// the base-object registry `.keyvalue()` needs to mint stable object
// identities. One Executor evaluates exactly one (root, path) pair;
// construct a fresh Executor per PathQuery/PathExists/PathMatch call.
type Executor struct {
	root document.Value
	vars *Vars
	lax  bool
	useTZ bool

	log         *logrus.Entry
	regexEngine string

	// baseObjects maps a Container pointer to the small integer id
	// .keyvalue() uses to build a value's "id" field: this is the
	// "generated object id" scheme for base-object identity.
	// Ids 0..vars.Count() are reserved for $ (id 0) and each bound
	// variable (ids 1..N); the first object/array actually walked
	// during evaluation is assigned lastGeneratedObjectID, which
	// starts at vars.Count()+1 and increments monotonically.
	baseObjects           map[*document.Container]int
	lastGeneratedObjectID int

	// innermostArraySize is the size bound to LAST inside the array
	// subscript currently being evaluated, or -1 outside any subscript
	// (part of the execution context).
	innermostArraySize int

	// filterDepth counts how many nested filter predicates are
	// currently being evaluated; @ is only valid while this is > 0.
	filterDepth int

	// ignoreStructuralErrors transiently suppresses structural errors
	// (a separately-togglable mode flag), used by .** 's
	// first-attempt-at-this-depth probe and by lax mode generally.
	ignoreStructuralErrors bool

	// regexCache memoizes like_regex pattern compilation per AST node:
	// pattern + flag conversion is done lazily at first use of this
	// node.
	regexCache map[*ast.LikeRegex]regex.Matcher

	depth int
}

// NewExecutor builds an Executor evaluating path expressions against
// root in the given mode, applying opts in order.
func NewExecutor(root document.Value, lax bool, opts ...Option) *Executor {
	e := &Executor{
		root:                   root,
		lax:                    lax,
		log:                    logrus.NewEntry(logrus.StandardLogger()),
		regexEngine:            regex.Default(),
		baseObjects:            make(map[*document.Container]int),
		innermostArraySize:     -1,
		ignoreStructuralErrors: lax,
		regexCache:             make(map[*ast.LikeRegex]regex.Matcher),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lastGeneratedObjectID = e.vars.Count() + 1
	return e
}

// withSubscriptSize temporarily rebinds innermostArraySize to size for
// the duration of evaluating one array subscript expression, returning
// a restore func the caller must defer.
func (e *Executor) withSubscriptSize(size int) (restore func()) {
	prev := e.innermostArraySize
	e.innermostArraySize = size
	return func() { e.innermostArraySize = prev }
}

// withIgnoreStructuralErrors transiently forces
// ignoreStructuralErrors to true, restoring the previous value on
// return -- used by .** 's depth-0 probe.
func (e *Executor) withIgnoreStructuralErrors() (restore func()) {
	prev := e.ignoreStructuralErrors
	e.ignoreStructuralErrors = true
	return func() { e.ignoreStructuralErrors = prev }
}

// withFilter increments filterDepth for the duration of evaluating one
// filter predicate; @ itself is the evalState item that execCurrent
// reads while this is > 0.
func (e *Executor) withFilter() (restore func()) {
	e.filterDepth++
	return func() { e.filterDepth-- }
}

// objectID returns the stable id assigned to c, minting a fresh one on
// first sight. $ itself is never registered here: the root container
// always has the fixed id 0.
func (e *Executor) objectID(c *document.Container) int {
	if rc, ok := e.root.AsContainer(); ok && rc == c {
		return 0
	}
	if id, ok := e.baseObjects[c]; ok {
		return id
	}
	id := e.lastGeneratedObjectID
	e.baseObjects[c] = id
	e.lastGeneratedObjectID++
	return id
}

// enter increments the recursion-depth counter, returning
// ErrMaxDepthExceeded once the limit is hit, and a leave func the
// caller must defer to decrement it again.
func (e *Executor) enter() (leave func(), err error) {
	e.depth++
	if e.depth > maxRecursionDepth {
		e.depth--
		e.logTrace("recursion depth guard", logrus.Fields{"limit": maxRecursionDepth})
		return func() {}, ErrMaxDepthExceeded.New()
	}
	return func() { e.depth-- }, nil
}
