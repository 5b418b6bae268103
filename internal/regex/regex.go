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

// Package regex provides a pluggable regular-expression engine
// registry for the like_regex predicate. The interpreter itself is
// regex-engine-agnostic; this package only adapts whichever engine is
// registered to the small Matcher interface the evaluator needs,
// keeping engine registration and pattern compilation separate.
package regex

import (
	"regexp"
	"sort"
	"sync"

	errorkinds "gopkg.in/src-d/go-errors.v1"
)

// ErrRegexNameEmpty is returned by Register when passed an empty engine
// name.
var ErrRegexNameEmpty = errorkinds.NewKind("regex: engine name must not be empty")

// ErrRegexNotRegistered is returned by New when asked for an engine
// that was never registered.
var ErrRegexNotRegistered = errorkinds.NewKind("regex: engine %q is not registered")

// Matcher tests whether a compiled pattern matches a subject string.
type Matcher interface {
	Match(s string) bool
}

// Disposer releases any resources a Matcher holds. Engines backed by
// cgo regex libraries need this; the pure-Go engine's Dispose is a
// no-op.
type Disposer interface {
	Dispose()
}

// Factory builds a Matcher/Disposer pair for the given pattern.
type Factory func(pattern string) (Matcher, Disposer, error)

var (
	mu      sync.RWMutex
	engines = map[string]Factory{}
	deflt   = "go"
)

func init() {
	must(Register("go", newGoEngine))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Register adds a named engine to the registry. Re-registering an
// existing name replaces it.
func Register(name string, factory Factory) error {
	if name == "" {
		return ErrRegexNameEmpty.New()
	}
	mu.Lock()
	defer mu.Unlock()
	engines[name] = factory
	return nil
}

// Engines returns the names of every registered engine, sorted.
func Engines() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the current default engine name: "go" unless
// SetDefault has set another. New does not consult it; callers pass
// it to New themselves.
func Default() string {
	mu.RLock()
	defer mu.RUnlock()
	return deflt
}

// SetDefault changes the default engine name. Passing "" resets it to
// "go".
func SetDefault(name string) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		deflt = "go"
		return
	}
	deflt = name
}

// New compiles pattern with the named engine.
func New(name, pattern string) (Matcher, Disposer, error) {
	mu.RLock()
	factory, ok := engines[name]
	mu.RUnlock()
	if !ok {
		return nil, nil, ErrRegexNotRegistered.New(name)
	}
	return factory(pattern)
}

// goMatcher adapts *regexp.Regexp to Matcher/Disposer.
type goMatcher struct{ re *regexp.Regexp }

func (m *goMatcher) Match(s string) bool { return m.re.MatchString(s) }
func (m *goMatcher) Dispose()             {}

func newGoEngine(pattern string) (Matcher, Disposer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, err
	}
	m := &goMatcher{re: re}
	return m, m, nil
}
