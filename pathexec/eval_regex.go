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

// matcherFor returns the compiled Matcher for n, compiling and caching
// it on first use ("pattern + flag conversion done lazily
// at first use of this node").
func (e *Executor) matcherFor(n *ast.LikeRegex) (regex.Matcher, error) {
	if m, ok := e.regexCache[n]; ok {
		return m, nil
	}
	e.logTrace("regex engine selection", logrus.Fields{"engine": e.regexEngine, "flags": n.Flags})
	re, err := regex.CompileLikeRegex(n.Pattern, n.Flags)
	if err != nil {
		if regex.ErrInvalidFlag.Is(err) {
			return nil, ErrRegexFlags.New(n.Flags)
		}
		return nil, err
	}
	m, _, err := regex.New(e.regexEngine, re.String())
	if err != nil {
		return nil, err
	}
	e.regexCache[n] = m
	return m, nil
}

type regexMatcher struct{ re interface{ MatchString(string) bool } }

func (m regexMatcher) Match(s string) bool { return m.re.MatchString(s) }

func (e *Executor) execLikeRegex(n *ast.LikeRegex, rest []ast.Node, st evalState, out *sink) (Status, error) {
	lefts, err := e.evalOperandList(n.Operand, st)
	if err != nil {
		return StatusNotFound, err
	}
	matcher, err := e.matcherFor(n)
	if err != nil {
		return StatusNotFound, err
	}

	res, err := Drive(lefts, Empty(), e.lax, true, func(l, _ document.Value) (Tri, error) {
		s, ok := l.AsString()
		if !ok {
			return Unknown, nil
		}
		return boolToTri(matcher.Match(s)), nil
	})
	if err != nil {
		return StatusNotFound, err
	}
	return e.emitPredicateResult(res, rest, st, out)
}
