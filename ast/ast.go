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

package ast

// AST is the complete compiled path expression: a root Node plus the
// lax/strict mode it was compiled with (Execution context).
type AST struct {
	root Node
	lax  bool
}

// New wraps root as an AST. lax selects lax mode (true) or strict mode
// (false).
func New(lax bool, root Node) *AST {
	return &AST{root: root, lax: lax}
}

// Root returns the AST's root node.
func (a *AST) Root() Node { return a.root }

// IsLax reports whether the path was compiled in lax mode.
func (a *AST) IsLax() bool { return a.lax }

// IsStrict reports whether the path was compiled in strict mode.
func (a *AST) IsStrict() bool { return !a.lax }

// IsPredicate reports whether the root of the path is a predicate-check
// expression (one whose boolean result is the answer), as opposed to a
// SQL-standard item-selecting path. Per the boolean-result wrapping
// rule, the interpreter treats both uniformly and wraps a boolean result
// at the top level; IsPredicate is exposed for callers (e.g. Match) that
// want to validate the caller's expectations up front.
func (a *AST) IsPredicate() bool {
	switch a.root.Kind() {
	case KindComparison, KindLogical, KindStartsWith, KindLikeRegex,
		KindExists, KindIsUnknown:
		return true
	default:
		return false
	}
}
