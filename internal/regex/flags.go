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

package regex

import (
	"regexp"
	"strings"

	errorkinds "gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidFlag is returned by CompileLikeRegex when the flag string
// contains a character outside "imsxq".
var ErrInvalidFlag = errorkinds.NewKind("regex: invalid LIKE_REGEX flag %q")

// CompileLikeRegex compiles pattern under the XQuery-derived flag
// letters the `like_regex` predicate accepts: i
// (case-insensitive), s (dot matches newline), m (^/$ match at line
// boundaries), x (ignore unescaped pattern whitespace and # comments),
// q (treat pattern as a literal string, disabling all metacharacters).
//
// Go's regexp engine supports i, s and m as inline (?ims) flags
// directly, but has no x mode, so x is applied as a pre-processing
// pass over pattern before compilation -- the same two-step approach
// theory/sqljson's RegexNode.Regexp takes with its own goFlags/
// shouldQuoteMeta split (see DESIGN.md).
func CompileLikeRegex(pattern, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	var extended, quote bool

	for _, f := range flags {
		switch f {
		case 'i':
			inline.WriteByte('i')
		case 's':
			inline.WriteByte('s')
		case 'm':
			inline.WriteByte('m')
		case 'x':
			extended = true
		case 'q':
			quote = true
		default:
			return nil, ErrInvalidFlag.New(flags)
		}
	}

	if quote {
		pattern = regexp.QuoteMeta(pattern)
	} else if extended {
		pattern = stripExtendedWhitespace(pattern)
	}

	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + pattern
	}
	return regexp.Compile(pattern)
}

// stripExtendedWhitespace removes unescaped whitespace and `#`-to-
// end-of-line comments from pattern, the way POSIX/XQuery extended
// mode does, since Go's regexp package has no built-in x flag.
func stripExtendedWhitespace(pattern string) string {
	var out strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			out.WriteByte(c)
			out.WriteByte(pattern[i+1])
			i++
		case c == '[':
			inClass = true
			out.WriteByte(c)
		case c == ']':
			inClass = false
			out.WriteByte(c)
		case inClass:
			out.WriteByte(c)
		case c == '#':
			for i < len(pattern) && pattern[i] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// dropped
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
