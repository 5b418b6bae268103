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
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ToUTF8 is the host encoding normalization primitive: it returns s unchanged
// when it is already valid UTF-8 (the common case for Go strings), and
// otherwise repairs it by round-tripping through golang.org/x/text's
// UTF-8 transformer, replacing invalid sequences the same way a lossy
// recode would. Go source strings are UTF-8 by convention, so this is
// mostly a validation pass that the comparison code can rely on before
// doing a codepoint-by-codepoint walk.
func ToUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(unicode.UTF8.NewEncoder(), s)
	if err != nil {
		return s
	}
	return out
}

// CompareUTF8 compares a and b codepoint-by-codepoint after normalizing
// both through ToUTF8, implementing the "convert to UTF-8 ... compare by
// codepoint" string comparison rule.
func CompareUTF8(a, b string) int {
	a, b = ToUTF8(a), ToUTF8(b)
	for {
		if a == "" && b == "" {
			return 0
		}
		if a == "" {
			return -1
		}
		if b == "" {
			return 1
		}
		ra, sizeA := utf8.DecodeRuneInString(a)
		rb, sizeB := utf8.DecodeRuneInString(b)
		if ra != rb {
			switch {
			case ra < rb:
				return -1
			default:
				return 1
			}
		}
		a, b = a[sizeA:], b[sizeB:]
	}
}
