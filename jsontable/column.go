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

package jsontable

import (
	"github.com/jpathql/pathquery/document"
	"github.com/jpathql/pathquery/pathexec"
)

// findOwner walks plan looking for the PathScan that owns colnum,
// implementing the "locate the column's owning plan state" over the
// plan tree rather than a precomputed lookup table -- simpler to keep
// correct than maintaining a separate column→plan map in lockstep with
// plan construction. Sibling plans reuse the same column range for
// their shared output columns ("no actual merging"), so more than
// one PathScan can match colnum at once; the one with a current row
// wins, since that is the side the stream is presently emitting from.
func findOwner(plan Plan, colnum int) *PathScan {
	var fallback *PathScan
	var walk func(Plan)
	walk = func(p Plan) {
		switch n := p.(type) {
		case *PathScan:
			if colnum >= n.ColMin && colnum <= n.ColMax {
				if n.hasCurrent {
					fallback = n
					return
				}
				if fallback == nil {
					fallback = n
				}
			}
			if n.Child != nil {
				walk(n.Child)
			}
		case *SiblingJoin:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(plan)
	return fallback
}

// columnValue implements the column value extraction: NULL if the
// owning scan has no current row; the evaluated JsonExpr's value if
// the column carries one; otherwise the scan's ordinal counter.
func columnValue(plan Plan, colnum int, opts []pathexec.Option) (document.Value, error) {
	owner := findOwner(plan, colnum)
	if owner == nil || !owner.hasCurrent {
		return document.Null, nil
	}

	col := owner.Columns[colnum-owner.ColMin]
	if col.Expr == nil {
		return document.Num(document.NumericFromInt64(int64(owner.ordinal))), nil
	}

	disp, v, err := pathexec.PathQueryFirst(owner.current, col.Expr, true, opts...)
	if err != nil {
		return document.Value{}, err
	}
	if disp != pathexec.OK {
		return document.Null, nil
	}
	return v, nil
}
