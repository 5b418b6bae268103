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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/jpathql/pathquery/document"
)

// Vars is the named-variable environment a path is evaluated against
// Variable resolution: each variable is assigned a stable,
// positive 1-based ordinal id the first time Vars is built; $ itself
// has the reserved id 0 and is never stored here. The ids back the
// base-object registry so that `$x` and `$` get distinct,
// disjoint id ranges for `.keyvalue()` identity purposes.
type Vars struct {
	byName map[string]document.Value
	ids    map[string]int
	names  []string // index i -> name with id i+1
}

// NewVars builds a Vars environment from name/value pairs. Ids are
// assigned in ascending name order so that repeated construction from
// the same map produces the same ids, independent of Go's randomized
// map iteration order.
func NewVars(values map[string]document.Value) *Vars {
	names := maps.Keys(values)
	sort.Strings(names)

	v := &Vars{
		byName: values,
		ids:    make(map[string]int, len(names)),
		names:  names,
	}
	for i, name := range names {
		v.ids[name] = i + 1
	}
	return v
}

// Get returns the value bound to name. ok is false if name is unbound,
// which the evaluator turns into the non-suppressible
// ErrVariableNotFound.
func (v *Vars) Get(name string) (document.Value, bool) {
	if v == nil {
		return document.Value{}, false
	}
	val, ok := v.byName[name]
	return val, ok
}

// ID returns name's 1-based ordinal id. ok is false if name is unbound.
func (v *Vars) ID(name string) (int, bool) {
	if v == nil {
		return 0, false
	}
	id, ok := v.ids[name]
	return id, ok
}

// Count reports how many variables are bound.
func (v *Vars) Count() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}
