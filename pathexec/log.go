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

import "github.com/sirupsen/logrus"

// Logger returns the *logrus.Entry this Executor logs through,
// following the common Session/Context GetLogger convention for
// per-invocation logging handles.
func (e *Executor) Logger() *logrus.Entry { return e.log }

// logError records a failure at warn level with the call-site name,
// recursion depth and mode as structured fields, then returns err
// unchanged so a call site can use the one-liner
// `return st, e.logError(where, err)`. The evaluator's own error paths
// return their errors without calling it.
func (e *Executor) logError(where string, err error) error {
	if err == nil {
		return nil
	}
	e.log.WithFields(logrus.Fields{
		"where": where,
		"depth": e.depth,
		"lax":   e.lax,
	}).Warn(err.Error())
	return err
}

// logTrace records a non-error diagnostic event at trace level: a
// recursion-depth guard trip, a `.datetime()` format-cascade match, or
// a regex engine selection. These never rise above trace/debug, since
// none of them indicate a failure -- just a decision worth seeing when
// tracing is turned on.
func (e *Executor) logTrace(where string, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["where"] = where
	e.log.WithFields(fields).Trace(where)
}
