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

// Driver is the runtime handle over a plan tree, implementing the
// tabular surface (table_init/table_set_document/table_fetch_row/
// table_get_value/table_destroy) under Go-conventional names.
type Driver struct {
	root Plan
	opts []pathexec.Option
	doc  document.Value
}

// NewDriver implements table_init: root is the compiled plan tree
// (built by the caller from PathScan/SiblingJoin), opts carries the
// shared variable environment ("passing_args") and mode flags every
// scan in the tree evaluates with.
func NewDriver(root Plan, opts ...pathexec.Option) *Driver {
	return &Driver{root: root, opts: opts}
}

// SetDocument implements table_set_document: binds the input document
// and resets the whole plan tree against it.
func (d *Driver) SetDocument(doc document.Value) error {
	d.doc = doc
	return d.root.reset(doc, d.opts)
}

// FetchRow implements table_fetch_row: advances to the next row,
// returning false once the plan tree is exhausted.
func (d *Driver) FetchRow() (bool, error) {
	return d.root.fetch(d.opts)
}

// GetValue implements table_get_value: extracts colnum's value from
// the current row.
func (d *Driver) GetValue(colnum int) (document.Value, error) {
	return columnValue(d.root, colnum, d.opts)
}

// Destroy implements table_destroy. The driver holds no external
// resources (no file handles, no cgo state), so this only drops its
// reference to the input document, allowing it to be garbage
// collected independently of the driver.
func (d *Driver) Destroy() {
	d.doc = document.Value{}
}
