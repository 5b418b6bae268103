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

// Command pathquery is a small demo harness over the path-query
// evaluator: it runs a handful of hand-built scenario ASTs (see
// scenarios.go) against a caller-supplied JSON document and prints
// their results. It does not accept jsonpath source text -- parsing
// path syntax into an ast.AST is outside this module's scope, so the
// scenarios stand in for what a real caller's parser would produce.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jpathql/pathquery/document"
	"github.com/jpathql/pathquery/jsontable"
	"github.com/jpathql/pathquery/pathexec"
)

var (
	docPath string
	debug   bool
	log     = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:           "pathquery",
		Short:         "Run demo path-query scenarios against a JSON document",
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&docPath, "doc", "d", "", "path to the JSON document (default: stdin)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(listCmd(), runCmd(), tableCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func loadDocument() (document.Value, error) {
	var data []byte
	var err error
	if docPath == "" || docPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(docPath)
	}
	if err != nil {
		return document.Value{}, fmt.Errorf("reading document: %w", err)
	}
	return document.ParseJSON(data)
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demo scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			printScenarios()
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run a named scenario against --doc and print its result sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := findScenario(args[0])
			if !ok {
				return fmt.Errorf("unknown scenario %q (see 'pathquery list')", args[0])
			}
			doc, err := loadDocument()
			if err != nil {
				return err
			}

			entry := logrus.NewEntry(log)
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
			disp, items, err := pathexec.PathQuery(doc, s.path, false, pathexec.WithLogger(entry))
			if err != nil {
				return fmt.Errorf("scenario %s: %w", s.name, err)
			}
			entry.WithFields(logrus.Fields{"scenario": s.name, "disposition": disp}).Debug("scenario finished")

			return printValues(items)
		},
	}
}

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Run the nested-rows tabular scenario over $.rows[*]",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument()
			if err != nil {
				return err
			}

			drv := jsontable.NewDriver(rowsTablePlan())
			if err := drv.SetDocument(doc); err != nil {
				return err
			}
			defer drv.Destroy()

			for {
				ok, err := drv.FetchRow()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				v, err := drv.GetValue(0)
				if err != nil {
					return err
				}
				raw, err := document.MarshalJSON(v)
				if err != nil {
					return err
				}
				fmt.Println(string(raw))
			}
			return nil
		},
	}
}

func printValues(items []document.Value) error {
	out := make([]json.RawMessage, 0, len(items))
	for _, v := range items {
		raw, err := document.MarshalJSON(v)
		if err != nil {
			return err
		}
		out = append(out, raw)
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}
