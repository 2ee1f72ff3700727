// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
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


package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nickng/fac/recursion"
	"github.com/nickng/fac/ssabuilder"
	"github.com/spf13/cobra"
)

const basePkg = "github.com/nickng/fac"

// newShapeCmd creates the shape command
func newShapeCmd(opts *options) *cobra.Command {
	var dumpSSA bool
	shapeCmd := &cobra.Command{
		Use:   "shape [packages...]",
		Short: "Check the stack shape of functions",
		Long: `Check the stack shape of functions

Each function is classified from its SSA IR as straight-line, iterative,
tail-recursive or recursive. Only straight-line and iterative functions run in
a constant number of stack frames; Go does not eliminate tail calls.

The inputs are Go package patterns (default is the factorial package).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{basePkg + "/factorial"}
			}
			l, err := opts.logWriter(cmd)
			if err != nil {
				return err
			}
			defer l.Cleanup()

			conf, err := ssabuilder.NewConfig(args)
			if err != nil {
				return err
			}
			conf.BuildLog = l.Writer
			ssainfo, err := conf.Build()
			if err != nil {
				return err
			}
			if dumpSSA {
				if _, err := ssainfo.WriteTo(l.Writer); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, r := range recursion.Analyse(ssainfo, l.Writer) {
				if r.Shape.ConstantStack() {
					fmt.Fprintln(out, color.GreenString("✓ %s: %s", r.Func, r.Shape))
				} else {
					fmt.Fprintln(out, color.RedString("❌ %s: %s, stack grows with input (%s)", r.Func, r.Shape, r.Pos))
				}
			}
			return nil
		},
	}
	shapeCmd.Flags().BoolVar(&dumpSSA, "dump", false, "dump SSA IR of the analysed functions to the log")
	return shapeCmd
}
