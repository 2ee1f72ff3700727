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
	"io/ioutil"

	"github.com/nickng/fac/factorial"
	"github.com/nickng/fac/factorial/dot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newDotCmd creates the dot command
func newDotCmd(opts *options) *cobra.Command {
	var (
		outfile string // Path to output file
		variant string // Variant to trace
	)
	dotCmd := &cobra.Command{
		Use:   "dot",
		Short: "Draw the call structure of fac(5) as a DOT graph",
		Long: `Draw the call structure of fac(5) as a Graphviz DOT graph

The naive variant appears as a chain of nested calls, each waiting to multiply
the result of the next. The tail-recursive variant appears as a single call
whose loop iterations update the accumulator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.logWriter(cmd)
			if err != nil {
				return err
			}
			defer l.Cleanup()
			logger := l.Logger("dot: ")

			calc, err := opts.calculator()
			if err != nil {
				return err
			}
			variants, err := parseVariants(variant)
			if err != nil {
				return err
			}
			var frames []*factorial.Frame
			for _, v := range variants {
				f, err := calc.Trace(v, demoInput)
				if err != nil {
					return err
				}
				logger.Printf("Traced %s: %s, max stack depth %d", v, f, f.MaxDepth())
				frames = append(frames, f)
			}
			graph, err := dot.Graph(frames...)
			if err != nil {
				return errors.Wrap(err, "dot")
			}

			if outfile == "" {
				_, err = cmd.OutOrStdout().Write([]byte(graph))
				return err
			}
			if err := ioutil.WriteFile(outfile, []byte(graph), 0644); err != nil {
				return err
			}
			logger.Printf("DOT graph written to %s", outfile)
			return nil
		},
	}
	dotCmd.Flags().StringVar(&outfile, "output", "", "output DOT file (default is stdout)")
	dotCmd.Flags().StringVar(&variant, "variant", "both", "variant to draw: naive, tailrec or both")
	return dotCmd
}

// parseVariants returns the variants named by s, tail-recursive first for
// "both" to match the demo output order.
func parseVariants(s string) ([]factorial.Variant, error) {
	if s == "both" {
		return []factorial.Variant{factorial.TailRecVariant, factorial.NaiveVariant}, nil
	}
	v, err := factorial.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []factorial.Variant{v}, nil
}
