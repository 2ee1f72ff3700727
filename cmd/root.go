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
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nickng/fac/factorial"
	"github.com/nickng/fac/logwriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoInput is the fixed argument of the demo.
const demoInput = 5

// options are the settings shared by all commands, resolved through viper
// from flags, environment (FAC_*) and config file.
type options struct {
	v       *viper.Viper
	cfgFile string // Path to config file
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd creates the toplevel command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "fac",
		Short: "Naive vs. tail-recursive factorial",
		Long: `fac computes 5! with a tail-recursive (accumulator) factorial and
with a naive recursive factorial, and prints both results.

This is the toplevel command.
Use "fac dot" to draw the call structure of each variant and "fac shape" to
check the stack shape of the implementation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.fac.yaml)")
	flags.String("log", "", "path to log file (default is stderr)")
	flags.Bool("no-logging", false, "disable logging")
	flags.Bool("no-colour", false, "disable colour output")
	flags.String("overflow", "wrap", "int32 overflow policy: wrap or fail")
	for _, key := range []string{"log", "no-logging", "no-colour", "overflow"} {
		if err := opts.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newDotCmd(opts), newShapeCmd(opts))
	return root
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (o *options) initConfig(cmd *cobra.Command) error {
	if o.cfgFile != "" { // enable ability to specify config file via flag
		o.v.SetConfigFile(o.cfgFile)
	} else {
		o.v.SetConfigName(".fac") // name of config file (without extension)
		o.v.AddConfigPath("$HOME") // adding home directory as first search path
	}
	o.v.SetEnvPrefix("fac")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv() // read in environment variables that match

	if err := o.v.ReadInConfig(); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", o.v.ConfigFileUsed())
	} else if o.cfgFile != "" {
		return errors.Wrap(err, "read config")
	}
	return nil
}

// calculator returns a Calculator with the configured overflow policy.
func (o *options) calculator() (factorial.Calculator, error) {
	p, err := factorial.ParsePolicy(o.v.GetString("overflow"))
	if err != nil {
		return factorial.Calculator{}, err
	}
	return factorial.Calculator{Overflow: p}, nil
}

// logWriter creates the log writer; logs without a log file go to the
// command's stderr.
func (o *options) logWriter(cmd *cobra.Command) (*logwriter.Writer, error) {
	l := logwriter.New(cmd.ErrOrStderr(), o.v.GetString("log"), !o.v.GetBool("no-logging"), !o.v.GetBool("no-colour"))
	if err := l.Create(); err != nil {
		return nil, err
	}
	return l, nil
}

func runDemo(cmd *cobra.Command, opts *options) error {
	l, err := opts.logWriter(cmd)
	if err != nil {
		return err
	}
	defer l.Cleanup()
	logger := l.Logger("fac: ")

	calc, err := opts.calculator()
	if err != nil {
		return err
	}
	logger.Printf("Overflow policy: %s", calc.Overflow)
	return demo(cmd.OutOrStdout(), logger, calc)
}

// demo prints the tail-recursive then the naive result for demoInput.
// Both lines use the same "fac(n) = " label.
func demo(w io.Writer, logger *log.Logger, calc factorial.Calculator) error {
	tr, err := calc.TailRec(demoInput)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fac(%d) = %d\n", demoInput, tr)

	naive, err := calc.Naive(demoInput)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fac(%d) = %d\n", demoInput, naive)

	if tr == naive {
		logger.Println(color.GreenString("✓ tail-recursive and naive results agree"))
	} else {
		logger.Println(color.RedString("❌ tail-recursive (%d) and naive (%d) results differ", tr, naive))
	}
	return nil
}
