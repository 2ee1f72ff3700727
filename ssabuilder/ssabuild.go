// Package ssabuilder provides a wrapper for building SSA IR from Go packages.
//
package ssabuilder // import "github.com/nickng/fac/ssabuilder"

import (
	"go/token"
	"io"
	"io/ioutil"
	"log"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

var (
	ErrNoPatterns = errors.New("no packages specified for analysis")
	ErrLoad       = errors.New("packages contain errors")
)

// loadMode loads syntax for the initial packages only; dependencies are
// type checked from export data.
const loadMode = packages.LoadSyntax

// Config holds the configuration for building SSA IR.
type Config struct {
	Dir      string    // Directory to resolve patterns in (default: cwd).
	Patterns []string  // (Initial) package patterns to load.
	BuildLog io.Writer // Build log.
	LogFlags int       // Flags for build log.
}

// SSAInfo is the SSA IR + metainfo built from a given Config.
type SSAInfo struct {
	BuildConf *Config // Build configuration (patterns, logs).

	FSet *token.FileSet // FileSet for parsed source files.
	Prog *ssa.Program   // SSA IR for whole program.
	Pkgs []*ssa.Package // SSA packages matching BuildConf.Patterns.

	Logger *log.Logger // Build logger.
}

// NewConfig creates a new default build configuration.
func NewConfig(patterns []string) (*Config, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	return &Config{
		Patterns: patterns,
		BuildLog: ioutil.Discard,
		LogFlags: log.LstdFlags,
	}, nil
}

// Build loads and type checks the packages, then constructs their SSA IR.
func (conf *Config) Build() (*SSAInfo, error) {
	buildLog := log.New(conf.BuildLog, "ssabuild: ", conf.LogFlags)

	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Dir: conf.Dir}, conf.Patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load")
	}
	var nerrs int
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			buildLog.Print(err)
			nerrs++
		}
	})
	if nerrs > 0 {
		return nil, errors.Wrapf(ErrLoad, "%d error(s) in %v", nerrs, conf.Patterns)
	}
	buildLog.Printf("Loaded and type checked %d package(s)", len(pkgs))

	prog, ssaPkgs := ssautil.Packages(pkgs, ssa.BuilderMode(0))
	for _, pkg := range ssaPkgs {
		if pkg != nil {
			pkg.Build()
			buildLog.Printf("Built SSA for %s", pkg.Pkg.Path())
		}
	}

	return &SSAInfo{
		BuildConf: conf,
		FSet:      prog.Fset,
		Prog:      prog,
		Pkgs:      ssaPkgs,
		Logger:    buildLog,
	}, nil
}

// DecodePos converts a token.Pos (offset) to an actual token.Position.
//
// This is just a shortcut to .FSet.Position.
func (info *SSAInfo) DecodePos(pos token.Pos) token.Position {
	return info.FSet.Position(pos)
}
