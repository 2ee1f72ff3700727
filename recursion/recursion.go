// Package recursion classifies the stack shape of functions from their SSA.
//
// A function is
//   - Recursive if it calls itself and does more work after the call returns
//     (e.g. n * f(n-1)), so every call keeps a frame alive
//   - TailRecursive if every self-call is returned as-is (the Go compiler does
//     not eliminate tail calls, so the stack still grows)
//   - Iterative if it does not call itself but contains a loop
//   - Straight otherwise
package recursion // import "github.com/nickng/fac/recursion"

import (
	"go/token"
	"io"
	"log"
	"sort"

	"github.com/fatih/color"
	"github.com/nickng/fac/ssabuilder"
	"golang.org/x/tools/go/ssa"
)

// Shape is the stack shape of a function.
type Shape int

const (
	Straight Shape = iota
	Iterative
	TailRecursive
	Recursive
)

func (s Shape) String() string {
	switch s {
	case Straight:
		return "straight-line"
	case Iterative:
		return "iterative"
	case TailRecursive:
		return "tail-recursive"
	case Recursive:
		return "recursive"
	}
	return "unknown"
}

// ConstantStack returns true if a function of this shape uses a fixed number
// of stack frames regardless of its input.
func (s Shape) ConstantStack() bool {
	return s == Straight || s == Iterative
}

// Report is the classification of a single function.
type Report struct {
	Func  string         // Function name relative to its package.
	Pos   token.Position // Declaration position.
	Shape Shape
}

// Analysis holds the state of a shape analysis.
type Analysis struct {
	info   *ssabuilder.SSAInfo
	logger *log.Logger
}

// Analyse classifies every source function of the initial packages in info
// and returns the reports sorted by function name. Details are logged to w.
func Analyse(info *ssabuilder.SSAInfo, w io.Writer) []Report {
	a := &Analysis{info: info, logger: log.New(w, "shape: ", 0)}
	var reports []Report
	for _, fn := range info.Functions() {
		reports = append(reports, a.Visit(fn))
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Func != reports[j].Func {
			return reports[i].Func < reports[j].Func
		}
		return reports[i].Pos.Filename < reports[j].Pos.Filename
	})
	return reports
}

// Visit classifies fn.
func (a *Analysis) Visit(fn *ssa.Function) Report {
	r := Report{Func: funcName(fn), Pos: a.info.DecodePos(fn.Pos())}
	a.logger.Printf("Visiting: %s", fn.String())

	selfCalls, tailCalls := 0, 0
	for _, blk := range fn.Blocks {
		for _, instr := range blk.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok || call.Call.StaticCallee() != fn {
				continue
			}
			selfCalls++
			if isTailCall(call) {
				tailCalls++
				a.logger.Println(color.YellowString(" tail call at %s", a.info.DecodePos(call.Pos())))
			} else {
				a.logger.Println(color.RedString(" pending work after call at %s", a.info.DecodePos(call.Pos())))
			}
		}
	}

	switch {
	case selfCalls > 0 && tailCalls == selfCalls:
		r.Shape = TailRecursive
	case selfCalls > 0:
		r.Shape = Recursive
	case hasLoop(fn):
		r.Shape = Iterative
	default:
		r.Shape = Straight
	}
	return r
}

// funcName returns the name of fn without its package path.
func funcName(fn *ssa.Function) string {
	if fn.Pkg != nil {
		return fn.RelString(fn.Pkg.Pkg)
	}
	return fn.String()
}

// isTailCall returns true if the value of call is returned immediately, with
// nothing but extracting its results in between.
func isTailCall(call *ssa.Call) bool {
	blk := call.Block()
	idx := -1
	for i, instr := range blk.Instrs {
		if instr == call {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for _, instr := range blk.Instrs[idx+1:] {
		switch instr := instr.(type) {
		case *ssa.DebugRef:
		case *ssa.Extract:
			if instr.Tuple != call {
				return false
			}
		case *ssa.Return:
			return returnsCall(instr, call)
		default:
			return false
		}
	}
	return false
}

// returnsCall returns true if ret returns exactly the results of call.
func returnsCall(ret *ssa.Return, call *ssa.Call) bool {
	results := call.Call.Signature().Results()
	switch results.Len() {
	case 0:
		return len(ret.Results) == 0
	case 1:
		return len(ret.Results) == 1 && ret.Results[0] == ssa.Value(call)
	}
	if len(ret.Results) != results.Len() {
		return false
	}
	for i, v := range ret.Results {
		ext, ok := v.(*ssa.Extract)
		if !ok || ext.Tuple != call || ext.Index != i {
			return false
		}
	}
	return true
}

// hasLoop returns true if fn has a back edge, i.e. a block jumping to one of
// its dominators.
func hasLoop(fn *ssa.Function) bool {
	for _, blk := range fn.Blocks {
		for _, succ := range blk.Succs {
			if succ.Dominates(blk) {
				return true
			}
		}
	}
	return false
}
