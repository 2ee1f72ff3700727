package ssabuilder

import (
	"io"
	"sort"

	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

type Funcs []*ssa.Function

func (f Funcs) Len() int { return len(f) }
func (f Funcs) Less(i, j int) bool {
	if f[i].Pos() != f[j].Pos() {
		return f[i].Pos() < f[j].Pos()
	}
	return f[i].String() < f[j].String()
}
func (f Funcs) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Functions returns the functions written in source of the initial packages,
// including methods and closures, ordered by position.
func (info *SSAInfo) Functions() []*ssa.Function {
	initial := make(map[*ssa.Package]bool)
	for _, pkg := range info.Pkgs {
		if pkg != nil {
			initial[pkg] = true
		}
	}
	var funcs Funcs
	for fn := range ssautil.AllFunctions(info.Prog) {
		if fn.Synthetic != "" || fn.Blocks == nil {
			continue
		}
		if pkg := fn.Package(); pkg != nil && initial[pkg] {
			funcs = append(funcs, fn)
		}
	}
	sort.Sort(funcs)
	return funcs
}

// WriteTo writes SSA IR of the initial packages' functions to w.
func (info *SSAInfo) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, fn := range info.Functions() {
		written, err := fn.WriteTo(w)
		n += written
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
