package factorial

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Variant selects one of the two factorial implementations.
type Variant int

const (
	NaiveVariant Variant = iota
	TailRecVariant
)

func (v Variant) String() string {
	switch v {
	case NaiveVariant:
		return "naive"
	case TailRecVariant:
		return "tailrec"
	}
	return "unknown"
}

// ParseVariant converts "naive" or "tailrec" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return NaiveVariant, nil
	case "tailrec", "tail-recursive":
		return TailRecVariant, nil
	}
	return NaiveVariant, errors.Wrapf(ErrUnknownVariant, "%q", s)
}

// Frame is one step of a traced factorial computation.
//
// For NaiveVariant every Frame is a stack frame and Children holds the single
// recursive call it waits on. For TailRecVariant the root Frame is the
// fac_tr call and Children are the loop iterations, all at the root's Depth.
type Frame struct {
	Variant   Variant
	Iteration bool // Loop iteration of TailRecVariant.
	N         int32
	Acc       int32 // Accumulator after this iteration.
	Result    int32
	Depth     int // Stack depth, 1 for the outermost call.
	Children  []*Frame
}

func (f *Frame) String() string {
	switch {
	case f.Iteration:
		return fmt.Sprintf("n=%d acc=%d", f.N, f.Acc)
	case f.Variant == TailRecVariant:
		return fmt.Sprintf("fac_tr(%d) = %d", f.N, f.Result)
	}
	return fmt.Sprintf("fac(%d) = %d", f.N, f.Result)
}

// MaxDepth returns the deepest stack depth in the trace rooted at f.
func (f *Frame) MaxDepth() int {
	deepest := f.Depth
	for _, child := range f.Children {
		if d := child.MaxDepth(); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Trace computes n! with variant v and records each call or iteration.
func (c Calculator) Trace(v Variant, n int32) (*Frame, error) {
	switch v {
	case NaiveVariant:
		if n < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "fac(%d)", n)
		}
		return c.traceNaive(n, 1)
	case TailRecVariant:
		return c.traceTailRec(n)
	}
	return nil, errors.Wrapf(ErrUnknownVariant, "%d", int(v))
}

func (c Calculator) traceNaive(n int32, depth int) (*Frame, error) {
	f := &Frame{Variant: NaiveVariant, N: n, Depth: depth}
	if n == 0 {
		f.Result = 1
		return f, nil
	}
	child, err := c.traceNaive(n-1, depth+1)
	if err != nil {
		return nil, err
	}
	f.Children = []*Frame{child}
	if f.Result, err = c.mul(n, child.Result); err != nil {
		return nil, err
	}
	return f, nil
}

func (c Calculator) traceTailRec(n int32) (*Frame, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "fac_tr(%d)", n)
	}
	root := &Frame{Variant: TailRecVariant, N: n, Depth: 1}
	acc := int32(1)
	var err error
	for i := n; i > 0; i-- {
		if acc, err = c.mul(i, acc); err != nil {
			return nil, err
		}
		root.Children = append(root.Children, &Frame{
			Variant:   TailRecVariant,
			Iteration: true,
			N:         i,
			Acc:       acc,
			Result:    acc,
			Depth:     1,
		})
	}
	root.Result = acc
	return root, nil
}
