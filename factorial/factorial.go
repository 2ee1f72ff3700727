// Package factorial computes n! over int32 in two ways: a naive recursive
// definition, and an accumulator-passing variant that runs as a loop.
//
// Both variants reject negative n with ErrInvalidArgument. Integer overflow is
// governed by the Calculator's Policy: Wrap (the zero value) wraps with Go's
// two's complement int32 semantics, Fail returns ErrOverflow.
package factorial // import "github.com/nickng/fac/factorial"

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// MaxExact is the largest n whose factorial fits in an int32.
const MaxExact = 12

// A Policy decides what happens when a product leaves the int32 range.
type Policy int

const (
	// Wrap keeps the low 32 bits of the product.
	Wrap Policy = iota

	// Fail stops the computation with ErrOverflow.
	Fail
)

func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Fail:
		return "fail"
	}
	return "unknown"
}

// ParsePolicy converts a policy name ("wrap" or "fail") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return Wrap, nil
	case "fail":
		return Fail, nil
	}
	return Wrap, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}

// Calculator computes factorials under an overflow Policy.
// The zero value wraps on overflow.
type Calculator struct {
	Overflow Policy
}

// Naive returns n! by direct recursion, multiplying after each recursive call
// returns. Stack depth is n+1.
func (c Calculator) Naive(n int32) (int32, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "fac(%d)", n)
	}
	return c.naive(n)
}

func (c Calculator) naive(n int32) (int32, error) {
	if n == 0 {
		return 1, nil
	}
	r, err := c.naive(n - 1)
	if err != nil {
		return 0, err
	}
	return c.mul(n, r)
}

// TailRec returns n! by seeding the accumulator with 1.
func (c Calculator) TailRec(n int32) (int32, error) {
	return c.TailRecLoop(n, 1)
}

// TailRecLoop returns n! * acc. Each step multiplies the accumulator before
// moving on, so no work is pending and the loop runs in a single frame.
func (c Calculator) TailRecLoop(n, acc int32) (int32, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "fac_tr_loop(%d, %d)", n, acc)
	}
	var err error
	for ; n > 0; n-- {
		if acc, err = c.mul(n, acc); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// mul multiplies a and b under the calculator's policy.
func (c Calculator) mul(a, b int32) (int32, error) {
	p := int64(a) * int64(b)
	if c.Overflow == Fail && (p > math.MaxInt32 || p < math.MinInt32) {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return int32(p), nil
}

// Naive is Calculator{}.Naive.
func Naive(n int32) (int32, error) {
	return Calculator{}.Naive(n)
}

// TailRec is Calculator{}.TailRec.
func TailRec(n int32) (int32, error) {
	return Calculator{}.TailRec(n)
}

// TailRecLoop is Calculator{}.TailRecLoop.
func TailRecLoop(n, acc int32) (int32, error) {
	return Calculator{}.TailRecLoop(n, acc)
}
