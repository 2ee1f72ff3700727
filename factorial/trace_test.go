package factorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests that the naive trace is a chain of n+1 nested frames.
func TestTraceNaive(t *testing.T) {
	f, err := Calculator{}.Trace(NaiveVariant, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, f.MaxDepth())
	assert.Equal(t, "fac(5) = 120", f.String())

	want := []int32{120, 24, 6, 2, 1, 1}
	for i, n := 0, f; n != nil; i++ {
		require.Less(t, i, len(want))
		assert.Equal(t, int32(5-i), n.N)
		assert.Equal(t, want[i], n.Result)
		assert.Equal(t, i+1, n.Depth)
		if len(n.Children) == 0 {
			assert.Equal(t, int32(0), n.N, "chain must end at the base case")
			break
		}
		require.Len(t, n.Children, 1)
		n = n.Children[0]
	}
}

// Tests that the tail-recursive trace stays in a single frame.
func TestTraceTailRec(t *testing.T) {
	f, err := Calculator{}.Trace(TailRecVariant, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, f.MaxDepth())
	assert.Equal(t, "fac_tr(5) = 120", f.String())
	require.Len(t, f.Children, 5)

	accs := []int32{5, 20, 60, 120, 120}
	for i, it := range f.Children {
		assert.True(t, it.Iteration)
		assert.Equal(t, int32(5-i), it.N)
		assert.Equal(t, accs[i], it.Acc)
		assert.Empty(t, it.Children)
	}
	assert.Equal(t, "n=5 acc=5", f.Children[0].String())
}

func TestTraceZero(t *testing.T) {
	f, err := Calculator{}.Trace(TailRecVariant, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.Result)
	assert.Empty(t, f.Children)

	f, err = Calculator{}.Trace(NaiveVariant, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.Result)
	assert.Equal(t, 1, f.MaxDepth())
}

func TestTraceErrors(t *testing.T) {
	_, err := Calculator{}.Trace(NaiveVariant, -2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Calculator{}.Trace(TailRecVariant, -2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Calculator{Overflow: Fail}.Trace(NaiveVariant, 20)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Calculator{Overflow: Fail}.Trace(TailRecVariant, 20)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Calculator{}.Trace(Variant(7), 1)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("naive")
	require.NoError(t, err)
	assert.Equal(t, NaiveVariant, v)
	v, err = ParseVariant("TailRec")
	require.NoError(t, err)
	assert.Equal(t, TailRecVariant, v)
	_, err = ParseVariant("both")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, "tailrec", TailRecVariant.String())
}
