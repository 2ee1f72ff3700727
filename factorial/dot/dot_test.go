package dot_test

import (
	"strings"
	"testing"

	"github.com/nickng/fac/factorial"
	"github.com/nickng/fac/factorial/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trace(t *testing.T, v factorial.Variant, n int32) *factorial.Frame {
	t.Helper()
	f, err := factorial.Calculator{}.Trace(v, n)
	require.NoError(t, err)
	return f
}

func TestGraphBoth(t *testing.T) {
	out, err := dot.Graph(trace(t, factorial.TailRecVariant, 5), trace(t, factorial.NaiveVariant, 5))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph G"), out)
	assert.Contains(t, out, "cluster_tailrec_0")
	assert.Contains(t, out, "cluster_naive_1")
	assert.Contains(t, out, `"fac(5) = 120"`)
	assert.Contains(t, out, `"fac(0) = 1"`)
	assert.Contains(t, out, `"fac_tr(5) = 120"`)
	assert.Contains(t, out, `"n=2 acc=120"`)
	assert.Contains(t, out, `"5 * _"`)
	assert.Contains(t, out, `"acc = 4 * 5"`)
	assert.Contains(t, out, `"naive (max depth 6)"`)
	assert.Contains(t, out, `"tailrec (max depth 1)"`)
}

// Tests that a naive trace of n has n edges, each from n to n-1.
func TestGraphNaiveEdges(t *testing.T) {
	out, err := dot.Graph(trace(t, factorial.NaiveVariant, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "->"))
	assert.Contains(t, out, "naive0->naive1")
	assert.Contains(t, out, "naive2->naive3")
}

// Tests that loop iterations form a chain rather than a fan-out.
func TestGraphTailRecChain(t *testing.T) {
	out, err := dot.Graph(trace(t, factorial.TailRecVariant, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "->"))
	assert.Contains(t, out, "tailrec0->tailrec1")
	assert.Contains(t, out, "tailrec1->tailrec2")
	assert.Contains(t, out, "tailrec2->tailrec3")
	assert.NotContains(t, out, "tailrec0->tailrec2")
}

func TestGraphDeterministic(t *testing.T) {
	a, err := dot.Graph(trace(t, factorial.NaiveVariant, 4))
	require.NoError(t, err)
	b, err := dot.Graph(trace(t, factorial.NaiveVariant, 4))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGraphEmpty(t *testing.T) {
	out, err := dot.Graph()
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G")
	assert.NotContains(t, out, "cluster_")
}
