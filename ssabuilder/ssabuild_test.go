package ssabuilder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigNoPatterns(t *testing.T) {
	_, err := NewConfig(nil)
	assert.ErrorIs(t, err, ErrNoPatterns)
}

func TestBuild(t *testing.T) {
	conf, err := NewConfig([]string{"../factorial"})
	require.NoError(t, err)
	var buf bytes.Buffer
	conf.BuildLog = &buf

	info, err := conf.Build()
	require.NoError(t, err)
	require.Len(t, info.Pkgs, 1)
	require.NotNil(t, info.Pkgs[0])
	assert.Equal(t, "github.com/nickng/fac/factorial", info.Pkgs[0].Pkg.Path())
	assert.Contains(t, buf.String(), "Built SSA for github.com/nickng/fac/factorial")

	names := map[string]bool{}
	for _, fn := range info.Functions() {
		names[fn.Name()] = true
		assert.Equal(t, info.Pkgs[0], fn.Package())
		assert.NotEmpty(t, info.DecodePos(fn.Pos()).Filename, fn.String())
	}
	for _, name := range []string{"Naive", "naive", "TailRec", "TailRecLoop", "mul", "ParsePolicy", "Trace"} {
		assert.True(t, names[name], "missing function %s", name)
	}

	var ir bytes.Buffer
	n, err := info.WriteTo(&ir)
	require.NoError(t, err)
	assert.Equal(t, int64(ir.Len()), n)
	assert.Contains(t, ir.String(), "# Package: github.com/nickng/fac/factorial")
	assert.Contains(t, ir.String(), ") naive(n int32) (int32, error):")
}

func TestBuildMissingPackage(t *testing.T) {
	conf, err := NewConfig([]string{"./does-not-exist"})
	require.NoError(t, err)
	_, err = conf.Build()
	assert.Error(t, err)
}
