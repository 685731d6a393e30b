package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.String())
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.Full(), info.Platform)
	assert.Contains(t, info.Full(), "("+Commit+")")
}

func TestSatisfies(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "0.4.1"
	ok, err := Satisfies(">= 0.3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("^1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	Version = "dev"
	ok, err = Satisfies("^9.0")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Satisfies("not a constraint")
	assert.Error(t, err)
}
