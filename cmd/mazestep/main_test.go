package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Frontier(t *testing.T) {
	var out bytes.Buffer
	env := filepath.Join(t.TempDir(), "none.env")
	err := run([]string{"-env", env, "-rows", "9", "-cols", "11", "-seed", "5", "-frames", "2", "-metrics"}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "generated 9x11 maze")
	assert.Contains(t, s, "components 1, perfect true")
	assert.Contains(t, s, "frontier: solved")
	assert.Contains(t, s, "reveal 2/")
	assert.Contains(t, s, "# TYPE mazestep_steps_total counter")
}

func TestRun_WallFollowerFrames(t *testing.T) {
	var out bytes.Buffer
	env := filepath.Join(t.TempDir(), "none.env")
	err := run([]string{"-env", env, "-rows", "7", "-cols", "7", "-seed", "2", "-solver", "wallfollower", "-frames", "3"}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "generation step 3")
	assert.Contains(t, s, "wall follower: solved")
}

func TestRun_InvalidDimension(t *testing.T) {
	env := filepath.Join(t.TempDir(), "none.env")
	err := run([]string{"-env", env, "-rows", "2"}, &bytes.Buffer{})
	assert.Error(t, err)
}
