package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbfm/bfm"
)

const sim = `
seed = 9

box {
  x = 32
  y = 32
  z = 32
}

feature "bondset" {}
feature "excluded_volume" {}

initial {
  chains { count = 4  length = 12 }
}

run {
  mcs        = 10
  save_every = 4
}
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sim), 0o644))
	traj := filepath.Join(dir, "sim.bfm")
	t.Setenv("LVBFM_OUTPUT", traj)

	var out bytes.Buffer
	require.NoError(t, run([]string{path}, &out))
	assert.Contains(t, out.String(), "lvbfm: progress")

	r, err := bfm.Open(traj)
	require.NoError(t, err)
	defer r.Close()
	var ages []uint64
	require.NoError(t, r.ReadAll(func(_ int, sys bfm.System) error {
		ages = append(ages, sys.Molecules.Age())
		return nil
	}))
	// initial frame, then 4, 8 and the remaining 2 steps
	assert.Equal(t, []uint64{0, 4, 8, 10}, ages)
}

func TestRunFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sim), 0o644))
	t.Setenv("LVBFM_OUTPUT", "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-mcs", "0", path}, &out))
	assert.Contains(t, out.String(), "no output path")
	assert.NotContains(t, out.String(), "lvbfm: progress")
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, &out)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "Usage:"))

	err = run([]string{filepath.Join(t.TempDir(), "missing.hcl")}, &out)
	assert.Error(t, err)
}
