package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbfm/bfm"
	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/config"
	"github.com/katalvlaran/lvbfm/core"
)

const full = `
seed       = 42
max_degree = 4

box {
  x = 32
  y = 32
  z = 16
  periodic_z = false
}

bondset {
  strong = true
  vector {
    x  = 4
    y  = 0
    z  = 0
    id = 200
  }
}

feature "bondset" {}
feature "excluded_volume" {}
feature "box" { extent = 2 }
feature "contact" { epsilon = -0.4 }
feature "external_force" { fz = 0.25 }

initial {
  max_attempts = 50
  chains { count = 3  length = 10 }
  star { arms = 3  arm_length = 4 }
  solvent { count = 20 }
}

run {
  mcs        = 1000
  save_every = 100
}

output {
  path    = "run.bfm"
  mode    = "new"
  comment = "melt"
}
`

func TestParseFull(t *testing.T) {
	cfg, err := config.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, 4, cfg.MaxDegree)
	assert.Equal(t, core.Box{X: 32, Y: 32, Z: 16, PeriodicX: true, PeriodicY: true}, cfg.Box)

	assert.True(t, cfg.Bondset.Classic)
	assert.True(t, cfg.Bondset.Strong)
	assert.Equal(t, []bondvec.Entry{{Vector: core.V(4, 0, 0), Identifier: 200}}, cfg.Bondset.Vectors)

	var names []string
	for _, f := range cfg.Features {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"bondset", "excluded_volume", "box", "contact", "external_force"}, names)

	assert.Equal(t, config.InitialConfig{
		Chains:      []config.ChainSpec{{Count: 3, Length: 10}},
		Stars:       []config.StarSpec{{Arms: 3, ArmLength: 4}},
		Solvent:     []int{20},
		MaxAttempts: 50,
	}, cfg.Initial)
	assert.Equal(t, config.RunConfig{MCS: 1000, SaveEvery: 100}, cfg.Run)
	assert.Equal(t, config.OutputConfig{Path: "run.bfm", Mode: bfm.New, Comment: "melt"}, cfg.Output)
	assert.Len(t, cfg.Constructors(), 3)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("box {\n x = 8\n y = 8\n z = 8\n}\n"), "min.hcl")
	require.NoError(t, err)

	assert.Nil(t, cfg.Seed)
	assert.Equal(t, core.DefaultMaxDegree, cfg.MaxDegree)
	assert.Equal(t, core.NewBox(8, 8, 8), cfg.Box)
	assert.True(t, cfg.Bondset.Classic)
	assert.Empty(t, cfg.Features)
	assert.True(t, cfg.Initial.Empty())
	assert.Equal(t, bfm.Append, cfg.Output.Mode)
	assert.Empty(t, cfg.Output.Path)

	set, err := cfg.Bondset.NewSet()
	require.NoError(t, err)
	assert.Equal(t, 108, set.Len())
}

func TestParseErrors(t *testing.T) {
	const box = "box {\n x = 8\n y = 8\n z = 8\n}\n"
	cases := []struct {
		name, src string
		want      error
		contains  string
	}{
		{"syntax", "box {", config.ErrSyntax, "parse"},
		{"missing box", "seed = 1\n", config.ErrSyntax, "decode"},
		{"empty box", "box {\n x = 0\n y = 8\n z = 8\n}\n", core.ErrRange, "box"},
		{"max degree", box + "max_degree = 9\n", config.ErrParameter, "max_degree 9"},
		{"unknown feature", box + `feature "gravity" {}` + "\n", config.ErrUnknownFeature, "gravity"},
		{"unknown parameter", box + `feature "excluded_volume" { foo = 1 }` + "\n", config.ErrParameter, "unknown parameters [foo]"},
		{"missing epsilon", box + `feature "contact" {}` + "\n", config.ErrParameter, `missing "epsilon"`},
		{"epsilon type", box + `feature "contact" { epsilon = "deep" }` + "\n", config.ErrParameter, "epsilon"},
		{"extent", box + `feature "box" { extent = 0 }` + "\n", config.ErrParameter, "extent 0"},
		{"fractional extent", box + `feature "box" { extent = 1.5 }` + "\n", config.ErrParameter, "extent"},
		{"vector id", box + "bondset {\n vector {\n x = 4\n y = 0\n z = 0\n id = 300\n }\n}\n", config.ErrParameter, "id 300"},
		{"vector duplicate", box + "bondset {\n vector {\n x = 2\n y = 0\n z = 0\n id = 200\n }\n}\n", core.ErrDuplicate, "bondset"},
		{"mode", box + "output {\n path = \"x\"\n mode = \"sometimes\"\n}\n", bfm.ErrMode, "output"},
		{"run", box + "run {\n mcs = -1\n}\n", config.ErrParameter, "mcs=-1"},
		{"attempts", box + "initial {\n max_attempts = 0\n}\n", config.ErrParameter, "max_attempts 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), "bad.hcl")
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LVBFM_SEED", "7")
	t.Setenv("LVBFM_OUTPUT", "other.bfm")
	t.Setenv("LVBFM_LOG_FORMAT", "json")

	e, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", e.LogLevel)
	assert.Equal(t, "json", e.LogFormat)

	cfg, err := config.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)
	cfg.ApplyEnv(e)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, "other.bfm", cfg.Output.Path)

	// unset values leave the file alone
	cfg, err = config.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)
	cfg.ApplyEnv(config.Env{})
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "run.bfm", cfg.Output.Path)
}

func TestEnvBadSeed(t *testing.T) {
	t.Setenv("LVBFM_SEED", "many")
	_, err := config.LoadEnv()
	assert.ErrorIs(t, err, config.ErrParameter)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o644))
	out := filepath.Join(dir, "traj.bfm")
	t.Setenv("LVBFM_OUTPUT", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, out, cfg.Output.Path)

	_, err = config.Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(t, err, config.ErrSyntax)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger(config.Env{LogLevel: "warn", LogFormat: "json"}, &buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	buf.Reset()
	config.NewLogger(config.Env{LogLevel: "bogus"}, &buf).Info("text line")
	assert.Contains(t, buf.String(), "msg=\"text line\"")
}

func TestFeatureNames(t *testing.T) {
	assert.Equal(t, []string{"bondset", "box", "contact", "excluded_volume", "external_force", "molecules"},
		config.FeatureNames())
}
