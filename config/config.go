package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvbfm/bfm"
	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
)

// Config is a decoded simulation description.
type Config struct {
	// Seed makes the run reproducible; nil draws a random seed.
	Seed      *uint64
	MaxDegree int
	Box       core.Box
	Bondset   BondsetConfig
	Features  []FeatureConfig
	Initial   InitialConfig
	Run       RunConfig
	Output    OutputConfig
}

// BondsetConfig describes the bond-vector alphabet.
type BondsetConfig struct {
	// Classic starts from the 108 classic vectors.
	Classic bool
	// Strong makes the bondset feature reject alphabets that allow
	// excluded-volume violations.
	Strong bool
	// Vectors are added after the classic set.
	Vectors []bondvec.Entry
}

// FeatureConfig is one feature block: its name and raw parameters.
type FeatureConfig struct {
	Name   string
	Params map[string]cty.Value
}

// ChainSpec asks for Count linear chains of Length particles.
type ChainSpec struct {
	Count, Length int
}

// StarSpec asks for one star of Arms arms of ArmLength particles.
type StarSpec struct {
	Arms, ArmLength int
}

// InitialConfig lists the molecules grown before the run: chains first,
// then stars, then solvent blocks.
type InitialConfig struct {
	Chains      []ChainSpec
	Stars       []StarSpec
	Solvent     []int
	MaxAttempts int
}

// Empty reports whether no molecule is requested.
func (ic InitialConfig) Empty() bool {
	return len(ic.Chains) == 0 && len(ic.Stars) == 0 && len(ic.Solvent) == 0
}

// RunConfig controls the sweep loop of the command.
type RunConfig struct {
	MCS       int
	SaveEvery int
}

// OutputConfig describes the trajectory file.
type OutputConfig struct {
	Path    string
	Mode    bfm.Mode
	Comment string
}

// hcl schema

type hclFile struct {
	Seed      *uint64       `hcl:"seed,optional"`
	MaxDegree *int          `hcl:"max_degree,optional"`
	Box       hclBox        `hcl:"box,block"`
	Bondset   *hclBondset   `hcl:"bondset,block"`
	Features  []*hclFeature `hcl:"feature,block"`
	Initial   *hclInitial   `hcl:"initial,block"`
	Run       *hclRun       `hcl:"run,block"`
	Output    *hclOutput    `hcl:"output,block"`
}

type hclBox struct {
	X         int   `hcl:"x"`
	Y         int   `hcl:"y"`
	Z         int   `hcl:"z"`
	PeriodicX *bool `hcl:"periodic_x,optional"`
	PeriodicY *bool `hcl:"periodic_y,optional"`
	PeriodicZ *bool `hcl:"periodic_z,optional"`
}

type hclBondset struct {
	Classic *bool        `hcl:"classic,optional"`
	Strong  bool         `hcl:"strong,optional"`
	Vectors []*hclVector `hcl:"vector,block"`
}

type hclVector struct {
	X  int `hcl:"x"`
	Y  int `hcl:"y"`
	Z  int `hcl:"z"`
	ID int `hcl:"id"`
}

type hclFeature struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type hclInitial struct {
	MaxAttempts *int          `hcl:"max_attempts,optional"`
	Chains      []*hclChains  `hcl:"chains,block"`
	Stars       []*hclStar    `hcl:"star,block"`
	Solvent     []*hclSolvent `hcl:"solvent,block"`
}

type hclChains struct {
	Count  int `hcl:"count"`
	Length int `hcl:"length"`
}

type hclStar struct {
	Arms      int `hcl:"arms"`
	ArmLength int `hcl:"arm_length"`
}

type hclSolvent struct {
	Count int `hcl:"count"`
}

type hclRun struct {
	MCS       int `hcl:"mcs"`
	SaveEvery int `hcl:"save_every,optional"`
}

type hclOutput struct {
	Path    string `hcl:"path"`
	Mode    string `hcl:"mode,optional"`
	Comment string `hcl:"comment,optional"`
}

// Load parses the HCL file at path and applies the environment overrides.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w: %w", path, ErrSyntax, diags)
	}
	cfg, err := decode(file, path)
	if err != nil {
		return nil, err
	}
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(env)

	return cfg, nil
}

// Parse decodes HCL source without consulting the environment. filename is
// used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w: %w", filename, ErrSyntax, diags)
	}

	return decode(file, filename)
}

// decode maps the schema onto Config and validates every value.
func decode(file *hcl.File, filename string) (*Config, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w: %w", filename, ErrSyntax, diags)
	}

	cfg := &Config{
		Seed:      raw.Seed,
		MaxDegree: core.DefaultMaxDegree,
		Box: core.Box{
			X: raw.Box.X, Y: raw.Box.Y, Z: raw.Box.Z,
			PeriodicX: boolOr(raw.Box.PeriodicX, true),
			PeriodicY: boolOr(raw.Box.PeriodicY, true),
			PeriodicZ: boolOr(raw.Box.PeriodicZ, true),
		},
		Bondset: BondsetConfig{Classic: true},
		Output:  OutputConfig{Mode: bfm.Append},
	}
	if err := cfg.Box.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: box: %w: %w", filename, ErrParameter, err)
	}
	if raw.MaxDegree != nil {
		if *raw.MaxDegree < 0 || *raw.MaxDegree > core.MaxDegreeLimit {
			return nil, fmt.Errorf("config: %s: max_degree %d outside [0,%d]: %w",
				filename, *raw.MaxDegree, core.MaxDegreeLimit, ErrParameter)
		}
		cfg.MaxDegree = *raw.MaxDegree
	}

	if b := raw.Bondset; b != nil {
		cfg.Bondset.Classic = boolOr(b.Classic, true)
		cfg.Bondset.Strong = b.Strong
		for _, v := range b.Vectors {
			if v.ID < 0 || v.ID > 255 {
				return nil, fmt.Errorf("config: %s: bond vector (%d,%d,%d) id %d outside [0,255]: %w",
					filename, v.X, v.Y, v.Z, v.ID, ErrParameter)
			}
			cfg.Bondset.Vectors = append(cfg.Bondset.Vectors, bondvec.Entry{
				Vector: core.V(v.X, v.Y, v.Z), Identifier: byte(v.ID),
			})
		}
	}
	if _, err := cfg.Bondset.NewSet(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}

	for _, f := range raw.Features {
		attrs, diags := f.Remain.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("config: %s: feature %q: %w: %w", filename, f.Name, ErrSyntax, diags)
		}
		params := make(map[string]cty.Value, len(attrs))
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("config: %s: feature %q: %s: %w: %w", filename, f.Name, name, ErrSyntax, diags)
			}
			params[name] = val
		}
		cfg.Features = append(cfg.Features, FeatureConfig{Name: f.Name, Params: params})
	}
	// instantiate once so that bad names and parameters surface at load time
	if _, err := cfg.NewFeatures(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}

	if in := raw.Initial; in != nil {
		if in.MaxAttempts != nil {
			if *in.MaxAttempts < 1 {
				return nil, fmt.Errorf("config: %s: max_attempts %d: %w", filename, *in.MaxAttempts, ErrParameter)
			}
			cfg.Initial.MaxAttempts = *in.MaxAttempts
		}
		for _, c := range in.Chains {
			cfg.Initial.Chains = append(cfg.Initial.Chains, ChainSpec{Count: c.Count, Length: c.Length})
		}
		for _, s := range in.Stars {
			cfg.Initial.Stars = append(cfg.Initial.Stars, StarSpec{Arms: s.Arms, ArmLength: s.ArmLength})
		}
		for _, s := range in.Solvent {
			cfg.Initial.Solvent = append(cfg.Initial.Solvent, s.Count)
		}
	}

	if r := raw.Run; r != nil {
		if r.MCS < 0 || r.SaveEvery < 0 {
			return nil, fmt.Errorf("config: %s: run mcs=%d save_every=%d: %w", filename, r.MCS, r.SaveEvery, ErrParameter)
		}
		cfg.Run = RunConfig{MCS: r.MCS, SaveEvery: r.SaveEvery}
	}

	if o := raw.Output; o != nil {
		mode, err := bfm.ParseMode(o.Mode)
		if err != nil {
			return nil, fmt.Errorf("config: %s: output: %w: %w", filename, ErrParameter, err)
		}
		cfg.Output = OutputConfig{Path: o.Path, Mode: mode, Comment: o.Comment}
	}

	return cfg, nil
}

// NewSet builds the bond-vector alphabet with its lookup table.
func (b BondsetConfig) NewSet() (*bondvec.Set, error) {
	set := bondvec.New()
	if b.Classic {
		set = bondvec.Classic()
	}
	for _, e := range b.Vectors {
		if err := set.AddBond(e.Vector, e.Identifier); err != nil {
			return nil, fmt.Errorf("bondset: %w", err)
		}
	}
	set.UpdateLookupTable()

	return set, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
