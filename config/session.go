// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Turn a Config into the runtime objects: session, initial molecules,
// trajectory writer.

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvbfm/bfm"
	"github.com/katalvlaran/lvbfm/builder"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// NewSession creates an empty session with the configured box, alphabet,
// maximum degree, features and seed. It is not synchronized yet.
func (c *Config) NewSession(log *slog.Logger) (*feature.Session, error) {
	bonds, err := c.Bondset.NewSet()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	features, err := c.NewFeatures()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.MaxDegree < 0 || c.MaxDegree > core.MaxDegreeLimit {
		return nil, fmt.Errorf("config: max_degree %d: %w", c.MaxDegree, ErrParameter)
	}

	opts := []feature.Option{
		feature.WithMolecules(core.NewMolecules(core.WithMaxDegree(c.MaxDegree))),
		feature.WithBondSet(bonds),
		feature.WithFeatures(features...),
	}
	if c.Seed != nil {
		opts = append(opts, feature.WithSeed(*c.Seed))
	}
	if log != nil {
		opts = append(opts, feature.WithLogger(log))
	}
	s, err := feature.NewSession(c.Box, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s.Logger().Info("config: session created",
		"box", fmt.Sprintf("%dx%dx%d", c.Box.X, c.Box.Y, c.Box.Z),
		"features", s.Composition().Names(),
		"bond_vectors", bonds.Len(),
	)

	return s, nil
}

// Constructors returns the builder constructors of the initial block:
// chains, then stars, then solvent.
func (c *Config) Constructors() []builder.Constructor {
	var cons []builder.Constructor
	for _, ch := range c.Initial.Chains {
		cons = append(cons, builder.LinearChains(ch.Count, ch.Length))
	}
	for _, st := range c.Initial.Stars {
		cons = append(cons, builder.Star(st.Arms, st.ArmLength))
	}
	for _, n := range c.Initial.Solvent {
		cons = append(cons, builder.Solvent(n))
	}

	return cons
}

// Populate grows the initial molecules in s and leaves it synchronized.
func (c *Config) Populate(s *feature.Session) error {
	var opts []builder.Option
	if c.Initial.MaxAttempts > 0 {
		opts = append(opts, builder.WithMaxAttempts(c.Initial.MaxAttempts))
	}
	if err := builder.Build(s, opts, c.Constructors()...); err != nil {
		return fmt.Errorf("config: populate: %w", err)
	}

	return nil
}

// Create opens the configured trajectory file.
func (c *Config) Create(log *slog.Logger) (*bfm.Writer, error) {
	if c.Output.Path == "" {
		return nil, ErrNoOutput
	}
	var opts []bfm.Option
	if log != nil {
		opts = append(opts, bfm.WithLogger(log))
	}
	if c.Output.Comment != "" {
		opts = append(opts, bfm.WithComment(c.Output.Comment))
	}
	w, err := bfm.Create(c.Output.Path, c.Output.Mode, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return w, nil
}

// System bundles the session state for the trajectory writer.
func System(s *feature.Session) bfm.System {
	return bfm.System{Molecules: s.Molecules(), Box: s.Box(), Bonds: s.Bonds()}
}
