// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session construction, ownership of shared state, Synchronize and the
// trial cycle (Check -> Metropolis -> Apply).
// Policy:
//   - The session exclusively owns Molecules, Box, Bonds and the Lattice.
//   - Trials before a successful Synchronize fail with ErrNotSynchronized.
//   - A rejected move leaves every structure untouched.

package feature

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/lattice"
)

// Occupant is the lattice cell type: 0 is empty, otherwise particle index+1.
type Occupant = uint32

// Stats counts trials since the session was created.
type Stats struct {
	Attempted uint64
	Accepted  uint64
}

// Rejected returns Attempted - Accepted.
func (st Stats) Rejected() uint64 { return st.Attempted - st.Accepted }

// AcceptanceRate returns Accepted/Attempted, or 0 without trials.
func (st Stats) AcceptanceRate() float64 {
	if st.Attempted == 0 {
		return 0
	}
	return float64(st.Accepted) / float64(st.Attempted)
}

// Session is one simulation: shared state plus the composed features.
type Session struct {
	mol   *core.Molecules
	box   core.Box
	bonds *bondvec.Set
	lat   *lattice.Lattice[Occupant]

	comp   *Composition
	rng    *rand.Rand
	log    *slog.Logger
	synced bool
	stats  Stats
}

// Option configures a Session before creation.
type Option func(*sessionConfig)

type sessionConfig struct {
	mol      *core.Molecules
	bonds    *bondvec.Set
	features []Feature
	rng      *rand.Rand
	log      *slog.Logger
}

// WithMolecules installs an existing bonded graph instead of an empty one.
func WithMolecules(m *core.Molecules) Option {
	if m == nil {
		panic("feature: WithMolecules(nil)")
	}
	return func(c *sessionConfig) { c.mol = m }
}

// WithBondSet installs the bond-vector alphabet; the default is bondvec.Classic().
func WithBondSet(b *bondvec.Set) Option {
	if b == nil {
		panic("feature: WithBondSet(nil)")
	}
	return func(c *sessionConfig) { c.bonds = b }
}

// WithFeatures appends features to the composition.
func WithFeatures(fs ...Feature) Option {
	return func(c *sessionConfig) { c.features = append(c.features, fs...) }
}

// WithSeed seeds a PCG generator for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(c *sessionConfig) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRand installs an explicit random source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("feature: WithRand(nil)")
	}
	return func(c *sessionConfig) { c.rng = r }
}

// WithLogger installs a structured logger; the default discards output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("feature: WithLogger(nil)")
	}
	return func(c *sessionConfig) { c.log = l }
}

// NewSession validates box and composes the features. The molecules feature
// is inserted first when the caller did not provide it.
func NewSession(box core.Box, opts ...Option) (*Session, error) {
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.mol == nil {
		cfg.mol = core.NewMolecules()
	}
	if cfg.bonds == nil {
		cfg.bonds = bondvec.Classic()
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.DiscardHandler)
	}

	features := cfg.features
	if !hasFeature(features, NameMolecules) {
		features = append([]Feature{NewMoleculesFeature()}, features...)
	}
	comp, err := Compose(features...)
	if err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}

	return &Session{
		mol:   cfg.mol,
		box:   box,
		bonds: cfg.bonds,
		lat:   lattice.New[Occupant](),
		comp:  comp,
		rng:   cfg.rng,
		log:   cfg.log,
	}, nil
}

func hasFeature(fs []Feature, name string) bool {
	for _, f := range fs {
		if f != nil && f.Name() == name {
			return true
		}
	}
	return false
}

// Molecules returns the bonded graph owned by the session.
func (s *Session) Molecules() *core.Molecules { return s.mol }

// Box returns the simulation box.
func (s *Session) Box() core.Box { return s.box }

// Bonds returns the bond-vector alphabet.
func (s *Session) Bonds() *bondvec.Set { return s.bonds }

// Lattice returns the occupancy lattice. It is sized by Synchronize when an
// occupancy feature is composed.
func (s *Session) Lattice() *lattice.Lattice[Occupant] { return s.lat }

// Rand returns the session random source.
func (s *Session) Rand() *rand.Rand { return s.rng }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.log }

// Composition returns the resolved feature order.
func (s *Session) Composition() *Composition { return s.comp }

// Stats returns the trial counters.
func (s *Session) Stats() Stats { return s.stats }

// Synchronized reports whether derived state matches the bonded graph.
func (s *Session) Synchronized() bool { return s.synced }

// SetBox replaces the box. Derived state is stale until the next Synchronize.
func (s *Session) SetBox(box core.Box) error {
	if err := box.Validate(); err != nil {
		return fmt.Errorf("SetBox: %w", err)
	}
	s.box = box
	s.synced = false

	return nil
}

// Invalidate marks derived state stale after bulk edits of the bonded graph.
func (s *Session) Invalidate() { s.synced = false }

// Synchronize rebuilds every feature's derived state in dependency order.
// The first failing feature aborts synchronization; its error wraps
// core.ErrConsistency (or the taxonomy error it detected).
func (s *Session) Synchronize() error {
	s.synced = false
	for _, f := range s.comp.order {
		if err := f.Synchronize(s); err != nil {
			return fmt.Errorf("Synchronize: feature %s: %w", f.Name(), err)
		}
	}
	s.synced = true
	s.log.Debug("session synchronized",
		"particles", s.mol.Len(),
		"edges", s.mol.EdgeCount(),
		"features", s.comp.Names(),
	)

	return nil
}

// Check runs CheckMove of every feature in order, starting from probability 1.
// It reports false at the first veto.
func (s *Session) Check(m Move) bool {
	m.ResetProbability()
	for _, f := range s.comp.order {
		if !f.CheckMove(s, m) {
			return false
		}
	}

	return true
}

// Apply runs ApplyMove of every feature in order. It must only be called for
// a move that passed Check against the current state.
func (s *Session) Apply(m Move) error {
	for _, f := range s.comp.order {
		if err := f.ApplyMove(s, m); err != nil {
			s.synced = false
			return fmt.Errorf("Apply: feature %s: %w", f.Name(), err)
		}
	}

	return nil
}

// TryMove runs one full trial: Check, Metropolis acceptance and Apply.
// It returns whether the move was committed.
func (s *Session) TryMove(m Move) (bool, error) {
	if !s.synced {
		return false, ErrNotSynchronized
	}
	s.stats.Attempted++
	if !s.Check(m) {
		return false, nil
	}
	if !s.metropolis(m.Probability()) {
		return false, nil
	}
	if err := s.Apply(m); err != nil {
		return false, err
	}
	s.stats.Accepted++

	return true, nil
}

// metropolis accepts with probability min(1,p) against u drawn from (0,1].
func (s *Session) metropolis(p float64) bool {
	if p >= 1 {
		return true
	}
	u := 1 - s.rng.Float64()

	return p >= u
}

// Sweep performs mcs Monte-Carlo steps of random local moves. One step is
// Len() trials; the age advances by one per step.
func (s *Session) Sweep(mcs int) error {
	if !s.synced {
		return ErrNotSynchronized
	}
	var move LocalMove
	n := s.mol.Len()
	for step := 0; step < mcs; step++ {
		for t := 0; t < n; t++ {
			if err := move.Init(s); err != nil {
				return err
			}
			if _, err := s.TryMove(&move); err != nil {
				return err
			}
		}
		s.mol.SetAge(s.mol.Age() + 1)
	}

	return nil
}
