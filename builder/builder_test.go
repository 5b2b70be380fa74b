package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/builder"
	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// BuilderSuite grows configurations in a periodic 32^3 box with bond
// alphabet and excluded volume checks.
type BuilderSuite struct {
	suite.Suite
	sess *feature.Session
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) SetupTest() {
	s.sess = newSession(s.T(), core.NewBox(32, 32, 32), 1)
}

// newSession composes the bond alphabet and excluded volume features.
func newSession(t *testing.T, box core.Box, seed uint64, fs ...feature.Feature) *feature.Session {
	t.Helper()
	fs = append(fs, feature.NewBondsetFeature(), feature.NewExcludedVolumeFeature())
	sess, err := feature.NewSession(box, feature.WithFeatures(fs...), feature.WithSeed(seed))
	require.NoError(t, err)

	return sess
}

// requireValidBonds checks every edge against the alphabet.
func requireValidBonds(t *testing.T, sess *feature.Session) {
	t.Helper()
	mol := sess.Molecules()
	for _, e := range mol.Edges() {
		d := mol.At(e.B).Pos().Sub(mol.At(e.A).Pos())
		require.True(t, sess.Bonds().IsValid(d), "bond %d-%d vector %v", e.A, e.B, d)
	}
}

func (s *BuilderSuite) TestLinearChains() {
	s.Require().NoError(builder.Build(s.sess, nil, builder.LinearChains(3, 10)))

	mol := s.sess.Molecules()
	s.Equal(30, mol.Len())
	s.Equal(27, mol.EdgeCount())
	for c := 0; c < 3; c++ {
		for k := 0; k < 9; k++ {
			i := 10*c + k
			s.True(mol.AreConnected(i, i+1), "chain %d link %d", c, k)
		}
	}
	s.False(mol.AreConnected(9, 10))
	s.True(s.sess.Synchronized())
	requireValidBonds(s.T(), s.sess)

	// rebuilding derived state from scratch finds no overlap
	s.sess.Invalidate()
	s.NoError(s.sess.Synchronize())
	s.Equal(8*30, s.sess.Lattice().CountNonZero())
}

func (s *BuilderSuite) TestStar() {
	s.Require().NoError(builder.Build(s.sess, nil, builder.Star(4, 3)))

	mol := s.sess.Molecules()
	s.Equal(13, mol.Len())
	s.Equal(12, mol.EdgeCount())
	s.Equal(4, mol.At(0).Degree())
	for a := 0; a < 4; a++ {
		first := 1 + 3*a
		s.True(mol.AreConnected(0, first))
		s.True(mol.AreConnected(first, first+1))
		s.True(mol.AreConnected(first+1, first+2))
		s.Equal(1, mol.At(first+2).Degree())
	}
	requireValidBonds(s.T(), s.sess)
}

func (s *BuilderSuite) TestSolventAfterChains() {
	s.Require().NoError(builder.Build(s.sess, nil,
		builder.LinearChains(1, 4),
		builder.Solvent(5),
	))

	mol := s.sess.Molecules()
	s.Equal(9, mol.Len())
	s.Equal([]core.IndexRange{{First: 4, Last: 8}}, mol.CompressedRanges())
	for i := 4; i < 9; i++ {
		s.Zero(mol.At(i).Degree())
	}
	s.False(mol.IsCompressed(3))
}

func (s *BuilderSuite) TestSweepAfterBuild() {
	s.Require().NoError(builder.Build(s.sess, nil, builder.LinearChains(2, 8), builder.Solvent(10)))
	s.Require().NoError(s.sess.Sweep(20))
	s.Equal(uint64(20), s.sess.Molecules().Age())
	requireValidBonds(s.T(), s.sess)
	s.sess.Invalidate()
	s.NoError(s.sess.Synchronize())
}

func (s *BuilderSuite) TestConstructorErrors() {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"no chains", builder.LinearChains(0, 5), builder.ErrTooFewParticles},
		{"empty chain", builder.LinearChains(1, 0), builder.ErrTooFewParticles},
		{"no arms", builder.Star(0, 2), builder.ErrTooFewParticles},
		{"empty arm", builder.Star(3, 0), builder.ErrTooFewParticles},
		{"too many arms", builder.Star(core.DefaultMaxDegree+1, 1), builder.ErrDegree},
		{"no solvent", builder.Solvent(0), builder.ErrTooFewParticles},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := builder.Build(s.sess, nil, tc.con)
			s.ErrorIs(err, tc.want)
			s.Zero(s.sess.Molecules().Len(), "validation precedes placement")
		})
	}
	s.ErrorIs(builder.Build(s.sess, nil, builder.LinearChains(0, 5)), core.ErrRange)
	s.ErrorIs(builder.Build(s.sess, nil, builder.Star(core.DefaultMaxDegree+1, 1)), core.ErrCapacity)
}

func TestBuildIsReproducible(t *testing.T) {
	grow := func(sessionSeed uint64, opts ...builder.Option) core.Snapshot {
		sess := newSession(t, core.NewBox(32, 32, 32), sessionSeed)
		require.NoError(t, builder.Build(sess, opts, builder.LinearChains(2, 6), builder.Star(3, 2), builder.Solvent(4)))
		return sess.Molecules().Snapshot()
	}

	if diff := cmp.Diff(grow(11), grow(11)); diff != "" {
		t.Fatalf("same session seed (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(grow(1, builder.WithSeed(5)), grow(2, builder.WithSeed(5))); diff != "" {
		t.Fatalf("WithSeed overrides the session source (-first +second):\n%s", diff)
	}
}

func TestBuildInsideWalls(t *testing.T) {
	box := core.Box{X: 16, Y: 16, Z: 16}
	sess := newSession(t, box, 3, feature.NewBoxFeature(feature.DefaultExtent))
	require.NoError(t, builder.Build(sess, nil, builder.LinearChains(4, 8)))

	mol := sess.Molecules()
	require.Equal(t, 32, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		p := mol.At(i).Pos()
		for axis := 0; axis < 3; axis++ {
			assert.GreaterOrEqual(t, p.Axis(axis), 0, "particle %d", i)
			assert.LessOrEqual(t, p.Axis(axis), box.Size(axis)-feature.DefaultExtent, "particle %d", i)
		}
	}
}

// TestCrowdedBox: a 2^3 periodic box holds exactly one excluded-volume cube.
func TestCrowdedBox(t *testing.T) {
	sess := newSession(t, core.NewBox(2, 2, 2), 1)
	err := builder.Build(sess, []builder.Option{builder.WithMaxAttempts(5)}, builder.Solvent(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Equal(t, 1, sess.Molecules().Len(), "no rollback")
}

func TestEmptyAlphabet(t *testing.T) {
	sess, err := feature.NewSession(core.NewBox(16, 16, 16),
		feature.WithBondSet(bondvec.New()),
		feature.WithFeatures(feature.NewExcludedVolumeFeature()),
	)
	require.NoError(t, err)

	// single particles need no bond vector
	require.NoError(t, builder.Build(sess, nil, builder.LinearChains(2, 1)))
	assert.Equal(t, 2, sess.Molecules().Len())

	err = builder.Build(sess, nil, builder.LinearChains(1, 2))
	assert.ErrorIs(t, err, builder.ErrEmptyAlphabet)
}

func TestMaxDegreeTooSmallForChains(t *testing.T) {
	sess, err := feature.NewSession(core.NewBox(16, 16, 16),
		feature.WithMolecules(core.NewMolecules(core.WithMaxDegree(1))))
	require.NoError(t, err)

	require.NoError(t, builder.Build(sess, nil, builder.LinearChains(1, 2)))
	err = builder.Build(sess, nil, builder.LinearChains(1, 3))
	assert.ErrorIs(t, err, builder.ErrDegree)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
	assert.NotPanics(t, func() { builder.WithMaxAttempts(1) })
}
