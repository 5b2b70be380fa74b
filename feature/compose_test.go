package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbfm/core"
	"github.com/katalvlaran/lvbfm/feature"
)

// named is a feature with a fixed name and predecessor list.
type named struct {
	feature.Base
	name string
	reqs []string
}

func (n named) Name() string       { return n.name }
func (n named) Requires() []string { return n.reqs }

func nf(name string, reqs ...string) feature.Feature { return named{name: name, reqs: reqs} }

// TestCompose_PredecessorsFirst verifies predecessors are emitted before
// dependants while independent features keep registration order.
func TestCompose_PredecessorsFirst(t *testing.T) {
	comp, err := feature.Compose(nf("b", "a"), nf("a"), nf("c"), nf("d", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, comp.Names())
	assert.Equal(t, 4, comp.Len())

	f, ok := comp.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "c", f.Name())
	_, ok = comp.Lookup("zzz")
	assert.False(t, ok)
}

// TestCompose_RegistrationOrder checks that unrelated features are not reordered.
func TestCompose_RegistrationOrder(t *testing.T) {
	comp, err := feature.Compose(nf("z"), nf("y"), nf("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, comp.Names())
}

func TestCompose_MissingDependency(t *testing.T) {
	_, err := feature.Compose(nf("contact", "excluded_volume"))
	require.ErrorIs(t, err, feature.ErrMissingDependency)
	assert.ErrorIs(t, err, core.ErrConsistency)
	assert.Contains(t, err.Error(), `"excluded_volume"`)
}

func TestCompose_Cycle(t *testing.T) {
	_, err := feature.Compose(nf("x", "y"), nf("y", "x"))
	require.ErrorIs(t, err, feature.ErrDependencyCycle)
	assert.Contains(t, err.Error(), "x -> y -> x")
}

func TestCompose_Invalid(t *testing.T) {
	_, err := feature.Compose(nf("a"), nil)
	assert.ErrorIs(t, err, feature.ErrNilFeature)

	_, err = feature.Compose(nf("a"), nf("a"))
	assert.ErrorIs(t, err, feature.ErrDuplicateFeature)
	assert.ErrorIs(t, err, core.ErrDuplicate)
}

// TestCompose_FeaturesIsCopy ensures callers cannot reorder the composition.
func TestCompose_FeaturesIsCopy(t *testing.T) {
	comp, err := feature.Compose(nf("a"), nf("b"))
	require.NoError(t, err)
	fs := comp.Features()
	fs[0], fs[1] = fs[1], fs[0]
	assert.Equal(t, []string{"a", "b"}, comp.Names())
}
