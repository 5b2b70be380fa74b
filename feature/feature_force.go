package feature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbfm/core"
)

// ExternalForceFeature biases every displacement d by exp(F·d), with F given
// in units of kT per lattice constant.
type ExternalForceFeature struct {
	Base
	fx, fy, fz float64
}

// NewExternalForceFeature returns the constant-force feature. Non-finite
// components are reported as core.ErrRange.
func NewExternalForceFeature(fx, fy, fz float64) (*ExternalForceFeature, error) {
	for _, c := range [3]float64{fx, fy, fz} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("feature: external force (%v,%v,%v): %w", fx, fy, fz, core.ErrRange)
		}
	}

	return &ExternalForceFeature{fx: fx, fy: fy, fz: fz}, nil
}

// Name implements Feature.
func (*ExternalForceFeature) Name() string { return NameExternalForce }

// Force returns the force components.
func (f *ExternalForceFeature) Force() (fx, fy, fz float64) { return f.fx, f.fy, f.fz }

// CheckMove implements Feature.
func (f *ExternalForceFeature) CheckMove(_ *Session, m Move) bool {
	if mv, ok := m.(PositionMove); ok {
		d := mv.Displacement()
		m.MultiplyProbability(math.Exp(f.fx*float64(d.X) + f.fy*float64(d.Y) + f.fz*float64(d.Z)))
	}

	return true
}
