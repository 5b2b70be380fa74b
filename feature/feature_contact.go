package feature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbfm/core"
)

// contactShell lists the 24 cells sharing a face with a monomer cube:
// for each axis, the layers at -1 and +2 across the 2x2 face.
var contactShell = func() [24]core.Vec3 {
	var out [24]core.Vec3
	n := 0
	for axis := 0; axis < 3; axis++ {
		for _, layer := range [2]int{-1, 2} {
			for a := 0; a <= 1; a++ {
				for b := 0; b <= 1; b++ {
					var v core.Vec3
					switch axis {
					case 0:
						v = core.V(layer, a, b)
					case 1:
						v = core.V(a, layer, b)
					default:
						v = core.V(a, b, layer)
					}
					out[n] = v
					n++
				}
			}
		}
	}
	return out
}()

// maxContacts bounds the change of the contact count in one move.
const maxContacts = len(contactShell)

// ContactFeature weights moves by the nearest-neighbour contact energy
// E = epsilon·C (in units of kT), where C counts occupied face-shell cells
// that belong to other particles. Negative epsilon is attractive.
type ContactFeature struct {
	Base
	epsilon float64
	// boltzmann[dc+maxContacts] = exp(-epsilon·dc)
	boltzmann [2*maxContacts + 1]float64
}

// NewContactFeature returns the contact-energy feature. A non-finite
// epsilon is reported as core.ErrRange.
func NewContactFeature(epsilon float64) (*ContactFeature, error) {
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return nil, fmt.Errorf("feature: contact epsilon %v: %w", epsilon, core.ErrRange)
	}
	f := &ContactFeature{epsilon: epsilon}
	f.fillTable()

	return f, nil
}

// Name implements Feature.
func (*ContactFeature) Name() string { return NameContact }

// Requires implements Feature.
func (*ContactFeature) Requires() []string { return []string{NameExcludedVolume} }

// Epsilon returns the contact energy per cell in kT.
func (f *ContactFeature) Epsilon() float64 { return f.epsilon }

// Contacts returns the contact count of particle i at its current position.
func (f *ContactFeature) Contacts(s *Session, i int) int {
	return f.count(s, s.mol.At(i).Pos(), Occupant(i+1))
}

// CheckMove implements Feature.
func (f *ContactFeature) CheckMove(s *Session, m Move) bool {
	switch mv := m.(type) {
	case PositionMove:
		self := Occupant(mv.Particle() + 1)
		dc := f.count(s, mv.To(), self) - f.count(s, mv.From(), self)
		m.MultiplyProbability(f.boltzmann[dc+maxContacts])
	case *AddMove:
		m.MultiplyProbability(f.boltzmann[f.count(s, mv.pos, 0)+maxContacts])
	}

	return true
}

// Synchronize rebuilds the Boltzmann table.
func (f *ContactFeature) Synchronize(*Session) error {
	f.fillTable()
	return nil
}

func (f *ContactFeature) fillTable() {
	for dc := -maxContacts; dc <= maxContacts; dc++ {
		f.boltzmann[dc+maxContacts] = math.Exp(-f.epsilon * float64(dc))
	}
}

func (f *ContactFeature) count(s *Session, p core.Vec3, self Occupant) int {
	n := 0
	for _, c := range contactShell {
		if v := s.lat.Entry(p.Add(c)); v != 0 && v != self {
			n++
		}
	}

	return n
}
