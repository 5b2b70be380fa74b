// Package builder defines shared constants used by the constructors, ensuring
// consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Constructor Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLinearChains is the canonical name for the LinearChains constructor.
	MethodLinearChains = "LinearChains"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodSolvent is the canonical name for the Solvent constructor.
	MethodSolvent = "Solvent"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinChainLength is the smallest allowed chain (a single particle).
	MinChainLength = 1
	// MinStarArms is the smallest allowed number of star arms.
	MinStarArms = 1
	// MinArmLength is the smallest allowed arm (one particle besides the centre).
	MinArmLength = 1
)

//-----------------------------------------------------------------------------
// Placement
//-----------------------------------------------------------------------------

// DefaultMaxAttempts bounds the retries of one vetoed placement.
const DefaultMaxAttempts = 1000
