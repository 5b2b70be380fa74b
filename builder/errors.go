// SPDX-License-Identifier: MIT
// Package: lvbfm/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; each wraps the matching core
//     taxonomy sentinel, so errors.Is works against either.
//   • Constructors attach the method name with builderErrorf and %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

// ErrTooFewParticles indicates a count or length below the constructor minimum.
// Usage: if errors.Is(err, ErrTooFewParticles) { /* report invalid size */ }.
var ErrTooFewParticles = fmt.Errorf("builder: parameter too small: %w", core.ErrRange)

// ErrDegree indicates a topology that needs more links per particle than the
// container allows (for example a star with more arms than MaxDegree).
var ErrDegree = fmt.Errorf("builder: topology exceeds max degree: %w", core.ErrCapacity)

// ErrEmptyAlphabet indicates a session whose bond-vector alphabet has no entry,
// so no chain can be grown.
var ErrEmptyAlphabet = fmt.Errorf("builder: empty bond-vector alphabet: %w", core.ErrRange)

// ErrConstructFailed indicates that a placement or a bond was vetoed on every
// permitted attempt, or that a nil constructor was passed to Build.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with a larger box or seed */ }.
var ErrConstructFailed = fmt.Errorf("builder: construction failed: %w", core.ErrCapacity)

// builderErrorf prefixes a wrapped error with the constructor name:
// "<Method>: <formatted message>". The format must carry exactly one %w.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
