// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the feature package. Each one wraps the matching
// core taxonomy sentinel so callers may test either.

package feature

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

var (
	// ErrNilFeature indicates a nil Feature passed to Compose.
	ErrNilFeature = errors.New("feature: nil feature")

	// ErrDuplicateFeature indicates two features with the same name.
	ErrDuplicateFeature = fmt.Errorf("feature: duplicate feature name: %w", core.ErrDuplicate)

	// ErrMissingDependency indicates a declared predecessor absent from the composition.
	ErrMissingDependency = fmt.Errorf("feature: missing predecessor: %w", core.ErrConsistency)

	// ErrDependencyCycle indicates features that require each other.
	ErrDependencyCycle = fmt.Errorf("feature: dependency cycle: %w", core.ErrConsistency)

	// ErrNotSynchronized indicates a trial attempted before a successful Synchronize.
	ErrNotSynchronized = fmt.Errorf("feature: session not synchronized: %w", core.ErrConsistency)

	// ErrNoParticles indicates a random proposal on an empty system.
	ErrNoParticles = fmt.Errorf("feature: no particles to move: %w", core.ErrRange)
)
