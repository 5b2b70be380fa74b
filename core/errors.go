// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel error taxonomy shared by core, lattice, bondvec, feature and bfm.
// Policy:
//   - Sentinels are never formatted at definition site.
//   - Callers attach context with fmt.Errorf("...: %w", ErrX) and match with errors.Is.

package core

import "errors"

var (
	// ErrRange indicates an index or a vector component outside its valid bounds.
	ErrRange = errors.New("core: out of range")

	// ErrCapacity indicates that a bounded resource (monomer degree, lattice
	// cell value space) is exhausted.
	ErrCapacity = errors.New("core: capacity exceeded")

	// ErrDuplicate indicates an attempt to add something expected to be unique.
	ErrDuplicate = errors.New("core: duplicate entry")

	// ErrNotFound indicates a lookup or removal of something that does not exist.
	ErrNotFound = errors.New("core: not found")

	// ErrFormat indicates that persisted input could not be parsed.
	ErrFormat = errors.New("core: format error")

	// ErrConsistency indicates an invariant violation between the bonded graph
	// and derived state (lattice occupancy, bond alphabet, box boundaries).
	ErrConsistency = errors.New("core: consistency violation")

	// ErrIO indicates that a file could not be opened or created.
	ErrIO = errors.New("core: i/o failure")

	// ErrLoopNotAllowed indicates an attempt to link a monomer to itself.
	ErrLoopNotAllowed = errors.New("core: self link not allowed")
)
