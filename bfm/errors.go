// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the bfm codec, each wrapping a core taxonomy error.

package bfm

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

var (
	// ErrKeyword indicates a command keyword without the '!' or "#!" prefix.
	ErrKeyword = fmt.Errorf("bfm: keyword must start with ! or #!: %w", core.ErrRange)

	// ErrDuplicateCommand indicates a keyword registered twice.
	ErrDuplicateCommand = fmt.Errorf("bfm: duplicate command: %w", core.ErrDuplicate)

	// ErrMode indicates an unknown write mode.
	ErrMode = fmt.Errorf("bfm: unknown write mode: %w", core.ErrRange)

	// ErrCountMismatch indicates a frame that does not populate every declared particle.
	ErrCountMismatch = fmt.Errorf("bfm: monomer count mismatch: %w", core.ErrFormat)

	// ErrBondedSolvent indicates a compressed particle that carries bonds.
	ErrBondedSolvent = fmt.Errorf("bfm: compressed particle has bonds: %w", core.ErrConsistency)

	// ErrNilSystem indicates a write without molecules or bond alphabet.
	ErrNilSystem = fmt.Errorf("bfm: incomplete system: %w", core.ErrRange)
)
