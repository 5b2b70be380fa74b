// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the config package, each wrapping a core
// taxonomy sentinel.

package config

import (
	"fmt"

	"github.com/katalvlaran/lvbfm/core"
)

var (
	// ErrSyntax indicates a file that does not parse or does not match the schema.
	ErrSyntax = fmt.Errorf("config: invalid configuration: %w", core.ErrFormat)

	// ErrUnknownFeature indicates a feature block naming no known feature.
	ErrUnknownFeature = fmt.Errorf("config: unknown feature: %w", core.ErrNotFound)

	// ErrParameter indicates a value outside its allowed range or of the wrong type.
	ErrParameter = fmt.Errorf("config: invalid parameter: %w", core.ErrRange)

	// ErrNoOutput indicates Create without an output path.
	ErrNoOutput = fmt.Errorf("config: no output path: %w", core.ErrNotFound)
)
