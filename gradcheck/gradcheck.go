// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck cross-checks operation gradients against central
// finite differences.
//
// The op runtime never verifies the pullbacks it is handed. This package
// is the explicit check, for tests, debugging, and the gradop CLI:
//
//	if err := gradcheck.Check(myOp, vec.Of2(3, 5), gradcheck.DefaultConfig()); err != nil {
//	    // the hand-written gradient disagrees with finite differences
//	}
package gradcheck

import (
	"github.com/gradop-ml/gradop/internal/gradcheck"
	"github.com/gradop-ml/gradop/op"
	"github.com/gradop-ml/gradop/vec"
)

// Config holds the finite-difference step and the comparison tolerance.
type Config = gradcheck.Config

// DefaultConfig returns the defaults used by the CLI and tests.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Check compares the operation's terminal-objective gradient at the given
// point against central finite differences of its value.
func Check(o op.Op[float64], at vec.Vec[float64], cfg Config) error {
	return gradcheck.Check(o, at.Values(), cfg)
}

// CheckRandom runs Check at samples points drawn uniformly from [lo, hi)
// per input, with a deterministic seed.
func CheckRandom(o op.Op[float64], samples int, lo, hi float64, seed int64, cfg Config) error {
	return gradcheck.CheckRandom(o, samples, lo, hi, seed, cfg)
}
