// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/gradop-ml/gradop/internal/optim"
	"github.com/gradop-ml/gradop/op"
	"github.com/gradop-ml/gradop/vec"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[T op.Float] = optim.Optimizer[T]

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[T op.Float] = optim.SGD[T]

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig[T op.Float] = optim.SGDConfig[T]

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig[float64]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD[T op.Float](config SGDConfig[T]) *SGD[T] {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[T op.Float] = optim.Adam[T]

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig[T op.Float] = optim.AdamConfig[T]

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig[float64]{
//	    LR: 0.001,
//	})
func NewAdam[T op.Float](config AdamConfig[T]) *Adam[T] {
	return optim.NewAdam(config)
}

// Result reports the outcome of a Minimize run.
type Result[T op.Float] struct {
	Params vec.Vec[T] // Final parameter values.
	Value  T          // Objective value at Params.
	Steps  int        // Update steps performed.
}

// Minimize runs steps update iterations of opt against the objective,
// starting from init. The objective's arity must match init's length.
//
// Example:
//
//	result := optim.Minimize(fn.Rosenbrock[float64](), vec.Of2(-1.2, 1.0),
//	    optim.NewAdam(optim.AdamConfig[float64]{LR: 0.02}), 5000)
func Minimize[T op.Float](objective op.Op[T], init vec.Vec[T], opt Optimizer[T], steps int) Result[T] {
	r := optim.Minimize(objective, init.Values(), opt, steps)
	return Result[T]{
		Params: vec.FromSlice(r.Params),
		Value:  r.Value,
		Steps:  r.Steps,
	}
}
