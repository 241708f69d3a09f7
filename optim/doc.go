// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers driven by
// differentiable operations.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Minimize: the evaluate/pullback/step loop
//
// # Basic Usage
//
//	import (
//	    "github.com/gradop-ml/gradop/fn"
//	    "github.com/gradop-ml/gradop/optim"
//	    "github.com/gradop-ml/gradop/vec"
//	)
//
//	func main() {
//	    objective := fn.Rosenbrock[float64]()
//
//	    result := optim.Minimize(
//	        objective,
//	        vec.Of2(-1.2, 1.0),
//	        optim.NewAdam(optim.AdamConfig[float64]{LR: 0.02}),
//	        5000,
//	    )
//
//	    fmt.Println(result.Params, result.Value)
//	}
package optim
