// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package op exposes differentiable operations over fixed-length vectors
// of one numeric type.
//
// # Overview
//
// An Op is a function from n same-typed inputs to one output, paired with
// a gradient continuation (the pullback). The arity n is fixed when the
// operation is built. Gradients are reverse-mode: the pullback takes the
// total derivative of the output (nil meaning one, i.e. the operation is
// the final scalar objective) and returns one partial derivative per
// input via the chain rule.
//
// Operations are built three ways:
//
//   - New1/New2/New3/NewN: from a closure written against dual numbers;
//     the gradient is derived automatically, one seeded forward pass per
//     input, only when asked for.
//   - WithGrad1/WithGrad2/WithGrad3: from a hand-written function
//     returning both the value and its pullback. The runtime never
//     verifies hand-written derivatives; the gradcheck package offers an
//     explicit finite-difference cross-check.
//   - Compose: from a vector of operations sharing one input set and a
//     downstream operation consuming their outputs, with gradient
//     contributions summed per shared input.
//
// # Basic Usage
//
//	import (
//	    "github.com/gradop-ml/gradop/op"
//	    "github.com/gradop-ml/gradop/vec"
//	)
//
//	func main() {
//	    mul := op.WithGrad2(func(x, y float64) (float64, func(delta *float64) (float64, float64)) {
//	        return x * y, func(delta *float64) (float64, float64) {
//	            d := 1.0
//	            if delta != nil {
//	                d = *delta
//	            }
//	            return d * y, d * x
//	        }
//	    })
//
//	    v, g := op.ValueGrad(mul, vec.Of2(3.0, 5.0))
//	    // v = 15, g = [5 3]
//	}
//
// # Effectful Operations
//
// OpM is the counterpart whose evaluation may perform side effects: its
// forward and pullback take a context and may fail. The runtime runs the
// forward once per evaluation and each pullback at most once, so effect
// order is exactly the wrapped computation's. Lift adapts a pure Op.
package op
