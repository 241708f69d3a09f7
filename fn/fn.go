// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fn provides ready-made differentiable operations: elementary
// scalar functions with hand-written pullbacks, n-ary reductions, and
// benchmark objectives whose gradients derive from the dual-number
// engine.
//
// A name registry over float64 backs the gradop CLI:
//
//	o, err := fn.Lookup("mul", 0)
package fn

import (
	"github.com/gradop-ml/gradop/internal/fn"
	"github.com/gradop-ml/gradop/op"
)

// Add returns the two-input addition operation: out = x + y.
func Add[T op.Float]() op.Op[T] { return fn.Add[T]() }

// Sub returns the two-input subtraction operation: out = x - y.
func Sub[T op.Float]() op.Op[T] { return fn.Sub[T]() }

// Mul returns the two-input multiplication operation: out = x * y.
func Mul[T op.Float]() op.Op[T] { return fn.Mul[T]() }

// Div returns the two-input division operation: out = x / y.
func Div[T op.Float]() op.Op[T] { return fn.Div[T]() }

// Neg returns the negation operation: out = -x.
func Neg[T op.Float]() op.Op[T] { return fn.Neg[T]() }

// Sqrt returns the square-root operation: out = sqrt(x).
func Sqrt[T op.Float]() op.Op[T] { return fn.Sqrt[T]() }

// Exp returns the exponential operation: out = e^x.
func Exp[T op.Float]() op.Op[T] { return fn.Exp[T]() }

// Log returns the natural-logarithm operation: out = log(x).
func Log[T op.Float]() op.Op[T] { return fn.Log[T]() }

// Sin returns the sine operation: out = sin(x).
func Sin[T op.Float]() op.Op[T] { return fn.Sin[T]() }

// Cos returns the cosine operation: out = cos(x).
func Cos[T op.Float]() op.Op[T] { return fn.Cos[T]() }

// Tanh returns the hyperbolic-tangent operation: out = tanh(x).
func Tanh[T op.Float]() op.Op[T] { return fn.Tanh[T]() }

// Sigmoid returns the logistic operation: out = 1 / (1 + e^(-x)).
func Sigmoid[T op.Float]() op.Op[T] { return fn.Sigmoid[T]() }

// ReLU returns the rectified-linear operation: out = max(0, x).
func ReLU[T op.Float]() op.Op[T] { return fn.ReLU[T]() }

// PowConst returns the fixed-exponent power operation: out = x^p.
func PowConst[T op.Float](p T) op.Op[T] { return fn.PowConst(p) }

// FMA returns the fused multiply-add operation: out = x*y + z.
func FMA[T op.Float]() op.Op[T] { return fn.FMA[T]() }

// Const returns the zero-input constant operation: out = c.
func Const[T op.Float](c T) op.Op[T] { return fn.Const(c) }

// Sum returns the n-input summation operation: out = Σ x_i.
func Sum[T op.Float](n int) op.Op[T] { return fn.Sum[T](n) }

// Mean returns the n-input arithmetic-mean operation.
func Mean[T op.Float](n int) op.Op[T] { return fn.Mean[T](n) }

// Sphere returns the n-input sphere objective: f(x) = Σ x_i².
func Sphere[T op.Float](n int) op.Op[T] { return fn.Sphere[T](n) }

// Rosenbrock returns the two-input Rosenbrock valley.
func Rosenbrock[T op.Float]() op.Op[T] { return fn.Rosenbrock[T]() }

// Lookup returns the named builtin operation over float64. For the
// parametric operations (sum, mean, sphere) n sets the arity; fixed-arity
// operations ignore it.
func Lookup(name string, n int) (op.Op[float64], error) {
	return fn.Lookup(name, n)
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	return fn.Names()
}

// Parametric reports whether the named operation takes its arity from
// the caller.
func Parametric(name string) bool {
	return fn.Parametric(name)
}

// CheckDomain returns the recommended sampling interval for gradient
// checks of the named operation.
func CheckDomain(name string) (lo, hi float64) {
	return fn.CheckDomain(name)
}
