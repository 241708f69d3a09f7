// Package fn provides ready-made differentiable operations built on the
// op runtime.
//
// Each operation lives in its own file with its backward rule stated in
// the constructor comment. Elementary operations carry hand-written
// pullbacks (the derivative is one expression); the benchmark objectives
// (Rosenbrock, Sphere) derive theirs from the dual-number engine.
package fn

import "github.com/gradop-ml/gradop/internal/op"

// Op64 is shorthand for an operation over float64, the type the name
// registry serves.
type Op64 = op.Op[float64]

// deltaOr1 resolves an optional external total derivative, nil meaning
// the operation is the terminal objective.
func deltaOr1[T op.Float](delta *T) T {
	if delta == nil {
		return 1
	}
	return *delta
}
