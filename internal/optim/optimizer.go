// Package optim implements gradient-descent optimizers driven by
// differentiable operations.
//
// An Optimizer consumes the gradient an operation reports at the current
// parameter point and updates the parameters in place. Minimize wires the
// loop together: evaluate, pull the gradient, step.
package optim

import (
	"fmt"

	"github.com/gradop-ml/gradop/internal/op"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[T op.Float] interface {
	// Step applies one gradient update to params in place. params and
	// grads must have the same length across all calls to one optimizer;
	// per-parameter state (momentum, moment estimates) is keyed by index.
	Step(params, grads []T)

	// LR returns the current learning rate.
	LR() T
}

// Result reports the outcome of a Minimize run.
type Result[T op.Float] struct {
	Params []T // Final parameter values.
	Value  T   // Objective value at Params.
	Steps  int // Update steps performed.
}

// Minimize runs steps update iterations of opt against the objective,
// starting from init. init is not modified. The objective's arity must
// match len(init).
func Minimize[T op.Float](objective op.Op[T], init []T, opt Optimizer[T], steps int) Result[T] {
	if len(init) != objective.Arity() {
		panic(fmt.Sprintf("optim: objective expects %d inputs, got %d", objective.Arity(), len(init)))
	}

	params := make([]T, len(init))
	copy(params, init)

	for i := 0; i < steps; i++ {
		grads := objective.Grad(params)
		opt.Step(params, grads)
	}

	return Result[T]{
		Params: params,
		Value:  objective.Value(params),
		Steps:  steps,
	}
}
