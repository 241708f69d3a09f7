// Package op implements the generic differentiable-operation runtime.
//
// An Op is a function from a slice of same-typed inputs to one output,
// paired with a gradient continuation (the pullback). The forward pass
// returns the pullback unevaluated; gradients are only computed when the
// caller invokes it, and each pullback is invoked at most once per
// evaluation.
//
// The arity of an Op is fixed when it is built. Applying an Op to the
// wrong number of inputs is a programmer error and panics; there is no
// recoverable arity failure.
//
// Reverse-mode composition lives in compose.go, effectful operations in
// opm.go, and the dual-number bridge (auto-derived gradients) in auto.go.
package op

import "fmt"

// Float is the constraint for the numeric types operations compute over.
type Float interface {
	~float32 | ~float64
}

// Pullback is a gradient continuation. Called with nil it treats the
// operation as the terminal scalar objective (total derivative one);
// called with a delta it scales every component by that externally
// supplied total derivative, per the chain rule. The returned slice holds
// one partial derivative per input, in input order.
type Pullback[T Float] func(delta *T) []T

// Forward evaluates an operation on its inputs, returning the output
// value and the pullback for those inputs.
type Forward[T Float] func(xs []T) (T, Pullback[T])

// Op is a differentiable operation of fixed arity.
type Op[T Float] struct {
	arity   int
	forward Forward[T]
}

// New builds an operation of the given arity around a forward function.
//
// The forward function owns the correctness of its pullback: the runtime
// threads deltas and sums contributions but never verifies derivatives.
// The gradcheck package offers an explicit finite-difference cross-check.
func New[T Float](arity int, forward Forward[T]) Op[T] {
	if arity < 0 {
		panic(fmt.Sprintf("op: negative arity %d", arity))
	}
	return Op[T]{arity: arity, forward: forward}
}

// Arity returns the number of inputs the operation consumes.
func (o Op[T]) Arity() int {
	return o.arity
}

// call runs the forward pass after the arity guard.
func (o Op[T]) call(xs []T) (T, Pullback[T]) {
	if len(xs) != o.arity {
		panic(fmt.Sprintf("op: arity mismatch: operation expects %d inputs, got %d", o.arity, len(xs)))
	}
	return o.forward(xs)
}

// Value evaluates the operation and discards the pullback.
func (o Op[T]) Value(xs []T) T {
	v, _ := o.call(xs)
	return v
}

// Grad evaluates the operation as the terminal objective and returns the
// gradient with respect to each input.
func (o Op[T]) Grad(xs []T) []T {
	_, pb := o.call(xs)
	return pb(nil)
}

// GradWith is Grad with an externally supplied total derivative of the
// output, for use when the operation feeds a larger computation.
func (o Op[T]) GradWith(xs []T, delta T) []T {
	_, pb := o.call(xs)
	return pb(&delta)
}

// ValueGrad evaluates the operation once and returns both the output and
// the terminal-objective gradient.
func (o Op[T]) ValueGrad(xs []T) (T, []T) {
	v, pb := o.call(xs)
	return v, pb(nil)
}

// ValueGradWith is ValueGrad with an externally supplied total derivative.
func (o Op[T]) ValueGradWith(xs []T, delta T) (T, []T) {
	v, pb := o.call(xs)
	return v, pb(&delta)
}

// scaleGrad applies an optional external delta to a gradient in place and
// returns it. A nil delta means a total derivative of one.
func scaleGrad[T Float](grad []T, delta *T) []T {
	if delta == nil {
		return grad
	}
	for i := range grad {
		grad[i] *= *delta
	}
	return grad
}
