package op

import (
	"context"
	"fmt"
)

// PullbackM is the effectful gradient continuation. Delta semantics match
// Pullback; the context and error belong to whatever side effects the
// wrapped computation performs.
type PullbackM[T Float] func(ctx context.Context, delta *T) ([]T, error)

// ForwardM evaluates an effectful operation on its inputs.
type ForwardM[T Float] func(ctx context.Context, xs []T) (T, PullbackM[T], error)

// OpM is a differentiable operation whose evaluation may perform side
// effects. The runtime never reorders or duplicates the underlying calls:
// the forward function runs once per evaluation and each pullback is
// invoked at most once, so effect order is exactly the callee's.
type OpM[T Float] struct {
	arity   int
	forward ForwardM[T]
}

// NewM builds an effectful operation of the given arity.
func NewM[T Float](arity int, forward ForwardM[T]) OpM[T] {
	if arity < 0 {
		panic(fmt.Sprintf("op: negative arity %d", arity))
	}
	return OpM[T]{arity: arity, forward: forward}
}

// Lift wraps a pure operation as an effectful one that never fails.
func Lift[T Float](o Op[T]) OpM[T] {
	return OpM[T]{
		arity: o.arity,
		forward: func(_ context.Context, xs []T) (T, PullbackM[T], error) {
			v, pb := o.forward(xs)
			return v, func(_ context.Context, delta *T) ([]T, error) {
				return pb(delta), nil
			}, nil
		},
	}
}

// Arity returns the number of inputs the operation consumes.
func (o OpM[T]) Arity() int {
	return o.arity
}

func (o OpM[T]) call(ctx context.Context, xs []T) (T, PullbackM[T], error) {
	if len(xs) != o.arity {
		panic(fmt.Sprintf("op: arity mismatch: operation expects %d inputs, got %d", o.arity, len(xs)))
	}
	return o.forward(ctx, xs)
}

// Value evaluates the operation and discards the pullback.
func (o OpM[T]) Value(ctx context.Context, xs []T) (T, error) {
	v, _, err := o.call(ctx, xs)
	return v, err
}

// Grad evaluates the operation as the terminal objective and returns the
// gradient with respect to each input.
func (o OpM[T]) Grad(ctx context.Context, xs []T) ([]T, error) {
	_, pb, err := o.call(ctx, xs)
	if err != nil {
		return nil, err
	}
	return pb(ctx, nil)
}

// GradWith is Grad with an externally supplied total derivative.
func (o OpM[T]) GradWith(ctx context.Context, xs []T, delta T) ([]T, error) {
	_, pb, err := o.call(ctx, xs)
	if err != nil {
		return nil, err
	}
	return pb(ctx, &delta)
}

// ValueGrad evaluates the operation once and returns both the output and
// the terminal-objective gradient.
func (o OpM[T]) ValueGrad(ctx context.Context, xs []T) (T, []T, error) {
	v, pb, err := o.call(ctx, xs)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	grad, err := pb(ctx, nil)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return v, grad, nil
}

// ComposeM is Compose for effectful operations. Upstreams run in input
// order; an error from any forward or pullback call aborts the chain and
// is returned unwrapped.
func ComposeM[T Float](down OpM[T], ups ...OpM[T]) OpM[T] {
	if down.arity != len(ups) {
		panic(fmt.Sprintf("op: compose: downstream expects %d inputs, got %d upstream operations", down.arity, len(ups)))
	}

	arity := 0
	for i, up := range ups {
		if i == 0 {
			arity = up.arity
			continue
		}
		if up.arity != arity {
			panic(fmt.Sprintf("op: compose: upstream %d has arity %d, want %d", i, up.arity, arity))
		}
	}

	m := len(ups)
	return NewM(arity, func(ctx context.Context, xs []T) (T, PullbackM[T], error) {
		mids := make([]T, m)
		pbs := make([]PullbackM[T], m)
		for i, up := range ups {
			v, pb, err := up.call(ctx, xs)
			if err != nil {
				var zero T
				return zero, nil, err
			}
			mids[i], pbs[i] = v, pb
		}
		out, downPb, err := down.call(ctx, mids)
		if err != nil {
			var zero T
			return zero, nil, err
		}

		return out, func(ctx context.Context, delta *T) ([]T, error) {
			dmids, err := downPb(ctx, delta)
			if err != nil {
				return nil, err
			}
			grad := make([]T, arity)
			for i, pb := range pbs {
				d := dmids[i]
				g, err := pb(ctx, &d)
				if err != nil {
					return nil, err
				}
				for j, gj := range g {
					grad[j] += gj
				}
			}
			return grad, nil
		}, nil
	})
}
