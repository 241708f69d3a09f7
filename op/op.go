// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package op

import (
	"context"

	"github.com/gradop-ml/gradop/internal/dual"
	"github.com/gradop-ml/gradop/internal/op"
)

// Float is the constraint for the numeric types operations compute over.
type Float = op.Float

// Op is a differentiable operation of fixed arity.
type Op[T Float] = op.Op[T]

// OpM is a differentiable operation whose evaluation may perform side
// effects.
type OpM[T Float] = op.OpM[T]

// Pullback is the gradient continuation: called with nil it treats the
// operation as the terminal scalar objective (total derivative one),
// otherwise it scales by the supplied total derivative.
type Pullback[T Float] = op.Pullback[T]

// PullbackM is the effectful gradient continuation.
type PullbackM[T Float] = op.PullbackM[T]

// Forward evaluates an operation, returning the output and its pullback.
type Forward[T Float] = op.Forward[T]

// ForwardM is the effectful forward function.
type ForwardM[T Float] = op.ForwardM[T]

// Num is a dual number, the value closures passed to the auto
// constructors compute over.
type Num[T Float] = dual.Num[T]

// New builds an operation of the given arity around a raw forward
// function. Most callers want the auto or WithGrad constructors instead.
func New[T Float](arity int, forward Forward[T]) Op[T] {
	return op.New(arity, forward)
}

// NewM builds an effectful operation of the given arity.
func NewM[T Float](arity int, forward ForwardM[T]) OpM[T] {
	return op.NewM(arity, forward)
}

// Lift wraps a pure operation as an effectful one that never fails.
func Lift[T Float](o Op[T]) OpM[T] {
	return op.Lift(o)
}

// New1 builds a one-input operation from a dual-number closure. The
// gradient is derived automatically, on demand.
//
// Example:
//
//	square := op.New1(func(x op.Num[float64]) op.Num[float64] {
//	    return x.Mul(x)
//	})
func New1[T Float](f func(Num[T]) Num[T]) Op[T] {
	return op.FromDual1(f)
}

// New2 builds a two-input operation from a dual-number closure.
func New2[T Float](f func(x, y Num[T]) Num[T]) Op[T] {
	return op.FromDual2(f)
}

// New3 builds a three-input operation from a dual-number closure.
func New3[T Float](f func(x, y, z Num[T]) Num[T]) Op[T] {
	return op.FromDual3(f)
}

// NewN builds an n-input operation from a dual-number closure over a
// slice of arguments. The closure must treat the slice as read-only.
func NewN[T Float](n int, f func([]Num[T]) Num[T]) Op[T] {
	return op.FromDual(n, f)
}

// WithGrad1 builds a one-input operation from a hand-written function
// returning the value and its pullback. The pullback's delta follows the
// Pullback contract: nil means a total derivative of one. Supplying a
// mathematically correct derivative is the caller's responsibility.
func WithGrad1[T Float](f func(x T) (T, func(delta *T) T)) Op[T] {
	return op.New(1, func(xs []T) (T, Pullback[T]) {
		v, pb := f(xs[0])
		return v, func(delta *T) []T {
			return []T{pb(delta)}
		}
	})
}

// WithGrad2 builds a two-input operation from a hand-written function
// returning the value and its pullback.
func WithGrad2[T Float](f func(x, y T) (T, func(delta *T) (T, T))) Op[T] {
	return op.New(2, func(xs []T) (T, Pullback[T]) {
		v, pb := f(xs[0], xs[1])
		return v, func(delta *T) []T {
			gx, gy := pb(delta)
			return []T{gx, gy}
		}
	})
}

// WithGrad3 builds a three-input operation from a hand-written function
// returning the value and its pullback.
func WithGrad3[T Float](f func(x, y, z T) (T, func(delta *T) (T, T, T))) Op[T] {
	return op.New(3, func(xs []T) (T, Pullback[T]) {
		v, pb := f(xs[0], xs[1], xs[2])
		return v, func(delta *T) []T {
			gx, gy, gz := pb(delta)
			return []T{gx, gy, gz}
		}
	})
}

// WithGradM1 builds a one-input effectful operation from a hand-written
// function returning the value, its effectful pullback, and an error.
func WithGradM1[T Float](f func(ctx context.Context, x T) (T, func(ctx context.Context, delta *T) (T, error), error)) OpM[T] {
	return op.NewM(1, func(ctx context.Context, xs []T) (T, PullbackM[T], error) {
		v, pb, err := f(ctx, xs[0])
		if err != nil {
			var zero T
			return zero, nil, err
		}
		return v, func(ctx context.Context, delta *T) ([]T, error) {
			g, err := pb(ctx, delta)
			if err != nil {
				return nil, err
			}
			return []T{g}, nil
		}, nil
	})
}

// WithGradM2 builds a two-input effectful operation.
func WithGradM2[T Float](f func(ctx context.Context, x, y T) (T, func(ctx context.Context, delta *T) (T, T, error), error)) OpM[T] {
	return op.NewM(2, func(ctx context.Context, xs []T) (T, PullbackM[T], error) {
		v, pb, err := f(ctx, xs[0], xs[1])
		if err != nil {
			var zero T
			return zero, nil, err
		}
		return v, func(ctx context.Context, delta *T) ([]T, error) {
			gx, gy, err := pb(ctx, delta)
			if err != nil {
				return nil, err
			}
			return []T{gx, gy}, nil
		}, nil
	})
}

// WithGradM3 builds a three-input effectful operation.
func WithGradM3[T Float](f func(ctx context.Context, x, y, z T) (T, func(ctx context.Context, delta *T) (T, T, T, error), error)) OpM[T] {
	return op.NewM(3, func(ctx context.Context, xs []T) (T, PullbackM[T], error) {
		v, pb, err := f(ctx, xs[0], xs[1], xs[2])
		if err != nil {
			var zero T
			return zero, nil, err
		}
		return v, func(ctx context.Context, delta *T) ([]T, error) {
			gx, gy, gz, err := pb(ctx, delta)
			if err != nil {
				return nil, err
			}
			return []T{gx, gy, gz}, nil
		}, nil
	})
}

// Compose chains upstream operations sharing one input set into a
// downstream operation consuming one value per upstream. Gradient
// contributions through different upstreams sum per shared input.
func Compose[T Float](down Op[T], ups ...Op[T]) Op[T] {
	return op.Compose(down, ups...)
}

// ComposeM is Compose for effectful operations. Upstreams run in input
// order and the first error aborts the chain.
func ComposeM[T Float](down OpM[T], ups ...OpM[T]) OpM[T] {
	return op.ComposeM(down, ups...)
}
