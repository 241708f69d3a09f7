// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package op

import (
	"context"

	"github.com/gradop-ml/gradop/internal/op"
	"github.com/gradop-ml/gradop/internal/parallel"
	"github.com/gradop-ml/gradop/vec"
)

// Value evaluates the operation on the input vector and discards the
// gradient. Panics if the vector length differs from the arity.
func Value[T Float](o Op[T], in vec.Vec[T]) T {
	return o.Value(in.Values())
}

// Grad evaluates the operation as the terminal objective and returns the
// gradient with respect to each input.
func Grad[T Float](o Op[T], in vec.Vec[T]) vec.Vec[T] {
	return vec.FromSlice(o.Grad(in.Values()))
}

// GradWith is Grad with an externally supplied total derivative of the
// output, for use when the operation feeds a larger computation.
func GradWith[T Float](o Op[T], in vec.Vec[T], delta T) vec.Vec[T] {
	return vec.FromSlice(o.GradWith(in.Values(), delta))
}

// ValueGrad evaluates the operation once and returns both the output and
// the terminal-objective gradient.
func ValueGrad[T Float](o Op[T], in vec.Vec[T]) (T, vec.Vec[T]) {
	v, g := o.ValueGrad(in.Values())
	return v, vec.FromSlice(g)
}

// ValueGradWith is ValueGrad with an externally supplied total
// derivative.
func ValueGradWith[T Float](o Op[T], in vec.Vec[T], delta T) (T, vec.Vec[T]) {
	v, g := o.ValueGradWith(in.Values(), delta)
	return v, vec.FromSlice(g)
}

// Call1 evaluates a one-input operation.
func Call1[T Float](o Op[T], x T) T {
	return o.Value([]T{x})
}

// Call2 evaluates a two-input operation.
func Call2[T Float](o Op[T], x, y T) T {
	return o.Value([]T{x, y})
}

// Call3 evaluates a three-input operation.
func Call3[T Float](o Op[T], x, y, z T) T {
	return o.Value([]T{x, y, z})
}

// ValueCtx evaluates an effectful operation and discards the gradient.
func ValueCtx[T Float](ctx context.Context, o OpM[T], in vec.Vec[T]) (T, error) {
	return o.Value(ctx, in.Values())
}

// GradCtx evaluates an effectful operation as the terminal objective and
// returns the gradient.
func GradCtx[T Float](ctx context.Context, o OpM[T], in vec.Vec[T]) (vec.Vec[T], error) {
	g, err := o.Grad(ctx, in.Values())
	if err != nil {
		return vec.Vec[T]{}, err
	}
	return vec.FromSlice(g), nil
}

// GradWithCtx is GradCtx with an externally supplied total derivative.
func GradWithCtx[T Float](ctx context.Context, o OpM[T], in vec.Vec[T], delta T) (vec.Vec[T], error) {
	g, err := o.GradWith(ctx, in.Values(), delta)
	if err != nil {
		return vec.Vec[T]{}, err
	}
	return vec.FromSlice(g), nil
}

// ValueGradCtx evaluates an effectful operation once and returns both the
// output and the terminal-objective gradient.
func ValueGradCtx[T Float](ctx context.Context, o OpM[T], in vec.Vec[T]) (T, vec.Vec[T], error) {
	v, g, err := o.ValueGrad(ctx, in.Values())
	if err != nil {
		var zero T
		return zero, vec.Vec[T]{}, err
	}
	return v, vec.FromSlice(g), nil
}

// EvalBatch evaluates the operation over many input vectors, one output
// per vector, fanning out across goroutines.
func EvalBatch[T Float](o Op[T], ins []vec.Vec[T]) []T {
	return op.EvalBatch(o, rows(ins), parallel.Default())
}

// GradBatch evaluates the terminal-objective gradient over many input
// vectors.
func GradBatch[T Float](o Op[T], ins []vec.Vec[T]) []vec.Vec[T] {
	grads := op.GradBatch(o, rows(ins), parallel.Default())
	out := make([]vec.Vec[T], len(grads))
	for i, g := range grads {
		out[i] = vec.FromSlice(g)
	}
	return out
}

// EvalBatchCtx evaluates an effectful operation over many input vectors
// with bounded concurrency (workers <= 0 means unbounded). The first
// error cancels the remaining evaluations.
func EvalBatchCtx[T Float](ctx context.Context, o OpM[T], ins []vec.Vec[T], workers int) ([]T, error) {
	return op.EvalBatchM(ctx, o, rows(ins), workers)
}

func rows[T Float](ins []vec.Vec[T]) [][]T {
	out := make([][]T, len(ins))
	for i, in := range ins {
		out[i] = in.Values()
	}
	return out
}
