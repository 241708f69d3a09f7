package fn

import "github.com/gradop-ml/gradop/internal/op"

// Sum returns the n-input summation operation: out = Σ x_i.
//
// Backward: every input gets the output delta unchanged.
func Sum[T op.Float](n int) op.Op[T] {
	return op.New(n, func(xs []T) (T, op.Pullback[T]) {
		var sum T
		for _, x := range xs {
			sum += x
		}
		return sum, func(delta *T) []T {
			d := deltaOr1(delta)
			grad := make([]T, n)
			for i := range grad {
				grad[i] = d
			}
			return grad
		}
	})
}

// Mean returns the n-input arithmetic-mean operation: out = Σ x_i / n.
//
// Backward: every input gets delta / n.
func Mean[T op.Float](n int) op.Op[T] {
	return op.New(n, func(xs []T) (T, op.Pullback[T]) {
		var sum T
		for _, x := range xs {
			sum += x
		}
		return sum / T(n), func(delta *T) []T {
			d := deltaOr1(delta) / T(n)
			grad := make([]T, n)
			for i := range grad {
				grad[i] = d
			}
			return grad
		}
	})
}
