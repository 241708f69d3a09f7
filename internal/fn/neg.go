package fn

import "github.com/gradop-ml/gradop/internal/op"

// Neg returns the negation operation: out = -x.
func Neg[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		return -xs[0], func(delta *T) []T {
			return []T{-deltaOr1(delta)}
		}
	})
}
