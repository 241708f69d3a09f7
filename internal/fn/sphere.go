package fn

import (
	"github.com/gradop-ml/gradop/internal/dual"
	"github.com/gradop-ml/gradop/internal/op"
)

// Sphere returns the n-input sphere objective: f(x) = Σ x_i².
// Global minimum 0 at the origin. The gradient is derived from the
// dual-number engine.
func Sphere[T op.Float](n int) op.Op[T] {
	return op.FromDual(n, func(args []dual.Num[T]) dual.Num[T] {
		sum := dual.Const[T](0)
		for _, a := range args {
			sum = sum.Add(a.Mul(a))
		}
		return sum
	})
}
