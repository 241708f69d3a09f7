package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Sigmoid returns the logistic operation: out = 1 / (1 + e^(-x)).
//
// Backward:
//   - d(σ(x))/dx = σ(x) * (1 - σ(x)) = out * (1 - out)
func Sigmoid[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		s := T(1 / (1 + math.Exp(float64(-xs[0]))))
		return s, func(delta *T) []T {
			return []T{deltaOr1(delta) * s * (1 - s)}
		}
	})
}
