package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Tanh returns the hyperbolic-tangent operation: out = tanh(x).
//
// Backward:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - out²
func Tanh[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		th := T(math.Tanh(float64(xs[0])))
		return th, func(delta *T) []T {
			return []T{deltaOr1(delta) * (1 - th*th)}
		}
	})
}
