package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Sqrt returns the square-root operation: out = sqrt(x).
//
// Backward:
//   - d(sqrt(x))/dx = 1 / (2*sqrt(x)) = 0.5 / out
func Sqrt[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		r := T(math.Sqrt(float64(xs[0])))
		return r, func(delta *T) []T {
			return []T{deltaOr1(delta) / (2 * r)}
		}
	})
}
