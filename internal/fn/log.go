package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Log returns the natural-logarithm operation: out = log(x).
// Input values must be positive.
//
// Backward:
//   - d(log(x))/dx = 1/x
func Log[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		x := xs[0]
		return T(math.Log(float64(x))), func(delta *T) []T {
			return []T{deltaOr1(delta) / x}
		}
	})
}
