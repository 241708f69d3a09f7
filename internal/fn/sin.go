package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Sin returns the sine operation: out = sin(x).
//
// Backward:
//   - d(sin(x))/dx = cos(x)
func Sin[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		x := xs[0]
		return T(math.Sin(float64(x))), func(delta *T) []T {
			return []T{deltaOr1(delta) * T(math.Cos(float64(x)))}
		}
	})
}
