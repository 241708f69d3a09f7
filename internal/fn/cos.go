package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Cos returns the cosine operation: out = cos(x).
//
// Backward:
//   - d(cos(x))/dx = -sin(x)
func Cos[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		x := xs[0]
		return T(math.Cos(float64(x))), func(delta *T) []T {
			return []T{-deltaOr1(delta) * T(math.Sin(float64(x)))}
		}
	})
}
