package fn

import "github.com/gradop-ml/gradop/internal/op"

// Div returns the two-input division operation: out = x / y.
//
// Backward:
//   - d(x/y)/dx = 1/y
//   - d(x/y)/dy = -x/y²
func Div[T op.Float]() op.Op[T] {
	return op.New(2, func(xs []T) (T, op.Pullback[T]) {
		x, y := xs[0], xs[1]
		return x / y, func(delta *T) []T {
			d := deltaOr1(delta)
			return []T{d / y, -d * x / (y * y)}
		}
	})
}
