package fn

import "github.com/gradop-ml/gradop/internal/op"

// Mul returns the two-input multiplication operation: out = x * y.
//
// Backward:
//   - d(x*y)/dx = y
//   - d(x*y)/dy = x
func Mul[T op.Float]() op.Op[T] {
	return op.New(2, func(xs []T) (T, op.Pullback[T]) {
		x, y := xs[0], xs[1]
		return x * y, func(delta *T) []T {
			d := deltaOr1(delta)
			return []T{d * y, d * x}
		}
	})
}
