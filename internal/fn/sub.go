package fn

import "github.com/gradop-ml/gradop/internal/op"

// Sub returns the two-input subtraction operation: out = x - y.
//
// Backward:
//   - d(x-y)/dx = 1
//   - d(x-y)/dy = -1
func Sub[T op.Float]() op.Op[T] {
	return op.New(2, func(xs []T) (T, op.Pullback[T]) {
		return xs[0] - xs[1], func(delta *T) []T {
			d := deltaOr1(delta)
			return []T{d, -d}
		}
	})
}
