package fn

import "github.com/gradop-ml/gradop/internal/op"

// ReLU returns the rectified-linear operation: out = max(0, x).
//
// Backward:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The kink at zero takes derivative zero.
func ReLU[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		x := xs[0]
		var out T
		if x > 0 {
			out = x
		}
		return out, func(delta *T) []T {
			if x > 0 {
				return []T{deltaOr1(delta)}
			}
			return []T{0}
		}
	})
}
