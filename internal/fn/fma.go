package fn

import "github.com/gradop-ml/gradop/internal/op"

// FMA returns the fused multiply-add operation: out = x*y + z.
//
// Backward:
//   - d/dx = y
//   - d/dy = x
//   - d/dz = 1
func FMA[T op.Float]() op.Op[T] {
	return op.New(3, func(xs []T) (T, op.Pullback[T]) {
		x, y, z := xs[0], xs[1], xs[2]
		return x*y + z, func(delta *T) []T {
			d := deltaOr1(delta)
			return []T{d * y, d * x, d}
		}
	})
}
