package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// PowConst returns the fixed-exponent power operation: out = x^p.
//
// Backward:
//   - d(x^p)/dx = p * x^(p-1)
func PowConst[T op.Float](p T) op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		x := xs[0]
		out := T(math.Pow(float64(x), float64(p)))
		return out, func(delta *T) []T {
			return []T{deltaOr1(delta) * p * T(math.Pow(float64(x), float64(p-1)))}
		}
	})
}
