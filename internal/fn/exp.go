package fn

import (
	"math"

	"github.com/gradop-ml/gradop/internal/op"
)

// Exp returns the exponential operation: out = e^x.
//
// Backward:
//   - d(e^x)/dx = e^x = out
func Exp[T op.Float]() op.Op[T] {
	return op.New(1, func(xs []T) (T, op.Pullback[T]) {
		e := T(math.Exp(float64(xs[0])))
		return e, func(delta *T) []T {
			return []T{deltaOr1(delta) * e}
		}
	})
}
