package fn

import (
	"github.com/gradop-ml/gradop/internal/dual"
	"github.com/gradop-ml/gradop/internal/op"
)

// Rosenbrock returns the two-input Rosenbrock valley:
//
//	f(x, y) = (1-x)² + 100*(y-x²)²
//
// Global minimum 0 at (1, 1). The gradient is derived from the
// dual-number engine.
func Rosenbrock[T op.Float]() op.Op[T] {
	return op.FromDual2(func(x, y dual.Num[T]) dual.Num[T] {
		a := dual.Const[T](1).Sub(x)
		b := y.Sub(x.Mul(x))
		return a.Mul(a).Add(b.Mul(b).Scale(100))
	})
}
