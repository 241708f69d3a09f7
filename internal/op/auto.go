package op

import "github.com/gradop-ml/gradop/internal/dual"

// FromDual builds an operation from a closure written against the
// dual-number engine. The forward value is computed with constant duals;
// the gradient is derived on demand with one seeded pass per input, then
// scaled by the external delta when one is supplied.
func FromDual[T Float](arity int, f func([]dual.Num[T]) dual.Num[T]) Op[T] {
	return New(arity, func(xs []T) (T, Pullback[T]) {
		v := dual.Value(f, xs)
		return v, func(delta *T) []T {
			_, grad := dual.Gradient(f, xs)
			if grad == nil {
				grad = []T{}
			}
			return scaleGrad(grad, delta)
		}
	})
}

// FromDual1 is FromDual specialized to one input.
func FromDual1[T Float](f func(dual.Num[T]) dual.Num[T]) Op[T] {
	return FromDual(1, func(args []dual.Num[T]) dual.Num[T] {
		return f(args[0])
	})
}

// FromDual2 is FromDual specialized to two inputs.
func FromDual2[T Float](f func(x, y dual.Num[T]) dual.Num[T]) Op[T] {
	return FromDual(2, func(args []dual.Num[T]) dual.Num[T] {
		return f(args[0], args[1])
	})
}

// FromDual3 is FromDual specialized to three inputs.
func FromDual3[T Float](f func(x, y, z dual.Num[T]) dual.Num[T]) Op[T] {
	return FromDual(3, func(args []dual.Num[T]) dual.Num[T] {
		return f(args[0], args[1], args[2])
	})
}
