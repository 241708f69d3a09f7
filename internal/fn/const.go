package fn

import "github.com/gradop-ml/gradop/internal/op"

// Const returns the zero-input constant operation: out = c.
// Its gradient is the empty vector.
func Const[T op.Float](c T) op.Op[T] {
	return op.New(0, func(_ []T) (T, op.Pullback[T]) {
		return c, func(_ *T) []T {
			return []T{}
		}
	})
}
