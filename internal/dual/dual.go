// Package dual implements forward-mode automatic differentiation over
// dual numbers.
//
// A dual number carries a value together with the derivative of that value
// with respect to one chosen input. Running a closure written against Num
// with a seeded input therefore yields both the function value and one
// partial derivative in a single pass:
//
//	f := func(x dual.Num[float64]) dual.Num[float64] { return x.Mul(x) }
//	y, dy := dual.Derivative(f, 3.0) // y = 9, dy = 6
//
// Gradients of multi-input closures are computed with one seeded pass per
// input. This is the numeric engine behind the op package's auto
// constructors.
package dual

import "math"

// Float is the constraint for base numeric types the engine supports.
type Float interface {
	~float32 | ~float64
}

// Num is a dual number: a value and its derivative with respect to the
// currently seeded input.
type Num[T Float] struct {
	Val T // function value
	Dot T // derivative part
}

// Const returns a dual number with zero derivative part.
func Const[T Float](v T) Num[T] {
	return Num[T]{Val: v}
}

// Var returns a dual number seeded as the differentiation variable
// (derivative part one).
func Var[T Float](v T) Num[T] {
	return Num[T]{Val: v, Dot: 1}
}

// Add returns a + b.
func (a Num[T]) Add(b Num[T]) Num[T] {
	return Num[T]{Val: a.Val + b.Val, Dot: a.Dot + b.Dot}
}

// Sub returns a - b.
func (a Num[T]) Sub(b Num[T]) Num[T] {
	return Num[T]{Val: a.Val - b.Val, Dot: a.Dot - b.Dot}
}

// Mul returns a * b using the product rule.
func (a Num[T]) Mul(b Num[T]) Num[T] {
	return Num[T]{Val: a.Val * b.Val, Dot: a.Dot*b.Val + a.Val*b.Dot}
}

// Div returns a / b using the quotient rule.
func (a Num[T]) Div(b Num[T]) Num[T] {
	return Num[T]{
		Val: a.Val / b.Val,
		Dot: (a.Dot*b.Val - a.Val*b.Dot) / (b.Val * b.Val),
	}
}

// Neg returns -a.
func (a Num[T]) Neg() Num[T] {
	return Num[T]{Val: -a.Val, Dot: -a.Dot}
}

// Scale returns a scaled by the plain constant c.
func (a Num[T]) Scale(c T) Num[T] {
	return Num[T]{Val: c * a.Val, Dot: c * a.Dot}
}

// AddConst returns a + c for a plain constant c.
func (a Num[T]) AddConst(c T) Num[T] {
	return Num[T]{Val: a.Val + c, Dot: a.Dot}
}

// Sqrt returns sqrt(a). d(sqrt(x))/dx = 0.5/sqrt(x).
func (a Num[T]) Sqrt() Num[T] {
	r := T(math.Sqrt(float64(a.Val)))
	return Num[T]{Val: r, Dot: a.Dot / (2 * r)}
}

// Exp returns e^a.
func (a Num[T]) Exp() Num[T] {
	e := T(math.Exp(float64(a.Val)))
	return Num[T]{Val: e, Dot: a.Dot * e}
}

// Log returns the natural logarithm of a. Input values must be positive.
func (a Num[T]) Log() Num[T] {
	return Num[T]{Val: T(math.Log(float64(a.Val))), Dot: a.Dot / a.Val}
}

// Sin returns sin(a).
func (a Num[T]) Sin() Num[T] {
	return Num[T]{
		Val: T(math.Sin(float64(a.Val))),
		Dot: a.Dot * T(math.Cos(float64(a.Val))),
	}
}

// Cos returns cos(a).
func (a Num[T]) Cos() Num[T] {
	return Num[T]{
		Val: T(math.Cos(float64(a.Val))),
		Dot: -a.Dot * T(math.Sin(float64(a.Val))),
	}
}

// Tanh returns tanh(a). d(tanh(x))/dx = 1 - tanh²(x).
func (a Num[T]) Tanh() Num[T] {
	th := T(math.Tanh(float64(a.Val)))
	return Num[T]{Val: th, Dot: a.Dot * (1 - th*th)}
}

// Pow returns a^p for a plain constant exponent p.
func (a Num[T]) Pow(p T) Num[T] {
	return Num[T]{
		Val: T(math.Pow(float64(a.Val), float64(p))),
		Dot: a.Dot * p * T(math.Pow(float64(a.Val), float64(p-1))),
	}
}

// Abs returns |a|. Not differentiable at zero; the derivative there is
// taken as zero, matching the ReLU convention used elsewhere.
func (a Num[T]) Abs() Num[T] {
	switch {
	case a.Val > 0:
		return a
	case a.Val < 0:
		return a.Neg()
	default:
		return Num[T]{Val: 0, Dot: 0}
	}
}

// Max returns the larger of a and b. Ties resolve to a.
func (a Num[T]) Max(b Num[T]) Num[T] {
	if b.Val > a.Val {
		return b
	}
	return a
}

// Min returns the smaller of a and b. Ties resolve to a.
func (a Num[T]) Min(b Num[T]) Num[T] {
	if b.Val < a.Val {
		return b
	}
	return a
}

// Derivative evaluates f at x and returns the value together with df/dx,
// computed in a single forward pass.
func Derivative[T Float](f func(Num[T]) Num[T], x T) (T, T) {
	r := f(Var(x))
	return r.Val, r.Dot
}

// Gradient evaluates f at xs and returns the value together with the full
// gradient, one seeded forward pass per input.
//
// The closure must treat its input slice as read-only; the engine reuses
// one scratch slice across passes.
func Gradient[T Float](f func([]Num[T]) Num[T], xs []T) (T, []T) {
	n := len(xs)
	args := make([]Num[T], n)
	for i, x := range xs {
		args[i] = Const(x)
	}

	if n == 0 {
		return f(args).Val, nil
	}

	grad := make([]T, n)
	var val T
	for i := range xs {
		args[i].Dot = 1
		r := f(args)
		args[i].Dot = 0
		val = r.Val
		grad[i] = r.Dot
	}
	return val, grad
}

// Value evaluates f at xs without seeding any derivative. Cheaper than
// Gradient when only the forward value is needed.
func Value[T Float](f func([]Num[T]) Num[T], xs []T) T {
	args := make([]Num[T], len(xs))
	for i, x := range xs {
		args[i] = Const(x)
	}
	return f(args).Val
}
