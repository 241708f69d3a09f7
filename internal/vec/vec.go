// Package vec implements the fixed-length homogeneous vector used as the
// input container for monomorphic-arity operations.
//
// A Vec's length is fixed when it is built and every constructor and
// accessor copies, so a Vec handed to an operation cannot be mutated
// behind its back. Conversion to and from plain slices is element-wise and
// order-preserving in both directions.
package vec

import "fmt"

// Float is the constraint for element types.
type Float interface {
	~float32 | ~float64
}

// Vec is an ordered fixed-length sequence of values of one float type.
// The zero value is the empty vector.
type Vec[T Float] struct {
	elems []T
}

// New builds a vector from the given elements.
func New[T Float](xs ...T) Vec[T] {
	return FromSlice(xs)
}

// Of1 builds a one-element vector.
func Of1[T Float](x T) Vec[T] {
	return Vec[T]{elems: []T{x}}
}

// Of2 builds a two-element vector.
func Of2[T Float](x, y T) Vec[T] {
	return Vec[T]{elems: []T{x, y}}
}

// Of3 builds a three-element vector.
func Of3[T Float](x, y, z T) Vec[T] {
	return Vec[T]{elems: []T{x, y, z}}
}

// FromSlice builds a vector holding a copy of xs.
func FromSlice[T Float](xs []T) Vec[T] {
	elems := make([]T, len(xs))
	copy(elems, xs)
	return Vec[T]{elems: elems}
}

// Fill builds an n-element vector with every element set to x.
func Fill[T Float](n int, x T) Vec[T] {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = x
	}
	return Vec[T]{elems: elems}
}

// Zeros builds an n-element vector of zeros.
func Zeros[T Float](n int) Vec[T] {
	return Vec[T]{elems: make([]T, n)}
}

// Len returns the number of elements.
func (v Vec[T]) Len() int {
	return len(v.elems)
}

// At returns the element at index i.
func (v Vec[T]) At(i int) T {
	return v.elems[i]
}

// Values returns a copy of the elements as a plain slice.
func (v Vec[T]) Values() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Unpack1 destructures a one-element vector.
// Panics if the length is wrong.
func (v Vec[T]) Unpack1() T {
	v.mustLen(1)
	return v.elems[0]
}

// Unpack2 destructures a two-element vector.
func (v Vec[T]) Unpack2() (T, T) {
	v.mustLen(2)
	return v.elems[0], v.elems[1]
}

// Unpack3 destructures a three-element vector.
func (v Vec[T]) Unpack3() (T, T, T) {
	v.mustLen(3)
	return v.elems[0], v.elems[1], v.elems[2]
}

func (v Vec[T]) mustLen(n int) {
	if len(v.elems) != n {
		panic(fmt.Sprintf("vec: unpack of %d-element vector as %d elements", len(v.elems), n))
	}
}

// Add returns the element-wise sum v + w.
// Panics if the lengths differ.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	if len(v.elems) != len(w.elems) {
		panic(fmt.Sprintf("vec: add of %d-element and %d-element vectors", len(v.elems), len(w.elems)))
	}
	out := make([]T, len(v.elems))
	for i := range out {
		out[i] = v.elems[i] + w.elems[i]
	}
	return Vec[T]{elems: out}
}

// Scale returns v with every element multiplied by c.
func (v Vec[T]) Scale(c T) Vec[T] {
	out := make([]T, len(v.elems))
	for i := range out {
		out[i] = c * v.elems[i]
	}
	return Vec[T]{elems: out}
}

// Dot returns the inner product of v and w.
// Panics if the lengths differ.
func (v Vec[T]) Dot(w Vec[T]) T {
	if len(v.elems) != len(w.elems) {
		panic(fmt.Sprintf("vec: dot of %d-element and %d-element vectors", len(v.elems), len(w.elems)))
	}
	var sum T
	for i := range v.elems {
		sum += v.elems[i] * w.elems[i]
	}
	return sum
}

// String renders the vector as "[x0 x1 ...]".
func (v Vec[T]) String() string {
	return fmt.Sprint(v.elems)
}
