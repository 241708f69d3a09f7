// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the fixed-length homogeneous vector used as the
// input container for monomorphic-arity operations.
//
// A Vec's length is fixed at construction and its elements cannot be
// mutated afterwards. Conversion to and from plain slices copies
// element-wise in order, in both directions.
//
// Example:
//
//	in := vec.Of2(3.0, 5.0)
//	x, y := in.Unpack2()
package vec

import (
	"github.com/gradop-ml/gradop/internal/vec"
)

// Float is the constraint for element types.
type Float = vec.Float

// Vec is an ordered fixed-length sequence of values of one float type.
type Vec[T Float] = vec.Vec[T]

// New builds a vector from the given elements.
func New[T Float](xs ...T) Vec[T] {
	return vec.New(xs...)
}

// Of1 builds a one-element vector.
func Of1[T Float](x T) Vec[T] {
	return vec.Of1(x)
}

// Of2 builds a two-element vector.
func Of2[T Float](x, y T) Vec[T] {
	return vec.Of2(x, y)
}

// Of3 builds a three-element vector.
func Of3[T Float](x, y, z T) Vec[T] {
	return vec.Of3(x, y, z)
}

// FromSlice builds a vector holding a copy of xs.
func FromSlice[T Float](xs []T) Vec[T] {
	return vec.FromSlice(xs)
}

// Fill builds an n-element vector with every element set to x.
func Fill[T Float](n int, x T) Vec[T] {
	return vec.Fill(n, x)
}

// Zeros builds an n-element vector of zeros.
func Zeros[T Float](n int) Vec[T] {
	return vec.Zeros[T](n)
}
