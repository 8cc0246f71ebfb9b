// Package vec2 provides generic 2-D vectors. Not to be confused with
// slices, these are pairs representing points and directions in the
// plane. Pure value math; no concurrency concerns.
package vec2

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any coordinate type the vector operations make sense for.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec is a 2-vector of some numeric coordinate type.
type Vec[T Number] struct {
	X, Y T
}

// New constructs a vector from its coordinates.
func New[T Number](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Zero is the origin.
func Zero[T Number]() Vec[T] {
	return Vec[T]{}
}

// Add returns the component-wise sum v + u.
func (v Vec[T]) Add(u Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns the component-wise difference v - u.
func (v Vec[T]) Sub(u Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - u.X, Y: v.Y - u.Y}
}

// Neg returns the additive inverse.
func (v Vec[T]) Neg() Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec[T]) Scale(c T) Vec[T] {
	return Vec[T]{X: v.X * c, Y: v.Y * c}
}

// Dot returns the inner product of two vectors.
func (v Vec[T]) Dot(u Vec[T]) T {
	return v.X*u.X + v.Y*u.Y
}

func (v Vec[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
