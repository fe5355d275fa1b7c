package anim

import (
	"strconv"
	"strings"
)

// Value holds an animatable quantity: either a single scalar or a
// fixed-length vector (such as an RGB colour or an XY position). The shape
// is fixed at construction and never coerced.
type Value struct {
	scalar float64
	vec    []float64
}

// Scalar creates a scalar Value.
func Scalar(v float64) Value {
	return Value{scalar: v}
}

// Vector creates a fixed-length vector Value.
func Vector(components ...float64) Value {
	vec := make([]float64, len(components))
	copy(vec, components)
	return Value{vec: vec}
}

// IsVector reports whether the Value is a vector.
func (v Value) IsVector() bool {
	return v.vec != nil
}

// Len returns the number of components; a scalar has length 1.
func (v Value) Len() int {
	if v.vec != nil {
		return len(v.vec)
	}
	return 1
}

// Float returns the scalar component. For vectors it returns the first
// component.
func (v Value) Float() float64 {
	if v.vec != nil {
		return v.vec[0]
	}
	return v.scalar
}

// Component returns the i-th component.
func (v Value) Component(i int) float64 {
	if v.vec != nil {
		return v.vec[i]
	}
	return v.scalar
}

// Components returns a copy of all components.
func (v Value) Components() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.Component(i)
	}
	return out
}

// SameShape reports whether two Values are both scalars, or both vectors
// of the same length.
func (v Value) SameShape(o Value) bool {
	if v.IsVector() != o.IsVector() {
		return false
	}
	return v.Len() == o.Len()
}

// Lerp interpolates from v towards end. Each component uses the same eased
// factor; an eased factor outside [0,1] overshoots past the endpoints.
func (v Value) Lerp(end Value, eased float64) Value {
	if !v.IsVector() {
		return Scalar(v.scalar + (end.scalar-v.scalar)*eased)
	}
	out := make([]float64, len(v.vec))
	for i := range v.vec {
		out[i] = v.vec[i] + (end.vec[i]-v.vec[i])*eased
	}
	return Value{vec: out}
}

// String formats the Value for logs and wire payloads: scalars as a bare
// number, vectors as comma-separated components.
func (v Value) String() string {
	if !v.IsVector() {
		return strconv.FormatFloat(v.scalar, 'g', -1, 64)
	}
	parts := make([]string, len(v.vec))
	for i, c := range v.vec {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
