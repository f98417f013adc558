// Package model contains domain values passed between the envelope layers.
package model

import (
	"fmt"
)

// Profile pairs ordered depth samples with a derived quantity.
// Depth is in km; Value is stress in MPa or temperature in K or °C
// depending on the producer.
type Profile struct {
	Depth []float64
	Value []float64
}

// Series is a named profile handed to the presentation layer.
type Series struct {
	Name string
	Profile
}

// Len returns the number of samples.
func (p Profile) Len() int { return len(p.Depth) }

// Empty reports whether the profile has no samples.
func (p Profile) Empty() bool { return len(p.Depth) == 0 }

// Validate checks that values and depths are index-aligned and that depth
// never decreases.
func (p Profile) Validate() error {
	if len(p.Depth) != len(p.Value) {
		return fmt.Errorf("%w: profile has %d depths and %d values", ErrInvalidArgument, len(p.Depth), len(p.Value))
	}
	for i := 1; i < len(p.Depth); i++ {
		if p.Depth[i] < p.Depth[i-1] {
			return fmt.Errorf("%w: depth decreases at sample %d (%g < %g)", ErrInvalidArgument, i, p.Depth[i], p.Depth[i-1])
		}
	}
	return nil
}

// Select returns the samples with low <= depth <= high. Both ends are
// inclusive. The result never aliases p.
func (p Profile) Select(low, high float64) Profile {
	out := Profile{Depth: []float64{}, Value: []float64{}}
	for i, z := range p.Depth {
		if z >= low && z <= high {
			out.Depth = append(out.Depth, z)
			out.Value = append(out.Value, p.Value[i])
		}
	}
	return out
}

// Last returns the deepest sample.
func (p Profile) Last() (depth, value float64, ok bool) {
	if p.Empty() {
		return 0, 0, false
	}
	i := len(p.Depth) - 1
	return p.Depth[i], p.Value[i], true
}

// Map returns a copy of p with fn applied to every value.
func (p Profile) Map(fn func(float64) float64) Profile {
	out := Profile{
		Depth: make([]float64, len(p.Depth)),
		Value: make([]float64, len(p.Value)),
	}
	copy(out.Depth, p.Depth)
	for i, v := range p.Value {
		out.Value[i] = fn(v)
	}
	return out
}

// Line builds a profile from literal (value, depth) pairs.
func Line(values, depths []float64) Profile {
	return Profile{Value: values, Depth: depths}
}
