package charton

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsUnset reports whether any edge of i is still undetermined.
func (i Interval) IsUnset() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Degenerate reports whether i has collapsed to a single value.
func (i Interval) Degenerate() bool {
	return !i.IsUnset() && math.Abs(i.Max-i.Min) < 1e-12
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// ScaleKind

// ScaleKind selects one of the handful of known scale types.
type ScaleKind int

const (
	Linear ScaleKind = iota
	Discrete
	Time
	Logarithmic
)

// String returns the type of k.
func (k ScaleKind) String() string {
	return []string{"linear", "discrete", "time", "log"}[int(k)]
}

// ----------------------------------------------------------------------------
// Scale

// A Scale is an immutable description of how domain values map to a
// normalized position on one axis. Continuous kinds (Linear, Time,
// Logarithmic) carry an interval, Discrete carries an ordered list of
// category labels in first-seen order.
type Scale struct {
	Kind ScaleKind

	// Interval is the resolved continuous domain. For Logarithmic
	// scales it is in data space and strictly positive.
	Interval

	// Categories holds the discrete labels, deduplicated, in
	// first-seen order across all layers.
	Categories []string

	index map[string]int
}

// NewContinuousScale returns a scale of the given continuous kind over
// [min, max]. Logarithmic scales reject domains touching zero or below.
func NewContinuousScale(kind ScaleKind, min, max float64) (*Scale, error) {
	if kind == Discrete {
		panic("charton: discrete scale built from a continuous domain")
	}
	if !have(min) || !have(max) || min > max {
		return nil, Errorf(InvalidDomain, "bad %s domain [%g, %g]", kind, min, max)
	}
	if kind == Logarithmic && min <= 0 {
		return nil, Errorf(InvalidDomain, "log scale requires positive values, got min %g", min)
	}
	return &Scale{Kind: kind, Interval: Interval{min, max}}, nil
}

// NewDiscreteScale returns a scale over the given ordered category list.
func NewDiscreteScale(categories []string) *Scale {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &Scale{
		Kind:       Discrete,
		Interval:   unsetInterval(),
		Categories: categories,
		index:      index,
	}
}

// CategoryIndex returns the slot of label in the category order.
func (s *Scale) CategoryIndex(label string) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

// Position transforms a data value into scale space: identity for
// linear and time scales, log10 for logarithmic ones. All continuous
// pixel mapping is linear in scale space.
func (s *Scale) Position(x float64) float64 {
	if s.Kind == Logarithmic {
		return math.Log10(x)
	}
	return x
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Kind == Discrete {
		return fmt.Sprintf("%s %q", s.Kind, s.Categories)
	}
	return fmt.Sprintf("%s [%g:%g]", s.Kind, s.Min, s.Max)
}

func have(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
