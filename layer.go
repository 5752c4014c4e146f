package charton

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AxisInfo describes what one layer requires of one axis: whether the
// encoding exists at all, the scale kind, the continuous bounds or
// discrete labels it contributes, and an optional padding preference.
type AxisInfo struct {
	Present bool
	Field   string
	Kind    ScaleKind

	// Bounds are the layer's continuous bounds, NaN-unset for
	// discrete encodings.
	Bounds Interval

	// Labels are the discrete labels in row order, duplicates
	// allowed; aggregation deduplicates keeping first-seen order.
	Labels []string

	// PadMin and PadMax override the theme's default axis padding
	// when not NaN.
	PadMin, PadMax float64
}

// NoPadPreference marks both padding overrides of info as unset.
func (info *AxisInfo) NoPadPreference() {
	info.PadMin, info.PadMax = math.NaN(), math.NaN()
}

// A Layer is one mark family bound to data. The chart interrogates
// layers for their axis requirements and legend footprint during
// layout, then hands each one a panel to draw into.
type Layer interface {
	// Rows is the number of data rows; zero-row layers are dropped
	// at AddLayer time.
	Rows() int

	// RequiresAxes reports whether the layer needs a coordinate
	// frame at all. A chart whose layers all answer false renders
	// without axes.
	RequiresAxes() bool

	XInfo() (AxisInfo, error)
	YInfo() (AxisInfo, error)

	// LegendWidth is the pixel width this layer's legend needs, or
	// zero when it has none.
	LegendWidth(th *Theme) vg.Length

	Draw(p *Panel) error

	// DrawLegend renders the layer's legend entries into c.
	DrawLegend(c draw.Canvas, th *Theme) error
}

// ----------------------------------------------------------------------------
// Aggregation

// axisAggregate folds the AxisInfo of every layer into a single scale
// requirement for one axis.
type axisAggregate struct {
	name string // "x" or "y", for error messages

	present bool
	field   string
	kind    ScaleKind

	bounds Interval
	labels []string
	seen   map[string]bool

	padMin, padMax float64
}

func newAxisAggregate(name string) *axisAggregate {
	return &axisAggregate{
		name:   name,
		bounds: unsetInterval(),
		seen:   make(map[string]bool),
		padMin: math.NaN(),
		padMax: math.NaN(),
	}
}

func (g *axisAggregate) add(info AxisInfo) error {
	if !info.Present {
		return nil
	}
	if !g.present {
		g.present = true
		g.field = info.Field
		g.kind = info.Kind
	} else if g.kind != info.Kind {
		return Errorf(EncodingMismatch, "%s axis mixes %s and %s scales", g.name, g.kind, info.Kind)
	}
	if info.Kind == Discrete {
		for _, l := range info.Labels {
			if !g.seen[l] {
				g.seen[l] = true
				g.labels = append(g.labels, l)
			}
		}
	} else {
		g.bounds.Update(info.Bounds.Min, info.Bounds.Max)
	}
	if math.IsNaN(g.padMin) && !math.IsNaN(info.PadMin) {
		g.padMin = info.PadMin
	}
	if math.IsNaN(g.padMax) && !math.IsNaN(info.PadMax) {
		g.padMax = info.PadMax
	}
	return nil
}

// scale materializes the aggregated requirement. An explicit override
// interval takes precedence over the aggregated bounds; a degenerate
// continuous domain is widened by half a unit on each side.
func (g *axisAggregate) scale(override Interval) (*Scale, error) {
	if !g.present && override.IsUnset() {
		// No layer encodes this axis. Keep a placeholder domain so
		// the coordinate system stays well formed; the axis is not
		// rendered unless some layer asks for axes.
		return NewContinuousScale(Linear, 0, 1)
	}
	if g.kind == Discrete {
		return NewDiscreteScale(g.labels), nil
	}
	bounds := g.bounds
	if !math.IsNaN(override.Min) {
		bounds.Min = override.Min
	}
	if !math.IsNaN(override.Max) {
		bounds.Max = override.Max
	}
	if bounds.IsUnset() {
		return nil, Errorf(InvalidDomain, "no %s values to derive a domain from", g.name)
	}
	if bounds.Degenerate() {
		bounds.Min -= 0.5
		bounds.Max += 0.5
	}
	return NewContinuousScale(g.kind, bounds.Min, bounds.Max)
}

// pad resolves the padding fractions for the axis: the first layer
// preference wins, then the theme default for the scale kind.
func (g *axisAggregate) pad(th *Theme) (min, max float64) {
	def := th.PadContinuous
	if g.kind == Discrete {
		def = th.PadDiscrete
	}
	min, max = g.padMin, g.padMax
	if math.IsNaN(min) {
		min = def
	}
	if math.IsNaN(max) {
		max = def
	}
	return min, max
}

// label resolves the axis title: chart-level override, then the first
// layer's field name, then a hard fallback.
func (g *axisAggregate) label(override, fallback string) string {
	if override != "" {
		return override
	}
	if g.field != "" {
		return g.field
	}
	return fallback
}
