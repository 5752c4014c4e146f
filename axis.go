package charton

import (
	"math"
	"strconv"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// An Axis owns one scale together with its computed ticks and an
// optional explicit override set. Axes are built fresh for every
// render call and frozen afterwards.
type Axis struct {
	Label string
	Scale *Scale

	// Ticks is the computed tick set. It always anchors the pixel
	// mapping, even when an explicit override is rendered instead.
	Ticks []Tick

	// Explicit, when non-nil, is rendered in place of Ticks.
	Explicit []Tick
}

// NewAxis builds an axis for s with ticks computed against the given
// pixel extent.
func NewAxis(label string, s *Scale, extent float64) (*Axis, error) {
	ticks, err := s.Ticks(extent)
	if err != nil {
		return nil, err
	}
	return &Axis{Label: label, Scale: s, Ticks: ticks}, nil
}

// Rendered returns the ticks to draw: the explicit override when one
// is set, otherwise the computed set.
func (a *Axis) Rendered() []Tick {
	if a.Explicit != nil {
		return a.Explicit
	}
	return a.Ticks
}

// OverrideValues replaces the rendered ticks of a continuous axis with
// ticks at the given data values. Positions resolve through the same
// scale that produced the computed set.
func (a *Axis) OverrideValues(values []float64) {
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{a.Scale.Position(v), formatValue(v)})
	}
	a.Explicit = ticks
}

// OverrideLabels replaces the rendered ticks of a discrete axis with
// ticks for the given category labels. Each label is looked up in the
// computed category order; a label absent from that order is silently
// dropped.
func (a *Axis) OverrideLabels(labels []string) {
	ticks := make([]Tick, 0, len(labels))
	for _, l := range labels {
		if i, ok := a.Scale.CategoryIndex(l); ok {
			ticks = append(ticks, Tick{float64(i), l})
		}
	}
	a.Explicit = ticks
}

// formatValue renders v with the shortest decimal representation that
// round-trips, falling back to scientific notation at the extremes.
func formatValue(v float64) string {
	a := math.Abs(v)
	if a >= 1e6 || (a > 0 && a < 1e-3) {
		return strconv.FormatFloat(v, 'e', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// drawHorizontal renders a along the bottom edge of plot. pos maps a
// tick position in scale space to a horizontal canvas coordinate.
func (a *Axis) drawHorizontal(c draw.Canvas, th *Theme, plot vg.Rectangle, pos func(float64) vg.Length) {
	c.StrokeLine2(th.AxisLine, plot.Min.X, plot.Min.Y, plot.Max.X, plot.Min.Y)
	for _, t := range a.Rendered() {
		x := pos(t.Position)
		if x < plot.Min.X-1 || x > plot.Max.X+1 {
			continue
		}
		c.StrokeLine2(th.GridLine, x, plot.Min.Y, x, plot.Max.Y)
		c.StrokeLine2(th.TickLine, x, plot.Min.Y, x, plot.Min.Y-th.TickLength)
		sty := th.TickLabel
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		c.FillText(sty, vg.Point{X: x, Y: plot.Min.Y - th.TickLength - 2}, t.Label)
	}
	if a.Label != "" {
		sty := th.AxisLabel
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YBottom
		c.FillText(sty, vg.Point{X: (plot.Min.X + plot.Max.X) / 2, Y: c.Min.Y}, a.Label)
	}
}

// drawVertical renders a along the left edge of plot. pos maps a tick
// position in scale space to a vertical canvas coordinate.
func (a *Axis) drawVertical(c draw.Canvas, th *Theme, plot vg.Rectangle, pos func(float64) vg.Length) {
	c.StrokeLine2(th.AxisLine, plot.Min.X, plot.Min.Y, plot.Min.X, plot.Max.Y)
	for _, t := range a.Rendered() {
		y := pos(t.Position)
		if y < plot.Min.Y-1 || y > plot.Max.Y+1 {
			continue
		}
		c.StrokeLine2(th.GridLine, plot.Min.X, y, plot.Max.X, y)
		c.StrokeLine2(th.TickLine, plot.Min.X, y, plot.Min.X-th.TickLength, y)
		sty := th.TickLabel
		sty.XAlign = draw.XRight
		sty.YAlign = draw.YCenter
		c.FillText(sty, vg.Point{X: plot.Min.X - th.TickLength - 2, Y: y}, t.Label)
	}
	if a.Label != "" {
		sty := th.AxisLabel
		sty.Rotation = math.Pi / 2
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		c.FillText(sty, vg.Point{X: c.Min.X, Y: (plot.Min.Y + plot.Max.Y) / 2}, a.Label)
	}
}
