package charton

import (
	"gonum.org/v1/plot/vg"
)

// Cartesian binds a resolved x and y axis together with their padding
// fractions and produces the pixel mappers for a rectangular plot
// area. Swapping axes is a layout decision made by the chart, not by
// the coordinate system: a swapped chart asks for the x mapper against
// the vertical extent and vice versa.
type Cartesian struct {
	X, Y *Axis

	XPadMin, XPadMax float64
	YPadMin, YPadMax float64
}

// XMapper returns the mapper from x scale space to a canvas coordinate
// spanning [start, start+extent].
func (c *Cartesian) XMapper(start, extent vg.Length) func(float64) vg.Length {
	return axisMapper(c.X, c.XPadMin, c.XPadMax, start, extent)
}

// YMapper returns the mapper from y scale space to a canvas coordinate
// spanning [start, start+extent].
func (c *Cartesian) YMapper(start, extent vg.Length) func(float64) vg.Length {
	return axisMapper(c.Y, c.YPadMin, c.YPadMax, start, extent)
}

// axisMapper builds the linear scale-space-to-pixel map for one axis.
//
// Continuous axes anchor on the first and last computed tick and pad
// each side by the tick span times padFrac/numTicks, so explicit tick
// overrides never move the drawn data. Discrete axes map category
// slots 0..n-1 into the extent with padMin slots of room below the
// first slot and padMax above the last; a single category lands in the
// center.
func axisMapper(a *Axis, padMin, padMax float64, start, extent vg.Length) func(float64) vg.Length {
	if a.Scale.Kind == Discrete {
		n := len(a.Scale.Categories)
		if n == 0 {
			center := start + extent/2
			return func(float64) vg.Length { return center }
		}
		// A single category sits centered when the pads are equal;
		// offsets within its slot still spread out.
		lo := -padMin
		hi := float64(n-1) + padMax
		scale := float64(extent) / (hi - lo)
		return func(p float64) vg.Length {
			return start + vg.Length((p-lo)*scale)
		}
	}

	ticks := a.Ticks
	lo := ticks[0].Position
	hi := ticks[len(ticks)-1].Position
	span := hi - lo
	if span <= 0 {
		center := start + extent/2
		return func(float64) vg.Length { return center }
	}
	n := float64(len(ticks))
	lo -= span * padMin / n
	hi += span * padMax / n
	scale := float64(extent) / (hi - lo)
	return func(p float64) vg.Length {
		return start + vg.Length((p-lo)*scale)
	}
}
