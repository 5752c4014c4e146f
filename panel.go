package charton

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Panel is the drawing context handed to each layer: the clipped
// plot canvas, the resolved axes and the scale-space-to-pixel mapping.
// When Swapped is set the x encoding runs vertically and the y
// encoding horizontally; Map performs the transposition so marks never
// need to.
type Panel struct {
	Canvas  draw.Canvas
	Theme   *Theme
	Swapped bool
	X, Y    *Axis

	mapX, mapY func(float64) vg.Length
}

func newPanel(c draw.Canvas, th *Theme, coord *Cartesian, swapped bool) *Panel {
	p := &Panel{Canvas: c, Theme: th, Swapped: swapped, X: coord.X, Y: coord.Y}
	if swapped {
		p.mapX = coord.XMapper(c.Min.Y, c.Max.Y-c.Min.Y)
		p.mapY = coord.YMapper(c.Min.X, c.Max.X-c.Min.X)
	} else {
		p.mapX = coord.XMapper(c.Min.X, c.Max.X-c.Min.X)
		p.mapY = coord.YMapper(c.Min.Y, c.Max.Y-c.Min.Y)
	}
	return p
}

// MapData converts a point in data space to canvas coordinates,
// applying the scale transforms first.
func (p *Panel) MapData(x, y float64) vg.Point {
	return p.Map(p.X.Scale.Position(x), p.Y.Scale.Position(y))
}

// Map converts a point in scale space to canvas coordinates.
func (p *Panel) Map(x, y float64) vg.Point {
	if p.Swapped {
		return vg.Point{X: p.mapY(y), Y: p.mapX(x)}
	}
	return vg.Point{X: p.mapX(x), Y: p.mapY(y)}
}

// MapX converts an x scale-space value to its canvas coordinate along
// whichever direction the x encoding runs.
func (p *Panel) MapX(x float64) vg.Length { return p.mapX(x) }

// MapY converts a y scale-space value to its canvas coordinate along
// whichever direction the y encoding runs.
func (p *Panel) MapY(y float64) vg.Length { return p.mapY(y) }

// Rect is the plot area in canvas coordinates.
func (p *Panel) Rect() vg.Rectangle {
	return vg.Rectangle{Min: p.Canvas.Min, Max: p.Canvas.Max}
}
