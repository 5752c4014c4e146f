package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Point is a scatter layer: one glyph per row at (X, Y). An optional
// Color column splits the rows into colored groups with a legend; the
// glyph shape cycles with the group as well.
type Point struct {
	Data  data.Table
	X, Y  string
	Color string

	// Radius of each glyph; zero means the default.
	Radius vg.Length

	// Fill overrides the palette when no Color column is set.
	Fill color.Color

	// LogX and LogY request logarithmic scales for numeric columns.
	LogX, LogY bool
}

// NewPoint returns a scatter layer over the x and y columns of tab.
func NewPoint(tab data.Table, x, y string) *Point {
	return &Point{Data: tab, X: x, Y: y}
}

func (m *Point) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Point) RequiresAxes() bool { return true }

func (m *Point) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, m.LogX) }
func (m *Point) YInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.Y, m.LogY) }

func (m *Point) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Color, th)
}

func (m *Point) Draw(p *charton.Panel) error {
	xs, err := positions(m.Data, m.X, p.X.Scale)
	if err != nil {
		return err
	}
	ys, err := positions(m.Data, m.Y, p.Y.Scale)
	if err != nil {
		return err
	}
	g, err := groupBy(m.Data, m.Color)
	if err != nil {
		return err
	}

	radius := m.Radius
	if radius == 0 {
		radius = 3
	}
	for gi, rows := range g.rows {
		sty := draw.GlyphStyle{
			Color:  groupColor(gi),
			Radius: radius,
			Shape:  plotutil.Shape(gi),
		}
		if !g.keyed() && m.Fill != nil {
			sty.Color = m.Fill
		}
		for _, i := range rows {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			p.Canvas.DrawGlyph(sty, p.Map(xs[i], ys[i]))
		}
	}
	return nil
}

func (m *Point) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	if m.Color == "" {
		return nil
	}
	g, err := groupBy(m.Data, m.Color)
	if err != nil || !g.keyed() {
		return err
	}
	entries := make([]charton.LegendEntry, len(g.labels))
	for i, l := range g.labels {
		entries[i] = charton.LegendEntry{
			Label: l,
			Color: groupColor(i),
			Glyph: plotutil.Shape(i),
		}
	}
	charton.DrawLegend(c, th, entries)
	return nil
}
