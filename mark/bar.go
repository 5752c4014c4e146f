package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Bar draws one bar per row from the baseline to the y value. With a
// Color column the bars of one x slot are dodged side by side.
type Bar struct {
	Data  data.Table
	X, Y  string
	Color string

	// SlotWidth is the fraction of an x slot covered by bars.
	SlotWidth float64

	// Fill overrides the palette when no Color column is set.
	Fill color.Color

	LogY bool
}

// NewBar returns a bar layer over the x and y columns of tab.
func NewBar(tab data.Table, x, y string) *Bar {
	return &Bar{Data: tab, X: x, Y: y}
}

func (m *Bar) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Bar) RequiresAxes() bool { return true }

func (m *Bar) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, false) }

// YInfo extends the bounds to the baseline so bars are never cut off.
func (m *Bar) YInfo() (charton.AxisInfo, error) {
	info, err := axisInfo(m.Data, m.Y, m.LogY)
	if err != nil || !info.Present || info.Kind != charton.Linear {
		return info, err
	}
	info.Bounds.Update(0)
	return info, nil
}

func (m *Bar) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Color, th)
}

func (m *Bar) Draw(p *charton.Panel) error {
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

	slot := m.SlotWidth
	if slot <= 0 || slot > 1 {
		slot = 0.8
	}
	barW := slot / float64(len(g.rows))

	base := 0.0
	if p.Y.Scale.Kind == charton.Logarithmic {
		base = p.Y.Scale.Position(p.Y.Scale.Min)
	}

	for gi, rows := range g.rows {
		fill := groupColor(gi)
		if !g.keyed() && m.Fill != nil {
			fill = m.Fill
		}
		offset := -slot/2 + float64(gi)*barW
		for _, i := range rows {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			a := p.Map(xs[i]+offset, base)
			b := p.Map(xs[i]+offset+barW, ys[i])
			fillRect(&p.Canvas, fill, a, b)
		}
	}
	return nil
}

func (m *Bar) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	return drawColorLegend(c, th, m.Data, m.Color, false)
}

// fillRect fills the axis-aligned rectangle spanned by two opposite
// corners, in either order.
func fillRect(c *draw.Canvas, fill color.Color, a, b vg.Point) {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c.SetColor(fill)
	var path vg.Path
	path.Move(vg.Point{X: x0, Y: y0})
	path.Line(vg.Point{X: x1, Y: y0})
	path.Line(vg.Point{X: x1, Y: y1})
	path.Line(vg.Point{X: x0, Y: y1})
	path.Close()
	c.Fill(path)
}
