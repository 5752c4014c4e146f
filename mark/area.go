package mark

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Area fills the region between the baseline and the y values,
// connected in ascending x order, one polygon per color group.
type Area struct {
	Data  data.Table
	X, Y  string
	Color string

	// Fill overrides the palette when no Color column is set.
	Fill color.Color

	// Opacity scales the fill alpha; zero means the default 0.6.
	Opacity float64
}

// NewArea returns an area layer over the x and y columns of tab.
func NewArea(tab data.Table, x, y string) *Area {
	return &Area{Data: tab, X: x, Y: y}
}

func (m *Area) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Area) RequiresAxes() bool { return true }

func (m *Area) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, false) }

func (m *Area) YInfo() (charton.AxisInfo, error) {
	info, err := axisInfo(m.Data, m.Y, false)
	if err != nil || !info.Present || info.Kind != charton.Linear {
		return info, err
	}
	info.Bounds.Update(0)
	return info, nil
}

func (m *Area) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Color, th)
}

func (m *Area) Draw(p *charton.Panel) error {
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

	opacity := m.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 0.6
	}

	for gi, rows := range g.rows {
		fill := groupColor(gi)
		if !g.keyed() && m.Fill != nil {
			fill = m.Fill
		}
		order := append([]int(nil), rows...)
		sort.SliceStable(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })

		var pts []vg.Point
		for _, i := range order {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			pts = append(pts, p.Map(xs[i], ys[i]))
		}
		if len(pts) < 2 {
			continue
		}
		first := p.Map(xs[order[0]], 0)
		last := p.Map(xs[order[len(order)-1]], 0)

		p.Canvas.SetColor(withAlpha(fill, opacity))
		var path vg.Path
		path.Move(first)
		for _, pt := range pts {
			path.Line(pt)
		}
		path.Line(last)
		path.Close()
		p.Canvas.Fill(path)
	}
	return nil
}

func (m *Area) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	return drawColorLegend(c, th, m.Data, m.Color, false)
}

func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	alpha := uint8(a * 255)
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}
