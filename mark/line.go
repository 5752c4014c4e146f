package mark

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Line connects a layer's points in ascending x order, one polyline
// per color group. Path is the sibling that keeps row order.
type Line struct {
	Data  data.Table
	X, Y  string
	Color string

	Width vg.Length
	// Stroke overrides the palette when no Color column is set.
	Stroke color.Color

	LogX, LogY bool

	// keepOrder connects rows as given instead of sorting by x.
	keepOrder bool
}

// NewLine returns a line layer over the x and y columns of tab.
func NewLine(tab data.Table, x, y string) *Line {
	return &Line{Data: tab, X: x, Y: y}
}

// NewPath returns a line layer that connects rows in their original
// order.
func NewPath(tab data.Table, x, y string) *Line {
	return &Line{Data: tab, X: x, Y: y, keepOrder: true}
}

func (m *Line) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Line) RequiresAxes() bool { return true }

func (m *Line) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, m.LogX) }
func (m *Line) YInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.Y, m.LogY) }

func (m *Line) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Color, th)
}

func (m *Line) Draw(p *charton.Panel) error {
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

	width := m.Width
	if width == 0 {
		width = 1.5
	}
	for gi, rows := range g.rows {
		sty := draw.LineStyle{
			Color:  groupColor(gi),
			Width:  width,
			Dashes: plotutil.Dashes(gi),
		}
		if !g.keyed() {
			sty.Dashes = nil
			if m.Stroke != nil {
				sty.Color = m.Stroke
			}
		}
		order := append([]int(nil), rows...)
		if !m.keepOrder {
			sort.SliceStable(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })
		}
		pts := make([]vg.Point, 0, len(order))
		for _, i := range order {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			pts = append(pts, p.Map(xs[i], ys[i]))
		}
		if len(pts) > 1 {
			p.Canvas.StrokeLines(sty, p.Canvas.ClipLinesXY(pts)...)
		}
	}
	return nil
}

func (m *Line) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	return drawColorLegend(c, th, m.Data, m.Color, true)
}
