package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Rect draws one axis-aligned rectangle per row, spanned by the
// (XMin, YMin) and (XMax, YMax) columns. Useful for heat maps and
// annotation bands.
type Rect struct {
	Data       data.Table
	XMin, XMax string
	YMin, YMax string
	Color      string

	// Fill overrides the palette when no Color column is set.
	Fill color.Color
}

// NewRect returns a rectangle layer over the four spanning columns.
func NewRect(tab data.Table, xmin, xmax, ymin, ymax string) *Rect {
	return &Rect{Data: tab, XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

func (m *Rect) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Rect) RequiresAxes() bool { return true }

// XInfo merges the bounds of both x spanning columns.
func (m *Rect) XInfo() (charton.AxisInfo, error) {
	return spanInfo(m.Data, m.XMin, m.XMax)
}

func (m *Rect) YInfo() (charton.AxisInfo, error) {
	return spanInfo(m.Data, m.YMin, m.YMax)
}

// spanInfo aggregates the lower and upper bound columns of one axis.
func spanInfo(tab data.Table, lo, hi string) (charton.AxisInfo, error) {
	info, err := axisInfo(tab, lo, false)
	if err != nil || !info.Present {
		return info, err
	}
	upper, err := axisInfo(tab, hi, false)
	if err != nil {
		return info, err
	}
	if upper.Present {
		if upper.Kind != info.Kind {
			return info, charton.Errorf(charton.EncodingMismatch,
				"columns %q and %q have different kinds", lo, hi)
		}
		info.Bounds.Update(upper.Bounds.Min, upper.Bounds.Max)
		info.Labels = append(info.Labels, upper.Labels...)
	}
	return info, nil
}

func (m *Rect) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Color, th)
}

func (m *Rect) Draw(p *charton.Panel) error {
	x0, err := positions(m.Data, m.XMin, p.X.Scale)
	if err != nil {
		return err
	}
	x1, err := positions(m.Data, m.XMax, p.X.Scale)
	if err != nil {
		return err
	}
	y0, err := positions(m.Data, m.YMin, p.Y.Scale)
	if err != nil {
		return err
	}
	y1, err := positions(m.Data, m.YMax, p.Y.Scale)
	if err != nil {
		return err
	}
	g, err := groupBy(m.Data, m.Color)
	if err != nil {
		return err
	}

	for gi, rows := range g.rows {
		fill := groupColor(gi)
		if !g.keyed() && m.Fill != nil {
			fill = m.Fill
		}
		for _, i := range rows {
			if math.IsNaN(x0[i]) || math.IsNaN(x1[i]) || math.IsNaN(y0[i]) || math.IsNaN(y1[i]) {
				continue
			}
			fillRect(&p.Canvas, fill, p.Map(x0[i], y0[i]), p.Map(x1[i], y1[i]))
		}
	}
	return nil
}

func (m *Rect) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	return drawColorLegend(c, th, m.Data, m.Color, false)
}
