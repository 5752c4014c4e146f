package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// ErrorBar draws a vertical error interval per row: either symmetric
// around Y using the Err column, or asymmetric between the YLow and
// YHigh columns when both are set.
type ErrorBar struct {
	Data data.Table
	X, Y string

	Err         string
	YLow, YHigh string

	// CapWidth is the cap width in x slot fractions.
	CapWidth float64

	Stroke color.Color
}

// NewErrorBar returns a symmetric error-bar layer.
func NewErrorBar(tab data.Table, x, y, errCol string) *ErrorBar {
	return &ErrorBar{Data: tab, X: x, Y: y, Err: errCol}
}

func (m *ErrorBar) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *ErrorBar) RequiresAxes() bool { return true }

func (m *ErrorBar) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, false) }

// YInfo covers the full error extent, not just the midpoints.
func (m *ErrorBar) YInfo() (charton.AxisInfo, error) {
	if m.YLow != "" && m.YHigh != "" {
		return spanInfo(m.Data, m.YLow, m.YHigh)
	}
	info, err := axisInfo(m.Data, m.Y, false)
	if err != nil || !info.Present || m.Err == "" {
		return info, err
	}
	ys, err := m.Data.Floats(m.Y)
	if err != nil {
		return info, charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	es, err := m.Data.Floats(m.Err)
	if err != nil {
		return info, charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	for i := range ys {
		info.Bounds.Update(ys[i]-es[i], ys[i]+es[i])
	}
	return info, nil
}

func (m *ErrorBar) LegendWidth(*charton.Theme) vg.Length { return 0 }

func (m *ErrorBar) Draw(p *charton.Panel) error {
	xs, err := positions(m.Data, m.X, p.X.Scale)
	if err != nil {
		return err
	}
	lo, hi, err := m.bounds()
	if err != nil {
		return err
	}

	stroke := m.Stroke
	if stroke == nil {
		stroke = color.Black
	}
	line := draw.LineStyle{Color: stroke, Width: 1}
	capW := m.CapWidth
	if capW <= 0 {
		capW = 0.15
	}
	yp := p.Y.Scale.Position

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(lo[i]) || math.IsNaN(hi[i]) {
			continue
		}
		strokeSeg(&p.Canvas, line, p.Map(xs[i], yp(lo[i])), p.Map(xs[i], yp(hi[i])))
		strokeSeg(&p.Canvas, line, p.Map(xs[i]-capW/2, yp(lo[i])), p.Map(xs[i]+capW/2, yp(lo[i])))
		strokeSeg(&p.Canvas, line, p.Map(xs[i]-capW/2, yp(hi[i])), p.Map(xs[i]+capW/2, yp(hi[i])))
	}
	return nil
}

// bounds resolves the per-row low and high y values in data space.
func (m *ErrorBar) bounds() (lo, hi []float64, err error) {
	if m.YLow != "" && m.YHigh != "" {
		lo, err = m.Data.Floats(m.YLow)
		if err != nil {
			return nil, nil, charton.Errorf(charton.EncodingMismatch, "%v", err)
		}
		hi, err = m.Data.Floats(m.YHigh)
		if err != nil {
			return nil, nil, charton.Errorf(charton.EncodingMismatch, "%v", err)
		}
		return lo, hi, nil
	}
	ys, err := m.Data.Floats(m.Y)
	if err != nil {
		return nil, nil, charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	es, err := m.Data.Floats(m.Err)
	if err != nil {
		return nil, nil, charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	lo = make([]float64, len(ys))
	hi = make([]float64, len(ys))
	for i := range ys {
		lo[i], hi[i] = ys[i]-es[i], ys[i]+es[i]
	}
	return lo, hi, nil
}

func (m *ErrorBar) DrawLegend(draw.Canvas, *charton.Theme) error { return nil }
