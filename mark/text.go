package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Text draws the Label column's string at each row's (X, Y).
type Text struct {
	Data  data.Table
	X, Y  string
	Label string

	Color color.Color

	// Offset nudges every label in canvas points.
	Offset vg.Point
}

// NewText returns a text layer over the x, y and label columns.
func NewText(tab data.Table, x, y, label string) *Text {
	return &Text{Data: tab, X: x, Y: y, Label: label}
}

func (m *Text) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Text) RequiresAxes() bool { return true }

func (m *Text) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, false) }
func (m *Text) YInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.Y, false) }

func (m *Text) LegendWidth(*charton.Theme) vg.Length { return 0 }

func (m *Text) Draw(p *charton.Panel) error {
	xs, err := positions(m.Data, m.X, p.X.Scale)
	if err != nil {
		return err
	}
	ys, err := positions(m.Data, m.Y, p.Y.Scale)
	if err != nil {
		return err
	}
	labels, err := m.Data.Strings(m.Label)
	if err != nil {
		return charton.Errorf(charton.EncodingMismatch, "%v", err)
	}

	sty := p.Theme.TickLabel
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	if m.Color != nil {
		sty.Color = m.Color
	}
	for i, l := range labels {
		if l == "" || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pt := p.Map(xs[i], ys[i])
		pt.X += m.Offset.X
		pt.Y += m.Offset.Y
		p.Canvas.FillText(sty, pt, l)
	}
	return nil
}

func (m *Text) DrawLegend(draw.Canvas, *charton.Theme) error { return nil }
