package mark

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
)

// Rule draws reference lines across the full plot at fixed data
// values: vertical lines at the X values, horizontal lines at the Y
// values. Rules contribute nothing to domain aggregation, so they
// only annotate what other layers establish.
type Rule struct {
	X, Y []float64

	Stroke color.Color
	Width  vg.Length
	Dashes []vg.Length
}

// VRule returns vertical reference lines at the given x values.
func VRule(xs ...float64) *Rule { return &Rule{X: xs} }

// HRule returns horizontal reference lines at the given y values.
func HRule(ys ...float64) *Rule { return &Rule{Y: ys} }

func (m *Rule) Rows() int { return len(m.X) + len(m.Y) }

func (m *Rule) RequiresAxes() bool { return true }

func (m *Rule) XInfo() (charton.AxisInfo, error) {
	var info charton.AxisInfo
	info.NoPadPreference()
	return info, nil
}

func (m *Rule) YInfo() (charton.AxisInfo, error) {
	var info charton.AxisInfo
	info.NoPadPreference()
	return info, nil
}

func (m *Rule) LegendWidth(*charton.Theme) vg.Length { return 0 }

func (m *Rule) Draw(p *charton.Panel) error {
	stroke := m.Stroke
	if stroke == nil {
		stroke = color.RGBA{0x60, 0x60, 0x60, 0xff}
	}
	width := m.Width
	if width == 0 {
		width = 1
	}
	line := draw.LineStyle{Color: stroke, Width: width, Dashes: m.Dashes}
	rect := p.Rect()

	for _, x := range m.X {
		pos := p.MapX(p.X.Scale.Position(x))
		if p.Swapped {
			strokeSeg(&p.Canvas, line, vg.Point{X: rect.Min.X, Y: pos}, vg.Point{X: rect.Max.X, Y: pos})
		} else {
			strokeSeg(&p.Canvas, line, vg.Point{X: pos, Y: rect.Min.Y}, vg.Point{X: pos, Y: rect.Max.Y})
		}
	}
	for _, y := range m.Y {
		pos := p.MapY(p.Y.Scale.Position(y))
		if p.Swapped {
			strokeSeg(&p.Canvas, line, vg.Point{X: pos, Y: rect.Min.Y}, vg.Point{X: pos, Y: rect.Max.Y})
		} else {
			strokeSeg(&p.Canvas, line, vg.Point{X: rect.Min.X, Y: pos}, vg.Point{X: rect.Max.X, Y: pos})
		}
	}
	return nil
}

func (m *Rule) DrawLegend(draw.Canvas, *charton.Theme) error { return nil }
