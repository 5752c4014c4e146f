package mark

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Arc draws a pie: one wedge per row, angles proportional to the
// Value column, colored and labeled by the Label column. Arc layers
// request no coordinate axes, so a chart of only arcs renders without
// an axis frame.
type Arc struct {
	Data  data.Table
	Value string
	Label string

	// Hole turns the pie into a donut; radius fraction in [0, 1).
	Hole float64
}

// NewArc returns a pie layer over the value and label columns of tab.
func NewArc(tab data.Table, value, label string) *Arc {
	return &Arc{Data: tab, Value: value, Label: label}
}

func (m *Arc) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Arc) RequiresAxes() bool { return false }

func (m *Arc) XInfo() (charton.AxisInfo, error) {
	var info charton.AxisInfo
	info.NoPadPreference()
	return info, nil
}

func (m *Arc) YInfo() (charton.AxisInfo, error) {
	var info charton.AxisInfo
	info.NoPadPreference()
	return info, nil
}

func (m *Arc) LegendWidth(th *charton.Theme) vg.Length {
	return legendWidth(m.Data, m.Label, th)
}

func (m *Arc) Draw(p *charton.Panel) error {
	vals, err := m.Data.Floats(m.Value)
	if err != nil {
		return charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	var total float64
	for _, v := range vals {
		if v > 0 && !math.IsNaN(v) {
			total += v
		}
	}
	if total <= 0 {
		return nil
	}

	rect := p.Rect()
	center := vg.Point{
		X: (rect.Min.X + rect.Max.X) / 2,
		Y: (rect.Min.Y + rect.Max.Y) / 2,
	}
	radius := rect.Max.X - rect.Min.X
	if h := rect.Max.Y - rect.Min.Y; h < radius {
		radius = h
	}
	radius = radius / 2 * 0.9

	hole := vg.Length(0)
	if m.Hole > 0 && m.Hole < 1 {
		hole = radius * vg.Length(m.Hole)
	}

	start := math.Pi / 2 // first wedge starts at twelve o'clock
	for i, v := range vals {
		if v <= 0 || math.IsNaN(v) {
			continue
		}
		sweep := -2 * math.Pi * v / total
		p.Canvas.SetColor(groupColor(i))
		var path vg.Path
		if hole > 0 {
			path.Move(vg.Point{
				X: center.X + hole*vg.Length(math.Cos(start)),
				Y: center.Y + hole*vg.Length(math.Sin(start)),
			})
			path.Line(vg.Point{
				X: center.X + radius*vg.Length(math.Cos(start)),
				Y: center.Y + radius*vg.Length(math.Sin(start)),
			})
			path.Arc(center, radius, start, sweep)
			path.Line(vg.Point{
				X: center.X + hole*vg.Length(math.Cos(start+sweep)),
				Y: center.Y + hole*vg.Length(math.Sin(start+sweep)),
			})
			path.Arc(center, hole, start+sweep, -sweep)
		} else {
			path.Move(center)
			path.Line(vg.Point{
				X: center.X + radius*vg.Length(math.Cos(start)),
				Y: center.Y + radius*vg.Length(math.Sin(start)),
			})
			path.Arc(center, radius, start, sweep)
		}
		path.Close()
		p.Canvas.Fill(path)
		start += sweep
	}
	return nil
}

func (m *Arc) DrawLegend(c draw.Canvas, th *charton.Theme) error {
	if m.Label == "" {
		return nil
	}
	labels, err := m.Data.Strings(m.Label)
	if err != nil {
		return charton.Errorf(charton.EncodingMismatch, "%v", err)
	}
	entries := make([]charton.LegendEntry, len(labels))
	for i, l := range labels {
		entries[i] = charton.LegendEntry{Label: l, Color: groupColor(i)}
	}
	charton.DrawLegend(c, th, entries)
	return nil
}
