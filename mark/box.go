package mark

import (
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// Box draws one box-and-whisker glyph per x category: the box spans
// the quartiles, the middle line is the median, whiskers reach the
// furthest datum within 1.5 IQR and anything beyond is drawn as an
// outlier point.
type Box struct {
	Data data.Table
	X, Y string

	// SlotWidth is the fraction of an x slot covered by the box.
	SlotWidth float64

	Fill   color.Color
	Stroke color.Color
}

// NewBox returns a box-plot layer over the x and y columns of tab.
func NewBox(tab data.Table, x, y string) *Box {
	return &Box{Data: tab, X: x, Y: y}
}

func (m *Box) Rows() int {
	if m.Data == nil {
		return 0
	}
	return m.Data.Len()
}

func (m *Box) RequiresAxes() bool { return true }

func (m *Box) XInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.X, false) }
func (m *Box) YInfo() (charton.AxisInfo, error) { return axisInfo(m.Data, m.Y, false) }

func (m *Box) LegendWidth(*charton.Theme) vg.Length { return 0 }

func (m *Box) Draw(p *charton.Panel) error {
	xs := make([]float64, m.Data.Len())
	groupCol := ""
	if kind, ok := m.Data.Kind(m.X); ok && kind == data.String {
		groupCol = m.X
	}
	if m.X != "" {
		var err error
		xs, err = positions(m.Data, m.X, p.X.Scale)
		if err != nil {
			return err
		}
	}
	ys, err := m.Data.Floats(m.Y)
	if err != nil {
		return err
	}
	g, err := groupBy(m.Data, groupCol)
	if err != nil {
		return err
	}

	slot := m.SlotWidth
	if slot <= 0 || slot > 1 {
		slot = 0.6
	}
	half := slot / 2

	fill := m.Fill
	if fill == nil {
		fill = color.NRGBA{R: 0xcc, G: 0xdd, B: 0xee, A: 0xff}
	}
	stroke := m.Stroke
	if stroke == nil {
		stroke = color.Black
	}
	line := draw.LineStyle{Color: stroke, Width: 1}

	for _, rows := range g.rows {
		var vals []float64
		for _, i := range rows {
			if !math.IsNaN(ys[i]) {
				vals = append(vals, ys[i])
			}
		}
		if len(vals) == 0 {
			continue
		}
		x := xs[rows[0]]

		sample := stats.Sample{Xs: vals}
		q1 := sample.Quantile(0.25)
		med := sample.Quantile(0.5)
		q3 := sample.Quantile(0.75)
		iqr := q3 - q1
		loFence, hiFence := q1-1.5*iqr, q3+1.5*iqr

		// Whiskers stop at the furthest datum inside the fences.
		loWhisk, hiWhisk := q1, q3
		for _, v := range vals {
			if v >= loFence && v < loWhisk {
				loWhisk = v
			}
			if v <= hiFence && v > hiWhisk {
				hiWhisk = v
			}
		}

		yp := p.Y.Scale.Position
		fillRect(&p.Canvas, fill, p.Map(x-half, yp(q1)), p.Map(x+half, yp(q3)))
		strokeSeg(&p.Canvas, line, p.Map(x-half, yp(q1)), p.Map(x+half, yp(q1)))
		strokeSeg(&p.Canvas, line, p.Map(x+half, yp(q1)), p.Map(x+half, yp(q3)))
		strokeSeg(&p.Canvas, line, p.Map(x+half, yp(q3)), p.Map(x-half, yp(q3)))
		strokeSeg(&p.Canvas, line, p.Map(x-half, yp(q3)), p.Map(x-half, yp(q1)))
		strokeSeg(&p.Canvas, line, p.Map(x-half, yp(med)), p.Map(x+half, yp(med)))

		// Whisker stems and caps.
		strokeSeg(&p.Canvas, line, p.Map(x, yp(q1)), p.Map(x, yp(loWhisk)))
		strokeSeg(&p.Canvas, line, p.Map(x, yp(q3)), p.Map(x, yp(hiWhisk)))
		strokeSeg(&p.Canvas, line, p.Map(x-half/2, yp(loWhisk)), p.Map(x+half/2, yp(loWhisk)))
		strokeSeg(&p.Canvas, line, p.Map(x-half/2, yp(hiWhisk)), p.Map(x+half/2, yp(hiWhisk)))

		outlier := draw.GlyphStyle{Color: stroke, Radius: 2, Shape: draw.CircleGlyph{}}
		for _, v := range vals {
			if v < loFence || v > hiFence {
				p.Canvas.DrawGlyph(outlier, p.Map(x, yp(v)))
			}
		}
	}
	return nil
}

func (m *Box) DrawLegend(draw.Canvas, *charton.Theme) error { return nil }

func strokeSeg(c *draw.Canvas, sty draw.LineStyle, a, b vg.Point) {
	c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}
