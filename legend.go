package charton

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// plotFloor is the minimum plot width in pixels; legends are
	// compressed before the plot area shrinks below it.
	plotFloor = 200

	// legendPad is the fixed gap added once to the widest legend.
	legendPad = 10

	legendSwatch  = 14 // width of the color swatch
	legendGap     = 4  // gap between swatch and label
	legendLeading = 6  // vertical gap between entries
)

// negotiateRightMargin resolves the effective right-margin fraction
// from the configured margin and the layers' legend requirements. The
// plot area wins over the legend: it never drops below plotFloor.
func negotiateRightMargin(th *Theme, layers []Layer, showLegend bool) float64 {
	total := float64(th.Width)
	drawX0 := th.MarginLeft * total
	baseRight := th.MarginRight * total

	var need float64
	if showLegend {
		for _, l := range layers {
			if w := float64(l.LegendWidth(th)); w > need {
				need = w
			}
		}
		if need > 0 {
			need += legendPad
		}
	}

	plotWidth := total - drawX0 - baseRight
	switch {
	case plotWidth < plotFloor:
		right := total - drawX0 - plotFloor
		if right < 0 {
			right = 0
		}
		return right / total
	case need > baseRight:
		if total-drawX0-need >= plotFloor {
			return need / total
		}
		return (total - drawX0 - plotFloor) / total
	default:
		return th.MarginRight
	}
}

// A LegendEntry is one swatch-label pair in a layer's legend.
type LegendEntry struct {
	Label string
	Color color.Color

	// Glyph, when non-nil, draws a point swatch instead of a filled
	// square.
	Glyph draw.GlyphDrawer

	// Line, when non-nil, draws a line swatch.
	Line *draw.LineStyle
}

// LegendWidth returns the corridor width needed for the given labels:
// swatch, gap and the widest label at the theme's legend font.
func LegendWidth(th *Theme, labels []string) vg.Length {
	if len(labels) == 0 {
		return 0
	}
	var widest vg.Length
	for _, l := range labels {
		if w := th.Legend.Font.Width(l); w > widest {
			widest = w
		}
	}
	return legendSwatch + legendGap + widest
}

// DrawLegend renders entries top-down into c.
func DrawLegend(c draw.Canvas, th *Theme, entries []LegendEntry) {
	rowH := vg.Length(th.Legend.Font.Size) + legendLeading
	y := c.Max.Y - rowH/2
	for _, e := range entries {
		if y < c.Min.Y {
			break
		}
		switch {
		case e.Glyph != nil:
			e.Glyph.DrawGlyph(&c, draw.GlyphStyle{
				Color:  e.Color,
				Radius: legendSwatch / 3,
				Shape:  e.Glyph,
			}, vg.Point{X: c.Min.X + legendSwatch/2, Y: y})
		case e.Line != nil:
			c.StrokeLine2(*e.Line, c.Min.X, y, c.Min.X+legendSwatch, y)
		default:
			c.SetColor(e.Color)
			var p vg.Path
			half := vg.Length(legendSwatch) / 2
			p.Move(vg.Point{X: c.Min.X, Y: y - half/2})
			p.Line(vg.Point{X: c.Min.X + legendSwatch, Y: y - half/2})
			p.Line(vg.Point{X: c.Min.X + legendSwatch, Y: y + half/2})
			p.Line(vg.Point{X: c.Min.X, Y: y + half/2})
			p.Close()
			c.Fill(p)
		}
		c.FillText(th.Legend, vg.Point{X: c.Min.X + legendSwatch + legendGap, Y: y}, e.Label)
		y -= rowH
	}
}
