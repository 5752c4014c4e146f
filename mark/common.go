// Package mark provides the layer implementations drawn by a chart:
// points, lines, bars, areas, boxes, arcs and friends. Every mark
// satisfies charton.Layer.
package mark

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

// axisInfo resolves the axis requirement of one encoded column. An
// empty column name means the encoding is absent. log upgrades a
// numeric column to a logarithmic scale.
func axisInfo(tab data.Table, col string, log bool) (charton.AxisInfo, error) {
	var info charton.AxisInfo
	info.NoPadPreference()
	if col == "" {
		return info, nil
	}
	kind, ok := tab.Kind(col)
	if !ok {
		return info, charton.Errorf(charton.EncodingMismatch, "column %q not in data source", col)
	}
	info.Present = true
	info.Field = col
	info.Bounds = charton.Interval{Min: math.NaN(), Max: math.NaN()}

	switch kind {
	case data.Number:
		info.Kind = charton.Linear
		if log {
			info.Kind = charton.Logarithmic
		}
		vals, err := tab.Floats(col)
		if err != nil {
			return info, charton.Errorf(charton.EncodingMismatch, "%v", err)
		}
		info.Bounds.Update(vals...)
	case data.Time:
		info.Kind = charton.Time
		ts, err := tab.Times(col)
		if err != nil {
			return info, charton.Errorf(charton.EncodingMismatch, "%v", err)
		}
		for _, t := range ts {
			info.Bounds.Update(float64(t.Unix()))
		}
	default:
		info.Kind = charton.Discrete
		labels, err := tab.Strings(col)
		if err != nil {
			return info, charton.Errorf(charton.EncodingMismatch, "%v", err)
		}
		info.Labels = labels
	}
	return info, nil
}

// positions converts one encoded column into scale-space positions:
// numbers through the scale transform, times as Unix seconds, strings
// as category slots. Values a discrete scale does not know map to NaN.
func positions(tab data.Table, col string, s *charton.Scale) ([]float64, error) {
	kind, ok := tab.Kind(col)
	if !ok {
		return nil, charton.Errorf(charton.EncodingMismatch, "column %q not in data source", col)
	}
	out := make([]float64, tab.Len())
	switch kind {
	case data.Number:
		vals, err := tab.Floats(col)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = s.Position(v)
		}
	case data.Time:
		ts, err := tab.Times(col)
		if err != nil {
			return nil, err
		}
		for i, t := range ts {
			out[i] = float64(t.Unix())
		}
	default:
		labels, err := tab.Strings(col)
		if err != nil {
			return nil, err
		}
		for i, l := range labels {
			if slot, ok := s.CategoryIndex(l); ok {
				out[i] = float64(slot)
			} else {
				out[i] = math.NaN()
			}
		}
	}
	return out, nil
}

// groups partitions row indices by a categorical column, keeping the
// categories in first-seen order. A missing column yields one unnamed
// group holding every row.
type groups struct {
	labels []string
	rows   [][]int
}

func groupBy(tab data.Table, col string) (*groups, error) {
	if col == "" {
		all := make([]int, tab.Len())
		for i := range all {
			all[i] = i
		}
		return &groups{labels: []string{""}, rows: [][]int{all}}, nil
	}
	labels, err := tab.Strings(col)
	if err != nil {
		return nil, charton.Errorf(charton.EncodingMismatch, "color column: %v", err)
	}
	g := &groups{}
	index := make(map[string]int)
	for i, l := range labels {
		j, ok := index[l]
		if !ok {
			j = len(g.labels)
			index[l] = j
			g.labels = append(g.labels, l)
			g.rows = append(g.rows, nil)
		}
		g.rows[j] = append(g.rows[j], i)
	}
	return g, nil
}

// keyed reports whether the grouping came from a real color column.
func (g *groups) keyed() bool {
	return len(g.labels) != 1 || g.labels[0] != ""
}

// groupColor is the palette assignment for group i.
func groupColor(i int) color.Color { return plotutil.Color(i) }

// legendWidth is the shared LegendWidth implementation for marks with
// an optional color encoding.
func legendWidth(tab data.Table, col string, th *charton.Theme) vg.Length {
	if col == "" {
		return 0
	}
	g, err := groupBy(tab, col)
	if err != nil || !g.keyed() {
		return 0
	}
	return charton.LegendWidth(th, g.labels)
}

// drawColorLegend renders one swatch per color group.
func drawColorLegend(c draw.Canvas, th *charton.Theme, tab data.Table, col string, line bool) error {
	if col == "" {
		return nil
	}
	g, err := groupBy(tab, col)
	if err != nil {
		return err
	}
	if !g.keyed() {
		return nil
	}
	entries := make([]charton.LegendEntry, len(g.labels))
	for i, l := range g.labels {
		entries[i] = charton.LegendEntry{Label: l, Color: groupColor(i)}
		if line {
			entries[i].Line = &draw.LineStyle{Color: groupColor(i), Width: 2}
		}
	}
	charton.DrawLegend(c, th, entries)
	return nil
}
