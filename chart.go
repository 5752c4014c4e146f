package charton

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A DisplaySink receives rendered chart markup for inline display, for
// example inside a notebook runtime. The chart never detects such
// runtimes itself; the caller supplies the sink explicitly.
type DisplaySink interface {
	Display(mime string, content []byte) error
}

// A Chart composes layers over one shared coordinate frame and renders
// them to SVG or PNG. Configuration is fluent; rendering is a pure
// function of the accumulated state, so rendering twice yields
// byte-identical output.
type Chart struct {
	layers []Layer
	facets *facetSpec
	theme  *Theme

	title          string
	xLabel, yLabel string

	xDomain, yDomain Interval

	xTickValues, yTickValues []float64
	xTickLabels, yTickLabels []string

	swapped    bool
	showLegend *bool
	showAxes   *bool
}

// New returns an empty chart with the default theme.
func New() *Chart {
	return &Chart{
		theme:   DefaultTheme(),
		xDomain: unsetInterval(),
		yDomain: unsetInterval(),
	}
}

// AddLayer appends a layer. Layers with no rows are dropped silently.
func (c *Chart) AddLayer(l Layer) *Chart {
	if l.Rows() == 0 {
		return c
	}
	c.layers = append(c.layers, l)
	return c
}

// Title sets the chart title.
func (c *Chart) Title(s string) *Chart { c.title = s; return c }

// XLabel overrides the x axis title.
func (c *Chart) XLabel(s string) *Chart { c.xLabel = s; return c }

// YLabel overrides the y axis title.
func (c *Chart) YLabel(s string) *Chart { c.yLabel = s; return c }

// XDomain pins the continuous x domain, overriding the aggregated
// layer bounds.
func (c *Chart) XDomain(min, max float64) *Chart {
	c.xDomain = Interval{min, max}
	return c
}

// YDomain pins the continuous y domain.
func (c *Chart) YDomain(min, max float64) *Chart {
	c.yDomain = Interval{min, max}
	return c
}

// XTicks replaces the rendered x ticks of a continuous axis with ticks
// at the given values.
func (c *Chart) XTicks(values ...float64) *Chart { c.xTickValues = values; return c }

// YTicks replaces the rendered y ticks of a continuous axis.
func (c *Chart) YTicks(values ...float64) *Chart { c.yTickValues = values; return c }

// XTickLabels restricts a discrete x axis to the given category
// labels. Labels not present in the computed category order are
// dropped.
func (c *Chart) XTickLabels(labels ...string) *Chart { c.xTickLabels = labels; return c }

// YTickLabels restricts a discrete y axis to the given labels.
func (c *Chart) YTickLabels(labels ...string) *Chart { c.yTickLabels = labels; return c }

// SwapAxes flips the orientation: the x encoding runs vertically, the
// y encoding horizontally. Calling it twice restores the original
// orientation.
func (c *Chart) SwapAxes() *Chart { c.swapped = !c.swapped; return c }

// Legend forces the legend on or off; the default shows it whenever
// some layer has legend entries.
func (c *Chart) Legend(show bool) *Chart { c.showLegend = &show; return c }

// Axes forces the axes on or off; the default shows them whenever some
// layer requires a coordinate frame.
func (c *Chart) Axes(show bool) *Chart { c.showAxes = &show; return c }

// Theme replaces the chart theme.
func (c *Chart) Theme(th *Theme) *Chart { c.theme = th; return c }

// Size sets the canvas size in points.
func (c *Chart) Size(w, h vg.Length) *Chart {
	c.theme = c.theme.WithSize(w, h)
	return c
}

// FacetWrap switches the chart into wrapped faceting: cells are added
// with AddFacetLayer and laid out row-major, cols per row.
func (c *Chart) FacetWrap(cols int, strategy FacetStrategy) *Chart {
	c.facets = newFacetSpec(strategy, cols)
	return c
}

// FacetGrid switches the chart into grid faceting: cells are added
// with AddGridLayer and placed by their row and column labels.
func (c *Chart) FacetGrid(strategy FacetStrategy) *Chart {
	c.facets = newFacetSpec(strategy, 0)
	return c
}

// AddFacetLayer adds a layer to the named wrap cell. Cells appear in
// first-seen order. Zero-row layers are dropped.
func (c *Chart) AddFacetLayer(cell string, l Layer) *Chart {
	if c.facets == nil || l.Rows() == 0 {
		return c
	}
	c.facets.add(cell, l)
	return c
}

// AddGridLayer adds a layer to the grid cell at the given row and
// column labels. Zero-row layers are dropped.
func (c *Chart) AddGridLayer(row, col string, l Layer) *Chart {
	if c.facets == nil || l.Rows() == 0 {
		return c
	}
	c.facets.addGrid(row, col, l)
	return c
}

// ----------------------------------------------------------------------------
// Output

// SVG renders the chart to SVG markup.
func (c *Chart) SVG() ([]byte, error) {
	cnv := vgsvg.New(c.theme.Width, c.theme.Height)
	if err := c.render(draw.New(cnv)); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := cnv.WriteTo(&buf); err != nil {
		return nil, &Error{Kind: RenderFailure, Msg: "serialize svg", Err: err}
	}
	return buf.Bytes(), nil
}

// PNG renders the chart to a PNG raster.
func (c *Chart) PNG() ([]byte, error) {
	cnv := vgimg.New(c.theme.Width, c.theme.Height)
	if err := c.render(draw.New(cnv)); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: cnv}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, &Error{Kind: RenderFailure, Msg: "encode png", Err: err}
	}
	return buf.Bytes(), nil
}

// Save renders the chart and writes it to path. The format follows
// the file extension; anything but ".svg" and ".png" fails before any
// output is produced.
func (c *Chart) Save(path string) error {
	var (
		out []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		out, err = c.SVG()
	case ".png":
		out, err = c.PNG()
	default:
		return Errorf(UnsupportedOutputFormat, "cannot infer output format from %q", path)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &Error{Kind: IoFailure, Msg: fmt.Sprintf("write %s", path), Err: err}
	}
	return nil
}

// Display renders the chart to SVG and hands it to sink.
func (c *Chart) Display(sink DisplaySink) error {
	out, err := c.SVG()
	if err != nil {
		return err
	}
	if err := sink.Display("image/svg+xml", out); err != nil {
		return &Error{Kind: IoFailure, Msg: "display chart", Err: err}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Rendering

// Render draws the chart into an arbitrary canvas. SVG, PNG and Save
// all go through it.
func (c *Chart) Render(dc draw.Canvas) error {
	return c.render(dc)
}

func (c *Chart) allLayers() []Layer {
	if c.facets == nil {
		return c.layers
	}
	var all []Layer
	for _, name := range c.facets.names {
		all = append(all, c.facets.layers[name]...)
	}
	return all
}

func (c *Chart) render(dc draw.Canvas) error {
	th := c.theme

	dc.SetColor(th.Background)
	dc.Fill(rectPath(vg.Rectangle{Min: dc.Min, Max: dc.Max}))

	layers := c.allLayers()
	if len(layers) == 0 {
		return nil
	}

	if c.title != "" {
		dc.FillText(th.Title, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - 2}, c.title)
	}

	showLegend := anyLegend(layers, th)
	if c.showLegend != nil {
		showLegend = *c.showLegend
	}
	showAxes := anyAxes(layers)
	if c.showAxes != nil {
		showAxes = *c.showAxes
	}

	effRight := negotiateRightMargin(th, layers, showLegend)
	size := dc.Size()
	plot := vg.Rectangle{
		Min: vg.Point{
			X: dc.Min.X + vg.Length(th.MarginLeft)*size.X,
			Y: dc.Min.Y + vg.Length(th.MarginBottom)*size.Y,
		},
		Max: vg.Point{
			X: dc.Max.X - vg.Length(effRight)*size.X,
			Y: dc.Max.Y - vg.Length(th.MarginTop)*size.Y,
		},
	}

	if c.facets != nil {
		if err := c.renderFacets(dc, plot, showAxes); err != nil {
			return err
		}
	} else {
		xExt, yExt := plotExtents(plot, c.swapped)
		coord, err := c.resolveCoord(c.layers, c.layers, xExt, yExt)
		if err != nil {
			return err
		}
		if err := c.renderPanel(dc, plot, coord, c.layers, showAxes); err != nil {
			return err
		}
	}

	if showLegend {
		corridor := draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: plot.Max.X + legendPad, Y: plot.Min.Y},
				Max: vg.Point{X: dc.Max.X, Y: plot.Max.Y},
			},
		}
		for _, l := range layers {
			if l.LegendWidth(th) <= 0 {
				continue
			}
			if err := l.DrawLegend(corridor, th); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderPanel fills one plot rectangle, draws its axes when requested
// and then every layer.
func (c *Chart) renderPanel(dc draw.Canvas, plot vg.Rectangle, coord *Cartesian, layers []Layer, showAxes bool) error {
	th := c.theme

	dc.SetColor(th.PanelFill)
	dc.Fill(rectPath(plot))

	panel := newPanel(draw.Canvas{Canvas: dc.Canvas, Rectangle: plot}, th, coord, c.swapped)

	if showAxes {
		if c.swapped {
			coord.X.drawVertical(dc, th, plot, panel.mapX)
			coord.Y.drawHorizontal(dc, th, plot, panel.mapY)
		} else {
			coord.X.drawHorizontal(dc, th, plot, panel.mapX)
			coord.Y.drawVertical(dc, th, plot, panel.mapY)
		}
	}

	for _, l := range layers {
		if err := l.Draw(panel); err != nil {
			return err
		}
	}
	return nil
}

// renderFacets lays the facet grid into plot and renders each cell as
// its own panel. Fixed axes aggregate over every cell's layers, free
// axes over the cell's own.
func (c *Chart) renderFacets(dc draw.Canvas, plot vg.Rectangle, showAxes bool) error {
	th := c.theme
	f := c.facets
	rows, cols, ordered := f.shape()
	headerH := th.FacetTitle.Font.Size + 6
	cells := facetCells(plot, ordered, rows, cols, headerH)

	all := c.allLayers()
	for _, cell := range cells {
		cellLayers := f.layers[cell.Label]
		if len(cellLayers) == 0 {
			continue
		}

		dc.SetColor(th.HeaderFill)
		dc.Fill(rectPath(cell.Header))
		center := vg.Point{
			X: (cell.Header.Min.X + cell.Header.Max.X) / 2,
			Y: (cell.Header.Min.Y + cell.Header.Max.Y) / 2,
		}
		dc.FillText(th.FacetTitle, center, cell.Label)

		xLayers, yLayers := all, all
		if f.strategy.freeX() {
			xLayers = cellLayers
		}
		if f.strategy.freeY() {
			yLayers = cellLayers
		}
		xExt, yExt := plotExtents(cell.Panel, c.swapped)
		coord, err := c.resolveCoord(xLayers, yLayers, xExt, yExt)
		if err != nil {
			return err
		}

		// Shared axes are drawn only on the outer edge of the grid.
		drawAxes := showAxes
		if drawAxes && f.strategy == FacetFixed {
			drawAxes = cell.Col == 0 || cell.Row == rows-1
		}
		if err := c.renderPanel(dc, cell.Panel, coord, cellLayers, drawAxes); err != nil {
			return err
		}
	}
	return nil
}

// resolveCoord runs the aggregation and axis construction sequence:
// margins are already resolved, so the tick generators see the final
// pixel extents.
func (c *Chart) resolveCoord(xLayers, yLayers []Layer, xExtent, yExtent float64) (*Cartesian, error) {
	gx, gy := newAxisAggregate("x"), newAxisAggregate("y")
	for _, l := range xLayers {
		info, err := l.XInfo()
		if err != nil {
			return nil, err
		}
		if err := gx.add(info); err != nil {
			return nil, err
		}
	}
	for _, l := range yLayers {
		info, err := l.YInfo()
		if err != nil {
			return nil, err
		}
		if err := gy.add(info); err != nil {
			return nil, err
		}
	}

	sx, err := gx.scale(c.xDomain)
	if err != nil {
		return nil, err
	}
	sy, err := gy.scale(c.yDomain)
	if err != nil {
		return nil, err
	}

	ax, err := NewAxis(gx.label(c.xLabel, "X"), sx, xExtent)
	if err != nil {
		return nil, err
	}
	ay, err := NewAxis(gy.label(c.yLabel, "Y"), sy, yExtent)
	if err != nil {
		return nil, err
	}

	if c.xTickValues != nil && sx.Kind != Discrete {
		ax.OverrideValues(c.xTickValues)
	}
	if c.xTickLabels != nil && sx.Kind == Discrete {
		ax.OverrideLabels(c.xTickLabels)
	}
	if c.yTickValues != nil && sy.Kind != Discrete {
		ay.OverrideValues(c.yTickValues)
	}
	if c.yTickLabels != nil && sy.Kind == Discrete {
		ay.OverrideLabels(c.yTickLabels)
	}

	xPadMin, xPadMax := gx.pad(c.theme)
	yPadMin, yPadMax := gy.pad(c.theme)
	return &Cartesian{
		X: ax, Y: ay,
		XPadMin: xPadMin, XPadMax: xPadMax,
		YPadMin: yPadMin, YPadMax: yPadMax,
	}, nil
}

// plotExtents returns the pixel length available to the x and y axis,
// which trade places when the orientation is swapped.
func plotExtents(plot vg.Rectangle, swapped bool) (xExt, yExt float64) {
	w := float64(plot.Max.X - plot.Min.X)
	h := float64(plot.Max.Y - plot.Min.Y)
	if swapped {
		return h, w
	}
	return w, h
}

func anyLegend(layers []Layer, th *Theme) bool {
	for _, l := range layers {
		if l.LegendWidth(th) > 0 {
			return true
		}
	}
	return false
}

func anyAxes(layers []Layer) bool {
	for _, l := range layers {
		if l.RequiresAxes() {
			return true
		}
	}
	return false
}

func rectPath(r vg.Rectangle) vg.Path {
	var p vg.Path
	p.Move(r.Min)
	p.Line(vg.Point{X: r.Max.X, Y: r.Min.Y})
	p.Line(r.Max)
	p.Line(vg.Point{X: r.Min.X, Y: r.Max.Y})
	p.Close()
	return p
}
