package charton

import (
	"gonum.org/v1/plot/vg"
)

// FacetStrategy selects how axis scales are shared between facet
// cells.
type FacetStrategy int

const (
	// FacetFixed shares both scales across all cells.
	FacetFixed FacetStrategy = iota
	// FacetFree recomputes both scales per cell.
	FacetFree
	// FacetFreeX recomputes only the x scale per cell.
	FacetFreeX
	// FacetFreeY recomputes only the y scale per cell.
	FacetFreeY
)

func (s FacetStrategy) String() string {
	return []string{"fixed", "free", "free_x", "free_y"}[int(s)]
}

// freeX reports whether cells own their x scale.
func (s FacetStrategy) freeX() bool { return s == FacetFree || s == FacetFreeX }

// freeY reports whether cells own their y scale.
func (s FacetStrategy) freeY() bool { return s == FacetFree || s == FacetFreeY }

// A FacetCell is one panel slot in the facet grid: its grid location,
// header label and the two rectangles it occupies.
type FacetCell struct {
	Row, Col int
	Label    string

	// Panel is the cell's plot rectangle, Header the strip above it.
	Panel  vg.Rectangle
	Header vg.Rectangle
}

const facetGap = 6

// facetCells divides container into a rows x cols grid, top-left cell
// first, each cell split into a header strip and a panel. Cells are
// assigned to labels in order; surplus grid slots get no cell.
func facetCells(container vg.Rectangle, labels []string, rows, cols int, headerH vg.Length) []FacetCell {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	w := (container.Max.X - container.Min.X - vg.Length(cols-1)*facetGap) / vg.Length(cols)
	h := (container.Max.Y - container.Min.Y - vg.Length(rows-1)*facetGap) / vg.Length(rows)

	cells := make([]FacetCell, 0, len(labels))
	for i, label := range labels {
		if i >= rows*cols {
			break
		}
		row, col := i/cols, i%cols
		// Row 0 is the top row; vg coordinates grow upward.
		x0 := container.Min.X + vg.Length(col)*(w+facetGap)
		y1 := container.Max.Y - vg.Length(row)*(h+facetGap)
		cells = append(cells, FacetCell{
			Row:   row,
			Col:   col,
			Label: label,
			Header: vg.Rectangle{
				Min: vg.Point{X: x0, Y: y1 - headerH},
				Max: vg.Point{X: x0 + w, Y: y1},
			},
			Panel: vg.Rectangle{
				Min: vg.Point{X: x0, Y: y1 - h},
				Max: vg.Point{X: x0 + w, Y: y1 - headerH},
			},
		})
	}
	return cells
}

// wrapShape picks the grid shape for n cells wrapped at the given
// column count; cols <= 0 keeps everything on one row.
func wrapShape(n, cols int) (rows, effCols int) {
	if cols <= 0 || cols > n {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}

// facetSpec is the chart-level faceting configuration: named cell
// groups in first-seen order, each carrying its own layers.
type facetSpec struct {
	strategy FacetStrategy
	cols     int // wrap width; 0 means grid by row/col labels

	names  []string
	layers map[string][]Layer

	// grid mode: distinct row and column labels in first-seen order
	// and the (row, col) location of each named group.
	rowLabels, colLabels []string
	location             map[string][2]int
}

func newFacetSpec(strategy FacetStrategy, cols int) *facetSpec {
	return &facetSpec{
		strategy: strategy,
		cols:     cols,
		layers:   make(map[string][]Layer),
		location: make(map[string][2]int),
	}
}

func (f *facetSpec) add(name string, l Layer) {
	if _, ok := f.layers[name]; !ok {
		f.names = append(f.names, name)
	}
	f.layers[name] = append(f.layers[name], l)
}

func (f *facetSpec) addGrid(row, col string, l Layer) {
	name := row + " / " + col
	ri := indexOrAppend(&f.rowLabels, row)
	ci := indexOrAppend(&f.colLabels, col)
	f.location[name] = [2]int{ri, ci}
	f.add(name, l)
}

func indexOrAppend(labels *[]string, l string) int {
	for i, v := range *labels {
		if v == l {
			return i
		}
	}
	*labels = append(*labels, l)
	return len(*labels) - 1
}

// shape returns the grid dimensions and the ordered labels with their
// slot index, for both wrap and grid mode.
func (f *facetSpec) shape() (rows, cols int, ordered []string) {
	if f.cols > 0 || len(f.rowLabels) == 0 {
		rows, cols = wrapShape(len(f.names), f.cols)
		return rows, cols, f.names
	}
	rows, cols = len(f.rowLabels), len(f.colLabels)
	ordered = make([]string, rows*cols)
	for _, name := range f.names {
		loc := f.location[name]
		ordered[loc[0]*cols+loc[1]] = name
	}
	return rows, cols, ordered
}
