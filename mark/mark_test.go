package mark

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
)

func sampleTable() *data.Frame {
	return data.New().
		AddFloats("x", []float64{1, 2, 3, 4}).
		AddFloats("y", []float64{10, 20, 15, 30}).
		AddStrings("kind", []string{"b", "a", "b", "c"}).
		AddTimes("when", []time.Time{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		})
}

func TestAxisInfoKinds(t *testing.T) {
	tab := sampleTable()

	num, err := axisInfo(tab, "x", false)
	if err != nil {
		t.Fatal(err)
	}
	if !num.Present || num.Kind != charton.Linear {
		t.Errorf("numeric info %+v", num)
	}
	if num.Bounds.Min != 1 || num.Bounds.Max != 4 {
		t.Errorf("bounds [%g,%g], want [1,4]", num.Bounds.Min, num.Bounds.Max)
	}

	logInfo, err := axisInfo(tab, "x", true)
	if err != nil {
		t.Fatal(err)
	}
	if logInfo.Kind != charton.Logarithmic {
		t.Errorf("log upgrade missing: %v", logInfo.Kind)
	}

	disc, err := axisInfo(tab, "kind", false)
	if err != nil {
		t.Fatal(err)
	}
	if disc.Kind != charton.Discrete {
		t.Errorf("discrete info %+v", disc)
	}
	if diff := cmp.Diff([]string{"b", "a", "b", "c"}, disc.Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	temporal, err := axisInfo(tab, "when", false)
	if err != nil {
		t.Fatal(err)
	}
	if temporal.Kind != charton.Time {
		t.Errorf("temporal info %+v", temporal)
	}

	absent, err := axisInfo(tab, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if absent.Present {
		t.Error("empty column reported present")
	}

	if _, err := axisInfo(tab, "missing", false); charton.KindOf(err) != charton.EncodingMismatch {
		t.Errorf("missing column: got %v, want EncodingMismatch", err)
	}
}

func TestGroupByFirstSeen(t *testing.T) {
	g, err := groupBy(sampleTable(), "kind")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, g.labels); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2}, g.rows[0]); diff != "" {
		t.Errorf("rows of b mismatch (-want +got):\n%s", diff)
	}
	if !g.keyed() {
		t.Error("real grouping not keyed")
	}

	all, err := groupBy(sampleTable(), "")
	if err != nil {
		t.Fatal(err)
	}
	if all.keyed() {
		t.Error("missing column grouping reported keyed")
	}
	if len(all.rows[0]) != 4 {
		t.Errorf("ungrouped rows %d, want 4", len(all.rows[0]))
	}
}

func TestPositionsDiscreteUnknown(t *testing.T) {
	s := charton.NewDiscreteScale([]string{"a", "b"})
	pos, err := positions(sampleTable(), "kind", s)
	if err != nil {
		t.Fatal(err)
	}
	// Rows: b a b c; c is unknown to the scale.
	if pos[0] != 1 || pos[1] != 0 || pos[2] != 1 {
		t.Errorf("positions = %v", pos[:3])
	}
	if !math.IsNaN(pos[3]) {
		t.Errorf("unknown category mapped to %g, want NaN", pos[3])
	}
}

func TestBarBoundsIncludeBaseline(t *testing.T) {
	m := NewBar(sampleTable(), "kind", "y")
	info, err := m.YInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Bounds.Min != 0 {
		t.Errorf("bar y min %g, want baseline 0", info.Bounds.Min)
	}
}

func TestErrorBarBounds(t *testing.T) {
	tab := data.New().
		AddFloats("x", []float64{1, 2}).
		AddFloats("y", []float64{10, 20}).
		AddFloats("e", []float64{2, 5})
	m := NewErrorBar(tab, "x", "y", "e")
	info, err := m.YInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Bounds.Min != 8 || info.Bounds.Max != 25 {
		t.Errorf("bounds [%g,%g], want [8,25]", info.Bounds.Min, info.Bounds.Max)
	}
}

func TestSpanInfo(t *testing.T) {
	tab := data.New().
		AddFloats("lo", []float64{0, 2}).
		AddFloats("hi", []float64{5, 9})
	info, err := spanInfo(tab, "lo", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if info.Bounds.Min != 0 || info.Bounds.Max != 9 {
		t.Errorf("bounds [%g,%g], want [0,9]", info.Bounds.Min, info.Bounds.Max)
	}
}

func TestMarksRender(t *testing.T) {
	tab := sampleTable()

	point := NewPoint(tab, "x", "y")
	point.Color = "kind"
	line := NewLine(tab, "when", "y")
	bar := NewBar(tab, "kind", "y")
	bar.Color = "kind"
	area := NewArea(tab, "x", "y")
	box := NewBox(tab, "kind", "y")

	cases := []struct {
		name  string
		layer charton.Layer
	}{
		{"point", point},
		{"line", line},
		{"bar", bar},
		{"area", area},
		{"box", box},
		{"errorbar", NewErrorBar(
			data.New().
				AddFloats("x", []float64{1, 2}).
				AddFloats("y", []float64{3, 4}).
				AddFloats("e", []float64{1, 1}),
			"x", "y", "e")},
		{"text", NewText(tab, "x", "y", "kind")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := charton.New().AddLayer(c.layer).SVG(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestRuleOverlaysDataLayer(t *testing.T) {
	chart := charton.New().
		AddLayer(NewPoint(sampleTable(), "x", "y")).
		AddLayer(HRule(15)).
		AddLayer(VRule(2.5))
	if _, err := chart.SVG(); err != nil {
		t.Fatal(err)
	}
}

func TestArcRendersWithoutAxes(t *testing.T) {
	tab := data.New().
		AddFloats("share", []float64{3, 1, 2}).
		AddStrings("name", []string{"a", "b", "c"})
	arc := NewArc(tab, "share", "name")
	if arc.RequiresAxes() {
		t.Error("arc must not request axes")
	}
	out, err := charton.New().AddLayer(arc).SVG()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("no output")
	}
}

func TestSwappedBarRenders(t *testing.T) {
	chart := charton.New().
		AddLayer(NewBar(sampleTable(), "kind", "y")).
		SwapAxes()
	if _, err := chart.SVG(); err != nil {
		t.Fatal(err)
	}
}

func TestLogScaleRejectsNonPositive(t *testing.T) {
	tab := data.New().
		AddFloats("x", []float64{0, 1, 2}).
		AddFloats("y", []float64{1, 2, 3})
	m := NewPoint(tab, "x", "y")
	m.LogX = true
	_, err := charton.New().AddLayer(m).SVG()
	if charton.KindOf(err) != charton.InvalidDomain {
		t.Fatalf("got %v, want InvalidDomain", err)
	}
}
