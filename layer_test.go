package charton

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// fakeLayer is a minimal Layer for exercising aggregation, margin
// negotiation and rendering without real marks.
type fakeLayer struct {
	rows    int
	axes    bool
	x, y    AxisInfo
	legendW vg.Length
	drawn   int
}

func newFakeLayer() *fakeLayer {
	l := &fakeLayer{rows: 1, axes: true}
	l.x.NoPadPreference()
	l.y.NoPadPreference()
	return l
}

func (l *fakeLayer) continuousX(field string, min, max float64) *fakeLayer {
	l.x.Present = true
	l.x.Field = field
	l.x.Kind = Linear
	l.x.Bounds = Interval{min, max}
	return l
}

func (l *fakeLayer) continuousY(field string, min, max float64) *fakeLayer {
	l.y.Present = true
	l.y.Field = field
	l.y.Kind = Linear
	l.y.Bounds = Interval{min, max}
	return l
}

func (l *fakeLayer) discreteX(field string, labels ...string) *fakeLayer {
	l.x.Present = true
	l.x.Field = field
	l.x.Kind = Discrete
	l.x.Labels = labels
	return l
}

func (l *fakeLayer) Rows() int                { return l.rows }
func (l *fakeLayer) RequiresAxes() bool       { return l.axes }
func (l *fakeLayer) XInfo() (AxisInfo, error) { return l.x, nil }
func (l *fakeLayer) YInfo() (AxisInfo, error) { return l.y, nil }

func (l *fakeLayer) LegendWidth(*Theme) vg.Length { return l.legendW }

func (l *fakeLayer) Draw(*Panel) error { l.drawn++; return nil }

func (l *fakeLayer) DrawLegend(draw.Canvas, *Theme) error { return nil }

func TestAggregateContinuousUnion(t *testing.T) {
	g := newAxisAggregate("x")
	a := newFakeLayer().continuousX("speed", 0, 10)
	b := newFakeLayer().continuousX("speed", 5, 20)
	for _, l := range []*fakeLayer{a, b} {
		info, _ := l.XInfo()
		if err := g.add(info); err != nil {
			t.Fatal(err)
		}
	}
	s, err := g.scale(unsetInterval())
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != 0 || s.Max != 20 {
		t.Errorf("resolved domain [%g,%g], want [0,20]", s.Min, s.Max)
	}
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	g := newAxisAggregate("x")
	a := newFakeLayer().discreteX("kind", "b", "a", "b")
	b := newFakeLayer().discreteX("kind", "c", "a")
	for _, l := range []*fakeLayer{a, b} {
		info, _ := l.XInfo()
		if err := g.add(info); err != nil {
			t.Fatal(err)
		}
	}
	s, err := g.scale(unsetInterval())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "a", "c"}
	if diff := cmp.Diff(want, s.Categories); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateKindMismatch(t *testing.T) {
	g := newAxisAggregate("x")
	cont, _ := newFakeLayer().continuousX("v", 0, 1).XInfo()
	disc, _ := newFakeLayer().discreteX("v", "a").XInfo()
	if err := g.add(cont); err != nil {
		t.Fatal(err)
	}
	err := g.add(disc)
	if KindOf(err) != EncodingMismatch {
		t.Errorf("got %v, want EncodingMismatch", err)
	}
}

func TestAggregateSkipsAbsentAxis(t *testing.T) {
	g := newAxisAggregate("x")
	var absent AxisInfo
	absent.NoPadPreference()
	if err := g.add(absent); err != nil {
		t.Fatal(err)
	}
	with, _ := newFakeLayer().continuousX("v", 3, 7).XInfo()
	if err := g.add(with); err != nil {
		t.Fatal(err)
	}
	s, err := g.scale(unsetInterval())
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != 3 || s.Max != 7 {
		t.Errorf("domain [%g,%g], want [3,7]: absent axis must not contribute [0,0]", s.Min, s.Max)
	}
}

func TestAggregateDegenerateExpansion(t *testing.T) {
	g := newAxisAggregate("y")
	info, _ := newFakeLayer().continuousY("v", 5, 5).YInfo()
	if err := g.add(info); err != nil {
		t.Fatal(err)
	}
	s, err := g.scale(unsetInterval())
	if err != nil {
		t.Fatal(err)
	}
	if s.Max-s.Min != 1.0 {
		t.Errorf("expanded width %g, want 1.0", s.Max-s.Min)
	}
	if s.Min != 4.5 || s.Max != 5.5 {
		t.Errorf("expanded domain [%g,%g], want [4.5,5.5]", s.Min, s.Max)
	}
}

func TestAggregatePlaceholderScale(t *testing.T) {
	g := newAxisAggregate("x")
	s, err := g.scale(unsetInterval())
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != Linear || s.Min != 0 || s.Max != 1 {
		t.Errorf("placeholder scale %v, want linear [0,1]", s)
	}
}

func TestAggregateDomainOverride(t *testing.T) {
	g := newAxisAggregate("x")
	info, _ := newFakeLayer().continuousX("v", 0, 10).XInfo()
	if err := g.add(info); err != nil {
		t.Fatal(err)
	}
	s, err := g.scale(Interval{-5, 50})
	if err != nil {
		t.Fatal(err)
	}
	if s.Min != -5 || s.Max != 50 {
		t.Errorf("domain [%g,%g], want override [-5,50]", s.Min, s.Max)
	}
}

func TestLabelResolutionOrder(t *testing.T) {
	g := newAxisAggregate("x")
	if got := g.label("", "X"); got != "X" {
		t.Errorf("fallback label %q, want X", got)
	}
	info, _ := newFakeLayer().continuousX("speed", 0, 1).XInfo()
	g.add(info)
	if got := g.label("", "X"); got != "speed" {
		t.Errorf("field label %q, want speed", got)
	}
	if got := g.label("velocity", "X"); got != "velocity" {
		t.Errorf("explicit label %q, want velocity", got)
	}
}

func TestPadResolution(t *testing.T) {
	th := DefaultTheme()

	g := newAxisAggregate("x")
	info, _ := newFakeLayer().continuousX("v", 0, 1).XInfo()
	g.add(info)
	min, max := g.pad(th)
	if min != th.PadContinuous || max != th.PadContinuous {
		t.Errorf("default pads %g/%g, want theme %g", min, max, th.PadContinuous)
	}

	g2 := newAxisAggregate("x")
	over, _ := newFakeLayer().continuousX("v", 0, 1).XInfo()
	over.PadMin = 0.05
	over.PadMax = math.NaN()
	g2.add(over)
	min, max = g2.pad(th)
	if min != 0.05 {
		t.Errorf("layer pad min %g, want 0.05", min)
	}
	if max != th.PadContinuous {
		t.Errorf("pad max %g, want theme default", max)
	}
}
