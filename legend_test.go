package charton

import (
	"testing"
)

func TestNegotiateRightMarginDefault(t *testing.T) {
	th := DefaultTheme() // 500 wide, right margin 0.10
	l := newFakeLayer().continuousX("v", 0, 1)
	got := negotiateRightMargin(th, []Layer{l}, true)
	if got != th.MarginRight {
		t.Errorf("margin %g, want configured %g", got, th.MarginRight)
	}
}

func TestNegotiateRightMarginGrowsForLegend(t *testing.T) {
	th := DefaultTheme()
	l := newFakeLayer()
	l.legendW = 90 // wider than the 50px base right margin
	got := negotiateRightMargin(th, []Layer{l}, true)
	want := (90.0 + legendPad) / 500.0
	if got != want {
		t.Errorf("margin %g, want %g", got, want)
	}
	// Plot width stays above the floor.
	if plot := 500 - 0.15*500 - got*500; plot < plotFloor {
		t.Errorf("plot width %g below floor", plot)
	}
}

func TestNegotiateRightMarginRespectsFloor(t *testing.T) {
	th := DefaultTheme()
	l := newFakeLayer()
	l.legendW = 400 // cannot fit without crushing the plot
	got := negotiateRightMargin(th, []Layer{l}, true)
	plot := 500 - 0.15*500 - got*500
	if plot < plotFloor-1e-9 {
		t.Errorf("plot width %g below %dpx floor", plot, plotFloor)
	}
	if got <= th.MarginRight {
		t.Error("margin did not grow toward the legend at all")
	}
}

func TestNegotiateRightMarginShrinksForPlotFloor(t *testing.T) {
	th := DefaultTheme().WithSize(260, 200).WithMargins(0.1, 0.2, 0.1, 0.1)
	// Initial plot width 260 - 26 - 52 = 182 < 200: the right margin
	// must give way regardless of legends.
	l := newFakeLayer()
	l.legendW = 80
	got := negotiateRightMargin(th, []Layer{l}, true)
	plot := 260 - 0.1*260 - got*260
	if plot < plotFloor-1e-9 {
		t.Errorf("plot width %g below floor", plot)
	}
}

func TestNegotiateRightMarginLegendHidden(t *testing.T) {
	th := DefaultTheme()
	l := newFakeLayer()
	l.legendW = 300
	got := negotiateRightMargin(th, []Layer{l}, false)
	if got != th.MarginRight {
		t.Errorf("hidden legend changed the margin: %g", got)
	}
}

func TestLegendWidthUsesWidestLabel(t *testing.T) {
	th := DefaultTheme()
	narrow := LegendWidth(th, []string{"a"})
	wide := LegendWidth(th, []string{"a", "a much longer label"})
	if wide <= narrow {
		t.Errorf("widest label ignored: %v <= %v", wide, narrow)
	}
	if LegendWidth(th, nil) != 0 {
		t.Error("empty label set must need no width")
	}
}
