package charton

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAxisOverrideLabelsDropsUnknown(t *testing.T) {
	s := NewDiscreteScale([]string{"a", "b", "c"})
	ax, err := NewAxis("kind", s, 300)
	if err != nil {
		t.Fatal(err)
	}
	ax.OverrideLabels([]string{"c", "nope", "a"})
	want := []Tick{{2, "c"}, {0, "a"}}
	if diff := cmp.Diff(want, ax.Rendered()); diff != "" {
		t.Errorf("rendered ticks mismatch (-want +got):\n%s", diff)
	}
	// The computed set is untouched.
	if len(ax.Ticks) != 3 {
		t.Errorf("computed ticks %d, want 3", len(ax.Ticks))
	}
}

func TestAxisOverrideValues(t *testing.T) {
	s, err := NewContinuousScale(Logarithmic, 1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	ax, err := NewAxis("mass", s, 300)
	if err != nil {
		t.Fatal(err)
	}
	ax.OverrideValues([]float64{10, 100})
	got := ax.Rendered()
	if len(got) != 2 {
		t.Fatalf("got %d ticks", len(got))
	}
	// Positions resolve through the same log transform.
	if got[0].Position != 1 || got[1].Position != 2 {
		t.Errorf("positions %g, %g, want 1, 2", got[0].Position, got[1].Position)
	}
	if got[0].Label != "10" || got[1].Label != "100" {
		t.Errorf("labels %q, %q", got[0].Label, got[1].Label)
	}
}

func TestAxisRenderedDefaultsToComputed(t *testing.T) {
	s, _ := NewContinuousScale(Linear, 0, 10)
	ax, err := NewAxis("v", s, 400)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ax.Ticks, ax.Rendered()); diff != "" {
		t.Errorf("rendered differs from computed:\n%s", diff)
	}
}
