package data

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFrameColumns(t *testing.T) {
	f := New().
		AddFloats("weight", []float64{1, 2, 3}).
		AddStrings("species", []string{"a", "b", "a"}).
		AddTimes("seen", []time.Time{{}, {}, {}})

	if diff := cmp.Diff([]string{"weight", "species", "seen"}, f.Columns()); diff != "" {
		t.Errorf("column order mismatch (-want +got):\n%s", diff)
	}
	if f.Len() != 3 {
		t.Errorf("Len = %d, want 3", f.Len())
	}
	if k, ok := f.Kind("species"); !ok || k != String {
		t.Errorf("Kind(species) = %v, %v", k, ok)
	}
	if _, ok := f.Kind("missing"); ok {
		t.Error("missing column reported present")
	}
	if _, err := f.Floats("species"); err == nil {
		t.Error("string column served as floats")
	}
}

func TestFrameLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched column length did not panic")
		}
	}()
	New().AddFloats("a", []float64{1, 2}).AddFloats("b", []float64{1})
}

func TestParseCSVInference(t *testing.T) {
	in := strings.Join([]string{
		"name,score,day",
		"alice,3.5,2024-01-01",
		"bob,,2024-01-02",
		"carol,4,2024-01-03",
	}, "\n")
	f, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if k, _ := f.Kind("name"); k != String {
		t.Errorf("name kind %v, want String", k)
	}
	if k, _ := f.Kind("score"); k != Number {
		t.Errorf("score kind %v, want Number", k)
	}
	if k, _ := f.Kind("day"); k != Time {
		t.Errorf("day kind %v, want Time", k)
	}

	scores, err := f.Floats("score")
	if err != nil {
		t.Fatal(err)
	}
	if scores[0] != 3.5 || !math.IsNaN(scores[1]) || scores[2] != 4 {
		t.Errorf("scores = %v", scores)
	}

	days, err := f.Times("day")
	if err != nil {
		t.Fatal(err)
	}
	if days[0].Format("2006-01-02") != "2024-01-01" {
		t.Errorf("day[0] = %v", days[0])
	}
}

func TestParseCSVMixedColumnStaysString(t *testing.T) {
	in := "v\n1\nx\n2\n"
	f, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if k, _ := f.Kind("v"); k != String {
		t.Errorf("mixed column kind %v, want String", k)
	}
}

func TestParseCSVNoHeader(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("empty input accepted")
	}
}

func TestInferKind(t *testing.T) {
	cases := []struct {
		cells []string
		want  Kind
	}{
		{[]string{"1", "2.5", "-3"}, Number},
		{[]string{"2024-01-01", "2024-06-30"}, Time},
		{[]string{"a", "b"}, String},
		{[]string{"1", ""}, Number},
		{[]string{"", ""}, String},
		{[]string{"2024-01-01T10:00:00Z"}, Time},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := inferKind(c.cells); got != c.want {
				t.Errorf("inferKind(%q) = %v, want %v", c.cells, got, c.want)
			}
		})
	}
}
