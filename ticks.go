package charton

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// A Tick is a labeled position in scale space. For linear and time
// scales the position is the data value itself, for logarithmic scales
// it is log10 of the data value, for discrete scales it is the
// zero-based category slot.
type Tick struct {
	Position float64
	Label    string
}

// pixelsPerTick is the target axis density: roughly one tick per this
// many pixels, never fewer than two ticks.
const pixelsPerTick = 50

func maxTicksFor(extent float64) int {
	n := int(extent / pixelsPerTick)
	if n < 2 {
		n = 2
	}
	return n
}

// Ticks computes the tick set for s over an axis of the given pixel
// extent. The returned slice is ordered by position and spans the
// scale's domain.
func (s *Scale) Ticks(extent float64) ([]Tick, error) {
	switch s.Kind {
	case Discrete:
		return discreteTicks(s.Categories), nil
	case Logarithmic:
		return logTicks(s.Min, s.Max, maxTicksFor(extent))
	case Time:
		return timeTicks(s.Min, s.Max, maxTicksFor(extent)), nil
	default:
		return linearTicks(s.Min, s.Max, maxTicksFor(extent)), nil
	}
}

// ----------------------------------------------------------------------------
// Linear

// niceStep rounds raw up to the nearest 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// linearTicks produces ticks at multiples of a nice step so that the
// first tick is at or below min and the last at or above max.
func linearTicks(min, max float64, maxTicks int) []Tick {
	if maxTicks < 2 {
		maxTicks = 2
	}
	span := max - min
	if span <= 0 || !have(span) {
		return []Tick{{min, formatFixed(min, 0)}}
	}
	step := niceStep(span / float64(maxTicks))
	first := math.Floor(min / step)
	last := math.Ceil(max / step)
	decimals := stepDecimals(step)
	ticks := make([]Tick, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		v := i * step
		ticks = append(ticks, Tick{v, formatFixed(v, decimals)})
	}
	return ticks
}

// stepDecimals is the number of fractional digits needed to print
// multiples of step exactly.
func stepDecimals(step float64) int {
	d := -int(math.Floor(math.Log10(step)))
	if d < 0 {
		d = 0
	}
	return d
}

// formatFixed renders v with the given number of decimals, switching to
// scientific notation for very large or very small magnitudes.
func formatFixed(v float64, decimals int) string {
	a := math.Abs(v)
	if a >= 1e6 || (a > 0 && a < 1e-3) {
		return strconv.FormatFloat(v, 'e', 1, 64)
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

// ----------------------------------------------------------------------------
// Logarithmic

// logTicks produces ticks at powers of ten covering [min, max] in
// log10 space. When only a few decades fit, the 2x and 5x substeps of
// each decade are added to keep the axis readable.
func logTicks(min, max float64, maxTicks int) ([]Tick, error) {
	if min <= 0 {
		return nil, Errorf(InvalidDomain, "log scale requires positive values, got min %g", min)
	}
	lo := int(math.Floor(math.Log10(min)))
	hi := int(math.Ceil(math.Log10(max)))
	if hi == lo {
		hi++
	}
	substeps := hi-lo < maxTicks/3
	var ticks []Tick
	for e := lo; e <= hi; e++ {
		v := math.Pow(10, float64(e))
		ticks = append(ticks, Tick{float64(e), formatLogLabel(v)})
		if substeps && e < hi {
			ticks = append(ticks,
				Tick{float64(e) + math.Log10(2), formatLogLabel(2 * v)},
				Tick{float64(e) + math.Log10(5), formatLogLabel(5 * v)})
		}
	}
	return ticks, nil
}

func formatLogLabel(v float64) string {
	if v >= 1e6 || v < 1e-3 {
		return strconv.FormatFloat(v, 'e', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ----------------------------------------------------------------------------
// Discrete

// discreteTicks places one tick per category at its slot, labels
// reproduced verbatim in first-seen order.
func discreteTicks(categories []string) []Tick {
	ticks := make([]Tick, len(categories))
	for i, c := range categories {
		ticks[i] = Tick{float64(i), c}
	}
	return ticks
}

// ----------------------------------------------------------------------------
// Time

// timeStep is one rung of the calendar ladder used for time axes.
type timeStep struct {
	seconds float64
	months  int // nonzero for month and year rungs
	format  string
}

var timeSteps = []timeStep{
	{1, 0, "15:04:05"},
	{5, 0, "15:04:05"},
	{15, 0, "15:04:05"},
	{30, 0, "15:04:05"},
	{60, 0, "15:04"},
	{5 * 60, 0, "15:04"},
	{15 * 60, 0, "15:04"},
	{30 * 60, 0, "15:04"},
	{3600, 0, "Jan 2 15:04"},
	{3 * 3600, 0, "Jan 2 15:04"},
	{6 * 3600, 0, "Jan 2 15:04"},
	{12 * 3600, 0, "Jan 2 15:04"},
	{24 * 3600, 0, "2006-01-02"},
	{7 * 24 * 3600, 0, "2006-01-02"},
	{0, 1, "2006-01"},
	{0, 3, "2006-01"},
	{0, 6, "2006-01"},
	{0, 12, "2006"},
	{0, 60, "2006"},
	{0, 120, "2006"},
}

// timeTicks produces calendar-aligned ticks for a domain given in Unix
// seconds. The rung is the smallest step whose tick count fits the
// density target.
func timeTicks(min, max float64, maxTicks int) []Tick {
	span := max - min
	if span <= 0 || !have(span) {
		return []Tick{{min, time.Unix(int64(min), 0).UTC().Format("2006-01-02")}}
	}
	step := timeSteps[len(timeSteps)-1]
	for _, s := range timeSteps {
		sec := s.seconds
		if s.months > 0 {
			sec = float64(s.months) * 30 * 24 * 3600
		}
		if span/sec <= float64(maxTicks) {
			step = s
			break
		}
	}
	start := time.Unix(int64(math.Floor(min)), 0).UTC()
	var ticks []Tick
	if step.months > 0 {
		t := time.Date(start.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		for float64(t.AddDate(0, step.months, 0).Unix()) <= min {
			t = t.AddDate(0, step.months, 0)
		}
		for {
			v := float64(t.Unix())
			ticks = append(ticks, Tick{v, t.Format(step.format)})
			if v >= max {
				break
			}
			t = t.AddDate(0, step.months, 0)
		}
	} else {
		sec := int64(step.seconds)
		first := (int64(math.Floor(min)) / sec) * sec
		for u := first; ; u += sec {
			v := float64(u)
			ticks = append(ticks, Tick{v, time.Unix(u, 0).UTC().Format(step.format)})
			if v >= max {
				break
			}
		}
	}
	if len(ticks) < 2 {
		ticks = []Tick{
			{min, time.Unix(int64(min), 0).UTC().Format(step.format)},
			{max, time.Unix(int64(max), 0).UTC().Format(step.format)},
		}
	}
	return ticks
}
