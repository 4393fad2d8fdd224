package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// go-chart derives the axis range from explicit ticks when both are given, so every helper
// here returns a range that starts and ends on a tick.

// indexRangeAndTicks builds the X axis for n points at indices 0..n-1 using integer steps.
func indexRangeAndTicks(n, want int) (*chart.ContinuousRange, []chart.Tick) {
	last := float64(n - 1)
	if last < 1 {
		// single point: keep a non-zero span
		last = 1
	}
	step := niceStep(last, want, []float64{1, 2, 5, 10})
	if step < 1 {
		step = 1
	}
	end := math.Ceil(last/step) * step
	ticks := make([]chart.Tick, 0, int(end/step)+1)
	for i := 0; ; i++ {
		v := float64(i) * step
		if v > end+step/2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%d", int64(v))})
	}
	return &chart.ContinuousRange{Min: 0, Max: end}, ticks
}

// valueRangeAndTicks pads [min,max] by 5% and snaps both ends to nice tick values.
func valueRangeAndTicks(min, max float64, want int) (*chart.ContinuousRange, []chart.Tick) {
	if max <= min {
		pad := math.Max(math.Abs(min)*0.1, 1)
		min -= pad
		max += pad
	}
	span := max - min
	a := min - span*0.05
	b := max + span*0.05
	step := niceStep(b-a, want, []float64{1, 2, 2.5, 5, 10})
	start := math.Floor(a/step) * step
	end := math.Ceil(b/step) * step
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > end+step/2 || len(ticks) > want+4 {
			break
		}
		// snap away accumulated float error so labels stay clean
		v = math.Round(v/step) * step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	last := ticks[len(ticks)-1].Value
	return &chart.ContinuousRange{Min: ticks[0].Value, Max: last}, ticks
}

// niceStep picks the candidate increment (scaled by a power of ten) whose tick count over
// span is closest to want.
func niceStep(span float64, want int, candidates []float64) float64 {
	if want < 2 {
		want = 2
	}
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(want-1))))
	best := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(want))
		if score < bestScore {
			bestScore = score
			best = step
		}
	}
	return best
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}
