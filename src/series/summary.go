package series

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes a parsed series for the log line printed after each load.
type Summary struct {
	Count   int
	Skipped int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
}

// Summarize computes descriptive statistics. An empty series yields a zero Summary (Count 0).
func Summarize(values []float64, skipped int) Summary {
	s := Summary{Count: len(values), Skipped: skipped}
	if len(values) == 0 {
		return s
	}
	data := stats.Float64Data(values)
	mustFloat := func(fn func() (float64, error)) float64 {
		out, err := fn()
		if err != nil {
			return 0
		}
		return out
	}
	s.Min = mustFloat(data.Min)
	s.Max = mustFloat(data.Max)
	s.Mean = mustFloat(data.Mean)
	s.Median = mustFloat(data.Median)
	return s
}

func (s Summary) String() string {
	if s.Count == 0 {
		return fmt.Sprintf("values=0 skipped=%d", s.Skipped)
	}
	return fmt.Sprintf("values=%d skipped=%d min=%.4g max=%.4g mean=%.4g median=%.4g",
		s.Count, s.Skipped, s.Min, s.Max, s.Mean, s.Median)
}
