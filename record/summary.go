package record

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Low1   float64 // 1st percentile
	Min    float64
	Max    float64
}

func Summarize(readings []float64) Summary {
	if len(readings) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(readings)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Low1:   stat.Quantile(0.01, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}
