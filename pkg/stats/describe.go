package stats

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe computes count, mean, sample std, min, quartiles and max.
func Describe(x []float64) Summary {
	min, max := MinMax(x)
	return Summary{
		Count: len(x),
		Mean:  Mean(x),
		Std:   Std(x),
		Min:   min,
		Q25:   Percentile(x, 25),
		Q50:   Median(x),
		Q75:   Percentile(x, 75),
		Max:   max,
	}
}

// Ordered reports whether min <= q25 <= q50 <= q75 <= max.
func (s Summary) Ordered() bool {
	return s.Min <= s.Q25 && s.Q25 <= s.Q50 && s.Q50 <= s.Q75 && s.Q75 <= s.Max
}
