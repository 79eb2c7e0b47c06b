package dataprep

// BinContinuous splits [min, max] into nBins equal-width bins and counts the
// values falling in each. edges has nBins+1 entries; the last bin is closed.
func BinContinuous(X []float64, nBins int) (edges []float64, counts []int) {
	if len(X) == 0 || nBins <= 0 {
		return nil, nil
	}
	min, max := X[0], X[0]
	for _, v := range X {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / float64(nBins)
	if width == 0 {
		width = 1
	}

	edges = make([]float64, nBins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[nBins] = max
	if max == min {
		edges[nBins] = min + float64(nBins)*width
	}

	counts = make([]int, nBins)
	for _, v := range X {
		b := int((v - min) / width)
		if b >= nBins {
			b = nBins - 1
		}
		counts[b]++
	}
	return edges, counts
}
