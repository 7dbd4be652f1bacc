package stats

import (
	"math"
	"slices"
)

// Percent returns part/total*100, or 0 when total is zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Ratio returns num/den, or nil when den is zero, undefined or not finite.
func Ratio(num float64, den *float64) *float64 {
	if den == nil || *den == 0 || math.IsNaN(*den) || math.IsInf(*den, 0) {
		return nil
	}
	r := num / *den
	return &r
}

// RatioInt is Ratio for integer operands.
func RatioInt(num, den int) *float64 {
	d := float64(den)
	return Ratio(float64(num), &d)
}

// Mean returns the arithmetic mean of values, or nil when values is empty.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// Median returns the middle value of values, or nil when values is empty.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	// Work on a copy to avoid mutating the original
	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	n := len(temp)
	m := temp[n/2]
	if n%2 == 0 {
		m = (temp[n/2-1] + temp[n/2]) / 2.0
	}
	return &m
}

// Quantile returns the q-th quantile of sorted using linear interpolation between closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// Max returns the largest value, or nil when values is empty.
func Max(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := slices.Max(values)
	return &m
}
