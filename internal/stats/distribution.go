package stats

import (
	"math"
	"slices"

	"glpi-insights/internal/ticket"
)

// Distribution chart policy: durations at or above OutlierHours are hidden.
const (
	OutlierHours  = 100.0
	HistogramBins = 30
)

// Bin is one bucket of a histogram, [Lower, Upper) except the last which is closed.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram buckets values into n equal-width bins spanning their range.
func Histogram(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lower = lo + float64(i)*width
		bins[i].Upper = lo + float64(i+1)*width
	}
	bins[n-1].Upper = hi
	for _, v := range values {
		i := int(math.Floor((v - lo) / width))
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// ResolutionHistogram distributes defined durations below OutlierHours into HistogramBins bins.
func ResolutionHistogram(tickets []ticket.Ticket) []Bin {
	return Histogram(belowOutlier(tickets), HistogramBins)
}

// BoxSummary is the five-number summary of one group.
type BoxSummary struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// ResolutionByStatus summarises durations below OutlierHours per status, ordered by status.
func ResolutionByStatus(tickets []ticket.Ticket) []BoxSummary {
	groups := groupBy(tickets, ByStatus)
	var out []BoxSummary
	for _, status := range sortedKeys(groups) {
		hours := belowOutlier(groups[status])
		if len(hours) == 0 {
			continue
		}
		slices.Sort(hours)
		out = append(out, BoxSummary{
			Group:  status,
			Count:  len(hours),
			Min:    hours[0],
			Q1:     Quantile(hours, 0.25),
			Median: Quantile(hours, 0.5),
			Q3:     Quantile(hours, 0.75),
			Max:    hours[len(hours)-1],
		})
	}
	return out
}

func belowOutlier(tickets []ticket.Ticket) []float64 {
	var out []float64
	for _, h := range resolutionHours(tickets) {
		if h < OutlierHours {
			out = append(out, h)
		}
	}
	return out
}
