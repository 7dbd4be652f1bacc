package stats

import (
	"glpi-insights/internal/ticket"
)

// MonthPoint is the ticket volume of one calendar month.
type MonthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
	// Change is the percent change from the previous month, nil for the first month
	// and after a month with zero tickets.
	Change *float64 `json:"change"`
}

// MonthlySeries counts tickets per opening month in chronological order.
// Tickets without an opening date are left out.
func MonthlySeries(tickets []ticket.Ticket) []MonthPoint {
	counts := tally(tickets, ByMonth)
	months := sortedKeys(counts)
	out := make([]MonthPoint, len(months))
	for i, m := range months {
		out[i] = MonthPoint{Month: m, Count: counts[m]}
		if i > 0 {
			prev := float64(out[i-1].Count)
			if r := Ratio(float64(out[i].Count)-prev, &prev); r != nil {
				pct := *r * 100
				out[i].Change = &pct
			}
		}
	}
	return out
}

// SeriesCounts extracts the counts of a monthly series.
func SeriesCounts(series []MonthPoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = float64(p.Count)
	}
	return out
}

// HourlyVolume counts tickets per opening hour in ascending hour order.
func HourlyVolume(tickets []ticket.Ticket) []Count {
	counts := tally(tickets, ByHour)
	out := make([]Count, 0, len(counts))
	for _, h := range sortedKeys(counts) {
		out = append(out, Count{Key: h, Count: counts[h], Percent: Percent(counts[h], len(tickets))})
	}
	return out
}

// WeekdayVolume counts tickets per opening weekday, Monday first. Days without tickets are omitted.
func WeekdayVolume(tickets []ticket.Ticket) []Count {
	counts := tally(tickets, ByWeekday)
	var out []Count
	for _, d := range ticket.WeekdayOrder {
		if n, ok := counts[d]; ok {
			out = append(out, Count{Key: d, Count: n, Percent: Percent(n, len(tickets))})
		}
	}
	return out
}
