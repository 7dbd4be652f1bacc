package stats

import (
	"cmp"
	"slices"

	"glpi-insights/internal/ticket"
)

// Ranking policy for the technician SLA view.
const (
	MinResolvedForRanking = 10
	SLARankingSize        = 15
)

// TechnicianStats is the productivity row of one technician.
type TechnicianStats struct {
	Technician  string   `json:"technician"`
	Total       int      `json:"total"`
	MeanHours   *float64 `json:"mean_hours"`
	MedianHours *float64 `json:"median_hours"`
	// Efficiency is Total / MeanHours, nil when the mean is zero or undefined.
	Efficiency *float64 `json:"efficiency"`
	// Deviation is Total minus the mean total across technicians.
	Deviation float64 `json:"deviation"`
}

// TechnicianProductivity groups tickets by assigned technician, sorted by total descending.
func TechnicianProductivity(tickets []ticket.Ticket) []TechnicianStats {
	groups := groupBy(tickets, ByTechnician)
	out := make([]TechnicianStats, 0, len(groups))
	sum := 0
	for name, items := range groups {
		hours := resolutionHours(items)
		mean := Mean(hours)
		out = append(out, TechnicianStats{
			Technician:  name,
			Total:       len(items),
			MeanHours:   mean,
			MedianHours: Median(hours),
			Efficiency:  Ratio(float64(len(items)), mean),
		})
		sum += len(items)
	}
	if len(out) > 0 {
		avg := float64(sum) / float64(len(out))
		for i := range out {
			out[i].Deviation = float64(out[i].Total) - avg
		}
	}

	slices.SortFunc(out, func(a, b TechnicianStats) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Technician, b.Technician)
	})
	return out
}

// TechnicianEfficiency orders productivity rows by efficiency descending, undefined last.
func TechnicianEfficiency(tickets []ticket.Ticket, limit int) []TechnicianStats {
	rows := TechnicianProductivity(tickets)
	slices.SortStableFunc(rows, func(a, b TechnicianStats) int {
		return compareNilLast(a.Efficiency, b.Efficiency)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TechnicianSLA is one row of the SLA ranking.
type TechnicianSLA struct {
	Technician string  `json:"technician"`
	Resolved   int     `json:"resolved"`
	Within     int     `json:"within"`
	Percent    float64 `json:"percent"`
}

// TechnicianSLARanking ranks technicians with at least MinResolvedForRanking resolved tickets.
func TechnicianSLARanking(tickets []ticket.Ticket) []TechnicianSLA {
	var resolved []ticket.Ticket
	for _, t := range tickets {
		if t.IsResolved() {
			resolved = append(resolved, t)
		}
	}

	var out []TechnicianSLA
	for name, items := range groupBy(resolved, ByTechnician) {
		if len(items) < MinResolvedForRanking {
			continue
		}
		row := TechnicianSLA{Technician: name, Resolved: len(items)}
		for _, t := range items {
			if withinSLA(t) {
				row.Within++
			}
		}
		row.Percent = Percent(row.Within, row.Resolved)
		out = append(out, row)
	}

	slices.SortFunc(out, func(a, b TechnicianSLA) int {
		if c := cmp.Compare(b.Percent, a.Percent); c != 0 {
			return c
		}
		return cmp.Compare(a.Technician, b.Technician)
	})
	if len(out) > SLARankingSize {
		out = out[:SLARankingSize]
	}
	return out
}

// Specialization is a technician's dominant category.
type Specialization struct {
	Technician string `json:"technician"`
	Category   string `json:"category"`
	Count      int    `json:"count"`
}

// TechnicianSpecialization returns the most handled category per technician, busiest first.
func TechnicianSpecialization(tickets []ticket.Ticket, limit int) []Specialization {
	var out []Specialization
	for name, items := range groupBy(tickets, ByTechnician) {
		counts := CountBy(items, ByCategory)
		if len(counts) == 0 {
			continue
		}
		out = append(out, Specialization{Technician: name, Category: counts[0].Key, Count: counts[0].Count})
	}
	slices.SortFunc(out, func(a, b Specialization) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Technician, b.Technician)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
