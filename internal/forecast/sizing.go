package forecast

import (
	"math"

	"glpi-insights/internal/stats"
	"glpi-insights/internal/ticket"
)

const (
	// MonthlyHoursPerTechnician is the working capacity of one technician.
	MonthlyHoursPerTechnician = 160.0
	// TicketsPerTechnician scales headcount into the capacity chart.
	TicketsPerTechnician = 20
)

// CapacityBar is one bar of the capacity comparison.
type CapacityBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Sizing estimates the team size the observed demand requires.
// Every derived figure is nil when its inputs are undefined.
type Sizing struct {
	MeanMonthlyTickets *float64      `json:"mean_monthly_tickets"`
	MeanHours          *float64      `json:"mean_hours"`
	HoursPerMonth      *float64      `json:"hours_per_month"`
	Needed             *int          `json:"needed"`
	Current            int           `json:"current"`
	Delta              *int          `json:"delta"`
	Capacity           []CapacityBar `json:"capacity,omitempty"`
}

// ResourceSizing computes ceil(meanMonthly * meanHours / MonthlyHoursPerTechnician).
func ResourceSizing(tickets []ticket.Ticket) Sizing {
	s := Sizing{
		MeanMonthlyTickets: stats.Mean(stats.SeriesCounts(stats.MonthlySeries(tickets))),
		MeanHours:          stats.MeanHours(tickets),
		Current:            len(stats.CountBy(tickets, stats.ByTechnician)),
	}
	if s.MeanMonthlyTickets == nil || s.MeanHours == nil {
		return s
	}

	hours := *s.MeanMonthlyTickets * *s.MeanHours
	needed := int(math.Ceil(hours / MonthlyHoursPerTechnician))
	delta := needed - s.Current
	s.HoursPerMonth, s.Needed, s.Delta = &hours, &needed, &delta
	s.Capacity = []CapacityBar{
		{Label: "Capacidade Atual", Value: float64(s.Current * TicketsPerTechnician)},
		{Label: "Demanda Média", Value: *s.MeanMonthlyTickets},
		{Label: "Capacidade Ideal", Value: float64(needed * TicketsPerTechnician)},
	}
	return s
}
