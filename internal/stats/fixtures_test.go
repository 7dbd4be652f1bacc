package stats

import (
	"time"

	"glpi-insights/internal/ticket"
)

type fx struct {
	status, tech, cat, req, loc, prio, title string
	opened                                   *time.Time
	hours                                    *float64
}

func h(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	return &t
}

func build(rows ...fx) []ticket.Ticket {
	out := make([]ticket.Ticket, len(rows))
	for i, r := range rows {
		t := ticket.Ticket{
			ID:              i + 1,
			Status:          r.status,
			Technician:      r.tech,
			Category:        r.cat,
			Requester:       r.req,
			Location:        r.loc,
			Priority:        r.prio,
			Title:           r.title,
			OpenedAt:        r.opened,
			ResolutionHours: r.hours,
		}
		if r.opened != nil {
			t.Month = ticket.MonthLabel(*r.opened)
			t.Weekday = ticket.WeekdayLabel(*r.opened)
		}
		out[i] = t
	}
	return out
}

// fiveRows is two closed, two pending and one solved ticket, all resolved in four hours.
func fiveRows() []ticket.Ticket {
	return build(
		fx{status: "Fechado", hours: h(4)},
		fx{status: "Fechado", hours: h(4)},
		fx{status: "Pendente", hours: h(4)},
		fx{status: "Pendente", hours: h(4)},
		fx{status: "Solucionado", hours: h(4)},
	)
}
