package stats

import (
	"glpi-insights/internal/ticket"
)

// PriorityDistribution counts tickets per priority.
func PriorityDistribution(tickets []ticket.Ticket) []Count {
	return CountBy(tickets, ByPriority)
}

// PriorityMean is the mean resolution time of one priority.
type PriorityMean struct {
	Priority  string   `json:"priority"`
	Total     int      `json:"total"`
	MeanHours *float64 `json:"mean_hours"`
}

// PriorityResolution lists mean resolution time per priority in priority order.
func PriorityResolution(tickets []ticket.Ticket) []PriorityMean {
	groups := groupBy(tickets, ByPriority)
	out := make([]PriorityMean, 0, len(groups))
	for _, p := range sortedKeys(groups) {
		out = append(out, PriorityMean{Priority: p, Total: len(groups[p]), MeanHours: MeanHours(groups[p])})
	}
	return out
}

// PriorityViolation counts resolved tickets of one priority that exceeded the SLA.
type PriorityViolation struct {
	Priority   string  `json:"priority"`
	Resolved   int     `json:"resolved"`
	Violations int     `json:"violations"`
	Percent    float64 `json:"percent"`
}

// PrioritySLAViolations only considers resolved tickets. Undefined durations are not violations.
func PrioritySLAViolations(tickets []ticket.Ticket) []PriorityViolation {
	var resolved []ticket.Ticket
	for _, t := range tickets {
		if t.IsResolved() {
			resolved = append(resolved, t)
		}
	}
	groups := groupBy(resolved, ByPriority)
	out := make([]PriorityViolation, 0, len(groups))
	for _, p := range sortedKeys(groups) {
		row := PriorityViolation{Priority: p, Resolved: len(groups[p])}
		for _, t := range groups[p] {
			if t.ResolutionHours != nil && *t.ResolutionHours > SLAHours {
				row.Violations++
			}
		}
		row.Percent = Percent(row.Violations, row.Resolved)
		out = append(out, row)
	}
	return out
}
