package stats

import (
	"glpi-insights/internal/ticket"
)

// SLAHours is the resolution threshold of the service-level agreement.
const SLAHours = 8.0

func withinSLA(t ticket.Ticket) bool {
	return t.ResolutionHours != nil && *t.ResolutionHours <= SLAHours
}

// Headline holds the KPI strip shown above every tab.
type Headline struct {
	Total                int      `json:"total"`
	MeanHours            *float64 `json:"mean_hours"`
	WithinSLAPercent     float64  `json:"within_sla_percent"`
	TicketsPerTechnician *float64 `json:"tickets_per_technician"`
}

// CalculateHeadline summarises the filtered set. The SLA share here is over all tickets, resolved or not.
func CalculateHeadline(tickets []ticket.Ticket) Headline {
	within := 0
	for _, t := range tickets {
		if withinSLA(t) {
			within++
		}
	}
	return Headline{
		Total:                len(tickets),
		MeanHours:            MeanHours(tickets),
		WithinSLAPercent:     Percent(within, len(tickets)),
		TicketsPerTechnician: RatioInt(len(tickets), distinct(tickets, ByTechnician)),
	}
}

// StatusDistribution counts tickets per status as a share of the filtered total.
func StatusDistribution(tickets []ticket.Ticket) []Count {
	return CountBy(tickets, ByStatus)
}

// ResolutionSummary describes the spread of resolution durations.
type ResolutionSummary struct {
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
	Max    *float64 `json:"max"`
}

// CalculateResolutionSummary ignores tickets without a defined duration.
func CalculateResolutionSummary(tickets []ticket.Ticket) ResolutionSummary {
	hours := resolutionHours(tickets)
	return ResolutionSummary{
		Count:  len(hours),
		Mean:   Mean(hours),
		Median: Median(hours),
		Max:    Max(hours),
	}
}

// SLACompliance is the share of resolved tickets closed within SLAHours.
type SLACompliance struct {
	Resolved  int      `json:"resolved"`
	Within    int      `json:"within"`
	Outside   int      `json:"outside"`
	Percent   *float64 `json:"percent"`
	Threshold float64  `json:"threshold_hours"`
}

// CalculateSLACompliance only considers resolved tickets. Percent is nil when none is resolved.
func CalculateSLACompliance(tickets []ticket.Ticket) SLACompliance {
	res := SLACompliance{Threshold: SLAHours}
	for _, t := range tickets {
		if !t.IsResolved() {
			continue
		}
		res.Resolved++
		if withinSLA(t) {
			res.Within++
		}
	}
	res.Outside = res.Resolved - res.Within
	if res.Resolved > 0 {
		p := Percent(res.Within, res.Resolved)
		res.Percent = &p
	}
	return res
}

// TitleQualityResult groups tickets by the length of their title.
type TitleQualityResult struct {
	Distribution []Count `json:"distribution"`
	GoodPercent  float64 `json:"good_percent"`
}

// CalculateTitleQuality reports the share of tickets with a descriptive title.
func CalculateTitleQuality(tickets []ticket.Ticket) TitleQualityResult {
	dist := CountBy(tickets, ByQuality)
	good := 0
	for _, c := range dist {
		if c.Key == ticket.QualityGood {
			good = c.Count
		}
	}
	return TitleQualityResult{
		Distribution: dist,
		GoodPercent:  Percent(good, len(tickets)),
	}
}
