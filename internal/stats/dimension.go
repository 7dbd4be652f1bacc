package stats

import (
	"cmp"
	"slices"

	"glpi-insights/internal/ticket"
)

// Top-N sizes of the dimension views.
const (
	TopCategories    = 10
	TopRequesters    = 20
	TopLocations     = 15
	CategoryShareTop = 7
)

// Fallback labels when a group has no dominant value.
const (
	LabelVaried = "Variado"
	LabelNA     = "N/A"
)

// CategoryMean is the mean resolution time of one category.
type CategoryMean struct {
	Category  string   `json:"category"`
	Total     int      `json:"total"`
	MeanHours *float64 `json:"mean_hours"`
}

// CriticalCategories lists the categories with the longest mean resolution time.
func CriticalCategories(tickets []ticket.Ticket, limit int) []CategoryMean {
	var out []CategoryMean
	for name, items := range groupBy(tickets, ByCategory) {
		out = append(out, CategoryMean{Category: name, Total: len(items), MeanHours: MeanHours(items)})
	}
	slices.SortFunc(out, func(a, b CategoryMean) int {
		if c := compareNilLast(a.MeanHours, b.MeanHours); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return truncate(out, limit)
}

// CategoryRecurrence relates ticket volume to the number of distinct requesters.
type CategoryRecurrence struct {
	Category        string   `json:"category"`
	Total           int      `json:"total"`
	UniqueRequester int      `json:"unique_requesters"`
	Recurrence      *float64 `json:"recurrence"`
}

// CalculateCategoryRecurrence sorts categories by tickets per requester descending.
func CalculateCategoryRecurrence(tickets []ticket.Ticket, limit int) []CategoryRecurrence {
	var out []CategoryRecurrence
	for name, items := range groupBy(tickets, ByCategory) {
		unique := distinct(items, ByRequester)
		out = append(out, CategoryRecurrence{
			Category:        name,
			Total:           len(items),
			UniqueRequester: unique,
			Recurrence:      RatioInt(len(items), unique),
		})
	}
	slices.SortFunc(out, func(a, b CategoryRecurrence) int {
		if c := compareNilLast(a.Recurrence, b.Recurrence); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return truncate(out, limit)
}

// CategoryDetail is one row of the category detail table.
type CategoryDetail struct {
	Category         string   `json:"category"`
	Total            int      `json:"total"`
	MeanHours        *float64 `json:"mean_hours"`
	UniqueRequesters int      `json:"unique_requesters"`
	TopLocation      string   `json:"top_location"`
}

// CategoryDetails describes every category, largest first.
func CategoryDetails(tickets []ticket.Ticket) []CategoryDetail {
	var out []CategoryDetail
	for name, items := range groupBy(tickets, ByCategory) {
		out = append(out, CategoryDetail{
			Category:         name,
			Total:            len(items),
			MeanHours:        MeanHours(items),
			UniqueRequesters: distinct(items, ByRequester),
			TopLocation:      mode(items, ByLocation, LabelNA),
		})
	}
	slices.SortFunc(out, func(a, b CategoryDetail) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// RequesterRecurrence is a frequent requester and their usual problem.
type RequesterRecurrence struct {
	Requester     string `json:"requester"`
	Total         int    `json:"total"`
	CommonProblem string `json:"common_problem"`
}

// MinRequesterTickets is the volume from which a requester counts as recurrent.
const MinRequesterTickets = 5

// CalculateRequesterRecurrence lists requesters with at least MinRequesterTickets tickets.
func CalculateRequesterRecurrence(tickets []ticket.Ticket, limit int) []RequesterRecurrence {
	var out []RequesterRecurrence
	for name, items := range groupBy(tickets, ByRequester) {
		if len(items) < MinRequesterTickets {
			continue
		}
		out = append(out, RequesterRecurrence{
			Requester:     name,
			Total:         len(items),
			CommonProblem: mode(items, ByCategory, LabelVaried),
		})
	}
	slices.SortFunc(out, func(a, b RequesterRecurrence) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Requester, b.Requester)
	})
	return truncate(out, limit)
}

// LocationRequester counts tickets of one requester at one location.
type LocationRequester struct {
	Location  string `json:"location"`
	Requester string `json:"requester"`
	Count     int    `json:"count"`
}

// LocationRequesterPairs returns the busiest (location, requester) pairs.
func LocationRequesterPairs(tickets []ticket.Ticket, limit int) []LocationRequester {
	type pair struct{ loc, req string }
	counts := make(map[pair]int)
	for _, t := range tickets {
		if t.Location == "" || t.Requester == "" {
			continue
		}
		counts[pair{t.Location, t.Requester}]++
	}
	out := make([]LocationRequester, 0, len(counts))
	for p, n := range counts {
		out = append(out, LocationRequester{Location: p.loc, Requester: p.req, Count: n})
	}
	slices.SortFunc(out, func(a, b LocationRequester) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Location, b.Location); c != 0 {
			return c
		}
		return cmp.Compare(a.Requester, b.Requester)
	})
	return truncate(out, limit)
}

// LocationStats is one row of the location analysis.
type LocationStats struct {
	Location    string   `json:"location"`
	Total       int      `json:"total"`
	MeanHours   *float64 `json:"mean_hours"`
	MainProblem string   `json:"main_problem"`
}

// LocationAnalysis describes every location, busiest first.
func LocationAnalysis(tickets []ticket.Ticket) []LocationStats {
	var out []LocationStats
	for name, items := range groupBy(tickets, ByLocation) {
		out = append(out, LocationStats{
			Location:    name,
			Total:       len(items),
			MeanHours:   MeanHours(items),
			MainProblem: mode(items, ByCategory, LabelVaried),
		})
	}
	slices.SortFunc(out, func(a, b LocationStats) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

func truncate[T any](rows []T, limit int) []T {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
