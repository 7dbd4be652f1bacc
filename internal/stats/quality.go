package stats

import (
	"cmp"
	"slices"

	"glpi-insights/internal/ticket"
)

// TopDuplicates bounds the exact duplicate view.
const TopDuplicates = 20

// ReworkResult is the outcome of the rework heuristic.
type ReworkResult struct {
	Total                  int     `json:"total"`
	Flagged                int     `json:"flagged"`
	FirstResolutionPercent float64 `json:"first_resolution_percent"`
}

// Rework flags every ticket whose (requester, category) pair occurs more than once
// in the set, regardless of how far apart the tickets are. Empty values compare equal.
func Rework(tickets []ticket.Ticket) ReworkResult {
	type pair struct{ requester, category string }
	counts := make(map[pair]int, len(tickets))
	for _, t := range tickets {
		counts[pair{t.Requester, t.Category}]++
	}

	res := ReworkResult{Total: len(tickets)}
	for _, t := range tickets {
		if counts[pair{t.Requester, t.Category}] > 1 {
			res.Flagged++
		}
	}
	res.FirstResolutionPercent = Percent(res.Total-res.Flagged, res.Total)
	return res
}

// Duplicate is a group of tickets sharing title and location.
type Duplicate struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Repetitions int    `json:"repetitions"`
	Category    string `json:"category"`
}

// Duplicates groups tickets by (title, location) and keeps groups seen more than once.
// Category is the first non-empty category of the group.
func Duplicates(tickets []ticket.Ticket) []Duplicate {
	type key struct{ title, location string }
	groups := make(map[key]*Duplicate)
	for _, t := range tickets {
		if t.Title == "" || t.Location == "" {
			continue
		}
		k := key{t.Title, t.Location}
		d, ok := groups[k]
		if !ok {
			d = &Duplicate{Title: t.Title, Location: t.Location}
			groups[k] = d
		}
		d.Repetitions++
		if d.Category == "" {
			d.Category = t.Category
		}
	}

	out := []Duplicate{}
	for _, d := range groups {
		if d.Repetitions > 1 {
			out = append(out, *d)
		}
	}
	slices.SortFunc(out, func(a, b Duplicate) int {
		if c := cmp.Compare(b.Repetitions, a.Repetitions); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	return truncate(out, TopDuplicates)
}
