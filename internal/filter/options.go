package filter

import (
	"slices"
	"time"

	"glpi-insights/internal/ticket"
)

// Options lists the values offered by each dropdown, sentinel first.
type Options struct {
	Technicians []string   `json:"technicians"`
	Statuses    []string   `json:"statuses"`
	Priorities  []string   `json:"priorities"`
	Categories  []string   `json:"categories,omitempty"`
	MinDate     *time.Time `json:"min_date,omitempty"`
	MaxDate     *time.Time `json:"max_date,omitempty"`
}

// BuildOptions collects the sorted distinct non-empty values of each dimension.
func BuildOptions(snap *ticket.Snapshot) Options {
	var opts Options
	if snap == nil {
		return opts
	}

	opts.Technicians = distinct(snap.Tickets, All, func(t ticket.Ticket) string { return t.Technician })
	opts.Statuses = distinct(snap.Tickets, All, func(t ticket.Ticket) string { return t.Status })
	opts.Priorities = distinct(snap.Tickets, AllFeminine, func(t ticket.Ticket) string { return t.Priority })
	if snap.Has(ticket.ColCategory) {
		opts.Categories = distinct(snap.Tickets, AllFeminine, func(t ticket.Ticket) string { return t.Category })
	}

	if first, last, ok := snap.OpenedRange(); ok {
		minDate, maxDate := ticket.DateOnly(first), ticket.DateOnly(last)
		opts.MinDate, opts.MaxDate = &minDate, &maxDate
	}
	return opts
}

func distinct(tickets []ticket.Ticket, sentinel string, key func(ticket.Ticket) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, t := range tickets {
		v := key(t)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	slices.Sort(values)
	return append([]string{sentinel}, values...)
}

// DefaultPeriod picks the initial date range: the current month when it lies wholly within the
// data, otherwise the calendar month before the latest opening date. ok is false without dated tickets.
func DefaultPeriod(snap *ticket.Snapshot, today time.Time) (Period, bool) {
	first, last, ok := snap.OpenedRange()
	if !ok {
		return Period{}, false
	}
	minDate, maxDate := dateOf(first), dateOf(last)

	current := monthOf(today)
	if !current.Start.Before(minDate) && !current.End.After(maxDate) {
		return current, true
	}
	return monthOf(maxDate.AddDate(0, 0, 1-maxDate.Day()).AddDate(0, -1, 0)), true
}

func monthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, -1)}
}
