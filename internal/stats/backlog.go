package stats

import (
	"cmp"
	"math"
	"slices"
	"time"

	"glpi-insights/internal/ticket"
)

// Backlog view sizes.
const (
	BacklogCategories = 10
	BacklogOldest     = 15
)

// PendingTicket is a backlog entry with its age.
type PendingTicket struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Requester string `json:"requester"`
	Location  string `json:"location"`
	DaysOpen  *int   `json:"days_open"`
}

// BacklogResult describes the pending tickets.
type BacklogResult struct {
	Total      int             `json:"total"`
	DaysOpen   []int           `json:"days_open"`
	ByCategory []Count         `json:"by_category"`
	Oldest     []PendingTicket `json:"oldest"`
}

// CalculateBacklog ages every pending ticket against now. Undated tickets have no age
// and are left out of the oldest list.
func CalculateBacklog(tickets []ticket.Ticket, now time.Time) BacklogResult {
	var pending []ticket.Ticket
	for _, t := range tickets {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}

	res := BacklogResult{
		Total:      len(pending),
		DaysOpen:   []int{},
		ByCategory: TopN(CountBy(pending, ByCategory), BacklogCategories),
	}

	var aged []PendingTicket
	for _, t := range pending {
		if t.OpenedAt == nil {
			continue
		}
		days := int(math.Floor(now.Sub(*t.OpenedAt).Hours() / 24))
		res.DaysOpen = append(res.DaysOpen, days)
		aged = append(aged, PendingTicket{
			ID:        t.ID,
			Title:     t.Title,
			Requester: t.Requester,
			Location:  t.Location,
			DaysOpen:  &days,
		})
	}
	slices.SortStableFunc(aged, func(a, b PendingTicket) int {
		return cmp.Compare(*b.DaysOpen, *a.DaysOpen)
	})
	res.Oldest = truncate(aged, BacklogOldest)
	return res
}
