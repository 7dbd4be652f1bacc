package stats

import (
	"slices"

	"glpi-insights/internal/ticket"
)

// RecentLimit bounds the ticket detail table.
const RecentLimit = 100

// RecentTickets returns the most recently opened tickets, undated ones last.
func RecentTickets(tickets []ticket.Ticket, limit int) []ticket.Ticket {
	out := slices.Clone(tickets)
	slices.SortStableFunc(out, func(a, b ticket.Ticket) int {
		switch {
		case a.OpenedAt == nil && b.OpenedAt == nil:
			return 0
		case a.OpenedAt == nil:
			return 1
		case b.OpenedAt == nil:
			return -1
		}
		return b.OpenedAt.Compare(*a.OpenedAt)
	})
	return truncate(out, limit)
}
