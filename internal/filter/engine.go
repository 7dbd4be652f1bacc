package filter

import (
	"glpi-insights/internal/ticket"
)

// Apply returns the tickets of snap matching every active constraint of c and then of sel.
// Relative order is preserved and the snapshot is never mutated.
func Apply(snap *ticket.Snapshot, c Criteria, sel Selection) []ticket.Ticket {
	if snap == nil {
		return nil
	}
	out := pass(snap.Tickets, snap.Columns, c)
	if !sel.IsEmpty() {
		out = pass(out, snap.Columns, sel.Criteria())
	}
	return out
}

func pass(in []ticket.Ticket, cols ticket.Columns, c Criteria) []ticket.Ticket {
	usePeriod := c.Period != nil && cols.Has(ticket.ColOpenedDate)
	useCategory := !IsAll(c.Category) && cols.Has(ticket.ColCategory)

	out := make([]ticket.Ticket, 0, len(in))
	for _, t := range in {
		if usePeriod && (t.OpenedAt == nil || !c.Period.Contains(*t.OpenedAt)) {
			continue
		}
		if !match(c.Technician, t.Technician) || !match(c.Status, t.Status) || !match(c.Priority, t.Priority) {
			continue
		}
		if useCategory && t.Category != c.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func match(want, got string) bool {
	return IsAll(want) || want == got
}
