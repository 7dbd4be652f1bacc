package stats

import (
	"cmp"
	"slices"

	"glpi-insights/internal/ticket"
)

// OtherLabel names the synthetic bucket collecting the long tail of a Top-N view.
const OtherLabel = "Outros"

// Count is one row of a frequency table.
type Count struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// KeyFunc extracts a grouping key from a ticket. Empty keys are not grouped.
type KeyFunc func(ticket.Ticket) string

// Common grouping keys.
var (
	ByStatus     KeyFunc = func(t ticket.Ticket) string { return t.Status }
	ByPriority   KeyFunc = func(t ticket.Ticket) string { return t.Priority }
	ByCategory   KeyFunc = func(t ticket.Ticket) string { return t.Category }
	ByTechnician KeyFunc = func(t ticket.Ticket) string { return t.Technician }
	ByRequester  KeyFunc = func(t ticket.Ticket) string { return t.Requester }
	ByLocation   KeyFunc = func(t ticket.Ticket) string { return t.Location }
	ByMonth      KeyFunc = func(t ticket.Ticket) string { return t.Month }
	ByHour       KeyFunc = func(t ticket.Ticket) string { return t.OpenedHour }
	ByWeekday    KeyFunc = func(t ticket.Ticket) string { return t.Weekday }
	ByQuality    KeyFunc = func(t ticket.Ticket) string { return t.TitleQuality }
)

// CountBy tallies tickets per non-empty key, sorted by count descending then key ascending.
// Percentages are relative to len(tickets).
func CountBy(tickets []ticket.Ticket, key KeyFunc) []Count {
	counts := tally(tickets, key)
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Count: n, Percent: Percent(n, len(tickets))})
	}
	sortCounts(out)
	return out
}

// TopN keeps the first n rows of a sorted frequency table. A negative n keeps every row.
func TopN(counts []Count, n int) []Count {
	if n < 0 || len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// TopNWithOther keeps the first n rows and sums the rest into one "Outros" row.
// Percentages are recomputed over the table total.
func TopNWithOther(counts []Count, n int) []Count {
	if n < 0 || len(counts) <= n {
		return counts
	}
	out := slices.Clone(counts[:n])
	other := Count{Key: OtherLabel}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	for _, c := range counts[n:] {
		other.Count += c.Count
	}
	out = append(out, other)
	for i := range out {
		out[i].Percent = Percent(out[i].Count, total)
	}
	return out
}

// Keys returns the keys of a frequency table in order.
func Keys(counts []Count) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Key
	}
	return out
}

func tally(tickets []ticket.Ticket, key KeyFunc) map[string]int {
	counts := make(map[string]int)
	for _, t := range tickets {
		if k := key(t); k != "" {
			counts[k]++
		}
	}
	return counts
}

func sortCounts(counts []Count) {
	slices.SortFunc(counts, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
}

// groupBy partitions tickets by non-empty key, preserving input order within each group.
func groupBy(tickets []ticket.Ticket, key KeyFunc) map[string][]ticket.Ticket {
	groups := make(map[string][]ticket.Ticket)
	for _, t := range tickets {
		if k := key(t); k != "" {
			groups[k] = append(groups[k], t)
		}
	}
	return groups
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// mode returns the most frequent non-empty key, ties broken by the smallest key.
func mode(tickets []ticket.Ticket, key KeyFunc, fallback string) string {
	counts := CountBy(tickets, key)
	if len(counts) == 0 {
		return fallback
	}
	return counts[0].Key
}

func distinct(tickets []ticket.Ticket, key KeyFunc) int {
	return len(tally(tickets, key))
}

// resolutionHours collects the defined durations of tickets.
func resolutionHours(tickets []ticket.Ticket) []float64 {
	out := make([]float64, 0, len(tickets))
	for _, t := range tickets {
		if t.ResolutionHours != nil {
			out = append(out, *t.ResolutionHours)
		}
	}
	return out
}

// MeanHours is the mean defined resolution duration, nil when none is defined.
func MeanHours(tickets []ticket.Ticket) *float64 {
	return Mean(resolutionHours(tickets))
}

// compareNilLast orders optional values descending, nils last.
func compareNilLast(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*b, *a)
}
