package stats

import (
	"cmp"
	"slices"

	"glpi-insights/internal/ticket"
)

// CrossTab is a zero-filled count matrix. Cells[i][j] counts Rows[i] × Columns[j].
type CrossTab struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
	Cells   [][]int  `json:"cells"`
}

// NewCrossTab counts tickets whose row and column keys are both in the given axes.
func NewCrossTab(tickets []ticket.Ticket, rowKey KeyFunc, rows []string, colKey KeyFunc, cols []string) CrossTab {
	rowIdx := index(rows)
	colIdx := index(cols)

	cells := make([][]int, len(rows))
	for i := range cells {
		cells[i] = make([]int, len(cols))
	}
	for _, t := range tickets {
		i, ok := rowIdx[rowKey(t)]
		if !ok {
			continue
		}
		j, ok := colIdx[colKey(t)]
		if !ok {
			continue
		}
		cells[i][j]++
	}
	return CrossTab{Rows: rows, Columns: cols, Cells: cells}
}

// CategoryByMonth restricts the matrix to the top categories and the months they occur in.
func CategoryByMonth(tickets []ticket.Ticket, topCategories int) CrossTab {
	cats := index(Keys(TopN(CountBy(tickets, ByCategory), topCategories)))

	rowSet := make(map[string]int)
	colSet := make(map[string]int)
	for _, t := range tickets {
		if _, ok := cats[t.Category]; ok && t.Month != "" {
			rowSet[t.Category]++
			colSet[t.Month]++
		}
	}
	return NewCrossTab(tickets, ByCategory, sortedKeys(rowSet), ByMonth, sortedKeys(colSet))
}

// LocationByCategory crosses the busiest locations with the most frequent categories.
// Axes only keep values that co-occur at least once, as a pivot over the filtered rows would.
func LocationByCategory(tickets []ticket.Ticket, topLocations, topCategories int) CrossTab {
	locs := index(Keys(TopN(CountBy(tickets, ByLocation), topLocations)))
	cats := index(Keys(TopN(CountBy(tickets, ByCategory), topCategories)))

	rowSet := make(map[string]int)
	colSet := make(map[string]int)
	for _, t := range tickets {
		_, okL := locs[t.Location]
		_, okC := cats[t.Category]
		if okL && okC {
			rowSet[t.Location]++
			colSet[t.Category]++
		}
	}
	return NewCrossTab(tickets, ByLocation, sortedKeys(rowSet), ByCategory, sortedKeys(colSet))
}

// SeriesPoint is one (month, group) count of a long-format series.
type SeriesPoint struct {
	Month string `json:"month"`
	Group string `json:"group"`
	Count int    `json:"count"`
}

// LongSeries counts tickets per month and group, sorted by month then group.
// Combinations without tickets are omitted.
func LongSeries(tickets []ticket.Ticket, group KeyFunc) []SeriesPoint {
	type key struct{ month, group string }
	counts := make(map[key]int)
	for _, t := range tickets {
		g := group(t)
		if t.Month == "" || g == "" {
			continue
		}
		counts[key{t.Month, g}]++
	}
	out := make([]SeriesPoint, 0, len(counts))
	for k, n := range counts {
		out = append(out, SeriesPoint{Month: k.month, Group: k.group, Count: n})
	}
	slices.SortFunc(out, func(a, b SeriesPoint) int {
		if c := cmp.Compare(a.Month, b.Month); c != 0 {
			return c
		}
		return cmp.Compare(a.Group, b.Group)
	})
	return out
}

// StatusByMonth is the monthly evolution of each status.
func StatusByMonth(tickets []ticket.Ticket) []SeriesPoint {
	return LongSeries(tickets, ByStatus)
}

// CategoryTrend is the monthly evolution of the top categories.
func CategoryTrend(tickets []ticket.Ticket, topCategories int) []SeriesPoint {
	top := index(Keys(TopN(CountBy(tickets, ByCategory), topCategories)))
	return LongSeries(tickets, func(t ticket.Ticket) string {
		if _, ok := top[t.Category]; ok {
			return t.Category
		}
		return ""
	})
}

func index(keys []string) map[string]int {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}
