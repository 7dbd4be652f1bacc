package stats

import (
	"fmt"
	"slices"
	"testing"

	"glpi-insights/internal/ticket"
)

func categories(counts map[string]int) []ticket.Ticket {
	var rows []fx
	for _, k := range sortedKeys(counts) {
		for range counts[k] {
			rows = append(rows, fx{cat: k})
		}
	}
	return build(rows...)
}

func TestCountBy_DropsEmptyKeys(t *testing.T) {
	tickets := build(fx{tech: "Ana"}, fx{tech: ""}, fx{tech: "Ana"}, fx{tech: "Bruno"})
	got := CountBy(tickets, ByTechnician)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %v", got)
	}
	if got[0].Key != "Ana" || got[0].Count != 2 || got[0].Percent != 50 {
		t.Errorf("unexpected first row %+v", got[0])
	}
}

func TestTopNWithOther(t *testing.T) {
	counts := make(map[string]int)
	for i := range 12 {
		counts[fmt.Sprintf("C%02d", i)] = i + 1
	}
	table := CountBy(categories(counts), ByCategory)

	tests := []struct {
		name string
		n    int
		rows int
	}{
		{"Collapsed", 7, 8},
		{"ExactFit", 12, 12},
		{"Larger", 20, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopNWithOther(table, tt.n)
			if len(got) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(got))
			}
			total := 0
			for _, c := range got {
				total += c.Count
			}
			if total != 78 {
				t.Errorf("rows must sum to 78, got %d", total)
			}
		})
	}

	got := TopNWithOther(table, 7)
	if got[7].Key != OtherLabel || got[7].Count != 1+2+3+4+5 {
		t.Errorf("unexpected other bucket %+v", got[7])
	}
	if got[0].Key != "C11" {
		t.Errorf("expected the largest first, got %s", got[0].Key)
	}
}

func TestTopN(t *testing.T) {
	table := CountBy(categories(map[string]int{"A": 3, "B": 2, "C": 1}), ByCategory)
	if got := Keys(TopN(table, 2)); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("TopN() = %v", got)
	}
	if got := TopN(table, -1); len(got) != 3 {
		t.Errorf("negative limit must keep everything, got %d", len(got))
	}
}

func TestMode_TieBreaksByName(t *testing.T) {
	tickets := build(fx{loc: "B"}, fx{loc: "A"}, fx{loc: "B"}, fx{loc: "A"})
	if got := mode(tickets, ByLocation, LabelNA); got != "A" {
		t.Errorf("mode() = %q, want A", got)
	}
	if got := mode(build(fx{}), ByLocation, LabelNA); got != LabelNA {
		t.Errorf("mode() = %q, want fallback", got)
	}
}
