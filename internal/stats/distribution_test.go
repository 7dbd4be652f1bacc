package stats

import (
	"testing"
)

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	if len(bins) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 11 {
		t.Errorf("bins must hold every value, got %d", total)
	}
	if bins[4].Count != 3 || bins[4].Upper != 10 {
		t.Errorf("last bin must be closed, got %+v", bins[4])
	}

	if same := Histogram([]float64{3, 3}, 30); len(same) != 1 || same[0].Count != 2 {
		t.Errorf("degenerate range: %+v", same)
	}
	if Histogram(nil, 30) != nil {
		t.Error("expected nil histogram for no values")
	}
}

func TestResolutionViewsExcludeOutliers(t *testing.T) {
	tickets := build(
		fx{status: "Fechado", hours: h(1)},
		fx{status: "Fechado", hours: h(3)},
		fx{status: "Fechado", hours: h(100)},
		fx{status: "Pendente", hours: h(250)},
		fx{status: "Pendente"},
	)

	total := 0
	for _, b := range ResolutionHistogram(tickets) {
		total += b.Count
	}
	if total != 2 {
		t.Errorf("expected 2 values below the outlier threshold, got %d", total)
	}

	box := ResolutionByStatus(tickets)
	if len(box) != 1 || box[0].Group != "Fechado" || box[0].Median != 2 || box[0].Max != 3 {
		t.Errorf("unexpected box summary %+v", box)
	}
}
