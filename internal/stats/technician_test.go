package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestTechnicianProductivity(t *testing.T) {
	tickets := build(
		fx{tech: "Ana", hours: h(2)},
		fx{tech: "Ana", hours: h(4)},
		fx{tech: "Ana", hours: h(6)},
		fx{tech: "Bruno", hours: h(0)},
		fx{tech: "Carla"},
	)
	rows := TechnicianProductivity(tickets)
	if len(rows) != 3 {
		t.Fatalf("expected 3 technicians, got %d", len(rows))
	}

	ana := rows[0]
	if ana.Technician != "Ana" || ana.Total != 3 || *ana.MeanHours != 4 || *ana.MedianHours != 4 {
		t.Errorf("unexpected Ana row %+v", ana)
	}
	if ana.Efficiency == nil || *ana.Efficiency != 0.75 {
		t.Errorf("Efficiency = %v, want 0.75", ana.Efficiency)
	}
	if math.Abs(ana.Deviation-4.0/3) > 1e-9 {
		t.Errorf("Deviation = %v", ana.Deviation)
	}

	for _, r := range rows[1:] {
		if r.Efficiency != nil {
			t.Errorf("%s: efficiency must be undefined, got %v", r.Technician, *r.Efficiency)
		}
	}

	eff := TechnicianEfficiency(tickets, 10)
	if eff[0].Technician != "Ana" || eff[1].Efficiency != nil {
		t.Errorf("undefined efficiencies must sort last: %+v", eff)
	}
}

func TestTechnicianSLARanking_MinimumSample(t *testing.T) {
	var rows []fx
	for i := range 12 {
		hours := 2.0
		if i%4 == 0 {
			hours = 20
		}
		rows = append(rows, fx{status: "Fechado", tech: "Ana", hours: h(hours)})
	}
	for range 10 {
		rows = append(rows, fx{status: "Solucionado", tech: "Bruno", hours: h(1)})
	}
	for range 9 {
		rows = append(rows, fx{status: "Fechado", tech: "Carla", hours: h(1)})
	}
	for range 5 {
		rows = append(rows, fx{status: "Pendente", tech: "Carla", hours: h(1)})
	}

	got := TechnicianSLARanking(build(rows...))
	if len(got) != 2 {
		t.Fatalf("expected Carla to be excluded, got %+v", got)
	}
	if got[0].Technician != "Bruno" || got[0].Percent != 100 {
		t.Errorf("unexpected leader %+v", got[0])
	}
	if got[1].Resolved != 12 || got[1].Within != 9 || got[1].Percent != 75 {
		t.Errorf("unexpected Ana row %+v", got[1])
	}
}

func TestTechnicianSLARanking_Top15(t *testing.T) {
	var rows []fx
	for i := range 20 {
		for range 10 {
			rows = append(rows, fx{status: "Fechado", tech: fmt.Sprintf("T%02d", i), hours: h(1)})
		}
	}
	if got := TechnicianSLARanking(build(rows...)); len(got) != SLARankingSize {
		t.Errorf("expected %d rows, got %d", SLARankingSize, len(got))
	}
}

func TestTechnicianSpecialization(t *testing.T) {
	tickets := build(
		fx{tech: "Ana", cat: "REDE"},
		fx{tech: "Ana", cat: "REDE"},
		fx{tech: "Ana", cat: "IMPRESSORA"},
		fx{tech: "Bruno", cat: "IMPRESSORA"},
	)
	got := TechnicianSpecialization(tickets, 10)
	if len(got) != 2 || got[0].Technician != "Ana" || got[0].Category != "REDE" || got[0].Count != 2 {
		t.Errorf("unexpected specialization %+v", got)
	}
}
