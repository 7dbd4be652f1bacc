package stats

import (
	"testing"
)

func TestProblemTypes(t *testing.T) {
	tickets := build(
		fx{cat: "IMPRESSORA > Atolamento", hours: h(2)},
		fx{cat: "impressora", hours: h(4)},
		fx{cat: "TONER COLORIDO"},
		fx{cat: "REDE"},
		fx{},
	)
	got := ProblemTypes(tickets, DefaultProblemRules().Types)
	if got[0].Type != "Impressora" || got[0].Count != 2 || *got[0].MeanHours != 3 || got[0].Percent != 40 {
		t.Errorf("unexpected leader %+v", got[0])
	}
	for _, p := range got {
		if p.Count == 0 && p.MeanHours != nil {
			t.Errorf("%s: mean must be undefined without tickets", p.Type)
		}
	}
}

func TestBreakdowns(t *testing.T) {
	rules := DefaultProblemRules()
	tickets := build(
		fx{cat: "RESET DE SENHA", opened: day(2024, 2, 1)},
		fx{cat: "SPDATA", opened: day(2024, 1, 1)},
		fx{cat: "TONNER", loc: "UTI", opened: day(2024, 1, 5)},
		fx{cat: "MONITOR", opened: day(2024, 1, 6)},
	)

	pw := PasswordResets(tickets, rules)
	if pw.Total != 2 || len(pw.Rows) != 2 || pw.Rows[0].Key != "2024-01" {
		t.Errorf("unexpected password resets %+v", pw)
	}
	if pw.PerMonth == nil || *pw.PerMonth != 1 {
		t.Errorf("PerMonth = %v, want 1", pw.PerMonth)
	}

	toner := TonerRequests(tickets, rules)
	if toner.Total != 1 || toner.Rows[0].Key != "UTI" || toner.Percent != 25 {
		t.Errorf("unexpected toner requests %+v", toner)
	}

	if hw := HardwareBreakdown(tickets, rules); hw.Total != 1 {
		t.Errorf("unexpected hardware breakdown %+v", hw)
	}
}
