package stats

import (
	"cmp"
	"slices"
	"strings"

	"glpi-insights/internal/ticket"
)

// ProblemRule matches tickets whose clean category contains any keyword, ignoring case.
type ProblemRule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Match reports whether the rule applies to t.
func (r ProblemRule) Match(t ticket.Ticket) bool {
	if t.Category == "" {
		return false
	}
	cat := strings.ToUpper(t.Category)
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(cat, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

// Select returns the tickets matched by the rule, in input order.
func (r ProblemRule) Select(tickets []ticket.Ticket) []ticket.Ticket {
	var out []ticket.Ticket
	for _, t := range tickets {
		if r.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ProblemRules configures the problem-type summary and its drill-downs.
type ProblemRules struct {
	Types    []ProblemRule `yaml:"types"`
	Printer  ProblemRule   `yaml:"printer"`
	Hardware ProblemRule   `yaml:"hardware"`
	Password ProblemRule   `yaml:"password"`
	Toner    ProblemRule   `yaml:"toner"`
}

// DefaultProblemRules is used when no rules file overrides them.
func DefaultProblemRules() ProblemRules {
	return ProblemRules{
		Types: []ProblemRule{
			{Name: "Impressora", Keywords: []string{"IMPRESSORA"}},
			{Name: "SPDATA", Keywords: []string{"SPDATA"}},
			{Name: "Tonner", Keywords: []string{"TONNER", "TONER"}},
			{Name: "Computador", Keywords: []string{"COMPUTADOR"}},
			{Name: "Hardware", Keywords: []string{"TECLADO", "MOUSE", "MONITOR"}},
			{Name: "Rede", Keywords: []string{"REDE", "INTERNET"}},
		},
		Printer:  ProblemRule{Name: "Impressora", Keywords: []string{"IMPRESSORA"}},
		Hardware: ProblemRule{Name: "Hardware", Keywords: []string{"COMPUTADOR", "TECLADO", "MOUSE", "MONITOR"}},
		Password: ProblemRule{Name: "Senha", Keywords: []string{"RESET", "SENHA", "SPDATA"}},
		Toner:    ProblemRule{Name: "Tonner", Keywords: []string{"TONNER", "TONER"}},
	}
}

// ProblemType is one row of the problem-type summary.
type ProblemType struct {
	Type      string   `json:"type"`
	Count     int      `json:"count"`
	Percent   float64  `json:"percent"`
	MeanHours *float64 `json:"mean_hours"`
}

// ProblemTypes applies every rule independently, so a ticket may count in several types.
func ProblemTypes(tickets []ticket.Ticket, rules []ProblemRule) []ProblemType {
	out := make([]ProblemType, 0, len(rules))
	for _, r := range rules {
		matched := r.Select(tickets)
		out = append(out, ProblemType{
			Type:      r.Name,
			Count:     len(matched),
			Percent:   Percent(len(matched), len(tickets)),
			MeanHours: MeanHours(matched),
		})
	}
	slices.SortStableFunc(out, func(a, b ProblemType) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}

// Breakdown is a drill-down into the tickets matched by one rule.
type Breakdown struct {
	Rule    string  `json:"rule"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
	// PerMonth is Total divided by the number of months in the filtered set.
	PerMonth *float64 `json:"per_month,omitempty"`
	Rows     []Count  `json:"rows"`
}

// BreakdownBy counts the matched tickets by key, keeping the top limit rows.
func BreakdownBy(tickets []ticket.Ticket, r ProblemRule, key KeyFunc, limit int) Breakdown {
	matched := r.Select(tickets)
	return Breakdown{
		Rule:     r.Name,
		Total:    len(matched),
		Percent:  Percent(len(matched), len(tickets)),
		PerMonth: RatioInt(len(matched), len(MonthlySeries(tickets))),
		Rows:     TopN(CountBy(matched, key), limit),
	}
}

// PrinterIncidents counts printer tickets per location.
func PrinterIncidents(tickets []ticket.Ticket, rules ProblemRules) Breakdown {
	return BreakdownBy(tickets, rules.Printer, ByLocation, 15)
}

// HardwareBreakdown counts hardware tickets per category.
func HardwareBreakdown(tickets []ticket.Ticket, rules ProblemRules) Breakdown {
	return BreakdownBy(tickets, rules.Hardware, ByCategory, 10)
}

// PasswordResets counts password reset tickets per month in chronological order.
func PasswordResets(tickets []ticket.Ticket, rules ProblemRules) Breakdown {
	b := BreakdownBy(tickets, rules.Password, ByMonth, -1)
	slices.SortFunc(b.Rows, func(x, y Count) int { return cmp.Compare(x.Key, y.Key) })
	return b
}

// TonerRequests counts toner tickets per location.
func TonerRequests(tickets []ticket.Ticket, rules ProblemRules) Breakdown {
	return BreakdownBy(tickets, rules.Toner, ByLocation, 10)
}
