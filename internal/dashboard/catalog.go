package dashboard

import (
	"fmt"
	"time"

	"glpi-insights/internal/filter"
	"glpi-insights/internal/session"
	"glpi-insights/internal/stats"
	"glpi-insights/internal/ticket"

	"github.com/google/jsonschema-go/jsonschema"
)

// Input is what every view is computed from: the filtered tickets plus context.
type Input struct {
	Snapshot *ticket.Snapshot
	Tickets  []ticket.Ticket
	Rules    stats.ProblemRules
	Now      time.Time
}

// NewInput filters snap once with the session's criteria and overlay.
func NewInput(snap *ticket.Snapshot, st session.State, rules stats.ProblemRules, now time.Time) Input {
	return Input{
		Snapshot: snap,
		Tickets:  filter.Apply(snap, st.Criteria, st.Selection),
		Rules:    rules,
		Now:      now,
	}
}

// View is one named aggregate of the catalog.
type View struct {
	Name    string `json:"name"`
	Tab     string `json:"tab"`
	Title   string `json:"title"`
	compute func(Input) any
	schema  func() (*jsonschema.Schema, error)
}

// Compute evaluates the view.
func (v View) Compute(in Input) any {
	return v.compute(in)
}

// Schema describes the JSON shape of the view's result.
func (v View) Schema() (*jsonschema.Schema, error) {
	return v.schema()
}

func define[T any](name, tab, title string, fn func(Input) T) View {
	return View{
		Name:    name,
		Tab:     tab,
		Title:   title,
		compute: func(in Input) any { return fn(in) },
		schema:  func() (*jsonschema.Schema, error) { return jsonschema.For[T](nil) },
	}
}

// Result is a computed view.
type Result struct {
	Name  string `json:"name"`
	Tab   string `json:"tab"`
	Title string `json:"title"`
	Data  any    `json:"data"`
}

// Views returns the catalog in display order.
func Views() []View {
	return catalog
}

// Tabs returns the tab names in display order.
func Tabs() []string {
	var tabs []string
	seen := make(map[string]bool)
	for _, v := range catalog {
		if !seen[v.Tab] {
			seen[v.Tab] = true
			tabs = append(tabs, v.Tab)
		}
	}
	return tabs
}

// Lookup finds a view by name.
func Lookup(name string) (View, bool) {
	for _, v := range catalog {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// Compute evaluates every view of the catalog, or only those of tab when it is non-empty.
// Each call recomputes from the full snapshot.
func Compute(in Input, tab string) []Result {
	var out []Result
	for _, v := range catalog {
		if tab != "" && v.Tab != tab {
			continue
		}
		out = append(out, Result{Name: v.Name, Tab: v.Tab, Title: v.Title, Data: v.Compute(in)})
	}
	return out
}

// ComputeOne evaluates a single named view.
func ComputeOne(in Input, name string) (Result, error) {
	v, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown view: %s", name)
	}
	return Result{Name: v.Name, Tab: v.Tab, Title: v.Title, Data: v.Compute(in)}, nil
}
