package mcp

import (
	"fmt"
	"slices"

	"glpi-insights/internal/dashboard"
	"glpi-insights/internal/visuals"
)

func (s *Server) handleListViews(args ViewArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	var views []dashboard.View
	for _, v := range dashboard.Views() {
		if args.Tab == "" || v.Tab == args.Tab {
			views = append(views, v)
		}
	}
	return map[string]interface{}{
		"tabs":  dashboard.Tabs(),
		"views": views,
	}, nil
}

func (s *Server) handleGetView(args ViewArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSnapshot(); err != nil {
		return nil, err
	}

	in := dashboard.NewInput(s.snap, s.state, s.cfg.Rules, s.now())
	var results []dashboard.Result
	switch {
	case args.Name != "":
		r, err := dashboard.ComputeOne(in, args.Name)
		if err != nil {
			return nil, err
		}
		results = []dashboard.Result{r}
	case args.Tab != "":
		if !slices.Contains(dashboard.Tabs(), args.Tab) {
			return nil, fmt.Errorf("unknown tab %q: use one of %v", args.Tab, dashboard.Tabs())
		}
		results = dashboard.Compute(in, args.Tab)
	default:
		return nil, fmt.Errorf("either name or tab is required")
	}

	res := map[string]interface{}{
		"views":    results,
		"tickets":  len(in.Tickets),
		"criteria": s.state.Criteria,
	}
	if !s.state.Selection.IsEmpty() {
		res["selection"] = s.state.Selection
	}
	if s.cfg.EnableMermaidCharts {
		for _, r := range results {
			if chart := visuals.Chart(r); chart != "" {
				res["visual_"+r.Name] = chart
			}
		}
	}
	return res, nil
}

func (s *Server) handleDescribeView(args ViewArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	v, ok := dashboard.Lookup(args.Name)
	if !ok {
		return nil, fmt.Errorf("unknown view: %s", args.Name)
	}
	schema, err := v.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to infer schema for %s: %w", v.Name, err)
	}
	return map[string]interface{}{
		"name":   v.Name,
		"tab":    v.Tab,
		"title":  v.Title,
		"schema": schema,
	}, nil
}
