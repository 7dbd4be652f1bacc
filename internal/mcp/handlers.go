package mcp

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"glpi-insights/internal/auth"
	"glpi-insights/internal/filter"
	"glpi-insights/internal/ingest"

	"github.com/rs/zerolog/log"
)

var errNotLoggedIn = errors.New("not logged in: call 'login' first")

func (s *Server) requireLogin() error {
	if !s.state.LoggedIn {
		return errNotLoggedIn
	}
	return nil
}

// requireSnapshot loads the local fallback file when nothing has been loaded yet.
func (s *Server) requireSnapshot() error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if s.snap != nil {
		return nil
	}
	res := s.loader.Load(nil)
	if !res.OK() {
		return fmt.Errorf("no tickets loaded (%s): %s", res.Status, res.Message)
	}
	s.adopt(res)
	return nil
}

// adopt makes a successful load current. A new source resets the overlay and
// the period, which then defaults to the current month when it lies within the data.
func (s *Server) adopt(res ingest.Result) {
	s.snap = res.Snapshot
	s.state = s.state.WithSource(res.Key)
	s.restoreDefaultPeriod()
}

// restoreDefaultPeriod sets the default period when tickets are loaded and no period is chosen.
func (s *Server) restoreDefaultPeriod() {
	if s.snap == nil || s.state.Criteria.Period != nil {
		return
	}
	if p, ok := filter.DefaultPeriod(s.snap, s.now()); ok {
		s.state.Criteria.Period = &p
	}
}

func (s *Server) handleLogin(args LoginArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, outcome := s.state.Login(s.cfg.Credentials, args.Username, args.Password)
	s.state = next

	switch outcome {
	case auth.Granted:
		s.restoreDefaultPeriod()
		log.Info().Str("session", s.state.ID).Msg("Login granted")
	case auth.Misconfigured:
		log.Error().Msg("Login attempted without configured credentials")
	default:
		log.Warn().Str("username", args.Username).Msg("Login denied")
	}

	return map[string]interface{}{
		"outcome":   outcome,
		"message":   outcome.Message(),
		"logged_in": s.state.LoggedIn,
	}, nil
}

func (s *Server) handleLogout() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	s.state = s.state.Logout()
	return map[string]interface{}{"logged_in": false}, nil
}

func (s *Server) handleLoadTickets(args LoadArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	var upload []byte
	if args.ContentBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(args.ContentBase64)
		if err != nil {
			return nil, fmt.Errorf("invalid content_base64: %w", err)
		}
		upload = data
	}
	if args.Reload {
		s.loader.Invalidate(upload)
	}

	res := s.loader.Load(upload)
	out := map[string]interface{}{
		"status":  res.Status,
		"message": res.Message,
		"key":     res.Key,
		"cached":  res.Cached,
	}
	if !res.OK() {
		out["_guidance"] = []string{
			"The previously loaded tickets, if any, remain active.",
			"Upload an export through 'content_base64' or check GLPI_CSV_PATH.",
		}
		return out, nil
	}

	s.adopt(res)
	out["source"] = s.snap.Source
	out["tickets"] = s.snap.Len()
	out["missing_columns"] = s.snap.Columns.Missing()
	out["criteria"] = s.state.Criteria
	out["_guidance"] = []string{
		"Views depending on a missing column come back empty rather than failing.",
		"The period defaults to the current month when the data covers it. Use 'set_filters' to change it.",
	}
	return out, nil
}

func (s *Server) handleFilterOptions() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSnapshot(); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"options":   filter.BuildOptions(s.snap),
		"criteria":  s.state.Criteria,
		"selection": s.state.Selection,
	}, nil
}

func (s *Server) handleSetFilters(args FilterArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSnapshot(); err != nil {
		return nil, err
	}
	period, err := filter.ParsePeriod(args.StartDate, args.EndDate)
	if err != nil {
		return nil, err
	}

	s.state = s.state.WithCriteria(filter.Criteria{
		Period:     period,
		Technician: strings.TrimSpace(args.Technician),
		Status:     strings.TrimSpace(args.Status),
		Priority:   strings.TrimSpace(args.Priority),
		Category:   strings.TrimSpace(args.Category),
	})
	return s.filterSummary(), nil
}

func (s *Server) handleSelect(args SelectArgs) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSnapshot(); err != nil {
		return nil, err
	}
	d, ok := filter.ParseDimension(args.Dimension)
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q: use one of %v", args.Dimension, filter.Dimensions)
	}
	s.state = s.state.Select(d, args.Value)
	return s.filterSummary(), nil
}

func (s *Server) handleClearInteractive() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	s.state = s.state.ClearInteractive()
	return s.filterSummary(), nil
}

// filterSummary reports the active filters and, when tickets are loaded, how many match.
func (s *Server) filterSummary() map[string]interface{} {
	res := map[string]interface{}{
		"criteria":  s.state.Criteria,
		"selection": s.state.Selection,
	}
	if s.snap != nil {
		res["tickets"] = len(filter.Apply(s.snap, s.state.Criteria, s.state.Selection))
		res["total"] = s.snap.Len()
	}
	return res
}
