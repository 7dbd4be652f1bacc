package session

import (
	"glpi-insights/internal/auth"
	"glpi-insights/internal/filter"

	"github.com/google/uuid"
)

// State is the explicit state of one dashboard session. Handlers never mutate
// a State in place; each returns the next one.
type State struct {
	ID        string           `json:"id"`
	LoggedIn  bool             `json:"logged_in"`
	Criteria  filter.Criteria  `json:"criteria"`
	Selection filter.Selection `json:"selection"`
	SourceKey string           `json:"source_key,omitempty"`
}

// New starts a logged-out session with no filters.
func New() State {
	return State{ID: uuid.NewString()}
}

// Login checks the credentials and returns the next state with the outcome.
// The login flag only changes on Granted.
func (s State) Login(expected auth.Credentials, username, password string) (State, auth.Outcome) {
	outcome := auth.Check(expected, username, password)
	if outcome == auth.Granted {
		s.LoggedIn = true
	}
	return s, outcome
}

// Logout clears the login flag and every filter.
func (s State) Logout() State {
	return State{ID: s.ID, SourceKey: s.SourceKey}
}

// WithCriteria replaces the primary filters.
func (s State) WithCriteria(c filter.Criteria) State {
	s.Criteria = c
	return s
}

// Select sets one dimension of the interactive overlay.
func (s State) Select(d filter.Dimension, value string) State {
	s.Selection = s.Selection.With(d, value)
	return s
}

// ClearInteractive resets the whole interactive overlay.
func (s State) ClearInteractive() State {
	s.Selection = s.Selection.Clear()
	return s
}

// WithSource records the loaded snapshot. A different source clears the overlay
// and the period, whose bounds belong to the previous data.
func (s State) WithSource(key string) State {
	if key != s.SourceKey {
		s.Selection = filter.Selection{}
		s.Criteria.Period = nil
	}
	s.SourceKey = key
	return s
}
