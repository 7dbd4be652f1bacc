package session

import (
	"testing"
	"time"

	"glpi-insights/internal/auth"
	"glpi-insights/internal/filter"
)

var creds = auth.Credentials{Username: "admin", Password: "pw"}

func TestLogin(t *testing.T) {
	s := New()
	if s.ID == "" || s.LoggedIn {
		t.Fatalf("unexpected initial state %+v", s)
	}

	next, outcome := s.Login(creds, "admin", "bad")
	if outcome != auth.Denied || next.LoggedIn {
		t.Errorf("expected denial, got %v %+v", outcome, next)
	}

	next, outcome = s.Login(auth.Credentials{}, "admin", "pw")
	if outcome != auth.Misconfigured || next.LoggedIn {
		t.Errorf("expected misconfiguration, got %v", outcome)
	}

	next, outcome = s.Login(creds, "admin", "pw")
	if outcome != auth.Granted || !next.LoggedIn {
		t.Errorf("expected grant, got %v", outcome)
	}
	if s.LoggedIn {
		t.Error("Login must not mutate the receiver")
	}

	out := next.Select(filter.DimStatus, "Fechado").Logout()
	if out.LoggedIn || !out.Selection.IsEmpty() || out.ID != s.ID {
		t.Errorf("unexpected state after logout %+v", out)
	}
}

func TestInteractiveOverlay(t *testing.T) {
	s := New().
		WithCriteria(filter.Criteria{Technician: "Ana"}).
		Select(filter.DimStatus, "Fechado").
		Select(filter.DimCategory, "REDE")

	if s.Selection.Status == nil || *s.Selection.Category != "REDE" {
		t.Fatalf("unexpected selection %+v", s.Selection)
	}

	cleared := s.ClearInteractive()
	if !cleared.Selection.IsEmpty() {
		t.Errorf("expected empty overlay, got %+v", cleared.Selection)
	}
	if cleared.Criteria.Technician != "Ana" {
		t.Error("clearing the overlay must keep the primary filters")
	}
}

func TestWithSource(t *testing.T) {
	p := &filter.Period{Start: time.Now(), End: time.Now()}
	s := New().WithSource("a").WithCriteria(filter.Criteria{Period: p, Status: "Pendente"}).Select(filter.DimPriority, "Alta")

	same := s.WithSource("a")
	if same.Selection.IsEmpty() || same.Criteria.Period == nil {
		t.Error("reloading the same source must keep the filters")
	}

	other := s.WithSource("b")
	if !other.Selection.IsEmpty() || other.Criteria.Period != nil || other.Criteria.Status != "Pendente" {
		t.Errorf("unexpected state after source change %+v", other)
	}
}
