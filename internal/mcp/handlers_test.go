package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"glpi-insights/internal/auth"
	"glpi-insights/internal/config"
	"glpi-insights/internal/dashboard"
	"glpi-insights/internal/filter"
	"glpi-insights/internal/ingest"
	"glpi-insights/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const localCSV = "ID;Título;Status;Atribuído - Técnico;Categoria;Data Abertura;Data Atualização\n" +
	"1;Impressora da recepção parada;Fechado;Ana;SETOR DE INFORMATICA > IMPRESSORA;05/01/2024 08:00;05/01/2024 12:00\n" +
	"2;Sem acesso à rede interna;Pendente;Bruno;SETOR DE INFORMATICA > REDE;10/02/2024 09:00;\n" +
	"3;Monitor sem imagem nenhuma;Solucionado;Ana;SETOR DE INFORMATICA > MONITOR;;\n"

var creds = auth.Credentials{Username: "admin", Password: "secret"}

func newTestServer(t *testing.T, csv string) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glpi.csv")
	if csv != "" {
		if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := &config.AppConfig{
		Credentials:         creds,
		CSVPath:             path,
		Rules:               stats.DefaultProblemRules(),
		EnableMermaidCharts: true,
	}
	s := NewServer(cfg, ingest.NewLoader(path, ingest.NewCache(2)))
	s.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func login(t *testing.T, s *Server) {
	t.Helper()
	res, err := s.handleLogin(LoginArgs{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if res.(map[string]interface{})["outcome"] != auth.Granted {
		t.Fatalf("login not granted: %v", res)
	}
}

func TestLogin_Outcomes(t *testing.T) {
	s := newTestServer(t, localCSV)

	res, _ := s.handleLogin(LoginArgs{Username: "admin", Password: "wrong"})
	if res.(map[string]interface{})["outcome"] != auth.Denied || s.state.LoggedIn {
		t.Errorf("expected denied, got %v", res)
	}

	s.cfg.Credentials = auth.Credentials{}
	res, _ = s.handleLogin(LoginArgs{Username: "", Password: ""})
	if res.(map[string]interface{})["outcome"] != auth.Misconfigured || s.state.LoggedIn {
		t.Errorf("expected misconfigured, got %v", res)
	}
}

func TestTools_RequireLogin(t *testing.T) {
	s := newTestServer(t, localCSV)
	calls := map[string]func() (interface{}, error){
		"logout":         s.handleLogout,
		"filter_options": s.handleFilterOptions,
		"clear":          s.handleClearInteractive,
		"load":           func() (interface{}, error) { return s.handleLoadTickets(LoadArgs{}) },
		"set_filters":    func() (interface{}, error) { return s.handleSetFilters(FilterArgs{}) },
		"select":         func() (interface{}, error) { return s.handleSelect(SelectArgs{Dimension: "status", Value: "Fechado"}) },
		"list_views":     func() (interface{}, error) { return s.handleListViews(ViewArgs{}) },
		"get_view":       func() (interface{}, error) { return s.handleGetView(ViewArgs{Name: "headline"}) },
		"describe_view":  func() (interface{}, error) { return s.handleDescribeView(ViewArgs{Name: "headline"}) },
	}
	for name, fn := range calls {
		if _, err := fn(); !errors.Is(err, errNotLoggedIn) {
			t.Errorf("%s: expected errNotLoggedIn, got %v", name, err)
		}
	}
}

func TestLoadTickets_UploadAndFallback(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)

	upload := "ID;Status\n10;Fechado\n11;Fechado\n"
	res, err := s.handleLoadTickets(LoadArgs{ContentBase64: base64.StdEncoding.EncodeToString([]byte(upload))})
	if err != nil {
		t.Fatal(err)
	}
	out := res.(map[string]interface{})
	if out["status"] != ingest.StatusLoaded || out["tickets"] != 2 || out["source"] != ingest.SourceUpload {
		t.Errorf("unexpected upload result: %v", out)
	}

	res, _ = s.handleLoadTickets(LoadArgs{})
	out = res.(map[string]interface{})
	if out["tickets"] != 3 {
		t.Errorf("expected local fallback with 3 tickets, got %v", out)
	}

	if _, err := s.handleLoadTickets(LoadArgs{ContentBase64: "%%%"}); err == nil {
		t.Error("expected invalid base64 to fail")
	}
}

func TestLoadTickets_NoDataKeepsPrevious(t *testing.T) {
	s := newTestServer(t, "")
	login(t, s)

	res, err := s.handleLoadTickets(LoadArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if res.(map[string]interface{})["status"] != ingest.StatusNoData {
		t.Errorf("expected no_data, got %v", res)
	}
	if _, err := s.handleGetView(ViewArgs{Name: "headline"}); err == nil || !strings.Contains(err.Error(), "no_data") {
		t.Errorf("expected views to report missing data, got %v", err)
	}
}

func TestFilters_FlowIntoViews(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)

	if _, err := s.handleSetFilters(FilterArgs{StartDate: "2024-01-01", EndDate: "2024-12-31"}); err != nil {
		t.Fatal(err)
	}
	res, err := s.handleGetView(ViewArgs{Name: "headline"})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.(map[string]interface{})["tickets"]; got != 2 {
		t.Errorf("expected the undated ticket excluded, got %v", got)
	}

	if _, err := s.handleSelect(SelectArgs{Dimension: "technician", Value: "Ana"}); err != nil {
		t.Fatal(err)
	}
	res, _ = s.handleGetView(ViewArgs{Name: "status_distribution"})
	out := res.(map[string]interface{})
	if out["tickets"] != 1 {
		t.Errorf("expected overlay to narrow to 1 ticket, got %v", out["tickets"])
	}
	if _, ok := out["visual_status_distribution"]; !ok {
		t.Error("expected a status pie")
	}

	res, _ = s.handleClearInteractive()
	if res.(map[string]interface{})["tickets"] != 2 {
		t.Errorf("expected 2 tickets after clearing, got %v", res)
	}
}

func TestSetFilters_Validation(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)

	tests := []FilterArgs{
		{StartDate: "2024-01-01"},
		{StartDate: "01/01/2024", EndDate: "2024-01-31"},
		{StartDate: "2024-02-01", EndDate: "2024-01-31"},
	}
	for _, args := range tests {
		if _, err := s.handleSetFilters(args); err == nil {
			t.Errorf("expected error for %+v", args)
		}
	}
	if _, err := s.handleSelect(SelectArgs{Dimension: "requester", Value: "x"}); err == nil {
		t.Error("expected unknown dimension to fail")
	}
}

func TestGetView_TabAndErrors(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)

	res, err := s.handleGetView(ViewArgs{Tab: dashboard.TabQuality})
	if err != nil {
		t.Fatal(err)
	}
	if views := res.(map[string]interface{})["views"].([]dashboard.Result); len(views) != 3 {
		t.Errorf("expected 3 quality views, got %d", len(views))
	}

	for _, args := range []ViewArgs{{}, {Name: "nope"}, {Tab: "nope"}} {
		if _, err := s.handleGetView(args); err == nil {
			t.Errorf("expected error for %+v", args)
		}
	}
}

func TestDescribeView(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)

	res, err := s.handleDescribeView(ViewArgs{Name: "sla_compliance"})
	if err != nil {
		t.Fatal(err)
	}
	if res.(map[string]interface{})["schema"] == nil {
		t.Error("expected a schema")
	}
}

func TestLogout_ClearsFilters(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)
	s.state = s.state.Select(filter.DimStatus, "Fechado")

	if _, err := s.handleLogout(); err != nil {
		t.Fatal(err)
	}
	if s.state.LoggedIn || !s.state.Selection.IsEmpty() {
		t.Errorf("expected a clean logged-out state, got %+v", s.state)
	}
}

func TestServer_InMemory(t *testing.T) {
	s := newTestServer(t, localCSV)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := s.Handler("test").Connect(ctx, serverTransport, nil); err != nil {
		t.Fatal(err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tools.Tools) != 10 {
		t.Errorf("expected 10 tools, got %d", len(tools.Tools))
	}

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "list_views", Arguments: map[string]any{}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected list_views to fail before login")
	}

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{Name: "login", Arguments: map[string]any{"username": "admin", "password": "secret"}})
	if err != nil {
		t.Fatal(err)
	}
	text := res.Content[0].(*mcp.TextContent).Text
	if res.IsError || !strings.Contains(text, `"granted"`) {
		t.Errorf("unexpected login result: %s", text)
	}
}

func TestLogin_RestoresDefaultPeriodAfterLogout(t *testing.T) {
	s := newTestServer(t, localCSV)
	login(t, s)
	if _, err := s.handleFilterOptions(); err != nil {
		t.Fatal(err)
	}
	if s.state.Criteria.Period == nil {
		t.Fatal("expected a default period after loading")
	}
	want := *s.state.Criteria.Period

	if _, err := s.handleLogout(); err != nil {
		t.Fatal(err)
	}
	login(t, s)
	if s.state.Criteria.Period == nil || *s.state.Criteria.Period != want {
		t.Errorf("expected period %+v after logging in again, got %+v", want, s.state.Criteria.Period)
	}
}
