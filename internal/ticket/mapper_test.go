package ticket

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		isNil bool
	}{
		{"DayFirstSlash", "05/01/2024 10:30", time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC), false},
		{"DayFirstDash", "05-01-2024 10:30:15", time.Date(2024, 1, 5, 10, 30, 15, 0, time.UTC), false},
		{"DateOnly", "31/12/2023", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"SingleDigits", "5/1/2024 8:05", time.Date(2024, 1, 5, 8, 5, 0, 0, time.UTC), false},
		{"ShortYear", "05/01/24", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"ISO", "2024-01-05 10:30", time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC), false},
		{"YearFirstSlash", "2024/01/05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"YearFirstSlashTime", "2024/01/05 10:30", time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC), false},
		{"MonthFirstFallback", "12/31/2023", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"Empty", "", time.Time{}, true},
		{"Garbage", "not a date", time.Time{}, true},
		{"InvalidDay", "45/45/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.isNil {
				if got != nil {
					t.Errorf("ParseDate(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil, want %v", tt.input, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestCleanCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"SETOR DE INFORMATICA > IMPRESSORA", "IMPRESSORA"},
		{"SETOR DE INFORMATICA", "OUTROS"},
		{"REDE > INTERNET", "REDE > INTERNET"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanCategory(tt.raw); got != tt.want {
			t.Errorf("CleanCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestEnrich_ResolutionHours(t *testing.T) {
	header := []string{ColID, ColTitle, ColStatus, ColCategory, ColOpenedDate, ColOpenedHour, ColUpdatedDate}
	cols := NewColumns(header)

	rec := NewRecord(header, []string{"42", "Impressora não imprime nada", "Fechado", "SETOR DE INFORMATICA > IMPRESSORA", "05/01/2024 08:00", "08:00", "05/01/2024 12:30"})
	tk := Enrich(rec, cols)

	if tk.ID != 42 {
		t.Errorf("expected ID 42, got %d", tk.ID)
	}
	if tk.ResolutionHours == nil || *tk.ResolutionHours != 4.5 {
		t.Fatalf("expected 4.5 resolution hours, got %v", tk.ResolutionHours)
	}
	if tk.Category != "IMPRESSORA" {
		t.Errorf("expected clean category IMPRESSORA, got %q", tk.Category)
	}
	if tk.Weekday != "Sexta" {
		t.Errorf("expected weekday Sexta, got %q", tk.Weekday)
	}
	if tk.Month != "2024-01" {
		t.Errorf("expected month 2024-01, got %q", tk.Month)
	}
	if tk.OpenedHour != "08" {
		t.Errorf("expected hour 08, got %q", tk.OpenedHour)
	}
	if tk.TitleQuality != QualityGood {
		t.Errorf("expected good title quality, got %q", tk.TitleQuality)
	}
}

func TestEnrich_NegativeDurationIsKept(t *testing.T) {
	header := []string{ColOpenedDate, ColUpdatedDate}
	tk := Enrich(NewRecord(header, []string{"05/01/2024 12:00", "05/01/2024 10:00"}), NewColumns(header))
	if tk.ResolutionHours == nil || *tk.ResolutionHours != -2 {
		t.Errorf("expected -2 hours, got %v", tk.ResolutionHours)
	}
}

func TestEnrich_NullWhenEitherDateMissing(t *testing.T) {
	header := []string{ColOpenedDate, ColUpdatedDate}
	cols := NewColumns(header)

	cases := [][]string{
		{"invalid", "05/01/2024 10:00"},
		{"05/01/2024 10:00", ""},
		{"", ""},
	}
	for _, row := range cases {
		tk := Enrich(NewRecord(header, row), cols)
		if tk.ResolutionHours != nil {
			t.Errorf("row %v: expected nil resolution hours, got %v", row, *tk.ResolutionHours)
		}
	}

	tk := Enrich(NewRecord(header, cases[0]), cols)
	if tk.Weekday != "" || tk.Month != "" {
		t.Errorf("expected empty weekday/month for unparsed opening, got %q/%q", tk.Weekday, tk.Month)
	}
}

func TestEnrich_MissingColumnsSkipDerivations(t *testing.T) {
	header := []string{ColID, ColStatus}
	tk := Enrich(NewRecord(header, []string{"1", "Pendente"}), NewColumns(header))

	if tk.OpenedAt != nil || tk.ResolutionHours != nil {
		t.Error("expected no dates without date columns")
	}
	if tk.Category != "" || tk.TitleQuality != "" {
		t.Errorf("expected no category/title derivations, got %q/%q", tk.Category, tk.TitleQuality)
	}
}

func TestEnrich_TitleQuality(t *testing.T) {
	header := []string{ColTitle}
	cols := NewColumns(header)

	tests := []struct {
		title string
		want  string
	}{
		{"Sem rede", QualityPoor},
		{"exatamente vinte char", QualityGood},
		{"exatamente vinte cha", QualityPoor},
		{"", QualityUnknown},
	}
	for _, tt := range tests {
		if got := Enrich(NewRecord(header, []string{tt.title}), cols).TitleQuality; got != tt.want {
			t.Errorf("title %q: got %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFromRecords_KeepsEveryRow(t *testing.T) {
	header := []string{ColID, ColStatus, ColOpenedDate}
	rows := [][]string{
		{"1", "Fechado", "01/02/2024"},
		{"2"},
		{"x", "Pendente", "bad"},
	}
	tickets, cols := FromRecords(header, rows)
	if len(tickets) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(tickets))
	}
	if !cols.Has(ColStatus) || cols.Has(ColCategory) {
		t.Error("unexpected column set")
	}
	if tickets[2].ID != 0 || tickets[2].RawID != "x" {
		t.Errorf("expected unparsed ID to keep raw value, got %d/%q", tickets[2].ID, tickets[2].RawID)
	}
}

func TestEnrich_HourNeedsParsedOpening(t *testing.T) {
	header := []string{ColOpenedDate, ColOpenedHour}
	cols := NewColumns(header)

	tests := []struct {
		opened string
		hour   string
		want   string
	}{
		{"05/01/2024 09:00", "09:00", "09"},
		{"05/01/2024 08:05", "8:05", "08"},
		{"garbage", "14:30", ""},
		{"", "14:30", ""},
		{"05/01/2024 09:00", "25:00", ""},
		{"05/01/2024 09:00", "ab:cd", ""},
		{"05/01/2024 09:00", "", ""},
	}
	for _, tt := range tests {
		tk := Enrich(NewRecord(header, []string{tt.opened, tt.hour}), cols)
		if tk.OpenedHour != tt.want {
			t.Errorf("opened %q hour %q: got %q, want %q", tt.opened, tt.hour, tk.OpenedHour, tt.want)
		}
	}
}
