package ticket

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Category normalisation applied to the raw GLPI category path.
const (
	CategoryPrefix   = "SETOR DE INFORMATICA > "
	CategorySentinel = "SETOR DE INFORMATICA"
	CategoryOther    = "OUTROS"
)

// CleanCategory strips the IT-department prefix and maps the bare department to "OUTROS".
func CleanCategory(raw string) string {
	clean := strings.ReplaceAll(raw, CategoryPrefix, "")
	return strings.ReplaceAll(clean, CategorySentinel, CategoryOther)
}

// Enrich maps a raw record into a Ticket and computes its derived fields.
// Derivations whose source column is absent from cols are skipped.
func Enrich(rec Record, cols Columns) Ticket {
	t := Ticket{
		Title:      rec[ColTitle],
		Status:     strings.TrimSpace(rec[ColStatus]),
		Priority:   strings.TrimSpace(rec[ColPriority]),
		Technician: strings.TrimSpace(rec[ColTechnician]),
		Requester:  strings.TrimSpace(rec[ColRequester]),
		Location:   strings.TrimSpace(rec[ColLocation]),
	}

	t.RawID = strings.TrimSpace(rec[ColID])
	if id, err := strconv.Atoi(strings.ReplaceAll(t.RawID, " ", "")); err == nil {
		t.ID = id
	}

	if cols.Has(ColCategory) {
		t.CategoryRaw = strings.TrimSpace(rec[ColCategory])
		t.Category = CleanCategory(t.CategoryRaw)
	}

	if cols.Has(ColOpenedDate) {
		t.OpenedAt = ParseDate(rec[ColOpenedDate])
	}
	if cols.Has(ColUpdatedDate) {
		t.UpdatedAt = ParseDate(rec[ColUpdatedDate])
	}
	if cols.Has(ColSLADate) {
		t.SLADueAt = ParseDate(rec[ColSLADate])
	}

	if t.OpenedAt != nil && t.UpdatedAt != nil {
		hours := t.UpdatedAt.Sub(*t.OpenedAt).Hours()
		t.ResolutionHours = &hours
	}

	if t.OpenedAt != nil {
		t.Weekday = WeekdayLabel(*t.OpenedAt)
		t.Month = MonthLabel(*t.OpenedAt)
	}

	if cols.Has(ColOpenedHour) && t.OpenedAt != nil {
		t.OpenedHour = hourOfDay(rec[ColOpenedHour])
	}

	if cols.Has(ColTitle) {
		t.TitleLength = utf8.RuneCountInString(t.Title)
		switch {
		case strings.TrimSpace(t.Title) == "":
			t.TitleQuality = QualityUnknown
		case t.TitleLength > 20:
			t.TitleQuality = QualityGood
		default:
			t.TitleQuality = QualityPoor
		}
	}

	return t
}

// FromRecords derives tickets for every data row, preserving order. Rows are never dropped.
func FromRecords(header []string, rows [][]string) ([]Ticket, Columns) {
	cols := NewColumns(header)
	tickets := make([]Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, Enrich(NewRecord(header, row), cols))
	}
	return tickets, cols
}

// hourOfDay returns the two-digit hour of an "HH:MM" cell, or "" when it is not a valid hour.
func hourOfDay(value string) string {
	h, _, _ := strings.Cut(strings.TrimSpace(value), ":")
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 || len(h) > 2 {
		return ""
	}
	return fmt.Sprintf("%02d", n)
}
