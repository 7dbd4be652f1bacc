package ticket

import (
	"strings"
	"time"
)

// Day-first layouts are tried before month-first ones so "05/01/2024" is 5 January.
var (
	dayFirstLayouts = []string{
		"2/1/2006 15:04:05",
		"2/1/2006 15:04",
		"2/1/2006",
		"2/1/06 15:04:05",
		"2/1/06 15:04",
		"2/1/06",
	}
	isoLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	monthFirstLayouts = []string{
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"1/2/2006",
	}
)

// ParseDate parses a GLPI date cell day-first, accepting '/' or '-' as separator,
// an optional time of day, and year-first values with either separator. Unparsable input yields nil.
func ParseDate(value string) *time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}

	if len(v) >= 5 && (v[4] == '-' || v[4] == '/') {
		if t, ok := tryLayouts(strings.ReplaceAll(v, "/", "-"), isoLayouts); ok {
			return &t
		}
		return nil
	}

	v = strings.ReplaceAll(v, "-", "/")
	if t, ok := tryLayouts(v, dayFirstLayouts); ok {
		return &t
	}
	if t, ok := tryLayouts(v, monthFirstLayouts); ok {
		return &t
	}
	return nil
}

func tryLayouts(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthLabel formats the calendar month of t as YYYY-MM.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// DateOnly truncates t to midnight of its calendar day, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayOrder is the display order of weekday labels, Monday first.
var WeekdayOrder = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

// WeekdayLabel returns the Portuguese name of t's weekday.
func WeekdayLabel(t time.Time) string {
	return weekdayLabels[t.Weekday()]
}
