package filter

import (
	"fmt"
	"strings"
	"time"
)

// Sentinel values meaning "no constraint" on a dimension.
const (
	All         = "Todos"
	AllFeminine = "Todas"
)

// IsAll reports whether value leaves a dimension unconstrained.
func IsAll(value string) bool {
	return value == "" || value == All || value == AllFeminine
}

// Dimension names a filterable ticket attribute.
type Dimension string

const (
	DimTechnician Dimension = "technician"
	DimStatus     Dimension = "status"
	DimPriority   Dimension = "priority"
	DimCategory   Dimension = "category"
)

// Dimensions lists every filterable dimension.
var Dimensions = []Dimension{DimTechnician, DimStatus, DimPriority, DimCategory}

// ParseDimension validates a dimension name.
func ParseDimension(name string) (Dimension, bool) {
	for _, d := range Dimensions {
		if string(d) == name {
			return d, true
		}
	}
	return "", false
}

// Period is a closed interval of calendar dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the calendar date of t lies within the period.
func (p Period) Contains(t time.Time) bool {
	d := dateOf(t)
	return !d.Before(dateOf(p.Start)) && !d.After(dateOf(p.End))
}

// DateLayout is the textual form of period bounds.
const DateLayout = "2006-01-02"

// ParsePeriod parses inclusive period bounds. Two empty bounds mean no period.
func ParsePeriod(start, end string) (*Period, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("a period needs both a start and an end date")
	}
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return &Period{Start: from, End: to}, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Criteria is the primary filter selection chosen from the dropdowns.
type Criteria struct {
	Period     *Period `json:"period,omitempty"`
	Technician string  `json:"technician,omitempty"`
	Status     string  `json:"status,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Category   string  `json:"category,omitempty"`
}

// Value returns the selected value for a dimension.
func (c Criteria) Value(d Dimension) string {
	switch d {
	case DimTechnician:
		return c.Technician
	case DimStatus:
		return c.Status
	case DimPriority:
		return c.Priority
	case DimCategory:
		return c.Category
	}
	return ""
}

// Selection is the interactive overlay set by clicking chart points.
// A nil field leaves the dimension unconstrained.
type Selection struct {
	Technician *string `json:"technician,omitempty"`
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Category   *string `json:"category,omitempty"`
}

// With returns a copy of s with dimension d set to value.
func (s Selection) With(d Dimension, value string) Selection {
	v := value
	switch d {
	case DimTechnician:
		s.Technician = &v
	case DimStatus:
		s.Status = &v
	case DimPriority:
		s.Priority = &v
	case DimCategory:
		s.Category = &v
	}
	return s
}

// Clear resets every dimension of the overlay at once.
func (s Selection) Clear() Selection {
	return Selection{}
}

// IsEmpty reports whether no dimension is selected.
func (s Selection) IsEmpty() bool {
	return s.Technician == nil && s.Status == nil && s.Priority == nil && s.Category == nil
}

// Criteria converts the overlay into exact-match criteria without a period.
func (s Selection) Criteria() Criteria {
	return Criteria{
		Technician: deref(s.Technician),
		Status:     deref(s.Status),
		Priority:   deref(s.Priority),
		Category:   deref(s.Category),
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
