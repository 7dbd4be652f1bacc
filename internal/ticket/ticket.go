package ticket

import "time"

// Status values with analytical meaning.
const (
	StatusClosed  = "Fechado"
	StatusSolved  = "Solucionado"
	StatusPending = "Pendente"
)

// Title quality labels.
const (
	QualityGood    = "Boa (>20 chars)"
	QualityPoor    = "Ruim (≤20 chars)"
	QualityUnknown = "N/A"
)

// Ticket is one helpdesk record with its derived attributes.
type Ticket struct {
	ID          int    `json:"id"`
	RawID       string `json:"raw_id,omitempty"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CategoryRaw string `json:"category_raw"`
	Category    string `json:"category"`
	Technician  string `json:"technician"`
	Requester   string `json:"requester"`
	Location    string `json:"location"`

	OpenedAt   *time.Time `json:"opened_at"`
	OpenedHour string     `json:"opened_hour,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at"`
	SLADueAt   *time.Time `json:"sla_due_at"`

	// ResolutionHours is UpdatedAt - OpenedAt in hours, nil when either is nil.
	ResolutionHours *float64 `json:"resolution_hours"`

	Weekday      string `json:"weekday,omitempty"` // Portuguese label of OpenedAt
	Month        string `json:"month,omitempty"`   // YYYY-MM of OpenedAt
	TitleLength  int    `json:"title_length"`
	TitleQuality string `json:"title_quality,omitempty"`
}

// IsResolved reports whether the ticket is closed or solved.
func (t Ticket) IsResolved() bool {
	return t.Status == StatusClosed || t.Status == StatusSolved
}

// IsPending reports whether the ticket is in the backlog.
func (t Ticket) IsPending() bool {
	return t.Status == StatusPending
}

// Snapshot is the immutable result of one load. Consumers must not mutate Tickets.
type Snapshot struct {
	Tickets  []Ticket  `json:"-"`
	Columns  Columns   `json:"columns"`
	Source   string    `json:"source"`
	Key      string    `json:"key"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Len returns the number of tickets in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Tickets)
}

// Has reports whether the snapshot's source carried the named column.
func (s *Snapshot) Has(column string) bool {
	return s != nil && s.Columns.Has(column)
}

// OpenedRange returns the earliest and latest parsed opening timestamps.
// ok is false when no ticket has a parsed opening date.
func (s *Snapshot) OpenedRange() (first, last time.Time, ok bool) {
	if s == nil {
		return first, last, false
	}
	for _, t := range s.Tickets {
		if t.OpenedAt == nil {
			continue
		}
		if !ok || t.OpenedAt.Before(first) {
			first = *t.OpenedAt
		}
		if !ok || t.OpenedAt.After(last) {
			last = *t.OpenedAt
		}
		ok = true
	}
	return first, last, ok
}
