package ingest

import "glpi-insights/internal/ticket"

// Status classifies the outcome of a load.
type Status string

const (
	StatusLoaded Status = "loaded"
	StatusNoData Status = "no_data"
	StatusFailed Status = "failed"
)

// Result is the explicit outcome of a load. Snapshot is nil unless Status is StatusLoaded.
type Result struct {
	Status   Status           `json:"status"`
	Message  string           `json:"message,omitempty"`
	Key      string           `json:"key,omitempty"`
	Cached   bool             `json:"cached"`
	Snapshot *ticket.Snapshot `json:"-"`
}

// OK reports whether the result carries a snapshot.
func (r Result) OK() bool {
	return r.Status == StatusLoaded && r.Snapshot != nil
}

func failed(key, msg string) Result {
	return Result{Status: StatusFailed, Key: key, Message: msg}
}
