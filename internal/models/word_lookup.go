package models

import "time"

// Lookup outcome constants
const (
	OutcomeResolved      = "resolved"
	OutcomeNoData        = "no_data"
	OutcomeUpstreamError = "upstream_error"
	OutcomeMalformed     = "malformed"
)

// WordLookup represents a per-word hit count by outcome.
type WordLookup struct {
	Word       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
