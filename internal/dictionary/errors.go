package dictionary

import (
	"errors"
	"fmt"

	"wordlookup/internal/models"
)

// Lookup error sentinels.
var (
	ErrEmptyWord         = errors.New("word is empty")
	ErrNoData            = errors.New("no data available for the given word")
	ErrUpstream          = errors.New("dictionary request failed")
	ErrMalformedResponse = errors.New("malformed dictionary response")
)

// StatusError reports a non-2xx response from the dictionary API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary: unexpected status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

// NotFoundError is returned when the API answers with spelling suggestions
// instead of entries.
type NotFoundError struct {
	Word        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dictionary: no entry for %q (%d suggestions)", e.Word, len(e.Suggestions))
}

func (e *NotFoundError) Unwrap() error { return ErrNoData }

// Outcome classifies a Lookup error for statistics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return models.OutcomeResolved
	case errors.Is(err, ErrNoData):
		return models.OutcomeNoData
	case errors.Is(err, ErrMalformedResponse):
		return models.OutcomeMalformed
	default:
		return models.OutcomeUpstreamError
	}
}
