package activity

import (
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

// TimeLayout is the ISO 8601 UTC form the activity events API accepts.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Query selects a window of activity events.
type Query struct {
	Start time.Time
	End   time.Time

	// Filter is an OData boolean condition over Activity and UserId.
	Filter string

	// ContinuationToken is taken from the previous Page.
	ContinuationToken string
}

// Validate checks that both window bounds are set and ordered.
func (q Query) Validate() error {
	fields := make(map[string]string)
	if q.Start.IsZero() {
		fields["startDateTime"] = domain.MsgRequired
	}
	if q.End.IsZero() {
		fields["endDateTime"] = domain.MsgRequired
	}
	if !q.Start.IsZero() && !q.End.IsZero() && q.End.Before(q.Start) {
		fields["endDateTime"] = "must not be before startDateTime"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Next returns a copy of q that requests the page after p.
func (q Query) Next(p *Page) Query {
	q.ContinuationToken = p.ContinuationToken
	return q
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
