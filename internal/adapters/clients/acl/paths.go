package acl

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
)

// join builds a relative path from segments, escaping each one.
func join(segments ...string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}

// requireIDs returns a *domain.ValidationError naming every empty id, keyed
// by its parameter name. Pairs are given as name, value, name, value...
func requireIDs(pairs ...string) error {
	fields := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			fields[pairs[i]] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// scoped prefixes rest with "groups/{groupID}" when groupID is set, so an
// empty groupID addresses "My workspace".
func scoped(groupID string, rest ...string) string {
	if groupID == "" {
		return join(rest...)
	}
	return join(append([]string{"groups", groupID}, rest...)...)
}

// withQuery appends an already-encoded query string.
func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

// activityQuery renders the activity events query string. The window bounds
// are always sent, quoted; the continuation token is sent unquoted.
func activityQuery(q activity.Query) string {
	parts := []string{
		"startDateTime='" + odata.Escape(activity.FormatTime(q.Start)) + "'",
		"endDateTime='" + odata.Escape(activity.FormatTime(q.End)) + "'",
	}
	if q.Filter != "" {
		parts = append(parts, "$filter="+odata.Escape(q.Filter))
	}
	if q.ContinuationToken != "" {
		parts = append(parts, "continuationToken="+odata.Escape(q.ContinuationToken))
	}
	return strings.Join(parts, "&")
}
