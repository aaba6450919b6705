// Package odata builds the $top/$expand/$filter/$skip query strings accepted
// by the Power BI list endpoints.
package odata

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultTop is the page size the admin groups endpoint requires when the
// caller does not pick one.
const DefaultTop = 5000

// Query holds optional OData parameters. Zero values are omitted.
type Query struct {
	Top    int
	Skip   int
	Filter string
	Expand string
}

// Encode renders the query as "$top=..&$expand=..&$filter=..&$skip=..",
// keeping the literal "$" and escaping values with %20 for spaces.
// It returns "" when no parameter is set.
func (q Query) Encode() string {
	var parts []string
	if q.Top > 0 {
		parts = append(parts, "$top="+strconv.Itoa(q.Top))
	}
	if q.Expand != "" {
		parts = append(parts, "$expand="+Escape(q.Expand))
	}
	if q.Filter != "" {
		parts = append(parts, "$filter="+Escape(q.Filter))
	}
	if q.Skip > 0 {
		parts = append(parts, "$skip="+strconv.Itoa(q.Skip))
	}
	return strings.Join(parts, "&")
}

// WithDefaultTop returns q with Top set to DefaultTop when unset.
func (q Query) WithDefaultTop() Query {
	if q.Top <= 0 {
		q.Top = DefaultTop
	}
	return q
}

// Escape percent-encodes s for use as a query value, encoding spaces as %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
