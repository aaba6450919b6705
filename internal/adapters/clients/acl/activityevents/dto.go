// Package activityevents implements the Anti-Corruption Layer translators for
// the admin activity events (audit log) endpoint.
package activityevents

// PageResponseDTO matches one page of the activity events response.
type PageResponseDTO struct {
	ActivityEventEntities []map[string]any `json:"activityEventEntities"`
	ContinuationURI       string           `json:"continuationUri"`
	ContinuationToken     string           `json:"continuationToken"`
	LastResultSet         bool             `json:"lastResultSet"`
}
