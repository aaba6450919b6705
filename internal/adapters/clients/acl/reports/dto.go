// Package reports implements the Anti-Corruption Layer translators for the
// Power BI report resources and the embed tokens generated for them.
package reports

// ListResponseDTO is the OData envelope around report and report user lists.
// Entries stay as raw objects so every field the API returns reaches the
// domain decoder.
type ListResponseDTO struct {
	Value []map[string]any `json:"value"`
}

// RebindRequestDTO matches the body of the rebind endpoints.
type RebindRequestDTO struct {
	DatasetID string `json:"datasetId"`
}
