// Package datasets implements the Anti-Corruption Layer translators for the
// Power BI dataset resources.
package datasets

// ListResponseDTO is the OData envelope around dataset and dataset user lists.
type ListResponseDTO struct {
	Value []map[string]any `json:"value"`
}

// RefreshRequestDTO matches the body of the refresh endpoints.
type RefreshRequestDTO struct {
	NotifyOption string `json:"notifyOption"`
}
