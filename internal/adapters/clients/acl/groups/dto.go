// Package groups implements the Anti-Corruption Layer translators for the
// Power BI workspace (group) resources.
package groups

// ListResponseDTO is the OData envelope around group and group user lists.
type ListResponseDTO struct {
	Value []map[string]any `json:"value"`
}

// CreateRequestDTO matches the body of the create group endpoint.
type CreateRequestDTO struct {
	Name string `json:"name"`
}
