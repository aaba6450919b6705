package groups

import (
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
)

// ToDomainGroups converts every entry of the envelope, in order.
func ToDomainGroups(dto ListResponseDTO) ([]group.Group, error) {
	out := make([]group.Group, 0, len(dto.Value))
	for i, m := range dto.Value {
		g, err := group.FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("group value[%d]: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// ToDomainGroup converts a single group object.
func ToDomainGroup(m map[string]any) (*group.Group, error) {
	g, err := group.FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	return &g, nil
}

// ToDomainUsers converts a group users envelope.
func ToDomainUsers(dto ListResponseDTO) ([]group.User, error) {
	out := make([]group.User, 0, len(dto.Value))
	for i, m := range dto.Value {
		u, err := group.UserFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("group user value[%d]: %w", i, err)
		}
		out = append(out, u)
	}
	return out, nil
}
