package activityevents

import (
	"fmt"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
)

// ToDomainPage converts a response page, keeping events in order.
func ToDomainPage(dto PageResponseDTO) (*activity.Page, error) {
	events := make([]activity.Event, 0, len(dto.ActivityEventEntities))
	for i, m := range dto.ActivityEventEntities {
		e, err := activity.FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("activity event entity[%d]: %w", i, err)
		}
		events = append(events, e)
	}
	return &activity.Page{
		Events:            events,
		ContinuationToken: dto.ContinuationToken,
		ContinuationURI:   dto.ContinuationURI,
		LastResultSet:     dto.LastResultSet,
	}, nil
}
