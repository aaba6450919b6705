// Package activity defines the tenant audit log records returned by the
// admin activity events API and the query used to page through them.
package activity

import (
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
)

// KeyID is the identifier key of an activity event. Unlike the other
// records, activity events use PascalCase keys.
const KeyID = "Id"

// Event is a single audit log entry.
type Event struct {
	ID                    string    `json:"Id"`
	Name                  string    `json:"name"`
	IsReadOnly            bool      `json:"isReadOnly"`
	IsOnDedicatedCapacity bool      `json:"isOnDedicatedCapacity"`
	RecordType            int       `json:"RecordType"`
	CreationTime          time.Time `json:"CreationTime"`
	Operation             string    `json:"Operation"`
	OrganizationID        string    `json:"OrganizationId"`
	UserType              int       `json:"UserType"`
	UserKey               string    `json:"UserKey"`
	Workload              string    `json:"Workload"`
	UserID                string    `json:"UserId"`
	Activity              string    `json:"Activity"`
	ItemName              string    `json:"ItemName"`
	WorkspaceName         string    `json:"WorkSpaceName"`
	DatasetName           string    `json:"DatasetName"`
	ReportName            string    `json:"ReportName"`
	CapacityID            string    `json:"CapacityId"`
	CapacityName          string    `json:"CapacityName"`
	WorkspaceID           string    `json:"WorkspaceId"`
	ObjectID              string    `json:"ObjectId"`
	DatasetID             string    `json:"DatasetId"`
	ReportID              string    `json:"ReportId"`
	EmbedTokenID          string    `json:"EmbedTokenId"`
	IsSuccess             bool      `json:"IsSuccess"`
	ReportType            string    `json:"ReportType"`
	RequestID             string    `json:"RequestId"`
	ActivityID            string    `json:"ActivityId"`
	DistributionMethod    string    `json:"DistributionMethod"`
}

// FromMap builds an Event from a decoded JSON object. The Id key is required.
func FromMap(m map[string]any) (Event, error) {
	var e Event
	if err := domain.Decode(m, &e, KeyID); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Page is one chunk of the activity event result set.
type Page struct {
	Events            []Event `json:"activityEventEntities"`
	ContinuationToken string  `json:"continuationToken,omitempty"`
	ContinuationURI   string  `json:"continuationUri,omitempty"`
	LastResultSet     bool    `json:"lastResultSet"`
}

// HasMore reports whether another page should be requested with the
// page's continuation token.
func (p *Page) HasMore() bool {
	return !p.LastResultSet && p.ContinuationToken != ""
}
