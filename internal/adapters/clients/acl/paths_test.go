package acl

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
)

func TestScoped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		groupID string
		rest    []string
		want    string
	}{
		{"my workspace", "", []string{"reports"}, "reports"},
		{"workspace", "g1", []string{"reports", "r1", "clone"}, "groups/g1/reports/r1/clone"},
		{"escapes segments", "a b", []string{"reports", "x/y"}, "groups/a%20b/reports/x%2Fy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := scoped(tt.groupID, tt.rest...); got != tt.want {
				t.Errorf("scoped(%q, %v) = %q, want %q", tt.groupID, tt.rest, got, tt.want)
			}
		})
	}
}

func TestActivityQuery(t *testing.T) {
	t.Parallel()

	start := time.Date(2019, 8, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2019, 8, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name  string
		query activity.Query
		want  string
	}{
		{
			name:  "window only",
			query: activity.Query{Start: start, End: end},
			want:  "startDateTime='2019-08-31T00%3A00%3A00.000Z'&endDateTime='2019-08-31T23%3A59%3A59.000Z'",
		},
		{
			name:  "filter and continuation",
			query: activity.Query{Start: start, End: end, Filter: "Activity eq 'viewreport'", ContinuationToken: "a+b="},
			want: "startDateTime='2019-08-31T00%3A00%3A00.000Z'&endDateTime='2019-08-31T23%3A59%3A59.000Z'" +
				"&$filter=Activity%20eq%20%27viewreport%27&continuationToken=a%2Bb%3D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := activityQuery(tt.query); got != tt.want {
				t.Errorf("activityQuery() = %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestWithQuery(t *testing.T) {
	t.Parallel()

	if got := withQuery("groups", ""); got != "groups" {
		t.Errorf("withQuery(groups, \"\") = %q, want %q", got, "groups")
	}
	if got := withQuery("groups", "$top=1"); got != "groups?$top=1" {
		t.Errorf("withQuery(groups, $top=1) = %q, want %q", got, "groups?$top=1")
	}
}

func TestRequireIDs(t *testing.T) {
	t.Parallel()

	if err := requireIDs("reportId", "r1", "datasetId", "d1"); err != nil {
		t.Errorf("requireIDs(all set) = %v, want nil", err)
	}

	err := requireIDs("reportId", "", "datasetId", "d1", "groupId", "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("requireIDs() = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 || verr.Fields["reportId"] != domain.MsgRequired || verr.Fields["groupId"] != domain.MsgRequired {
		t.Errorf("Fields = %v, want reportId and groupId required", verr.Fields)
	}
}
