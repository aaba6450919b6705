package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
)

// ActivitySheet is the name of the sheet WriteActivityWorkbook fills.
const ActivitySheet = "Activity"

var activityColumns = []struct {
	header string
	value  func(e *activity.Event) any
}{
	{"Id", func(e *activity.Event) any { return e.ID }},
	{"CreationTime", func(e *activity.Event) any { return e.CreationTime.UTC().Format(time.RFC3339) }},
	{"Activity", func(e *activity.Event) any { return e.Activity }},
	{"Operation", func(e *activity.Event) any { return e.Operation }},
	{"UserId", func(e *activity.Event) any { return e.UserID }},
	{"UserType", func(e *activity.Event) any { return e.UserType }},
	{"Workload", func(e *activity.Event) any { return e.Workload }},
	{"ItemName", func(e *activity.Event) any { return e.ItemName }},
	{"WorkSpaceName", func(e *activity.Event) any { return e.WorkspaceName }},
	{"WorkspaceId", func(e *activity.Event) any { return e.WorkspaceID }},
	{"ReportName", func(e *activity.Event) any { return e.ReportName }},
	{"ReportId", func(e *activity.Event) any { return e.ReportID }},
	{"DatasetName", func(e *activity.Event) any { return e.DatasetName }},
	{"DatasetId", func(e *activity.Event) any { return e.DatasetID }},
	{"CapacityName", func(e *activity.Event) any { return e.CapacityName }},
	{"DistributionMethod", func(e *activity.Event) any { return e.DistributionMethod }},
	{"IsSuccess", func(e *activity.Event) any { return e.IsSuccess }},
	{"RequestId", func(e *activity.Event) any { return e.RequestID }},
	{"ActivityId", func(e *activity.Event) any { return e.ActivityID }},
}

// WriteActivityWorkbook writes events as one row each, below a header row,
// to an .xlsx workbook on w.
func WriteActivityWorkbook(w io.Writer, events []activity.Event) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ActivitySheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for col, c := range activityColumns {
		if err := setCell(f, col, 1, c.header); err != nil {
			return err
		}
	}
	for i := range events {
		for col, c := range activityColumns {
			if err := setCell(f, col, i+2, c.value(&events[i])); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(ActivitySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header row: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Errorf("column %d: %w", col+1, err)
	}
	cell := name + strconv.Itoa(row)
	if err := f.SetCellValue(ActivitySheet, cell, v); err != nil {
		return fmt.Errorf("setting %s: %w", cell, err)
	}
	return nil
}
