// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-powerbi/internal/app/workflow"
	"github.com/jsamuelsen11/go-powerbi/internal/domain"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

// Compile-time check that ReportService implements ports.ReportService.
var _ ports.ReportService = (*ReportService)(nil)

// exportExt is the extension of exported report files.
const exportExt = ".pbix"

// ReportService implements ports.ReportService on top of the ReportsClient
// port. Each method is a caller-side workflow; the client itself stays one
// request per call.
type ReportService struct {
	reports ports.ReportsClient
	sink    ports.ExportSink
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewReportService creates a ReportService. sink receives exported files;
// metrics may be nil. A nil logger discards output.
func NewReportService(reports ports.ReportsClient, sink ports.ExportSink, metrics *telemetry.Metrics, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReportService{
		reports: reports,
		sink:    sink,
		metrics: metrics,
		logger:  logger,
	}
}

// Count returns the number of reports in a workspace.
func (s *ReportService) Count(ctx context.Context, groupID string) (int, error) {
	reports, err := s.reports.GetReports(ctx, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reports",
			slog.String("operation", "Count"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return 0, err
	}
	return len(reports), nil
}

// HasReport reports whether reportID is among the reports of a workspace.
func (s *ReportService) HasReport(ctx context.Context, reportID, groupID string) (bool, error) {
	reports, err := s.reports.GetReports(ctx, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reports",
			slog.String("operation", "HasReport"),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return false, err
	}
	return slices.ContainsFunc(reports, func(r report.Report) bool { return r.ID == reportID }), nil
}

// ExportReport downloads a report's .pbix file into dest. When filename is
// empty the report is looked up first and its name is used, so no download
// is started for a report that cannot be named.
func (s *ReportService) ExportReport(ctx context.Context, reportID, groupID, dest, filename string) (string, error) {
	s.logger.InfoContext(ctx, "exporting report",
		slog.String("report_id", reportID),
		slog.String("group_id", groupID),
		slog.String("dest", dest),
	)

	if filename == "" {
		rep, err := s.reports.GetReport(ctx, reportID, groupID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to look up report name",
				slog.String("operation", "ExportReport"),
				slog.String("report_id", reportID),
				slog.Any("error", err),
			)
			return "", fmt.Errorf("looking up report name: %w", err)
		}
		filename = rep.Name
		if filename == "" {
			filename = rep.ID
		}
	}

	stream, err := s.reports.ExportReport(ctx, reportID, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to export report",
			slog.String("operation", "ExportReport"),
			slog.String("report_id", reportID),
			slog.Any("error", err),
		)
		return "", err
	}
	defer func() { _ = stream.Close() }()

	loc, n, err := s.sink.Save(ctx, dest, ExportFileName(filename), stream)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save export",
			slog.String("operation", "ExportReport"),
			slog.String("report_id", reportID),
			slog.String("dest", dest),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("saving export: %w", err)
	}

	s.metrics.RecordExport(ctx, "ExportReport", n)
	s.logger.InfoContext(ctx, "report exported",
		slog.String("report_id", reportID),
		slog.String("location", loc),
		slog.Int64("bytes", n),
	)
	return loc, nil
}

// ExportFileName turns a report name into a .pbix file name. Path
// separators become underscores and a trailing .pbix is not doubled.
func ExportFileName(name string) string {
	stem := strings.TrimSuffix(name, exportExt)
	stem = strings.NewReplacer("/", "_", `\`, "_").Replace(stem)
	switch strings.TrimSpace(stem) {
	case "", ".", "..":
		stem = "report"
	}
	return stem + exportExt
}

// MoveReport clones a report into another workspace and deletes the
// original. The clone and the delete run as one workflow, so a failed delete
// removes the clone again.
func (s *ReportService) MoveReport(ctx context.Context, req ports.MoveReportRequest) (*report.Report, error) {
	s.logger.InfoContext(ctx, "moving report",
		slog.String("report_id", req.ReportID),
		slog.String("from_group_id", req.FromGroupID),
		slog.String("to_group_id", req.ToGroupID),
	)

	if err := validateMove(req); err != nil {
		return nil, err
	}

	wf := workflow.New("move report "+req.ReportID, s.logger)

	name := req.Name
	if name == "" {
		source, err := workflow.Lookup(ctx, wf, "report:"+req.ReportID, func(ctx context.Context) (*report.Report, error) {
			return s.reports.GetReport(ctx, req.ReportID, req.FromGroupID)
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch source report",
				slog.String("operation", "MoveReport"),
				slog.String("report_id", req.ReportID),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("fetching source report: %w", err)
		}
		name = source.Name
	}

	target := req.ToGroupID
	if target == "" {
		target = report.MyWorkspaceID
	}
	clone := &cloneReportStep{
		reports:  s.reports,
		reportID: req.ReportID,
		groupID:  req.FromGroupID,
		toGroup:  req.ToGroupID,
		req: report.CloneRequest{
			Name:              name,
			TargetModelID:     req.DatasetID,
			TargetWorkspaceID: target,
		},
	}
	if err := wf.Add(clone); err != nil {
		return nil, err
	}
	if err := wf.Add(&deleteReportStep{
		reports:  s.reports,
		reportID: req.ReportID,
		groupID:  req.FromGroupID,
	}); err != nil {
		return nil, err
	}

	if err := wf.Run(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to move report",
			slog.String("operation", "MoveReport"),
			slog.String("report_id", req.ReportID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return clone.result, nil
}

func validateMove(req ports.MoveReportRequest) error {
	fields := make(map[string]string)
	if req.ReportID == "" {
		fields["reportId"] = domain.MsgRequired
	}
	if req.FromGroupID == req.ToGroupID {
		fields["toGroupId"] = "must differ from the source workspace"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// cloneReportStep clones a report; undoing it deletes the clone.
type cloneReportStep struct {
	reports  ports.ReportsClient
	reportID string
	groupID  string
	toGroup  string
	req      report.CloneRequest

	result *report.Report
}

func (a *cloneReportStep) Execute(ctx context.Context) error {
	rep, err := a.reports.CloneReport(ctx, a.reportID, a.groupID, a.req)
	if err != nil {
		return err
	}
	a.result = rep
	return nil
}

func (a *cloneReportStep) Undo(ctx context.Context) error {
	if a.result == nil {
		return nil
	}
	return a.reports.DeleteReport(ctx, a.result.ID, a.toGroup)
}

func (a *cloneReportStep) String() string {
	return fmt.Sprintf("clone report %s into %s", a.reportID, workspaceLabel(a.toGroup))
}

// deleteReportStep deletes a report. A deleted report cannot be restored,
// so Undo does nothing and the step goes last.
type deleteReportStep struct {
	reports  ports.ReportsClient
	reportID string
	groupID  string
}

func (a *deleteReportStep) Execute(ctx context.Context) error {
	return a.reports.DeleteReport(ctx, a.reportID, a.groupID)
}

func (a *deleteReportStep) Undo(context.Context) error { return nil }

func (a *deleteReportStep) String() string {
	return fmt.Sprintf("delete report %s in %s", a.reportID, workspaceLabel(a.groupID))
}

func workspaceLabel(groupID string) string {
	if groupID == "" {
		return "My workspace"
	}
	return "group " + groupID
}
