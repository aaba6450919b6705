package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-powerbi/internal/app/fanout"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

// Compile-time check that AccessService implements ports.AccessService.
var _ ports.AccessService = (*AccessService)(nil)

// AccessService implements ports.AccessService by fanning admin user
// lookups out over a bounded worker pool.
type AccessService struct {
	admin      ports.AdminClient
	maxWorkers int
	logger     *slog.Logger
}

// NewAccessService creates an AccessService running at most maxWorkers
// lookups at once. maxWorkers below 1 is treated as 1.
func NewAccessService(admin ports.AdminClient, maxWorkers int, logger *slog.Logger) *AccessService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccessService{
		admin:      admin,
		maxWorkers: max(maxWorkers, 1),
		logger:     logger,
	}
}

// ReportAccess looks up the users of each report. Results are in input
// order; a failed lookup is reported in its entry and does not stop the
// others.
func (s *AccessService) ReportAccess(ctx context.Context, reportIDs []string) []ports.ReportAccess {
	s.logger.InfoContext(ctx, "auditing report access", slog.Int("reports", len(reportIDs)))

	results := fanout.Run(ctx, s.maxWorkers, reportIDs, s.admin.GetReportUsers)

	out := make([]ports.ReportAccess, len(reportIDs))
	for i, r := range results {
		out[i] = ports.ReportAccess{ReportID: reportIDs[i], Users: r.Value}
		if r.Err != nil {
			s.logFailure(ctx, "ReportAccess", "report_id", reportIDs[i], r.Err)
			out[i].Err = r.Err
			out[i].Error = r.Err.Error()
		}
	}
	s.logDone(ctx, len(results), fanout.Failed(results))
	return out
}

// GroupAccess looks up the members of each workspace, like ReportAccess.
func (s *AccessService) GroupAccess(ctx context.Context, groupIDs []string) []ports.GroupAccess {
	s.logger.InfoContext(ctx, "auditing workspace access", slog.Int("groups", len(groupIDs)))

	results := fanout.Run(ctx, s.maxWorkers, groupIDs, s.admin.GetGroupUsers)

	out := make([]ports.GroupAccess, len(groupIDs))
	for i, r := range results {
		out[i] = ports.GroupAccess{GroupID: groupIDs[i], Users: r.Value}
		if r.Err != nil {
			s.logFailure(ctx, "GroupAccess", "group_id", groupIDs[i], r.Err)
			out[i].Err = r.Err
			out[i].Error = r.Err.Error()
		}
	}
	s.logDone(ctx, len(results), fanout.Failed(results))
	return out
}

func (s *AccessService) logFailure(ctx context.Context, op, key, id string, err error) {
	s.logger.ErrorContext(ctx, "access lookup failed",
		slog.String("operation", op),
		slog.String(key, id),
		slog.Any("error", err),
	)
}

func (s *AccessService) logDone(ctx context.Context, total, failed int) {
	level := slog.LevelInfo
	if failed > 0 {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "access audit finished",
		slog.Int("lookups", total),
		slog.Int("failed", failed),
	)
}
