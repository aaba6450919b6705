package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/export"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/activity"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Tenant-wide admin listings and audit events",
		Long:  "Admin commands call the /admin endpoints and need Power BI administrator rights.",
	}

	cmd.AddCommand(
		newAdminGroupsCmd(),
		newAdminGroupUsersCmd(),
		newAdminReportsCmd(),
		newAdminReportUsersCmd(),
		newAdminDatasetsCmd(),
		newAdminDatasetUsersCmd(),
		newAdminActivityCmd(),
	)
	return cmd
}

func newAdminGroupsCmd() *cobra.Command {
	var q odata.Query

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List workspaces in the organization",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			groups, err := s.deps.Admin.GetGroups(cmd.Context(), q)
			if err != nil {
				return err
			}
			return s.printer.print(groups)
		}),
	}
	addODataFlags(cmd.Flags(), &q)
	return cmd
}

func newAdminGroupUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group-users GROUP_ID...",
		Short: "List the members of one or more workspaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			results := s.deps.Access.GroupAccess(cmd.Context(), args)
			if err := s.printer.print(results); err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			return lookupErr(failed, len(results))
		}),
	}
}

func newAdminReportsCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List reports in the organization or one workspace",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			reports, err := s.deps.Admin.GetReports(cmd.Context(), groupID)
			if err != nil {
				return err
			}
			return s.printer.print(reports)
		}),
	}
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "limit to one workspace")
	return cmd
}

func newAdminReportUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report-users REPORT_ID...",
		Short: "List the principals with access to one or more reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			results := s.deps.Access.ReportAccess(cmd.Context(), args)
			if err := s.printer.print(results); err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			return lookupErr(failed, len(results))
		}),
	}
}

func lookupErr(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d lookups failed", failed, total)
}

func newAdminDatasetsCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List datasets in the organization or one workspace",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			datasets, err := s.deps.Admin.GetDatasets(cmd.Context(), groupID)
			if err != nil {
				return err
			}
			return s.printer.print(datasets)
		}),
	}
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "limit to one workspace")
	return cmd
}

func newAdminDatasetUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataset-users DATASET_ID",
		Short: "List the principals with access to a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			users, err := s.deps.Admin.GetDatasetUsers(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return s.printer.print(users)
		}),
	}
}

func newAdminActivityCmd() *cobra.Command {
	var (
		start, end string
		q          activity.Query
		all        bool
		xlsx       string
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Read audit events for a time window",
		Long: "Reads one page of activity events, or every page with --all.\n" +
			"The window must lie within one UTC day.",
		Args: cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			var err error
			if q.Start, err = parseTime("start", start); err != nil {
				return err
			}
			if q.End, err = parseTime("end", end); err != nil {
				return err
			}
			var dest, name string
			if xlsx != "" {
				if dest, name, err = splitDest("xlsx", xlsx); err != nil {
					return err
				}
				all = true
			}

			page, err := s.deps.Admin.GetActivityEvents(cmd.Context(), q)
			if err != nil {
				return err
			}
			if !all {
				return s.printer.print(page)
			}

			events := page.Events
			for page.HasMore() {
				page, err = s.deps.Admin.GetActivityEvents(cmd.Context(), q.Next(page))
				if err != nil {
					return err
				}
				events = append(events, page.Events...)
			}

			if xlsx == "" {
				return s.printer.print(events)
			}

			var buf bytes.Buffer
			if err := export.WriteActivityWorkbook(&buf, events); err != nil {
				return err
			}
			loc, _, err := s.deps.Sink.Save(cmd.Context(), dest, name, &buf)
			if err != nil {
				return err
			}
			return s.printer.print(map[string]any{"location": loc, "events": len(events)})
		}),
	}

	f := cmd.Flags()
	f.StringVar(&start, "start", "", "window start (date or RFC 3339, UTC)")
	f.StringVar(&end, "end", "", "window end (date or RFC 3339, UTC)")
	f.StringVar(&q.Filter, "filter", "", "OData filter over Activity and UserId")
	f.StringVar(&q.ContinuationToken, "continuation-token", "", "resume from a previous page")
	f.BoolVar(&all, "all", false, "follow continuation tokens and return every event")
	f.StringVar(&xlsx, "xlsx", "", "write every event to this .xlsx file (local path or s3:// URL)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
