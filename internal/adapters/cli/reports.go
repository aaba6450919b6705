package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/embed"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/report"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

func newReportsCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage reports in My workspace or a group workspace",
	}
	addGroupFlag(cmd.PersistentFlags(), &groupID)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List reports",
			Args:  cobra.NoArgs,
			RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
				reports, err := s.deps.Reports.GetReports(cmd.Context(), groupID)
				if err != nil {
					return err
				}
				return s.printer.print(reports)
			}),
		},
		&cobra.Command{
			Use:   "get REPORT_ID",
			Short: "Show one report",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				rep, err := s.deps.Reports.GetReport(cmd.Context(), args[0], groupID)
				if err != nil {
					return err
				}
				return s.printer.print(rep)
			}),
		},
		&cobra.Command{
			Use:   "count",
			Short: "Count reports",
			Args:  cobra.NoArgs,
			RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
				n, err := s.deps.ReportService.Count(cmd.Context(), groupID)
				if err != nil {
					return err
				}
				return s.printer.print(map[string]int{"count": n})
			}),
		},
		&cobra.Command{
			Use:   "delete REPORT_ID",
			Short: "Delete a report",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				if err := s.deps.Reports.DeleteReport(cmd.Context(), args[0], groupID); err != nil {
					return err
				}
				return s.printer.print(map[string]string{"status": "deleted", "id": args[0]})
			}),
		},
		newReportsCloneCmd(&groupID),
		newReportsRebindCmd(&groupID),
		newReportsTokenCmd(&groupID),
		newReportsExportCmd(&groupID),
		newReportsMoveCmd(),
	)
	return cmd
}

func newReportsCloneCmd(groupID *string) *cobra.Command {
	var req report.CloneRequest

	cmd := &cobra.Command{
		Use:   "clone REPORT_ID",
		Short: "Clone a report, optionally into another workspace",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			cr := req
			if cr.Name == "" {
				src, err := s.deps.Reports.GetReport(cmd.Context(), args[0], *groupID)
				if err != nil {
					return err
				}
				cr.Name = src.Name
			}
			rep, err := s.deps.Reports.CloneReport(cmd.Context(), args[0], *groupID, cr)
			if err != nil {
				return err
			}
			return s.printer.print(rep)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "name of the clone (default: the source name)")
	f.StringVar(&req.TargetWorkspaceID, "target-group", "", "workspace to clone into (default: the source workspace)")
	f.StringVar(&req.TargetModelID, "target-dataset", "", "dataset to bind the clone to")
	return cmd
}

func newReportsRebindCmd(groupID *string) *cobra.Command {
	var datasetID string

	cmd := &cobra.Command{
		Use:   "rebind REPORT_ID",
		Short: "Bind a report to another dataset",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			if err := s.deps.Reports.RebindReport(cmd.Context(), args[0], datasetID, *groupID); err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "rebound", "id": args[0], "datasetId": datasetID})
		}),
	}
	cmd.Flags().StringVar(&datasetID, "dataset", "", "dataset to bind to")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

func newReportsTokenCmd(groupID *string) *cobra.Command {
	var (
		accessLevel string
		req         embed.TokenRequest
		rlsUser     string
		rlsRoles    []string
	)

	cmd := &cobra.Command{
		Use:   "token REPORT_ID",
		Short: "Generate an embed token for a report in a group workspace",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			req.AccessLevel = embed.AccessLevel(accessLevel)
			req.Identities = nil
			if rlsUser != "" {
				id := embed.EffectiveIdentity{Username: rlsUser, Roles: rlsRoles}
				if req.DatasetID != "" {
					id.Datasets = []string{req.DatasetID}
				}
				req.Identities = []embed.EffectiveIdentity{id}
			}

			tok, err := s.deps.Reports.GenerateToken(cmd.Context(), args[0], *groupID, req)
			if err != nil {
				return err
			}
			return s.printer.print(tok)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&accessLevel, "access-level", string(embed.AccessView), "View, Edit or Create")
	f.StringVar(&req.DatasetID, "dataset", "", "dataset the token covers")
	f.BoolVar(&req.AllowSaveAs, "allow-save-as", false, "allow Save As on the embedded report")
	f.StringVar(&rlsUser, "rls-user", "", "effective identity username for row-level security")
	f.StringSliceVar(&rlsRoles, "rls-roles", nil, "row-level security roles for --rls-user")
	return cmd
}

func newReportsExportCmd(groupID *string) *cobra.Command {
	var dest, name string

	cmd := &cobra.Command{
		Use:   "export REPORT_ID",
		Short: "Download a report as a .pbix file",
		Long: "Downloads the report to --dest, a local directory or an s3:// URL.\n" +
			"The file is named after the report unless --name is given.",
		Args: cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			target := dest
			if target == "" {
				target = s.deps.ExportDir
			}
			loc, err := s.deps.ReportService.ExportReport(cmd.Context(), args[0], *groupID, target, name)
			if err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "exported", "location": loc})
		}),
	}

	f := cmd.Flags()
	f.StringVar(&dest, "dest", "", "destination directory or s3:// URL (default: export.dir)")
	f.StringVar(&name, "name", "", "file name without extension")
	return cmd
}

func newReportsMoveCmd() *cobra.Command {
	var req ports.MoveReportRequest

	cmd := &cobra.Command{
		Use:   "move REPORT_ID",
		Short: "Move a report between workspaces",
		Long: "Clones the report into --to and deletes the original. If the delete\n" +
			"fails the clone is removed again.",
		Args: cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			req.ReportID = args[0]
			rep, err := s.deps.ReportService.MoveReport(cmd.Context(), req)
			if err != nil {
				return err
			}
			return s.printer.print(rep)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&req.FromGroupID, "from", "", "source workspace (default: My workspace)")
	f.StringVar(&req.ToGroupID, "to", "", "target workspace (default: My workspace)")
	f.StringVar(&req.DatasetID, "dataset", "", "dataset to bind the moved report to")
	f.StringVar(&req.Name, "name", "", "name of the moved report (default: unchanged)")
	return cmd
}
