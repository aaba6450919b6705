package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/dataset"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

func newDatasetsCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:     "datasets",
		Aliases: []string{"dataset"},
		Short:   "Manage datasets in My workspace or a group workspace",
	}
	addGroupFlag(cmd.PersistentFlags(), &groupID)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List datasets",
			Args:  cobra.NoArgs,
			RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
				datasets, err := s.deps.Datasets.GetDatasets(cmd.Context(), groupID)
				if err != nil {
					return err
				}
				return s.printer.print(datasets)
			}),
		},
		&cobra.Command{
			Use:   "get DATASET_ID",
			Short: "Show one dataset",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				ds, err := s.deps.Datasets.GetDataset(cmd.Context(), args[0], groupID)
				if err != nil {
					return err
				}
				return s.printer.print(ds)
			}),
		},
		&cobra.Command{
			Use:   "delete DATASET_ID",
			Short: "Delete a dataset",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				if err := s.deps.Datasets.DeleteDataset(cmd.Context(), args[0], groupID); err != nil {
					return err
				}
				return s.printer.print(map[string]string{"status": "deleted", "id": args[0]})
			}),
		},
		newDatasetsRefreshCmd(&groupID),
		newDatasetsAddUserCmd(&groupID),
	)
	return cmd
}

func newDatasetsRefreshCmd(groupID *string) *cobra.Command {
	var notify string

	cmd := &cobra.Command{
		Use:   "refresh DATASET_ID",
		Short: "Trigger a dataset refresh",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			if err := s.deps.Datasets.RefreshDataset(cmd.Context(), args[0], *groupID, notify); err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "refresh_requested", "id": args[0]})
		}),
	}
	cmd.Flags().StringVar(&notify, "notify", "", "MailOnFailure, MailOnCompletion or NoNotification")
	return cmd
}

func newDatasetsAddUserCmd(groupID *string) *cobra.Command {
	var (
		user          dataset.User
		accessRight   string
		principalType string
	)

	cmd := &cobra.Command{
		Use:   "add-user DATASET_ID",
		Short: "Grant a principal access to a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			user.AccessRight = dataset.AccessRight(accessRight)
			user.PrincipalType = principal.Type(principalType)
			if err := s.deps.Datasets.AddDatasetUser(cmd.Context(), args[0], *groupID, user); err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "granted", "id": args[0]})
		}),
	}

	f := cmd.Flags()
	f.StringVar(&user.Identifier, "identifier", "", "principal object id or UPN")
	f.StringVar(&user.EmailAddress, "email", "", "principal email address")
	f.StringVar(&accessRight, "access-right", string(dataset.AccessRead), "dataset access right")
	f.StringVar(&principalType, "principal-type", string(principal.TypeUser), "User, Group or App")
	return cmd
}
