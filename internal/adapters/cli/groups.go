package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/domain/group"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/principal"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group", "workspaces"},
		Short:   "Manage group workspaces and their members",
	}

	cmd.AddCommand(
		newGroupsListCmd(),
		newGroupsCreateCmd(),
		&cobra.Command{
			Use:   "delete GROUP_ID",
			Short: "Delete a workspace",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				if err := s.deps.Groups.DeleteGroup(cmd.Context(), args[0]); err != nil {
					return err
				}
				return s.printer.print(map[string]string{"status": "deleted", "id": args[0]})
			}),
		},
		&cobra.Command{
			Use:   "users GROUP_ID",
			Short: "List the members of a workspace",
			Args:  cobra.ExactArgs(1),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				users, err := s.deps.Groups.GetGroupUsers(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return s.printer.print(users)
			}),
		},
		newGroupsAddUserCmd(),
		&cobra.Command{
			Use:   "remove-user GROUP_ID USER",
			Short: "Remove a member from a workspace",
			Long:  "USER is the member's email address or, for groups and apps, its object id.",
			Args:  cobra.ExactArgs(2),
			RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
				if err := s.deps.Groups.DeleteGroupUser(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				return s.printer.print(map[string]string{"status": "removed", "id": args[0], "user": args[1]})
			}),
		},
	)
	return cmd
}

func newGroupsListCmd() *cobra.Command {
	var q odata.Query

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workspaces the caller can access",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			groups, err := s.deps.Groups.GetGroups(cmd.Context(), q)
			if err != nil {
				return err
			}
			return s.printer.print(groups)
		}),
	}
	addODataFlags(cmd.Flags(), &q)
	return cmd
}

func newGroupsCreateCmd() *cobra.Command {
	var workspaceV2 bool

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			g, err := s.deps.Groups.CreateGroup(cmd.Context(), args[0], workspaceV2)
			if err != nil {
				return err
			}
			return s.printer.print(g)
		}),
	}
	cmd.Flags().BoolVar(&workspaceV2, "workspace-v2", false, "create a new-style workspace")
	return cmd
}

func newGroupsAddUserCmd() *cobra.Command {
	var (
		user          group.User
		accessRight   string
		principalType string
	)

	cmd := &cobra.Command{
		Use:   "add-user GROUP_ID",
		Short: "Add a member to a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, s *session, args []string) error {
			user.AccessRight = group.AccessRight(accessRight)
			user.PrincipalType = principal.Type(principalType)
			if err := s.deps.Groups.AddGroupUser(cmd.Context(), args[0], user); err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "added", "id": args[0]})
		}),
	}

	f := cmd.Flags()
	f.StringVar(&user.Identifier, "identifier", "", "principal object id or UPN")
	f.StringVar(&user.EmailAddress, "email", "", "member email address")
	f.StringVar(&accessRight, "access-right", string(group.AccessViewer), "Admin, Member, Contributor or Viewer")
	f.StringVar(&principalType, "principal-type", string(principal.TypeUser), "User, Group or App")
	return cmd
}
