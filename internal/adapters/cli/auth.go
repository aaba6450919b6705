package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/auth"
)

// tokenStatus is printed by auth login and auth status.
type tokenStatus struct {
	Status  string       `json:"status"`
	Expired bool         `json:"expired"`
	Claims  *auth.Claims `json:"claims,omitempty"`
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored access token",
		Long: "pbi sends auth.token from configuration (PBI_AUTH_TOKEN) when set,\n" +
			"and otherwise the token saved in the OS keyring by auth login.",
	}
	cmd.AddCommand(newAuthLoginCmd(), newAuthLogoutCmd(), newAuthStatusCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an access token in the OS keyring",
		Long:  "Saves the token given with --token, or the first line of stdin.",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			if token == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading token from stdin: %w", auth.ErrNoToken)
				}
				token = line
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return auth.ErrNoToken
			}

			if err := s.deps.Store.Save(cmd.Context(), token); err != nil {
				return err
			}

			out := tokenStatus{Status: "logged_in"}
			if claims, err := auth.Inspect(token); err == nil {
				out.Claims = claims
				out.Expired = claims.Expired(s.deps.now())
			}
			return s.printer.print(out)
		}),
	}
	cmd.Flags().StringVar(&token, "token", "", "access token (default: read from stdin)")
	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the access token from the OS keyring",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			if err := s.deps.Store.Delete(cmd.Context()); err != nil {
				return err
			}
			return s.printer.print(map[string]string{"status": "logged_out"})
		}),
	}
}

var errTokenExpired = errors.New("access token expired")

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the claims of the token pbi would send",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			token, err := s.deps.Tokens.Token(cmd.Context())
			if err != nil {
				return err
			}
			claims, err := auth.Inspect(token)
			if err != nil {
				return err
			}

			out := tokenStatus{Status: "valid", Claims: claims, Expired: claims.Expired(s.deps.now())}
			if out.Expired {
				out.Status = "expired"
			}
			if err := s.printer.print(out); err != nil {
				return err
			}
			if out.Expired {
				return errTokenExpired
			}
			return nil
		}),
	}
}
