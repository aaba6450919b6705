// Package cli implements the pbi command tree with cobra. Commands read
// their dependencies from the command context; the Builder passed to
// NewRootCmd constructs them once per invocation after flags are parsed.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/logging"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

// Output formats accepted by --output.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	Profile   string
	ConfigDir string
	Output    string
}

func (o Options) validate() error {
	switch o.Output {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("--output must be one of: json, yaml; got %q", o.Output)
	}
}

// Deps holds everything commands call into.
type Deps struct {
	Admin    ports.AdminClient
	Reports  ports.ReportsClient
	Datasets ports.DatasetsClient
	Groups   ports.GroupsClient

	ReportService ports.ReportService
	Access        ports.AccessService

	// Tokens is the effective token source; Store is where auth login
	// saves tokens.
	Tokens ports.TokenSource
	Store  ports.TokenStore

	Health ports.HealthRegistry
	Sink   ports.ExportSink

	// Logger is stored in the command context for code that has no
	// logger of its own; nil leaves slog.Default in place.
	Logger *slog.Logger

	// ExportDir is the default destination of report exports.
	ExportDir string

	// Now is the clock used for token expiry; nil means time.Now.
	Now func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Builder constructs the dependencies for one invocation.
type Builder func(ctx context.Context, opts Options) (*Deps, error)

type sessionKey struct{}

type session struct {
	deps    *Deps
	printer *printer
}

var errNoSession = errors.New("command dependencies not initialized")

func sessionFrom(cmd *cobra.Command) (*session, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, errNoSession
	}
	return s, nil
}

// NewRootCmd creates the pbi root command with every subcommand attached.
func NewRootCmd(build Builder) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "pbi",
		Short: "Command-line client for the Power BI REST API",
		Long: "pbi calls the Power BI REST API: tenant admin listings and audit events,\n" +
			"workspace reports, datasets and groups.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			deps, err := build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if deps.Logger != nil {
				ctx = logging.WithLogger(ctx, deps.Logger)
			}
			s := &session{deps: deps, printer: newPrinter(cmd.OutOrStdout(), opts.Output)}
			cmd.SetContext(context.WithValue(ctx, sessionKey{}, s))
			return nil
		},
	}

	profile := os.Getenv("PBI_PROFILE")
	if profile == "" {
		profile = "local"
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Profile, "profile", profile, "configuration profile (env PBI_PROFILE)")
	pf.StringVar(&opts.ConfigDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	pf.StringVarP(&opts.Output, "output", "o", OutputJSON, "output format: json or yaml")

	cmd.AddCommand(
		newAdminCmd(),
		newReportsCmd(),
		newDatasetsCmd(),
		newGroupsCmd(),
		newAuthCmd(),
		newDoctorCmd(),
	)

	return cmd
}

// runE adapts a command body that needs the session.
func runE(fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		return fn(cmd, s, args)
	}
}
