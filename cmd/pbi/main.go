// Package main is the entry point for the pbi command. It wires all
// dependencies using samber/do v2 once the command line is parsed, runs the
// selected command, and flushes telemetry before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/cli"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/export"
	"github.com/jsamuelsen11/go-powerbi/internal/app"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/auth"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/health"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/logging"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	peerService         = "powerbi-api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var p program
	err := cli.NewRootCmd(p.build).ExecuteContext(ctx)
	p.shutdown()
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// program owns what build creates and shutdown releases.
type program struct {
	logger *slog.Logger
	otel   *telemetry.Providers
}

func (p *program) build(ctx context.Context, opts cli.Options) (*cli.Deps, error) {
	// Bootstrap: config, logger, telemetry.
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	p.logger = logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	p.otel, err = telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, p.logger)
	do.ProvideValue(injector, p.otel.Metrics)

	registerDependencies(ctx, injector, cfg, p.logger)

	deps, err := resolveDeps(injector, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolving dependencies: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.GroupsClient](injector))
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(auth.NewChecker(deps.Tokens))

	return deps, nil
}

func (p *program) shutdown() {
	if p.otel == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := p.otel.Shutdown(ctx); err != nil && p.logger != nil {
		p.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// loadConfig reads the profile from the config directory. A missing
// directory is not an error so pbi runs anywhere on defaults and PBI_
// environment variables.
func loadConfig(opts cli.Options) (*config.Config, error) {
	loadOpts := []config.Option{config.WithConfigDir(opts.ConfigDir)}
	if _, err := os.Stat(opts.ConfigDir); errors.Is(err, os.ErrNotExist) {
		loadOpts = append(loadOpts, config.AllowMissingFiles())
	}
	return config.Load(opts.Profile, loadOpts...)
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*auth.KeyringStore, error) {
		return auth.NewKeyringStore(cfg.Auth.KeyringService, cfg.Auth.KeyringUser), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TokenSource, error) {
		store := do.MustInvoke[*auth.KeyringStore](i)
		return auth.Chain(auth.StaticToken(cfg.Auth.Token), store), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		tokens := do.MustInvoke[ports.TokenSource](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, peerService, tokens, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AdminClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return acl.NewAdminClient(client, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReportsClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewReportsClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DatasetsClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewDatasetsClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.GroupsClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewGroupsClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.ExportSink, error) {
		return newExportSink(ctx, cfg, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReportService, error) {
		reports := do.MustInvoke[ports.ReportsClient](i)
		sink := do.MustInvoke[ports.ExportSink](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewReportService(reports, sink, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccessService, error) {
		admin := do.MustInvoke[ports.AdminClient](i)
		return app.NewAccessService(admin, cfg.Fanout.MaxWorkers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Doctor.Timeout), nil
	})
}

// newExportSink returns the local directory sink, plus an S3 sink when the
// AWS SDK finds a usable configuration.
func newExportSink(ctx context.Context, cfg *config.Config, logger *slog.Logger) *export.Mux {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Export.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Export.S3Region))
	}

	awscfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Debug("s3 export disabled", slog.Any("error", err))
		return &export.Mux{}
	}
	return &export.Mux{S3: export.NewS3Sink(s3.NewFromConfig(awscfg))}
}

func resolveDeps(injector *do.RootScope, cfg *config.Config) (*cli.Deps, error) {
	groups, err := do.Invoke[*acl.GroupsClient](injector)
	if err != nil {
		return nil, err
	}

	return &cli.Deps{
		Admin:         do.MustInvoke[ports.AdminClient](injector),
		Reports:       do.MustInvoke[ports.ReportsClient](injector),
		Datasets:      do.MustInvoke[ports.DatasetsClient](injector),
		Groups:        groups,
		ReportService: do.MustInvoke[ports.ReportService](injector),
		Access:        do.MustInvoke[ports.AccessService](injector),
		Tokens:        do.MustInvoke[ports.TokenSource](injector),
		Store:         do.MustInvoke[*auth.KeyringStore](injector),
		Health:        do.MustInvoke[ports.HealthRegistry](injector),
		Sink:          do.MustInvoke[ports.ExportSink](injector),
		ExportDir:     cfg.Export.Dir,
		Logger:        do.MustInvoke[*slog.Logger](injector),
	}, nil
}
