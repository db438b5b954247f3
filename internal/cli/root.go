// Package cli builds the cobra command tree shared by the engine binaries.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"finengine/internal/config"
	"finengine/internal/engine"
	"finengine/internal/logging"
	"finengine/internal/otel"
	"finengine/internal/server"
)

var (
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

type serveFlags struct {
	host      string
	port      string
	workers   int
	logLevel  string
	logFormat string
}

// NewRootCommand returns the command tree for eng. Running the root command
// with no subcommand serves the engine until SIGINT or SIGTERM.
func NewRootCommand(eng *engine.Engine) *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   eng.Slug,
		Short: fmt.Sprintf("%s %s", eng.Name, eng.Version),
		Long: fmt.Sprintf(`%s serves a fixed set of JSON endpoints over HTTP/1.1.

Configuration is read from environment variables (a .env file is loaded when
present). Flags override the environment.`, eng.Name),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(config.Defaults{Workers: eng.DefaultWorkers})
			flags.apply(cmd, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, eng, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "Interface to bind (default: all interfaces, env HOST)")
	cmd.Flags().StringVarP(&flags.port, "port", "p", "", "Port to listen on (env PORT, default 8080)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, fmt.Sprintf("Maximum concurrent connections (env WORKERS, default %d)", eng.DefaultWorkers))
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: json or text (env LOG_FORMAT)")

	cmd.AddCommand(newRoutesCommand(eng))
	cmd.AddCommand(newProbeCommand(eng))
	cmd.AddCommand(newVersionCommand(eng))

	return cmd
}

// Execute runs the command tree for eng and returns the process exit code.
func Execute(eng *engine.Engine) int {
	if err := NewRootCommand(eng).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// apply overrides cfg with the flags the user set explicitly.
func (f *serveFlags) apply(cmd *cobra.Command, cfg *config.AppConfig) {
	changed := cmd.Flags().Changed
	if changed("host") {
		cfg.Server.Host = f.host
	}
	if changed("port") {
		cfg.Server.Port = f.port
	}
	if changed("workers") && f.workers > 0 {
		cfg.Server.Workers = f.workers
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

func serve(ctx context.Context, eng *engine.Engine, cfg *config.AppConfig) error {
	logger := logging.New(logging.Config{
		Level:    logging.ParseLevel(cfg.Log.Level),
		Format:   logging.ParseFormat(cfg.Log.Format),
		Location: cfg.Log.Location(),
	})

	shutdownTracing, err := otel.Init(ctx, eng.Slug, eng.Version, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("tracing_shutdown_failed", "error", err.Error())
		}
	}()

	srv, err := server.New(eng, server.Options{
		Config:  cfg,
		Logger:  logger,
		Tracing: otel.Enabled(),
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
