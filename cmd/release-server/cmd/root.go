package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/release-server/internal/service/server"
	"github.com/oshokin/release-server/internal/version"
)

var (
	// options collects flag values for server.Run.
	options = new(server.Options)

	// rootCmd represents the base command for running the release server.
	rootCmd = &cobra.Command{
		Use:   "release-server",
		Short: "Run the release server that tells clients which update to install.",
		Long: `Starts the HTTP and gRPC APIs of the release server.

Clients ask GET /v1/updates/{platform}/{arch}/{channel}/{current_version} and
receive the manifest of the release they should move to, or 204 when they are
up to date. Releases are published and retracted by release-publisher over gRPC
or through the admin HTTP routes.

Settings are read from a YAML or TOML file; flags override individual values.
Without --config, release-server.yaml is used when present and defaults otherwise.
The export and import subcommands copy releases between stores.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.Run(cmd.Context(), options)
		},
	}
)

// Execute runs the release-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	// Setup graceful shutdown handling for every subcommand.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigPath, "config", "c", "", "path to configuration file (.yaml or .toml)")
	flags.StringVar(&options.DatabaseDSN, "dsn", "", "database DSN (a file path for sqlite)")
	flags.StringVarP(&options.LogLevel, "log-level", "l", "", "log level: debug, info, warn, error")
	flags.StringVar(&options.LogFormat, "log-format", "", "log encoding: console or json")

	// Listen addresses only matter when serving.
	rootCmd.Flags().StringVar(&options.HTTPAddress, "http-addr", "", "HTTP listen address, e.g. :8080")
	rootCmd.Flags().StringVar(&options.GRPCAddress, "grpc-addr", "", "gRPC listen address, e.g. :9090")
}
