package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/release-server/internal/config"
	"github.com/oshokin/release-server/internal/logger"
	"github.com/oshokin/release-server/internal/service/publisher"
	"github.com/oshokin/release-server/internal/version"
)

// tokenEnv names the environment variable holding the admin token.
const tokenEnv = "RELEASE_SERVER_TOKEN"

var (
	// target is shared by every subcommand.
	target = publisher.Target{Timeout: config.DefaultTimeout}
	// logLevel is the minimum level of emitted messages.
	logLevel string

	// rootCmd represents the base command for managing releases.
	rootCmd = &cobra.Command{
		Use:   "release-publisher",
		Short: "Publish, retract and inspect releases on a release server.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if target.Token == "" {
				target.Token = os.Getenv(tokenEnv)
			}

			if logLevel == "" {
				return nil
			}

			return logger.SetLevelString(logLevel)
		},
	}
)

// Execute runs the release-publisher CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	rootCmd.AddCommand(newPublishCommand(), newRetractCommand(), newCheckCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext returns a context canceled on SIGTERM or SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&target.ServerAddress, "server", "s", "127.0.0.1"+config.DefaultGRPCAddress, "gRPC address of the release server")
	flags.StringVarP(&target.Token, "token", "t", "", "admin token (defaults to $"+tokenEnv+")")
	flags.DurationVar(&target.Timeout, "timeout", config.DefaultTimeout, "timeout of each call")
	flags.StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
}
