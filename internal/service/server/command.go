package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapgrpc"
	"google.golang.org/grpc/grpclog"

	"github.com/oshokin/release-server/internal/config"
	"github.com/oshokin/release-server/internal/logger"
)

// Options controls the release-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings file (YAML or TOML).
	ConfigPath string
	// HTTPAddress overrides the HTTP listen address from the settings.
	HTTPAddress string
	// GRPCAddress overrides the gRPC listen address from the settings.
	GRPCAddress string
	// DatabaseDSN overrides the database DSN from the settings.
	DatabaseDSN string
	// LogLevel overrides the log level from the settings.
	LogLevel string
	// LogFormat overrides the log encoding from the settings.
	LogFormat string
}

//nolint:gochecknoglobals // Library-wide settings must be applied once, before any server starts.
var librariesOnce sync.Once

// Run starts the HTTP and gRPC servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, opts *Options) error {
	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return err
	}

	if err := applyLogging(settings); err != nil {
		return err
	}

	// Named after applyLogging so the context logger uses the configured format.
	ctx = logger.WithName(ctx, "release-server")

	configureLibraries()

	if settings.AdminToken == "" {
		logger.Warn(ctx, "Admin token is empty: publishing and retraction are not authenticated")
	}

	a, err := newApp(ctx, settings)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	lc := net.ListenConfig{}

	httpListener, err := lc.Listen(ctx, "tcp", settings.HTTPAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", settings.HTTPAddress, err)
	}

	grpcListener, err := lc.Listen(ctx, "tcp", settings.GRPCAddress)
	if err != nil {
		_ = httpListener.Close()

		return fmt.Errorf("listen on %s: %w", settings.GRPCAddress, err)
	}

	logger.InfoKV(ctx, "Release server listening",
		"http_address", httpListener.Addr().String(),
		"grpc_address", grpcListener.Addr().String(),
		"database_driver", settings.Database.Driver,
		"cache_enabled", settings.Cache.Enabled)

	return a.serve(ctx, httpListener, grpcListener)
}

// loadSettings reads the settings file and applies command line overrides.
// A missing default settings file is not an error: defaults are used instead.
func loadSettings(ctx context.Context, opts *Options) (*config.Config, error) {
	settings, err := config.Load(opts.ConfigPath)

	switch {
	case err == nil:
	case opts.ConfigPath == "" && errors.Is(err, fs.ErrNotExist):
		logger.InfoKV(ctx, "Settings file not found, using defaults", "path", config.DefaultConfigFilename)

		settings = config.Default()
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.HTTPAddress != "" {
		settings.HTTPAddress = opts.HTTPAddress
	}

	if opts.GRPCAddress != "" {
		settings.GRPCAddress = opts.GRPCAddress
	}

	if opts.DatabaseDSN != "" {
		settings.Database.DSN = opts.DatabaseDSN
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	if opts.LogFormat != "" {
		settings.LogFormat = opts.LogFormat
	}

	if err := config.Validate(settings); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	return settings, nil
}

// applyLogging configures the global logger from settings.
func applyLogging(settings *config.Config) error {
	if settings.LogFormat != "" {
		if err := logger.SetFormat(settings.LogFormat); err != nil {
			return err
		}
	}

	return logger.SetLevelString(settings.LogLevel)
}

// configureLibraries puts gin into release mode and routes grpc-go's internal
// logging through zap at warning level and above.
func configureLibraries() {
	librariesOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		base := logger.Logger().Desugar().Named("grpc").WithOptions(logger.WithLevel(zapcore.WarnLevel))
		grpclog.SetLoggerV2(zapgrpc.NewLogger(base))
	})
}
