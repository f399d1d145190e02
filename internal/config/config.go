package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/release-server/internal/logger"
)

// Config holds the settings of the release server.
type Config struct {
	// HTTPAddress is the listen address of the HTTP API.
	HTTPAddress string `yaml:"http_addr" toml:"http_addr"`
	// GRPCAddress is the listen address of the gRPC API.
	GRPCAddress string `yaml:"grpc_addr" toml:"grpc_addr"`
	// Database configures the release store.
	Database Database `yaml:"database" toml:"database"`
	// Policy configures ingestion and manifest integrity rules.
	Policy Policy `yaml:"policy" toml:"policy"`
	// Cache configures the latest-release cache.
	Cache Cache `yaml:"cache" toml:"cache"`
	// CORSOrigins lists browser origins allowed on read routes. Empty allows any origin.
	CORSOrigins []string `yaml:"cors_origins,omitempty" toml:"cors_origins,omitempty"`
	// AdminToken guards ingestion and retraction. Empty disables the check.
	AdminToken string `yaml:"admin_token" toml:"admin_token"`
	// Timeout bounds request handling and store operations.
	Timeout Duration `yaml:"timeout" toml:"timeout"`
	// LogLevel is the minimum level of emitted log messages.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// LogFormat is "console" (default) or "json".
	LogFormat string `yaml:"log_format,omitempty" toml:"log_format,omitempty"`
}

// Database selects and configures the store backend.
type Database struct {
	// Driver is either "sqlite" or "mysql".
	Driver string `yaml:"driver" toml:"driver"`
	// DSN is the driver-specific data source name. For sqlite it is a file path.
	DSN string `yaml:"dsn" toml:"dsn"`
}

// Policy holds release acceptance rules.
type Policy struct {
	// RequireSignature rejects unsigned releases and withholds unsigned manifests.
	RequireSignature bool `yaml:"require_signature" toml:"require_signature"`
	// AllowBackfill permits publishing versions lower than the latest of a group.
	// Nil means true.
	AllowBackfill *bool `yaml:"allow_backfill,omitempty" toml:"allow_backfill,omitempty"`
	// AllowedPlatforms lists glob patterns of accepted platforms. Empty accepts all.
	AllowedPlatforms []string `yaml:"allowed_platforms,omitempty" toml:"allowed_platforms,omitempty"`
	// AllowedArchs lists glob patterns of accepted architectures. Empty accepts all.
	AllowedArchs []string `yaml:"allowed_archs,omitempty" toml:"allowed_archs,omitempty"`
	// AllowedChannels lists glob patterns of accepted channels. Empty accepts all.
	AllowedChannels []string `yaml:"allowed_channels,omitempty" toml:"allowed_channels,omitempty"`
}

// BackfillAllowed reports the effective backfill setting.
func (p *Policy) BackfillAllowed() bool {
	return p.AllowBackfill == nil || *p.AllowBackfill
}

// Cache configures the optional latest-release cache.
type Cache struct {
	// Enabled turns the cache on.
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// TTL bounds how long an entry may be served.
	TTL Duration `yaml:"ttl" toml:"ttl"`
}

const (
	// DefaultConfigFilename is the default filename for server settings.
	DefaultConfigFilename = "release-server.yaml"

	// DefaultHTTPAddress is the default HTTP listen address.
	DefaultHTTPAddress = ":8080"

	// DefaultGRPCAddress is the default gRPC listen address.
	DefaultGRPCAddress = ":9090"

	// DriverSQLite selects the embedded SQLite store.
	DriverSQLite = "sqlite"

	// DriverMySQL selects a MySQL store.
	DriverMySQL = "mysql"

	// DefaultSQLiteFilename is the default SQLite database file.
	DefaultSQLiteFilename = "release-server.db"

	// DefaultTimeout is the default duration for request handling.
	DefaultTimeout = 5 * time.Second

	// DefaultCacheTTL is the default lifetime of cached latest releases.
	DefaultCacheTTL = 30 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownDriver is returned for unsupported database drivers.
	errUnknownDriver = errors.New("unknown database driver")
	// errDSNRequired is returned when a driver needs an explicit DSN.
	errDSNRequired = errors.New("database dsn must be provided")
	// errInvalidOrigin is returned for CORS origins without an http(s) scheme.
	errInvalidOrigin = errors.New("cors origin must be \"*\" or start with http:// or https://")
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg) //nolint:errcheck // Defaults always validate.

	return cfg
}

// Load reads configuration from the provided path and validates essential fields.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if isTOML(path) {
		err = toml.Unmarshal(contents, &cfg)
	} else {
		err = yaml.Unmarshal(contents, &cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path in the format implied by its extension.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)

	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}

	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions: the file may hold the admin token.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.GRPCAddress == "" {
		cfg.GRPCAddress = DefaultGRPCAddress
	}

	for _, addr := range []string{cfg.HTTPAddress, cfg.GRPCAddress} {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid listen address %q: %w", addr, err)
		}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = Duration(DefaultTimeout)
	}

	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = Duration(DefaultCacheTTL)
	}

	if _, err := logger.ParseFormat(cfg.LogFormat); err != nil {
		return err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	for _, origin := range cfg.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("%w: %q", errInvalidOrigin, origin)
		}
	}

	patterns := [][]string{cfg.Policy.AllowedPlatforms, cfg.Policy.AllowedArchs, cfg.Policy.AllowedChannels}
	for _, list := range patterns {
		for _, pattern := range list {
			if _, err := glob.Compile(pattern); err != nil {
				return fmt.Errorf("invalid allow-list pattern %q: %w", pattern, err)
			}
		}
	}

	return nil
}

func validateDatabase(db *Database) error {
	db.Driver = strings.ToLower(strings.TrimSpace(db.Driver))

	switch db.Driver {
	case "", DriverSQLite:
		db.Driver = DriverSQLite
		if db.DSN == "" {
			db.DSN = DefaultSQLiteFilename
		}
	case DriverMySQL:
		if db.DSN == "" {
			return errDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", errUnknownDriver, db.Driver)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
