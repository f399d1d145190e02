package publisher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/oshokin/release-server/internal/logger"
	pb "github.com/oshokin/release-server/internal/pb/release/v1"
	"github.com/oshokin/release-server/internal/service/common"

	// Register SHA-512 for digest.SHA512.
	_ "crypto/sha512"
)

// Target describes how to reach the release server.
type Target struct {
	// ServerAddress is the gRPC address of the release server.
	ServerAddress string
	// Token is the admin token; read calls do not need it.
	Token string
	// Timeout bounds each call.
	Timeout time.Duration
}

// PublishOptions contains inputs for Publish.
type PublishOptions struct {
	Target

	// Platform, Arch and Channel select the update track.
	Platform string
	Arch     string
	Channel  string
	// Version is the semantic version being published.
	Version string
	// ArtifactURL is where clients will download the artifact from.
	ArtifactURL string
	// ArtifactPath is a local copy of the artifact used to compute the checksum.
	ArtifactPath string
	// Checksum is used verbatim when ArtifactPath is empty.
	Checksum string
	// SignaturePath points at a detached signature file.
	SignaturePath string
	// NotesPath points at a release notes file.
	NotesPath string
}

// RetractOptions contains inputs for Retract.
type RetractOptions struct {
	Target

	Platform string
	Arch     string
	Channel  string
	Version  string
}

// CheckOptions contains inputs for Check.
type CheckOptions struct {
	Target

	Platform       string
	Arch           string
	Channel        string
	CurrentVersion string
}

var (
	// errChecksumSource is returned when neither an artifact nor a checksum is given.
	errChecksumSource = errors.New("either an artifact path or a checksum must be provided")
	// errAmbiguousChecksum is returned when both an artifact and a checksum are given.
	errAmbiguousChecksum = errors.New("artifact path and checksum are mutually exclusive")
)

// Publish registers a release with the server.
func Publish(ctx context.Context, opts *PublishOptions) (*pb.Release, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "release-publisher")

	release, err := prepareRelease(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare release: %w", err)
	}

	actor, err := common.DetectActor()
	if err != nil {
		return nil, err
	}

	client, err := dial(ctx, &opts.Target)
	if err != nil {
		return nil, err
	}

	// Best-effort cleanup.
	defer func() {
		_ = client.Close()
	}()

	stored, err := client.PublishRelease(ctx, actor, release)
	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Release published",
		"platform", stored.Platform,
		"arch", stored.Arch,
		"channel", stored.Channel,
		"version", stored.Version,
		"checksum", stored.Checksum)

	printNextSteps(ctx, opts, stored)

	return stored, nil
}

// Retract withdraws a release from the server.
func Retract(ctx context.Context, opts *RetractOptions) error {
	ctx = logger.WithName(ctx, "release-publisher")

	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := dial(ctx, &opts.Target)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	err = client.RetractRelease(ctx, actor, &pb.RetractReleaseRequest{
		Platform: opts.Platform,
		Arch:     opts.Arch,
		Channel:  opts.Channel,
		Version:  opts.Version,
	})
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Release retracted",
		"platform", opts.Platform, "arch", opts.Arch, "channel", opts.Channel, "version", opts.Version)

	return nil
}

// Check asks the server which release a client on CurrentVersion would receive.
func Check(ctx context.Context, opts *CheckOptions) (*pb.CheckUpdateResponse, error) {
	ctx = logger.WithName(ctx, "release-publisher")

	client, err := dial(ctx, &opts.Target)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = client.Close()
	}()

	resp, err := client.CheckUpdate(ctx, &pb.CheckUpdateRequest{
		Platform:       opts.Platform,
		Arch:           opts.Arch,
		Channel:        opts.Channel,
		CurrentVersion: opts.CurrentVersion,
	})
	if err != nil {
		return nil, err
	}

	if manifest := resp.GetManifest(); manifest != nil {
		logger.InfoKV(ctx, "Update available",
			"from", opts.CurrentVersion, "to", manifest.Version, "artifact_url", manifest.GetArtifactUrl())
	} else {
		logger.InfoKV(ctx, "No update available", "current_version", opts.CurrentVersion)
	}

	return resp, nil
}

// dial connects and verifies the server is serving before any call is made.
func dial(ctx context.Context, target *Target) (*common.Client, error) {
	client, err := common.Dial(ctx, target.ServerAddress,
		common.WithCallTimeout(target.Timeout),
		common.WithToken(target.Token))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("release server %s is not reachable: %w", target.ServerAddress, err)
	}

	logger.DebugKV(ctx, "Verified connection to release server", "server_address", target.ServerAddress)

	return client, nil
}

// prepareRelease builds the wire release from local files and flags.
func prepareRelease(ctx context.Context, opts *PublishOptions) (*pb.Release, error) {
	checksum, err := resolveChecksum(ctx, opts)
	if err != nil {
		return nil, err
	}

	signature, err := readOptionalFile(opts.SignaturePath)
	if err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}

	notes, err := readOptionalFile(opts.NotesPath)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	return &pb.Release{
		Platform:    opts.Platform,
		Arch:        opts.Arch,
		Channel:     opts.Channel,
		Version:     opts.Version,
		Checksum:    checksum,
		ArtifactUrl: opts.ArtifactURL,
		Signature:   signature,
		Notes:       notes,
	}, nil
}

func resolveChecksum(ctx context.Context, opts *PublishOptions) (string, error) {
	switch {
	case opts.ArtifactPath != "" && opts.Checksum != "":
		return "", errAmbiguousChecksum
	case opts.Checksum != "":
		return strings.TrimSpace(opts.Checksum), nil
	case opts.ArtifactPath == "":
		return "", errChecksumSource
	}

	d, err := FileDigest(opts.ArtifactPath)
	if err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Computed artifact digest", "path", opts.ArtifactPath, "digest", d.String())

	return d.String(), nil
}

// FileDigest returns the SHA-512 digest of the file at path.
func FileDigest(path string) (digest.Digest, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	d, err := digest.SHA512.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("hash artifact: %w", err)
	}

	return d, nil
}

func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(contents)), nil
}

// printNextSteps logs human-readable guidance for the artifact upload.
func printNextSteps(ctx context.Context, opts *PublishOptions, stored *pb.Release) {
	if opts.ArtifactPath == "" {
		return
	}

	var builder strings.Builder

	builder.WriteString("Make sure ")
	builder.WriteString(opts.ArtifactPath)
	builder.WriteString(" is uploaded to ")
	builder.WriteString(stored.GetArtifactUrl())
	builder.WriteString(": clients on ")
	builder.WriteString(stored.Platform + "/" + stored.Arch + "/" + stored.Channel)
	builder.WriteString(" are offered it from now on and verify it against ")
	builder.WriteString(stored.Checksum)

	logger.Info(ctx, builder.String())
}
