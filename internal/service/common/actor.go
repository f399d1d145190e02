//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	pb "github.com/oshokin/release-server/internal/pb/release/v1"
)

// DetectActor gathers host and user information for the audit trail.
// Returns a wire type because callers pass it directly to gRPC requests.
func DetectActor() (*pb.SystemActor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	username, err := currentUsername()
	if err != nil {
		return nil, err
	}

	return &pb.SystemActor{
		Hostname: hostname,
		Username: username,
	}, nil
}

// currentUsername prefers the account database and falls back to $USER,
// which is all a CI container without /etc/passwd entries may have.
func currentUsername() (string, error) {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username, nil
	}

	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}

	if err == nil {
		err = errEmptyUsername
	}

	return "", fmt.Errorf("current user: %w", err)
}
