package versioncheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/vertti/setupcheck/pkg/gotool"
)

// Source reports the raw version string of the toolchain under test.
type Source interface {
	Version(ctx context.Context) (string, error)
}

// ToolchainSource asks the go binary on PATH for its version.
type ToolchainSource struct {
	Runner gotool.Runner
}

// Version runs `go env GOVERSION` and returns its trimmed output, e.g. "go1.22.3".
func (s *ToolchainSource) Version(ctx context.Context) (string, error) {
	if _, err := s.Runner.LookPath("go"); err != nil {
		return "", fmt.Errorf("go not found in PATH: %w", err)
	}

	stdout, stderr, err := s.Runner.RunCommandContext(ctx, "", "go", "env", "GOVERSION")
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("go env GOVERSION: %w: %s", err, msg)
		}
		return "", fmt.Errorf("go env GOVERSION: %w", err)
	}
	return strings.TrimSpace(stdout), nil
}
