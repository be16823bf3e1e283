package versioncheck

import (
	"context"
	"fmt"
	"time"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/gotool"
	"github.com/vertti/setupcheck/pkg/version"
)

// Check verifies that the toolchain meets the minimum version.
type Check struct {
	Min     version.Version // minimum major.minor (patch is ignored)
	Timeout time.Duration   // timeout for the version query (default: 30s)
	Source  Source          // injected for testing
}

// Run executes the version check. It always produces a result.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "go"}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = gotool.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	raw, err := c.Source.Version(ctx)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not determine version: %v", err), err)
	}

	v, err := version.Extract(raw)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not parse version from %q", raw), err)
	}

	result.Name = fmt.Sprintf("go: %s", v)
	if !v.MeetsMinimum(c.Min) {
		return result.Failf("%d.%d+ required", c.Min.Major, c.Min.Minor)
	}

	return result.Pass()
}
