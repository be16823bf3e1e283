// Package modcheck verifies that the Go packages a course depends on
// resolve in the course workspace.
package modcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/gotool"
)

// Check verifies that a single package resolves.
type Check struct {
	Name       string        // display name, e.g. "openai-go"
	ImportPath string        // e.g. "github.com/openai/openai-go"
	Timeout    time.Duration // timeout for resolution (default: 30s)
	Resolver   Resolver      // injected for testing
}

// Run executes the package check. Any resolution error is a failure;
// ErrNotFound additionally gets an install hint.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("pkg: %s", c.Name),
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = gotool.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pkg, err := c.Resolver.Resolve(ctx, c.ImportPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return result.Fail(fmt.Sprintf("not installed (go get %s)", c.ImportPath), err)
		}
		return result.Fail(fmt.Sprintf("could not resolve %s: %v", c.ImportPath, err), err)
	}

	result.AddDetailf("import: %s", c.ImportPath)
	if pkg.Module != "" {
		result.AddDetailf("module: %s", pkg.Module)
	}
	return result.Pass()
}
