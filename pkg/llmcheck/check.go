// Package llmcheck verifies live connectivity to an LLM provider.
package llmcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/vertti/setupcheck/pkg/check"
)

// Check probes a provider once. There is no retry and no timeout beyond
// what the client enforces.
type Check struct {
	Provider string // display name, e.g. "OpenAI"
	Prober   Prober // injected for testing
}

// Run executes the connectivity check. Every probe error becomes a failure
// carrying the error text.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("api: %s", c.Provider),
	}

	start := time.Now()
	model, err := c.Prober.Probe(context.Background())
	if err != nil {
		return result.Fail(fmt.Sprintf("connection failed: %v", err), err)
	}

	result.AddDetail("connection successful")
	if model != "" {
		result.AddDetailf("model: %s", model)
	}
	result.AddDetailf("latency: %s", time.Since(start).Round(time.Millisecond))
	return result.Pass()
}
