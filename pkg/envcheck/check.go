package envcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/setupcheck/pkg/check"
)

// Check verifies that an environment variable holds a real value.
type Check struct {
	Name      string    // env var name
	Required  bool      // fail (rather than warn) when unusable
	MaskValue bool      // show first/last 3 chars of the value
	Getter    EnvGetter // injected for testing
}

// Placeholder returns the template value shipped in example .env files,
// e.g. "your_openai_api_key_here" for OPENAI_API_KEY.
func Placeholder(name string) string {
	return "your_" + strings.ToLower(name) + "_here"
}

// Usable reports whether name is set to a non-empty value other than its placeholder.
func Usable(g EnvGetter, name string) bool {
	value, ok := g.LookupEnv(name)
	return ok && value != "" && value != Placeholder(name)
}

// Run executes the environment variable check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env: %s", c.Name),
	}

	value, _ := c.Getter.LookupEnv(c.Name)

	if Usable(c.Getter, c.Name) {
		if c.MaskValue {
			result.AddDetailf("value: %s", maskValue(value))
		}
		return result.Pass()
	}

	reason := "not set"
	if value == Placeholder(c.Name) {
		reason = "still the placeholder value"
	}

	if c.Required {
		return result.Fail("required, "+reason, fmt.Errorf("environment variable %s is %s", c.Name, reason))
	}
	return result.Warn("optional, " + reason)
}

func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
