package testutil

import (
	"context"
	"strings"
)

// MockRunner is a test double for gotool.Runner.
type MockRunner struct {
	LookPathFunc          func(file string) (string, error)
	RunCommandContextFunc func(ctx context.Context, dir, name string, args ...string) (string, string, error)
}

func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc == nil {
		return "/usr/local/go/bin/" + file, nil
	}
	return m.LookPathFunc(file)
}

func (m *MockRunner) RunCommandContext(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandContextFunc(ctx, dir, name, args...)
}

// MapEnv is an in-memory process environment. It satisfies both
// envcheck.EnvGetter and dotenv.Env.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
