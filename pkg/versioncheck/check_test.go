package versioncheck

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/testutil"
	"github.com/vertti/setupcheck/pkg/version"
)

type staticSource struct {
	raw string
	err error
}

func (s staticSource) Version(context.Context) (string, error) {
	return s.raw, s.err
}

func TestVersionCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantName   string
		wantDetail string
	}{
		{
			name:       "meets minimum",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "go1.22.3"}},
			wantStatus: check.StatusOK,
			wantName:   "go: 1.22.3",
		},
		{
			name:       "newer minor passes",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "go1.24.1"}},
			wantStatus: check.StatusOK,
			wantName:   "go: 1.24.1",
		},
		{
			name:       "older minor fails",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "go1.21.13"}},
			wantStatus: check.StatusFail,
			wantName:   "go: 1.21.13",
			wantDetail: "1.22+ required",
		},
		{
			name:       "release candidate",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "go1.23rc1"}},
			wantStatus: check.StatusOK,
			wantName:   "go: 1.23.0",
		},
		{
			name:       "source error",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{err: errors.New("go not found in PATH")}},
			wantStatus: check.StatusFail,
			wantName:   "go",
			wantDetail: "could not determine version: go not found in PATH",
		},
		{
			name:       "unparseable output",
			check:      Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "devel"}},
			wantStatus: check.StatusFail,
			wantName:   "go",
			wantDetail: `could not parse version from "devel"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
			if result.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", result.Name, tt.wantName)
			}
			if tt.wantDetail != "" && !testutil.ContainsDetail(result.Details, tt.wantDetail) {
				t.Errorf("Details = %v, want to contain %q", result.Details, tt.wantDetail)
			}
			if tt.wantStatus == check.StatusFail && result.Err == nil {
				t.Error("Err = nil, want underlying error for failure")
			}
		})
	}
}

func TestVersionCheck_BelowMinimumError(t *testing.T) {
	c := Check{Min: version.Version{Major: 1, Minor: 22}, Source: staticSource{raw: "go1.21.9"}}

	result := c.Run()

	if result.Status != check.StatusFail {
		t.Fatalf("Status = %v, want FAIL", result.Status)
	}
	if result.Err == nil || result.Err.Error() != "1.22+ required" {
		t.Errorf("Err = %v, want %q", result.Err, "1.22+ required")
	}
	if len(result.Details) != 1 || result.Details[0] != "1.22+ required" {
		t.Errorf("Details = %v, want [1.22+ required]", result.Details)
	}
}

func TestVersionCheck_MajorThreeMinorTen(t *testing.T) {
	floor := version.Version{Major: 3, Minor: 10}
	for minor := 0; minor <= 14; minor++ {
		for _, patch := range []int{0, 4, 18} {
			raw := fmt.Sprintf("%d.%d.%d", 3, minor, patch)
			c := Check{Min: floor, Source: staticSource{raw: raw}}

			result := c.Run()

			want := check.StatusFail
			if minor >= 10 {
				want = check.StatusOK
			}
			if result.Status != want {
				t.Errorf("%s: Status = %v, want %v", raw, result.Status, want)
			}
		}
	}
}

func TestToolchainSource_Version(t *testing.T) {
	runner := &testutil.MockRunner{
		RunCommandContextFunc: func(_ context.Context, _, name string, args ...string) (string, string, error) {
			if name == "go" && len(args) == 2 && args[0] == "env" && args[1] == "GOVERSION" {
				return "go1.22.3\n", "", nil
			}
			return "", "unexpected", errors.New("exit 2")
		},
	}

	s := &ToolchainSource{Runner: runner}
	got, err := s.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if got != "go1.22.3" {
		t.Errorf("Version() = %q, want %q", got, "go1.22.3")
	}
}

func TestToolchainSource_NotInPath(t *testing.T) {
	runner := &testutil.MockRunner{
		LookPathFunc: func(string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	s := &ToolchainSource{Runner: runner}
	if _, err := s.Version(context.Background()); err == nil {
		t.Error("Version() error = nil, want error")
	}
}

func TestToolchainSource_CommandFails(t *testing.T) {
	runner := &testutil.MockRunner{
		RunCommandContextFunc: func(context.Context, string, string, ...string) (string, string, error) {
			return "", "go: unknown GOVERSION", errors.New("exit status 1")
		},
	}

	s := &ToolchainSource{Runner: runner}
	_, err := s.Version(context.Background())
	if err == nil {
		t.Fatal("Version() error = nil, want error")
	}
	if got := err.Error(); got != "go env GOVERSION: exit status 1: go: unknown GOVERSION" {
		t.Errorf("error = %q", got)
	}
}
