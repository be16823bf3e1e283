package modcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/setupcheck/pkg/gotool"
)

// ErrNotFound reports that an import path is not provided by any module
// available to the workspace.
var ErrNotFound = errors.New("package not found")

// notFoundMarkers are the go list error texts meaning "nothing provides this package".
var notFoundMarkers = []string{
	"no required module provides package",
	"cannot find module providing package",
	"cannot find package",
	"is not in std",
	"is not in GOROOT",
}

// Package describes a resolved import path.
type Package struct {
	ImportPath string
	Dir        string
	Module     string
}

// Resolver resolves an import path in the target environment.
type Resolver interface {
	Resolve(ctx context.Context, importPath string) (Package, error)
}

// RealResolver resolves packages with `go list` in a workspace directory.
type RealResolver struct {
	Dir    string        // course workspace (default: current directory)
	Runner gotool.Runner // injected for testing
}

// Resolve runs `go list -e -find -json <importPath>`. With -e, resolution
// errors are reported in the JSON Error field and the command succeeds.
func (r *RealResolver) Resolve(ctx context.Context, importPath string) (Package, error) {
	if _, err := r.Runner.LookPath("go"); err != nil {
		return Package{}, fmt.Errorf("go not found in PATH: %w", err)
	}

	stdout, stderr, err := r.Runner.RunCommandContext(ctx, r.Dir, "go", "list", "-e", "-find", "-json", importPath)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Package{}, fmt.Errorf("go list timed out: %w", ctx.Err())
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return Package{}, fmt.Errorf("go list: %s", firstLine(msg))
		}
		return Package{}, fmt.Errorf("go list: %w", err)
	}

	return parseListOutput(stdout)
}

func parseListOutput(out string) (Package, error) {
	if !gjson.Valid(out) {
		return Package{}, fmt.Errorf("go list: unexpected output %q", firstLine(out))
	}

	parsed := gjson.Parse(out)
	if msg := parsed.Get("Error.Err"); msg.Exists() {
		text := firstLine(msg.String())
		for _, marker := range notFoundMarkers {
			if strings.Contains(text, marker) {
				return Package{}, fmt.Errorf("%w: %s", ErrNotFound, text)
			}
		}
		return Package{}, fmt.Errorf("go list: %s", text)
	}

	pkg := Package{
		ImportPath: parsed.Get("ImportPath").String(),
		Dir:        parsed.Get("Dir").String(),
		Module:     parsed.Get("Module.Path").String(),
	}
	if pkg.Dir == "" {
		return Package{}, fmt.Errorf("%w: %s has no source directory", ErrNotFound, pkg.ImportPath)
	}
	return pkg, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
