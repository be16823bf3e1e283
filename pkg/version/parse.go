package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a version string into a Version.
// Partial versions are allowed: "1.22" parses as 1.22.0.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	return Version{Major: int(sv.Major()), Minor: int(sv.Minor()), Patch: int(sv.Patch())}, nil
}

// Extract finds and parses the first version number in a string,
// e.g. "go1.22.3" or "go version go1.23rc1 linux/amd64".
func Extract(s string) (Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	return Parse(match)
}
