// Package dotenv locates a .env file and loads it into the process environment.
package dotenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// FileName is the dotfile searched for.
const FileName = ".env"

// ErrNotFound is returned when no dotfile exists.
var ErrNotFound = errors.New(".env file not found")

// Env is the process environment the dotfile is loaded into.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv uses the real process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnv) Setenv(key, value string) error      { return os.Setenv(key, value) }

// FindFile returns explicitPath if it exists, otherwise searches for .env
// from startDir upwards. The search stops at the home directory, at a
// directory containing .git, or at the filesystem root.
func FindFile(fs afero.Fs, startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := fs.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, explicitPath)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		envPath := filepath.Join(currentDir, FileName)
		if info, err := fs.Stat(envPath); err == nil && !info.IsDir() {
			return envPath, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := fs.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Loader loads KEY=VALUE pairs from a dotfile into Env.
// Variables already present in Env are left untouched.
type Loader struct {
	Fs           afero.Fs // injected for testing
	Env          Env      // injected for testing
	StartDir     string   // where discovery begins (default: ".")
	ExplicitPath string   // skip discovery and use this file
}

// Load finds and applies the dotfile. It returns the path that was loaded,
// or "" if there was none. A missing dotfile is not an error.
func (l *Loader) Load() (string, error) {
	startDir := l.StartDir
	if startDir == "" {
		startDir = "."
	}

	path, err := FindFile(l.Fs, startDir, l.ExplicitPath)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	f, err := l.Fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, set := l.Env.LookupEnv(k); set {
			continue
		}
		if err := l.Env.Setenv(k, values[k]); err != nil {
			return "", fmt.Errorf("failed to set %s: %w", k, err)
		}
	}

	return path, nil
}
