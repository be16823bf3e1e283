// Package config layers flags, SETUPCHECK_* environment variables and an
// optional setupcheck.yaml over the built-in course requirements.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/vertti/setupcheck/pkg/course"
	"github.com/vertti/setupcheck/pkg/version"
)

// Keys bound to command-line flags.
const (
	KeyDir     = "dir"
	KeyEnvFile = "env_file"
	KeySkipAPI = "skip_api"
	KeyNoColor = "no_color"
	KeyVerbose = "verbose"
	EnvPrefix  = "SETUPCHECK"
	FileName   = "setupcheck"
)

// Config is the resolved configuration of one run.
type Config struct {
	Course           course.Requirements
	MinGoVersion     version.Version
	Dir              string
	EnvFile          string
	SkipConnectivity bool
	NoColor          bool
	Verbose          bool
}

// New returns a viper instance reading SETUPCHECK_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyDir, ".")
	return v
}

// ReadFile reads the config file into v and returns its path. With an empty
// path, setupcheck.yaml is searched in the current directory and then in
// $XDG_CONFIG_HOME/setupcheck; finding none is not an error.
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load resolves the configuration. Course settings present in v replace the
// defaults wholesale; absent ones keep course.Default().
func Load(v *viper.Viper) (Config, error) {
	req := course.Default()

	if v.IsSet("course.title") {
		req.Title = v.GetString("course.title")
	}
	if v.IsSet("course.min_go_version") {
		// YAML reads an unquoted 1.20 as the float 1.2.
		raw, ok := v.Get("course.min_go_version").(string)
		if !ok {
			return Config{}, fmt.Errorf("invalid course config: min_go_version must be a quoted string, got %v", v.Get("course.min_go_version"))
		}
		req.MinGoVersion = raw
	}
	if v.IsSet("course.packages") {
		var pkgs []course.Package
		if err := v.UnmarshalKey("course.packages", &pkgs); err != nil {
			return Config{}, fmt.Errorf("invalid course config: packages: %w", err)
		}
		req.Packages = pkgs
	}
	if v.IsSet("course.env") {
		var vars []course.EnvVar
		if err := v.UnmarshalKey("course.env", &vars); err != nil {
			return Config{}, fmt.Errorf("invalid course config: env: %w", err)
		}
		req.Env = vars
	}
	// Connectivity fields absent from the file keep their defaults.
	if v.IsSet("course.connectivity") {
		if err := v.UnmarshalKey("course.connectivity", &req.Connectivity); err != nil {
			return Config{}, fmt.Errorf("invalid course config: connectivity: %w", err)
		}
	}
	if v.IsSet("course.next_steps") {
		req.NextSteps = v.GetStringSlice("course.next_steps")
	}
	if v.IsSet("course.troubleshooting") {
		req.Troubleshooting = v.GetStringSlice("course.troubleshooting")
	}

	if err := validator.New().Struct(req); err != nil {
		return Config{}, fmt.Errorf("invalid course config: %w", err)
	}
	minGo, err := version.Parse(req.MinGoVersion)
	if err != nil {
		return Config{}, fmt.Errorf("invalid course config: min_go_version: %w", err)
	}

	return Config{
		Course:           req,
		MinGoVersion:     minGo,
		Dir:              v.GetString(KeyDir),
		EnvFile:          v.GetString(KeyEnvFile),
		SkipConnectivity: v.GetBool(KeySkipAPI),
		NoColor:          v.GetBool(KeyNoColor),
		Verbose:          v.GetBool(KeyVerbose),
	}, nil
}
