package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/setupcheck/pkg/config"
	"github.com/vertti/setupcheck/pkg/dotenv"
	"github.com/vertti/setupcheck/pkg/envcheck"
	"github.com/vertti/setupcheck/pkg/gotool"
	"github.com/vertti/setupcheck/pkg/llmcheck"
	"github.com/vertti/setupcheck/pkg/logging"
	"github.com/vertti/setupcheck/pkg/modcheck"
	"github.com/vertti/setupcheck/pkg/output"
	"github.com/vertti/setupcheck/pkg/verify"
	"github.com/vertti/setupcheck/pkg/versioncheck"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrCheckFailed is returned when at least one check failed.
// The returned error causes main to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

var (
	configPath string
	workDir    string
	envFile    string
	skipAPI    bool
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "setupcheck",
	Short: "Verify your environment for the LLM engineering course",
	Long: "setupcheck verifies the Go toolchain, the course's Go packages, API keys\n" +
		"and connectivity to the OpenAI API before you start the course.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetupCheck,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "course config file (default: ./setupcheck.yaml)")
	rootCmd.Flags().StringVar(&workDir, "dir", ".", "course workspace used to resolve packages")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "load this .env file instead of searching for one")
	rootCmd.Flags().BoolVar(&skipAPI, "skip-api", false, "skip the live API connection test")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log diagnostics to stderr")
}

// collaborators are the environment-facing dependencies of a run.
type collaborators struct {
	Version  versioncheck.Source
	Resolver modcheck.Resolver
	Env      envcheck.EnvGetter
	Dotenv   verify.DotenvLoader
	Prober   llmcheck.Prober
}

// newCollaborators is replaced in tests.
var newCollaborators = realCollaborators

func realCollaborators(cfg config.Config) collaborators {
	runner := &gotool.RealRunner{}
	conn := cfg.Course.Connectivity
	return collaborators{
		Version:  &versioncheck.ToolchainSource{Runner: runner},
		Resolver: &modcheck.RealResolver{Dir: cfg.Dir, Runner: runner},
		Env:      &envcheck.RealEnvGetter{},
		Dotenv: &dotenv.Loader{
			Fs:           afero.NewOsFs(),
			Env:          dotenv.OSEnv{},
			StartDir:     cfg.Dir,
			ExplicitPath: cfg.EnvFile,
		},
		Prober: &llmcheck.OpenAIProber{
			Model:     conn.Model,
			Prompt:    conn.Prompt,
			MaxTokens: conn.MaxTokens,
			BaseURL:   conn.BaseURL,
			APIKeyVar: conn.EnvVar,
			Env:       &envcheck.RealEnvGetter{},
		},
	}
}

// bindFlags maps flag names to config keys on a fresh viper instance.
func bindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := config.New()
	bindings := map[string]string{
		config.KeyDir:     "dir",
		config.KeyEnvFile: "env-file",
		config.KeySkipAPI: "skip-api",
		config.KeyNoColor: "no-color",
		config.KeyVerbose: "verbose",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return v, nil
}

func runSetupCheck(cmd *cobra.Command, _ []string) error {
	v, err := bindFlags(cmd)
	if err != nil {
		return err
	}
	cfgFile, err := config.ReadFile(v, configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	color := output.ColorEnabled(cfg.NoColor)
	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose, color)
	if cfgFile != "" {
		log.Debug().Str("path", cfgFile).Msg("loaded config file")
	}

	deps := newCollaborators(cfg)
	verifier := &verify.Verifier{
		Requirements:     cfg.Course,
		MinGoVersion:     cfg.MinGoVersion,
		SkipConnectivity: cfg.SkipConnectivity,
		Version:          deps.Version,
		Resolver:         deps.Resolver,
		Env:              deps.Env,
		Dotenv:           deps.Dotenv,
		Prober:           deps.Prober,
		Printer:          output.New(cmd.OutOrStdout(), color),
		Log:              log,
	}

	if rep := verifier.Run(); !rep.Passed() {
		return ErrCheckFailed
	}
	return nil
}
