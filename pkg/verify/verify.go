// Package verify runs the course environment checks in order and streams
// each result to the printer as it is produced.
package verify

import (
	"github.com/rs/zerolog"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/course"
	"github.com/vertti/setupcheck/pkg/envcheck"
	"github.com/vertti/setupcheck/pkg/llmcheck"
	"github.com/vertti/setupcheck/pkg/modcheck"
	"github.com/vertti/setupcheck/pkg/output"
	"github.com/vertti/setupcheck/pkg/report"
	"github.com/vertti/setupcheck/pkg/version"
	"github.com/vertti/setupcheck/pkg/versioncheck"
)

// Section titles, in run order.
const (
	SectionToolchain    = "Go Toolchain"
	SectionPackages     = "Required Packages"
	SectionEnv          = "Environment Variables"
	SectionConnectivity = "API Connection Test"
)

// DotenvLoader applies a dotfile to the environment and returns its path.
type DotenvLoader interface {
	Load() (string, error)
}

// Verifier holds the requirements and the injected collaborators of one run.
type Verifier struct {
	Requirements     course.Requirements
	MinGoVersion     version.Version
	SkipConnectivity bool

	Version  versioncheck.Source
	Resolver modcheck.Resolver
	Env      envcheck.EnvGetter
	Dotenv   DotenvLoader // optional
	Prober   llmcheck.Prober

	Printer *output.Printer
	Log     zerolog.Logger
}

// Run executes every section and prints the summary. The connectivity
// section only runs when its credential is usable.
func (v *Verifier) Run() *report.Report {
	req := v.Requirements
	rep := report.New(req.Title)
	v.Printer.Banner(req.Title)

	v.runSection(rep, SectionToolchain, &versioncheck.Check{Min: v.MinGoVersion, Source: v.Version})

	pkgChecks := make([]check.Checker, 0, len(req.Packages))
	for _, p := range req.Packages {
		pkgChecks = append(pkgChecks, &modcheck.Check{Name: p.Name, ImportPath: p.ImportPath, Resolver: v.Resolver})
	}
	v.runSection(rep, SectionPackages, pkgChecks...)

	v.loadDotenv()
	envChecks := make([]check.Checker, 0, len(req.Env))
	for _, e := range req.Env {
		envChecks = append(envChecks, &envcheck.Check{Name: e.Name, Required: e.Required, MaskValue: true, Getter: v.Env})
	}
	v.runSection(rep, SectionEnv, envChecks...)

	conn := req.Connectivity
	switch {
	case v.SkipConnectivity:
		v.Log.Info().Msg("connectivity check disabled")
	case v.Prober == nil:
		v.Log.Debug().Msg("no prober configured, skipping connectivity check")
	case !envcheck.Usable(v.Env, conn.EnvVar):
		v.Log.Debug().Str("var", conn.EnvVar).Msg("credential unusable, skipping connectivity check")
	default:
		v.runSection(rep, SectionConnectivity, &llmcheck.Check{Provider: conn.Provider, Prober: v.Prober})
	}

	v.Printer.Summary(rep, req.NextSteps, req.Troubleshooting)
	return rep
}

func (v *Verifier) runSection(rep *report.Report, title string, checks ...check.Checker) {
	section := rep.Section(title)
	v.Printer.Section(title)

	for _, c := range checks {
		r := c.Run()
		v.Printer.Result(r)
		section.Add(r)

		ev := v.Log.Debug()
		if r.Failed() && r.Err != nil {
			ev = ev.Err(r.Err)
		}
		ev.Str("section", title).Str("check", r.Name).Str("status", string(r.Status)).Msg("check finished")
	}
}

func (v *Verifier) loadDotenv() {
	if v.Dotenv == nil {
		return
	}
	path, err := v.Dotenv.Load()
	switch {
	case err != nil:
		v.Log.Warn().Err(err).Msg("ignoring .env file")
	case path == "":
		v.Log.Debug().Msg("no .env file found")
	default:
		v.Log.Debug().Str("path", path).Msg("loaded .env file")
	}
}
