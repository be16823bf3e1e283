// Package course holds the requirements a course environment is verified against.
package course

import "github.com/vertti/setupcheck/pkg/llmcheck"

// Package is a Go package the course code imports.
type Package struct {
	Name       string `mapstructure:"name" validate:"required"`
	ImportPath string `mapstructure:"import_path" validate:"required"`
}

// EnvVar is a credential the course expects in the environment.
type EnvVar struct {
	Name     string `mapstructure:"name" validate:"required"`
	Required bool   `mapstructure:"required"`
}

// Connectivity configures the live API probe. The probe speaks the OpenAI
// chat completions protocol; Provider names the endpoint at BaseURL in the
// report and EnvVar holds the key sent to it.
type Connectivity struct {
	Provider  string `mapstructure:"provider" validate:"required"`
	EnvVar    string `mapstructure:"env_var" validate:"required"`
	Model     string `mapstructure:"model" validate:"required"`
	Prompt    string `mapstructure:"prompt" validate:"required"`
	MaxTokens int64  `mapstructure:"max_tokens" validate:"gte=1"`
	BaseURL   string `mapstructure:"base_url" validate:"omitempty,url"`
}

// Requirements is everything a run checks, in the order it is checked.
type Requirements struct {
	Title           string       `mapstructure:"title" validate:"required"`
	MinGoVersion    string       `mapstructure:"min_go_version" validate:"required"`
	Packages        []Package    `mapstructure:"packages" validate:"min=1,dive"`
	Env             []EnvVar     `mapstructure:"env" validate:"dive"`
	Connectivity    Connectivity `mapstructure:"connectivity"`
	NextSteps       []string     `mapstructure:"next_steps"`
	Troubleshooting []string     `mapstructure:"troubleshooting"`
}

// Default returns the requirements of the LLM engineering course.
func Default() Requirements {
	return Requirements{
		Title:        "Master LLM Engineer - Setup Verification",
		MinGoVersion: "1.22",
		Packages: []Package{
			{"openai-go", "github.com/openai/openai-go"},
			{"anthropic-sdk-go", "github.com/anthropics/anthropic-sdk-go"},
			{"langchaingo", "github.com/tmc/langchaingo/llms"},
			{"chroma-go", "github.com/amikos-tech/chroma-go"},
			{"go-faiss", "github.com/DataIntelligenceCrew/go-faiss"},
			{"gin", "github.com/gin-gonic/gin"},
			{"templ", "github.com/a-h/templ"},
			{"gota", "github.com/go-gota/gota/dataframe"},
			{"gonum", "gonum.org/v1/gonum/mat"},
			{"godotenv", "github.com/joho/godotenv"},
			{"tiktoken-go", "github.com/pkoukk/tiktoken-go"},
		},
		Env: []EnvVar{
			{Name: "OPENAI_API_KEY", Required: true},
			{Name: "ANTHROPIC_API_KEY"},
			{Name: "GOOGLE_API_KEY"},
			{Name: "PINECONE_API_KEY"},
		},
		Connectivity: Connectivity{
			Provider:  "OpenAI",
			EnvVar:    "OPENAI_API_KEY",
			Model:     llmcheck.DefaultModel,
			Prompt:    llmcheck.DefaultPrompt,
			MaxTokens: llmcheck.DefaultMaxTokens,
		},
		NextSteps: []string{
			"Navigate to week-01-llm-foundations/",
			"Read the README.md",
			"Start learning!",
		},
		Troubleshooting: []string{
			"Install missing packages: go mod download (or the go get hints above)",
			"Set up environment variables in .env file",
			"Verify API keys are correct",
			"Run this check again",
		},
	}
}
