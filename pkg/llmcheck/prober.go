package llmcheck

import (
	"context"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultModel     = "gpt-3.5-turbo"
	DefaultPrompt    = "Hello"
	DefaultMaxTokens = 5
)

// Prober issues a single minimal request and reports the responding model.
type Prober interface {
	Probe(ctx context.Context) (model string, err error)
}

// OpenAIProber probes the OpenAI chat completions API. Credentials come from
// the environment (OPENAI_API_KEY, OPENAI_BASE_URL) unless overridden.
type OpenAIProber struct {
	Model     string // default: gpt-3.5-turbo
	Prompt    string // default: "Hello"
	MaxTokens int64  // default: 5
	BaseURL   string // optional override of the API endpoint
	APIKey    string // optional override of OPENAI_API_KEY
	APIKeyVar string    // read the key from this variable at probe time
	Env       KeyLookup // injected for testing (default: process environment)
}

// KeyLookup reads the credential named by APIKeyVar.
type KeyLookup interface {
	LookupEnv(key string) (string, bool)
}

// apiKey returns the explicit key, else the value of APIKeyVar. An empty
// result leaves the SDK default (OPENAI_API_KEY) in place.
func (p *OpenAIProber) apiKey() string {
	if p.APIKey != "" || p.APIKeyVar == "" {
		return p.APIKey
	}
	lookup := os.LookupEnv
	if p.Env != nil {
		lookup = p.Env.LookupEnv
	}
	key, _ := lookup(p.APIKeyVar)
	return key
}

// Probe sends one chat completion. Retries are disabled so a failure
// surfaces on the first attempt.
func (p *OpenAIProber) Probe(ctx context.Context) (string, error) {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}
	if key := p.apiKey(); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	client := openai.NewClient(opts...)

	model := p.Model
	if model == "" {
		model = DefaultModel
	}
	prompt := p.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	maxTokens := p.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", err
	}
	return resp.Model, nil
}
