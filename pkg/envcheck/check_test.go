package envcheck

import (
	"testing"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/testutil"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"OPENAI_API_KEY", "your_openai_api_key_here"},
		{"PINECONE_API_KEY", "your_pinecone_api_key_here"},
		{"Mixed_Case", "your_mixed_case_here"},
	}

	for _, tt := range tests {
		if got := Placeholder(tt.name); got != tt.want {
			t.Errorf("Placeholder(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUsable(t *testing.T) {
	env := testutil.MapEnv{
		"REAL":        "sk-abc123",
		"EMPTY":       "",
		"PLACEHOLDER": "your_placeholder_here",
		"UPPER":       "YOUR_UPPER_HERE",
	}

	tests := []struct {
		name string
		want bool
	}{
		{"REAL", true},
		{"EMPTY", false},
		{"PLACEHOLDER", false},
		{"UPPER", true},
		{"MISSING", false},
	}

	for _, tt := range tests {
		if got := Usable(env, tt.name); got != tt.want {
			t.Errorf("Usable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEnvCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "required and set passes",
			check: Check{
				Name:     "OPENAI_API_KEY",
				Required: true,
				Getter:   testutil.MapEnv{"OPENAI_API_KEY": "sk-proj-1234567890"},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "required and unset fails",
			check: Check{
				Name:     "OPENAI_API_KEY",
				Required: true,
				Getter:   testutil.MapEnv{},
			},
			wantStatus: check.StatusFail,
			wantDetail: "required, not set",
		},
		{
			name: "required and empty fails",
			check: Check{
				Name:     "OPENAI_API_KEY",
				Required: true,
				Getter:   testutil.MapEnv{"OPENAI_API_KEY": ""},
			},
			wantStatus: check.StatusFail,
			wantDetail: "required, not set",
		},
		{
			name: "required placeholder fails like unset",
			check: Check{
				Name:     "OPENAI_API_KEY",
				Required: true,
				Getter:   testutil.MapEnv{"OPENAI_API_KEY": "your_openai_api_key_here"},
			},
			wantStatus: check.StatusFail,
			wantDetail: "required, still the placeholder value",
		},
		{
			name: "optional and unset warns",
			check: Check{
				Name:   "GOOGLE_API_KEY",
				Getter: testutil.MapEnv{},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "optional, not set",
		},
		{
			name: "optional placeholder warns",
			check: Check{
				Name:   "PINECONE_API_KEY",
				Getter: testutil.MapEnv{"PINECONE_API_KEY": "your_pinecone_api_key_here"},
			},
			wantStatus: check.StatusWarn,
			wantDetail: "optional, still the placeholder value",
		},
		{
			name: "optional and set passes",
			check: Check{
				Name:   "ANTHROPIC_API_KEY",
				Getter: testutil.MapEnv{"ANTHROPIC_API_KEY": "sk-ant-xyz"},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "masked value shown",
			check: Check{
				Name:      "OPENAI_API_KEY",
				Required:  true,
				MaskValue: true,
				Getter:    testutil.MapEnv{"OPENAI_API_KEY": "sk-proj-1234567890"},
			},
			wantStatus: check.StatusOK,
			wantDetail: "value: sk-•••890",
		},
		{
			name: "short value fully masked",
			check: Check{
				Name:      "OPENAI_API_KEY",
				MaskValue: true,
				Getter:    testutil.MapEnv{"OPENAI_API_KEY": "abc"},
			},
			wantStatus: check.StatusOK,
			wantDetail: "value: •••",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Name != "env: "+tt.check.Name {
				t.Errorf("Name = %q, want %q", result.Name, "env: "+tt.check.Name)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
			if tt.wantDetail != "" && !testutil.ContainsDetail(result.Details, tt.wantDetail) {
				t.Errorf("Details = %v, want to contain %q", result.Details, tt.wantDetail)
			}
		})
	}
}

func TestEnvCheck_NoValueLeakWithoutMask(t *testing.T) {
	c := Check{
		Name:   "OPENAI_API_KEY",
		Getter: testutil.MapEnv{"OPENAI_API_KEY": "sk-secret-value"},
	}

	result := c.Run()

	if testutil.ContainsDetail(result.Details, "sk-secret-value") {
		t.Errorf("Details = %v, must not contain the raw secret", result.Details)
	}
}

func TestRealEnvGetter(t *testing.T) {
	t.Setenv("SETUPCHECK_ENV_TEST", "value")

	g := &RealEnvGetter{}
	v, ok := g.LookupEnv("SETUPCHECK_ENV_TEST")
	if !ok || v != "value" {
		t.Errorf("LookupEnv = (%q, %v), want (%q, true)", v, ok, "value")
	}
}
