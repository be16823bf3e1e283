package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the environment
// and returns a Result indicating success, warning or failure.
//
// Implementations:
//   - versioncheck.Check: verifies the Go toolchain version
//   - modcheck.Check: verifies a Go package resolves in the workspace
//   - envcheck.Check: validates environment variables
//   - llmcheck.Check: probes the LLM API with a minimal request
type Checker interface {
	Run() Result
}
