package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "go: 1.22.3", "env: OPENAI_API_KEY"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed without warnings.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Failed returns true if the check failed. Warnings are not failures.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}
