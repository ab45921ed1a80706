package domain

// CheckViolation represents a single check failure for CI reporting
type CheckViolation struct {
	Principle Principle `json:"principle" yaml:"principle"`
	Rule      string    `json:"rule" yaml:"rule"`
	Severity  string    `json:"severity" yaml:"severity"`
	Message   string    `json:"message" yaml:"message"`
	Location  string    `json:"location,omitempty" yaml:"location,omitempty"`
	Actual    string    `json:"actual,omitempty" yaml:"actual,omitempty"`
	Threshold string    `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// CheckSummary holds aggregate statistics for a check run
type CheckSummary struct {
	FilesAnalyzed      int  `json:"files_analyzed" yaml:"files_analyzed"`
	FilesSkipped       int  `json:"files_skipped" yaml:"files_skipped"`
	ViolatedPrinciples int  `json:"violated_principles" yaml:"violated_principles"`
	TotalEvidences     int  `json:"total_evidences" yaml:"total_evidences"`
	TotalViolations    int  `json:"total_violations" yaml:"total_violations"`
	SolidChecked       bool `json:"solid_checked" yaml:"solid_checked"`
}

// CheckResult represents the outcome of a CI quality check
type CheckResult struct {
	Passed      bool             `json:"passed" yaml:"passed"`
	ExitCode    int              `json:"exit_code" yaml:"exit_code"`
	Violations  []CheckViolation `json:"violations" yaml:"violations"`
	Summary     CheckSummary     `json:"summary" yaml:"summary"`
	Duration    int64            `json:"duration_ms" yaml:"duration_ms"`
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Version     string           `json:"version" yaml:"version"`
}
