package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Principle identifies one of the five design principles checked per run
type Principle string

const (
	PrincipleSRP Principle = "SRP"
	PrincipleOCP Principle = "OCP"
	PrincipleLSP Principle = "LSP"
	PrincipleISP Principle = "ISP"
	PrincipleDIP Principle = "DIP"
)

// Principles lists all checked principles in reporting order
var Principles = []Principle{
	PrincipleSRP,
	PrincipleOCP,
	PrincipleLSP,
	PrincipleISP,
	PrincipleDIP,
}

// Title returns the long name of the principle
func (p Principle) Title() string {
	switch p {
	case PrincipleSRP:
		return "Single Responsibility Principle"
	case PrincipleOCP:
		return "Open/Closed Principle"
	case PrincipleLSP:
		return "Liskov Substitution Principle"
	case PrincipleISP:
		return "Interface Segregation Principle"
	case PrincipleDIP:
		return "Dependency Inversion Principle"
	}
	return string(p)
}

// Evidence is one concrete occurrence supporting a violation. Immutable
// once created.
type Evidence struct {
	// File is the path of the scanned source file
	File string `json:"file" yaml:"file"`

	// Line is the 1-based declaration line
	Line int `json:"line" yaml:"line"`

	// Snippet is the full source text of the offending declaration
	Snippet string `json:"code" yaml:"code"`
}

// NewEvidence creates an Evidence record
func NewEvidence(file string, line int, snippet string) Evidence {
	return Evidence{File: file, Line: line, Snippet: snippet}
}

// Violation aggregates every piece of evidence collected for one principle
// during a run. At most one Violation exists per principle per run; evidence
// is appended in the order checkers visit declarations.
type Violation struct {
	Principle   Principle  `json:"principle" yaml:"principle"`
	Evidences   []Evidence `json:"evidences" yaml:"evidences"`
	Explanation string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// WithExplanation returns a copy of the violation with the explanation set.
// The receiver is not modified; the explanation step folds results into new
// values rather than mutating shared records.
func (v Violation) WithExplanation(text string) Violation {
	out := v
	out.Explanation = text
	return out
}

// SolidRequest represents a request for SOLID analysis
type SolidRequest struct {
	// Input files or directories to analyze
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string

	// Explanation step
	Explain bool

	// Configuration
	ConfigPath string

	// Analysis options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// SolidSummary represents aggregate statistics for a run
type SolidSummary struct {
	FilesAnalyzed      int `json:"files_analyzed" yaml:"files_analyzed"`
	FilesSkipped       int `json:"files_skipped" yaml:"files_skipped"`
	ClassesChecked     int `json:"classes_checked" yaml:"classes_checked"`
	InterfacesChecked  int `json:"interfaces_checked" yaml:"interfaces_checked"`
	TotalEvidences     int `json:"total_evidences" yaml:"total_evidences"`
	ViolatedPrinciples int `json:"violated_principles" yaml:"violated_principles"`
}

// SolidResponse represents the complete analysis result
type SolidResponse struct {
	// Violations holds at most one entry per principle, in reporting order
	Violations []Violation  `json:"violations" yaml:"violations"`
	Summary    SolidSummary `json:"summary" yaml:"summary"`

	// Warnings and issues (skipped files, explanation failures)
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// SolidService defines the core business logic for SOLID analysis
type SolidService interface {
	// Analyze performs SOLID analysis on the given request
	Analyze(ctx context.Context, req SolidRequest) (*SolidResponse, error)
}

// Explainer requests a natural-language explanation for one aggregated
// violation. Implementations own transport, model, and timeout concerns.
type Explainer interface {
	Explain(ctx context.Context, principle Principle, evidences []Evidence) (string, error)
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	// Format formats the analysis response according to the specified format
	Format(response *SolidResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *SolidResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*SolidRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *SolidRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *SolidRequest, override *SolidRequest) *SolidRequest
}

// CSharpFileReader defines C#-specific file operations
type CSharpFileReader interface {
	CollectCSharpFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	IsValidCSharpFile(path string) bool
	FileExists(path string) (bool, error)
}
