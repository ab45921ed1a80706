package domain

import "fmt"

// Error codes for domain errors
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeParseFailure = "PARSE_FAILURE"
	ErrCodeAnalysis     = "ANALYSIS_ERROR"
	ErrCodeExplain      = "EXPLAIN_ERROR"
	ErrCodeReport       = "REPORT_ERROR"
	ErrCodeConfig       = "CONFIG_ERROR"
	ErrCodeUnsupported  = "UNSUPPORTED_FORMAT"
)

// DomainError represents a categorized error with an optional cause
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a domain error with an arbitrary code
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError creates an error for invalid user input
func NewInvalidInputError(message string, cause error) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// NewFileNotFoundError creates an error for a missing file
func NewFileNotFoundError(path string, cause error) error {
	return DomainError{Code: ErrCodeFileNotFound, Message: "file not found: " + path, Cause: cause}
}

// NewParseError creates an error for a file that could not be parsed.
// Parse failures are reported as warnings and never abort a run.
func NewParseError(path string, cause error) error {
	return DomainError{Code: ErrCodeParseFailure, Message: "failed to parse: " + path, Cause: cause}
}

// NewAnalysisError creates an error for a failed analysis
func NewAnalysisError(message string, cause error) error {
	return DomainError{Code: ErrCodeAnalysis, Message: message, Cause: cause}
}

// NewExplainError creates an error for a failed explanation request
func NewExplainError(message string, cause error) error {
	return DomainError{Code: ErrCodeExplain, Message: message, Cause: cause}
}

// NewReportError creates an error for a failed report write. Report write
// failures are fatal; emitting the report is the run's terminal purpose.
func NewReportError(message string, cause error) error {
	return DomainError{Code: ErrCodeReport, Message: message, Cause: cause}
}

// NewConfigError creates an error for invalid configuration
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfig, Message: message, Cause: cause}
}

// NewUnsupportedFormatError creates an error for an unknown output format
func NewUnsupportedFormatError(format string) error {
	return DomainError{Code: ErrCodeUnsupported, Message: "unsupported output format: " + format}
}
