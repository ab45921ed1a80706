package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/version"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowSnippets controls whether evidence snippets appear in text output
	ShowSnippets bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// SolidResponseJSON wraps SolidResponse with report metadata
type SolidResponseJSON struct {
	Version     string              `json:"version" yaml:"version"`
	GeneratedAt string              `json:"generated_at" yaml:"generated_at"`
	Violations  []domain.Violation  `json:"violations" yaml:"violations"`
	Summary     domain.SolidSummary `json:"summary" yaml:"summary"`
	Warnings    []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors      []string            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Format formats the analysis response according to the specified format
func (f *OutputFormatterImpl) Format(response *domain.SolidResponse, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(response, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the formatted output to the writer. Write failures are
// fatal to the run; emitting the report is its terminal purpose.
func (f *OutputFormatterImpl) Write(response *domain.SolidResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OutputFormatterImpl) wrap(response *domain.SolidResponse) SolidResponseJSON {
	return SolidResponseJSON{
		Version:     version.Version,
		GeneratedAt: response.GeneratedAt,
		Violations:  response.Violations,
		Summary:     response.Summary,
		Warnings:    response.Warnings,
		Errors:      response.Errors,
	}
}

func (f *OutputFormatterImpl) writeJSON(response *domain.SolidResponse, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(f.wrap(response)); err != nil {
		return domain.NewReportError("failed to write JSON report", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeYAML(response *domain.SolidResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(f.wrap(response)); err != nil {
		return domain.NewReportError("failed to write YAML report", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeText(response *domain.SolidResponse, writer io.Writer) error {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if _, err := fmt.Fprintf(writer, "\n=== SOLID Analysis ===\n\n"); err != nil {
		return domain.NewReportError("failed to write text report", err)
	}
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Files analyzed: %d\n", response.Summary.FilesAnalyzed)
	if response.Summary.FilesSkipped > 0 {
		fmt.Fprintf(writer, "  Files skipped: %d\n", response.Summary.FilesSkipped)
	}
	fmt.Fprintf(writer, "  Classes checked: %d\n", response.Summary.ClassesChecked)
	fmt.Fprintf(writer, "  Interfaces checked: %d\n", response.Summary.InterfacesChecked)
	fmt.Fprintf(writer, "  Principles violated: %d\n", response.Summary.ViolatedPrinciples)
	fmt.Fprintf(writer, "\n")

	if len(response.Violations) == 0 {
		fmt.Fprintf(writer, "%s\n", green("No violations found."))
	}

	for _, violation := range response.Violations {
		fmt.Fprintf(writer, "%s %s (%d finding(s))\n",
			red("[VIOLATED]"), bold(violation.Principle.Title()), len(violation.Evidences))
		for _, ev := range violation.Evidences {
			fmt.Fprintf(writer, "  %s:%d\n", ev.File, ev.Line)
			if f.ShowSnippets {
				for _, line := range strings.Split(ev.Snippet, "\n") {
					fmt.Fprintf(writer, "    | %s\n", line)
				}
			}
		}
		if violation.Explanation != "" {
			fmt.Fprintf(writer, "  Explanation: %s\n", violation.Explanation)
		}
		fmt.Fprintf(writer, "\n")
	}

	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "Warnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	if len(response.Errors) > 0 {
		fmt.Fprintf(writer, "Errors:\n")
		for _, e := range response.Errors {
			fmt.Fprintf(writer, "  - %s\n", e)
		}
	}

	return nil
}
