package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ludo-technologies/solidscan/app"
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/version"
	"github.com/ludo-technologies/solidscan/service"
	"github.com/spf13/cobra"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMaxEvidences int
	checkPrinciples   []string
	checkVerbose      bool
	checkJSON         bool
	checkConfigPath   string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast SOLID quality gate for CI/CD pipelines",
		Long: `Run SOLID principle checks against configurable thresholds for CI/CD
integration.

Exit codes:
  0 - All checks pass
  1 - Principle violation(s) found
  2 - Analysis error (file not found, invalid config, etc.)

Examples:
  # Fail the build on any SOLID violation
  solidscan check src/

  # Only gate on SRP and DIP
  solidscan check --principles SRP,DIP src/

  # Tolerate a few findings before failing
  solidscan check --max-evidences 5 src/

  # JSON output for machine parsing
  solidscan check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().IntVar(&checkMaxEvidences, "max-evidences", 0,
		"Maximum allowed evidence count across all principles (0 = none allowed)")
	cmd.Flags().StringSliceVarP(&checkPrinciples, "principles", "p",
		[]string{"SRP", "OCP", "LSP", "ISP", "DIP"},
		"Principles to gate on (comma-separated)")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	startTime := time.Now()

	// Load configuration
	cfg, err := config.LoadConfigWithTarget(checkConfigPath, args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	// Restrict the run to the gated principles
	gated := map[string]bool{}
	for _, p := range checkPrinciples {
		gated[p] = true
	}
	cfg.Solid.SRP = cfg.Solid.SRP && gated["SRP"]
	cfg.Solid.OCP = cfg.Solid.OCP && gated["OCP"]
	cfg.Solid.LSP = cfg.Solid.LSP && gated["LSP"]
	cfg.Solid.ISP = cfg.Solid.ISP && gated["ISP"]
	cfg.Solid.DIP = cfg.Solid.DIP && gated["DIP"]

	// Create progress manager (auto-disabled for JSON output or non-TTY/CI)
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	svc := service.NewSolidServiceWithProgress(cfg, pm)
	uc, err := app.NewSolidUseCaseBuilder().
		WithService(svc).
		WithFileHelper(fileHelperFromConfig(cfg)).
		Build()
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	req := domain.SolidRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	resp, err := uc.Execute(context.Background(), req)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	result := &domain.CheckResult{
		Passed:     true,
		ExitCode:   0,
		Violations: []domain.CheckViolation{},
		Summary: domain.CheckSummary{
			FilesAnalyzed:      resp.Summary.FilesAnalyzed,
			FilesSkipped:       resp.Summary.FilesSkipped,
			ViolatedPrinciples: resp.Summary.ViolatedPrinciples,
			TotalEvidences:     resp.Summary.TotalEvidences,
			SolidChecked:       true,
		},
	}

	if resp.Summary.TotalEvidences > checkMaxEvidences {
		result.Passed = false
		for _, v := range resp.Violations {
			location := ""
			if len(v.Evidences) > 0 {
				location = fmt.Sprintf("%s:%d", v.Evidences[0].File, v.Evidences[0].Line)
			}
			result.Violations = append(result.Violations, domain.CheckViolation{
				Principle: v.Principle,
				Rule:      "no-solid-violations",
				Severity:  "error",
				Message:   fmt.Sprintf("%s violated with %d finding(s)", v.Principle.Title(), len(v.Evidences)),
				Location:  location,
				Actual:    strconv.Itoa(len(v.Evidences)),
				Threshold: strconv.Itoa(checkMaxEvidences),
			})
		}
	}

	return outputCheckResult(result, startTime)
}

func outputCheckResult(result *domain.CheckResult, startTime time.Time) error {
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version
	result.ExitCode = 0
	if !result.Passed {
		result.ExitCode = 1
	}
	result.Summary.TotalViolations = len(result.Violations)

	if checkJSON {
		return outputCheckJSON(result)
	}

	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: All SOLID checks passed")
		if checkVerbose {
			fmt.Printf("  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			if result.Summary.FilesSkipped > 0 {
				fmt.Printf("  Files skipped: %d\n", result.Summary.FilesSkipped)
			}
			fmt.Printf("  Duration: %dms\n", result.Duration)
		}
		return nil
	}

	fmt.Println("FAIL: SOLID check failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	// Print violations
	for _, v := range result.Violations {
		fmt.Printf("  [ERROR] %s: %s\n", v.Principle, v.Message)
		if checkVerbose && v.Location != "" {
			fmt.Printf("          at %s\n", v.Location)
		}
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Files: %d\n", result.Summary.FilesAnalyzed)
		fmt.Printf("  Principles violated: %d\n", result.Summary.ViolatedPrinciples)
		fmt.Printf("  Total evidences: %d\n", result.Summary.TotalEvidences)
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: 1, Message: ""}
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}
