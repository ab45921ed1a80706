package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/solidscan/app"
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/service"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	jsonOutput   bool
	yamlOutput   bool
	outputPath   string
	configPath   string
	explainFlag  bool
	showSnippets bool
	noRecursive  bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze C# files for SOLID principle violations",
		Long: `Analyze C# files against the five SOLID design principles.

Each principle yields at most one violation per run, carrying every piece
of evidence collected across the scanned files.

Examples:
  solidscan analyze src/
  solidscan analyze --json src/
  solidscan analyze --explain src/
  solidscan analyze --format yaml -o report.yaml src/`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false,
		"Output results as YAML (shorthand for --format yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&explainFlag, "explain", false,
		"Explain each violation using the Anthropic API (requires ANTHROPIC_API_KEY)")
	cmd.Flags().BoolVar(&showSnippets, "snippets", false,
		"Include evidence source snippets in text output")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false,
		"Don't descend into subdirectories")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	// Determine output format
	format := domain.OutputFormatText
	if jsonOutput || outputFormat == "json" {
		format = domain.OutputFormatJSON
	} else if yamlOutput || outputFormat == "yaml" {
		format = domain.OutputFormatYAML
	}

	// Load configuration
	cfg, err := config.LoadConfigWithTarget(configPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if explainFlag {
		cfg.Explain.Enabled = true
	}
	if showSnippets {
		cfg.Output.ShowSnippets = true
	}

	// Create progress manager (auto-disabled for machine output or non-TTY)
	pm := service.NewProgressManager(format == domain.OutputFormatText)
	defer pm.Close()

	// Build the service, attaching the explainer only when requested
	svc := service.NewSolidServiceWithProgress(cfg, pm)
	if cfg.Explain.Enabled {
		explainer, err := service.NewAnthropicExplainer(&cfg.Explain)
		if err != nil {
			return fmt.Errorf("failed to set up explanations: %w", err)
		}
		svc = svc.WithExplainer(explainer)
	}

	uc, err := app.NewSolidUseCaseBuilder().
		WithService(svc).
		WithFileHelper(fileHelperFromConfig(cfg)).
		Build()
	if err != nil {
		return err
	}

	req := domain.SolidRequest{
		Paths:           args,
		OutputFormat:    format,
		Explain:         cfg.Explain.Enabled,
		Recursive:       !noRecursive && cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	response, err := uc.Execute(context.Background(), req)
	if err != nil {
		return err
	}

	formatter := service.NewOutputFormatter()
	formatter.ShowSnippets = cfg.Output.ShowSnippets

	// Write to file when requested, stdout otherwise
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return domain.NewReportError("failed to create output file", err)
		}
		defer file.Close()

		if err := formatter.Write(response, format, file); err != nil {
			return err
		}

		absPath, _ := filepath.Abs(outputPath)
		fmt.Printf("Report saved to: %s\n", absPath)
		return nil
	}

	return formatter.Write(response, format, os.Stdout)
}
