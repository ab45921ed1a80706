package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/solidscan/app"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solidscan",
		Short: "solidscan - SOLID principle checker for C#",
		Long: `solidscan is a heuristic static analyzer for C# code.
It checks classes and interfaces against the five SOLID design principles
and can explain each violation in plain language.`,
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from check command
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			// Silently exit with the specified code (output already printed)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fileHelperFromConfig builds the file helper used for path collection,
// carrying the analysis settings that affect which files are visited
func fileHelperFromConfig(cfg *config.Config) *app.FileHelper {
	helper := app.NewFileHelper()
	helper.RespectGitignore = cfg.Analysis.RespectGitignore
	return helper
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("solidscan version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
