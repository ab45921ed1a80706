package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/solidscan/internal/config"
)

func TestAnalyzeCmd_FlagsExist(t *testing.T) {
	cmd := analyzeCmd()

	expectedFlags := []string{"format", "json", "yaml", "output", "explain", "snippets", "no-recursive", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestAnalyzeCmd_ShortFlags(t *testing.T) {
	cmd := analyzeCmd()

	shortFlags := map[string]string{
		"f": "format",
		"o": "output",
		"c": "config",
	}

	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestAnalyzeCmd_DefaultValues(t *testing.T) {
	cmd := analyzeCmd()

	formatFlag := cmd.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("Expected default format to be 'text', got '%s'", formatFlag.DefValue)
	}
}

func TestAnalyzeCmd_NoPathsError(t *testing.T) {
	cmd := analyzeCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Error("Expected error when no paths specified")
	}
}

func TestCheckCmd_FlagsExist(t *testing.T) {
	cmd := checkCmd()

	expectedFlags := []string{"max-evidences", "principles", "verbose", "json", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestCheckCmd_NoPathsExitCode(t *testing.T) {
	cmd := checkCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	exitErr, ok := err.(*CheckExitError)
	if !ok {
		t.Fatalf("expected CheckExitError, got %T", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("expected exit code 2 for usage errors, got %d", exitErr.Code)
	}
}

func TestCheckExitError_Error(t *testing.T) {
	err := &CheckExitError{Code: 1, Message: "threshold violated"}
	if err.Error() != "threshold violated" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestFileHelperFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if !fileHelperFromConfig(cfg).RespectGitignore {
		t.Errorf("default config should respect .gitignore")
	}

	cfg.Analysis.RespectGitignore = false
	if fileHelperFromConfig(cfg).RespectGitignore {
		t.Errorf("respect_gitignore: false should carry through to the file helper")
	}
}

func TestInitCmd_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "solidscan.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if len(content) == 0 {
		t.Error("config file is empty")
	}
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "solidscan.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when config exists without --force")
	}

	// --force overwrites
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}
