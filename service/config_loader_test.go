package service

import (
	"testing"

	"github.com/ludo-technologies/solidscan/domain"
)

func TestLoadDefaultConfigRequest(t *testing.T) {
	loader := NewConfigurationLoader()
	req := loader.LoadDefaultConfig()

	if req.OutputFormat != domain.OutputFormatText {
		t.Errorf("expected text format, got %s", req.OutputFormat)
	}
	if req.Explain {
		t.Error("explanations should be off by default")
	}
	if !req.Recursive {
		t.Error("recursion should be on by default")
	}
	if len(req.ExcludePatterns) == 0 {
		t.Error("default excludes should not be empty")
	}
}

func TestMergeConfigOverrideWins(t *testing.T) {
	loader := NewConfigurationLoader()

	base := loader.LoadDefaultConfig()
	override := &domain.SolidRequest{
		Paths:        []string{"src/"},
		OutputFormat: domain.OutputFormatJSON,
		Explain:      true,
	}

	merged := loader.MergeConfig(base, override)

	if merged.OutputFormat != domain.OutputFormatJSON {
		t.Errorf("override format should win, got %s", merged.OutputFormat)
	}
	if !merged.Explain {
		t.Error("override explain should win")
	}
	if len(merged.Paths) != 1 || merged.Paths[0] != "src/" {
		t.Errorf("override paths should win: %v", merged.Paths)
	}
	// Fields absent from the override keep base values
	if len(merged.ExcludePatterns) != len(base.ExcludePatterns) {
		t.Error("base excludes should survive the merge")
	}
}

func TestMergeConfigNilHandling(t *testing.T) {
	loader := NewConfigurationLoader()
	base := loader.LoadDefaultConfig()

	if got := loader.MergeConfig(base, nil); got != base {
		t.Error("nil override should return base")
	}
	if got := loader.MergeConfig(nil, base); got != base {
		t.Error("nil base should return override")
	}
}

func TestLoadConfigMissingPath(t *testing.T) {
	loader := NewConfigurationLoader()

	if _, err := loader.LoadConfig("/nonexistent/solidscan.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
