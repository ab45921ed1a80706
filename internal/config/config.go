package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default thresholds for the principle checkers. The values mirror the
// heuristics the checkers were calibrated against and are deliberately
// conservative; tightening them is a config decision, not a code change.
const (
	// DefaultMaxMethods is the method count above which a class is flagged
	// as carrying too many responsibilities
	DefaultMaxMethods = 10

	// DefaultMaxProperties is the property count above which a class is
	// flagged as carrying too many responsibilities
	DefaultMaxProperties = 10

	// DefaultMaxInterfaceMembers is the member total above which an
	// interface is considered too fat
	DefaultMaxInterfaceMembers = 7

	// DefaultMaxInterfaceCategories is the number of distinct method
	// categories an interface may span
	DefaultMaxInterfaceCategories = 2
)

// Default explanation settings
const (
	DefaultExplainModel          = "claude-3-5-haiku-20241022"
	DefaultExplainTimeoutSeconds = 30
	DefaultExplainMaxTokens      = 1024
	DefaultExplainRequestsPerSec = 1
)

// Config represents the main configuration structure
type Config struct {
	// Solid holds principle checker configuration
	Solid SolidConfig `json:"solid" mapstructure:"solid" yaml:"solid"`

	// Explain holds explanation step configuration
	Explain ExplainConfig `json:"explain" mapstructure:"explain" yaml:"explain"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds general analysis configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Performance holds parallelism configuration
	Performance PerformanceConfig `json:"performance,omitempty" mapstructure:"performance" yaml:"performance"`
}

// SolidConfig holds configuration for the five principle checkers. The
// classification rule order inside each checker is fixed; only thresholds
// and per-principle enablement are configurable.
type SolidConfig struct {
	// Per-principle enablement
	SRP bool `json:"srp" mapstructure:"srp" yaml:"srp"`
	OCP bool `json:"ocp" mapstructure:"ocp" yaml:"ocp"`
	LSP bool `json:"lsp" mapstructure:"lsp" yaml:"lsp"`
	ISP bool `json:"isp" mapstructure:"isp" yaml:"isp"`
	DIP bool `json:"dip" mapstructure:"dip" yaml:"dip"`

	// MaxMethods is the per-class method count limit for SRP
	MaxMethods int `json:"maxMethods" mapstructure:"max_methods" yaml:"max_methods"`

	// MaxProperties is the per-class property count limit for SRP
	MaxProperties int `json:"maxProperties" mapstructure:"max_properties" yaml:"max_properties"`

	// MaxInterfaceMembers is the member total limit for ISP
	MaxInterfaceMembers int `json:"maxInterfaceMembers" mapstructure:"max_interface_members" yaml:"max_interface_members"`

	// MaxInterfaceCategories is the method category limit for ISP
	MaxInterfaceCategories int `json:"maxInterfaceCategories" mapstructure:"max_interface_categories" yaml:"max_interface_categories"`
}

// ExplainConfig holds configuration for the LLM explanation step
type ExplainConfig struct {
	// Enabled controls whether violations are explained after checking
	Enabled bool `json:"enabled" mapstructure:"enabled" yaml:"enabled"`

	// Model is the Anthropic model used for explanations
	Model string `json:"model" mapstructure:"model" yaml:"model"`

	// TimeoutSeconds bounds each explanation request; expiry is treated
	// like any other request failure and never aborts the run
	TimeoutSeconds int `json:"timeoutSeconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`

	// MaxTokens caps the explanation length
	MaxTokens int `json:"maxTokens" mapstructure:"max_tokens" yaml:"max_tokens"`

	// RequestsPerSecond paces requests against the API
	RequestsPerSecond float64 `json:"requestsPerSecond" mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowSnippets controls whether evidence snippets are printed in text
	// output
	ShowSnippets bool `json:"show_snippets" mapstructure:"show_snippets" yaml:"show_snippets"`

	// Directory specifies the output directory for reports
	Directory string `json:"directory" mapstructure:"directory" yaml:"directory"`
}

// AnalysisConfig holds general analysis configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are analyzed recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// RespectGitignore skips files matched by .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// PerformanceConfig holds parallelism configuration for file parsing
type PerformanceConfig struct {
	// MaxGoroutines caps concurrent file parsing; 0 means NumCPU
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds the whole parse phase; 0 means no limit
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Solid: SolidConfig{
			SRP:                    true,
			OCP:                    true,
			LSP:                    true,
			ISP:                    true,
			DIP:                    true,
			MaxMethods:             DefaultMaxMethods,
			MaxProperties:          DefaultMaxProperties,
			MaxInterfaceMembers:    DefaultMaxInterfaceMembers,
			MaxInterfaceCategories: DefaultMaxInterfaceCategories,
		},
		Explain: ExplainConfig{
			Enabled:           false,
			Model:             DefaultExplainModel,
			TimeoutSeconds:    DefaultExplainTimeoutSeconds,
			MaxTokens:         DefaultExplainMaxTokens,
			RequestsPerSecond: DefaultExplainRequestsPerSec,
		},
		Output: OutputConfig{
			Format:       "text",
			ShowSnippets: false,
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{"**/*.cs"},
			ExcludePatterns: []string{
				// Build outputs
				"bin",
				"obj",
				// Package managers
				"packages",
				// Version control
				".git",
				// Generated sources
				"*.Designer.cs",
				"*.generated.cs",
				"*.g.cs",
				"*.AssemblyInfo.cs",
			},
			Recursive:        true,
			RespectGitignore: true,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  0,
			TimeoutSeconds: 0,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Fresh viper instance per load to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations, starting at the analyzed path and walking up
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"solidscan.yaml",
		"solidscan.yml",
		".solidscan.yaml",
		".solidscan.yml",
		"solidscan.json",
		".solidscan.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "solidscan"), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", "solidscan")
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv("SOLIDSCAN_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Solid.MaxMethods < 1 {
		return fmt.Errorf("solid.max_methods must be >= 1, got %d", c.Solid.MaxMethods)
	}

	if c.Solid.MaxProperties < 1 {
		return fmt.Errorf("solid.max_properties must be >= 1, got %d", c.Solid.MaxProperties)
	}

	if c.Solid.MaxInterfaceMembers < 1 {
		return fmt.Errorf("solid.max_interface_members must be >= 1, got %d", c.Solid.MaxInterfaceMembers)
	}

	if c.Solid.MaxInterfaceCategories < 1 {
		return fmt.Errorf("solid.max_interface_categories must be >= 1, got %d", c.Solid.MaxInterfaceCategories)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if len(c.Analysis.IncludePatterns) == 0 {
		return fmt.Errorf("analysis.include_patterns cannot be empty")
	}

	if c.Explain.TimeoutSeconds < 1 {
		return fmt.Errorf("explain.timeout_seconds must be >= 1, got %d", c.Explain.TimeoutSeconds)
	}

	if c.Explain.MaxTokens < 1 {
		return fmt.Errorf("explain.max_tokens must be >= 1, got %d", c.Explain.MaxTokens)
	}

	if c.Explain.RequestsPerSecond <= 0 {
		return fmt.Errorf("explain.requests_per_second must be > 0, got %v", c.Explain.RequestsPerSecond)
	}

	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("performance.max_goroutines must be >= 0, got %d", c.Performance.MaxGoroutines)
	}

	return nil
}

// EnabledPrinciples returns which of the five checkers are enabled
func (c *SolidConfig) EnabledPrinciples() map[string]bool {
	return map[string]bool{
		"SRP": c.SRP,
		"OCP": c.OCP,
		"LSP": c.LSP,
		"ISP": c.ISP,
		"DIP": c.DIP,
	}
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("solid", config.Solid)
	v.Set("explain", config.Explain)
	v.Set("output", config.Output)
	v.Set("analysis", config.Analysis)
	v.Set("performance", config.Performance)

	return v.WriteConfig()
}
