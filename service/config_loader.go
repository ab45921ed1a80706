package service

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
)

// ConfigurationLoaderImpl implements domain.ConfigurationLoader by mapping
// the file-based configuration onto analysis requests
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (l *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.SolidRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load config", err)
	}
	return l.requestFromConfig(cfg), nil
}

// LoadDefaultConfig loads the default configuration
func (l *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.SolidRequest {
	return l.requestFromConfig(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file values. Explicitly
// set override fields win; empty override fields keep the base value.
func (l *ConfigurationLoaderImpl) MergeConfig(base *domain.SolidRequest, override *domain.SolidRequest) *domain.SolidRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.Explain {
		merged.Explain = true
	}
	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}
	return &merged
}

func (l *ConfigurationLoaderImpl) requestFromConfig(cfg *config.Config) *domain.SolidRequest {
	return &domain.SolidRequest{
		OutputFormat:    domain.OutputFormat(cfg.Output.Format),
		Explain:         cfg.Explain.Enabled,
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
}
