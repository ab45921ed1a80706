package config

import "strconv"

// ProjectType represents the type of C# project
type ProjectType string

const (
	ProjectTypeGeneric ProjectType = "generic"
	ProjectTypeWebAPI  ProjectType = "webapi"
	ProjectTypeLibrary ProjectType = "library"
	ProjectTypeUnity   ProjectType = "unity"
)

// Strictness represents the analysis strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds configuration presets for different project types
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
}

// StrictnessPreset holds threshold values for different strictness levels
type StrictnessPreset struct {
	MaxMethods             int
	MaxProperties          int
	MaxInterfaceMembers    int
	MaxInterfaceCategories int
}

// GetProjectPresets returns presets for different project types
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			IncludePatterns: []string{"**/*.cs"},
			ExcludePatterns: []string{
				"bin",
				"obj",
				"packages",
				"*.Designer.cs",
				"*.generated.cs",
				"*.g.cs",
			},
		},
		ProjectTypeWebAPI: {
			IncludePatterns: []string{"**/*.cs"},
			ExcludePatterns: []string{
				"bin",
				"obj",
				"packages",
				"wwwroot",
				"Migrations",
				"*.Designer.cs",
				"*.generated.cs",
				"*.g.cs",
			},
		},
		ProjectTypeLibrary: {
			IncludePatterns: []string{"**/*.cs"},
			ExcludePatterns: []string{
				"bin",
				"obj",
				"packages",
				"test",
				"tests",
				"*.Designer.cs",
				"*.generated.cs",
				"*.g.cs",
			},
		},
		ProjectTypeUnity: {
			IncludePatterns: []string{"**/*.cs"},
			ExcludePatterns: []string{
				"Library",
				"Temp",
				"Logs",
				"obj",
				"*.Designer.cs",
				"*.generated.cs",
				"*.g.cs",
			},
		},
	}
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			MaxMethods:             15,
			MaxProperties:          15,
			MaxInterfaceMembers:    10,
			MaxInterfaceCategories: 3,
		},
		StrictnessStandard: {
			MaxMethods:             DefaultMaxMethods,
			MaxProperties:          DefaultMaxProperties,
			MaxInterfaceMembers:    DefaultMaxInterfaceMembers,
			MaxInterfaceCategories: DefaultMaxInterfaceCategories,
		},
		StrictnessStrict: {
			MaxMethods:             7,
			MaxProperties:          7,
			MaxInterfaceMembers:    5,
			MaxInterfaceCategories: 2,
		},
	}
}

// GetFullConfigTemplate returns the documented config template as YAML
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	projectPresets := GetProjectPresets()
	strictnessPresets := GetStrictnessPresets()

	preset := projectPresets[projectType]
	strict := strictnessPresets[strictness]

	includePatterns := formatYAMLList(preset.IncludePatterns)
	excludePatterns := formatYAMLList(preset.ExcludePatterns)

	return `# solidscan Configuration
# Documentation: https://github.com/ludo-technologies/solidscan

# =============================================================================
# PRINCIPLE CHECKERS
# =============================================================================
# Each of the five checkers can be toggled independently. Thresholds control
# when the heuristics fire; classification rules themselves are fixed.
solid:
  srp: true
  ocp: true
  lsp: true
  isp: true
  dip: true

  # Method count above which a class is flagged for too many responsibilities
  max_methods: ` + strconv.Itoa(strict.MaxMethods) + `

  # Property count above which a class is flagged for too many responsibilities
  max_properties: ` + strconv.Itoa(strict.MaxProperties) + `

  # Member total (methods + properties + events) above which an interface is
  # considered too fat
  max_interface_members: ` + strconv.Itoa(strict.MaxInterfaceMembers) + `

  # Number of distinct method categories an interface may span
  max_interface_categories: ` + strconv.Itoa(strict.MaxInterfaceCategories) + `

# =============================================================================
# EXPLANATIONS
# =============================================================================
# Natural-language explanations for each violation, requested from the
# Anthropic API. Requires ANTHROPIC_API_KEY in the environment.
explain:
  enabled: false
  model: "` + DefaultExplainModel + `"

  # Per-request timeout; a timed-out request becomes the explanation text,
  # it never aborts the run
  timeout_seconds: ` + strconv.Itoa(DefaultExplainTimeoutSeconds) + `
  max_tokens: ` + strconv.Itoa(DefaultExplainMaxTokens) + `
  requests_per_second: ` + strconv.Itoa(DefaultExplainRequestsPerSec) + `

# =============================================================================
# OUTPUT SETTINGS
# =============================================================================
output:
  # Output format: "text", "json", "yaml"
  format: "text"

  # Print evidence snippets in text output
  show_snippets: false

# =============================================================================
# ANALYSIS SCOPE
# =============================================================================
analysis:
  include_patterns:
` + includePatterns + `
  exclude_patterns:
` + excludePatterns + `
  recursive: true
  respect_gitignore: true

# =============================================================================
# PERFORMANCE
# =============================================================================
performance:
  # Parallel file parsing workers (0 = auto-detect based on CPU)
  max_goroutines: 0

  # Parse phase time limit in seconds (0 = no limit)
  timeout_seconds: 0
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# solidscan Configuration (minimal)
# See full options: https://github.com/ludo-technologies/solidscan

solid:
  max_methods: 10
  max_properties: 10
  max_interface_members: 7
  max_interface_categories: 2

output:
  format: "text"

analysis:
  include_patterns:
    - "**/*.cs"
  exclude_patterns:
    - "bin"
    - "obj"
`
}

// formatYAMLList formats a string slice as an indented YAML list
func formatYAMLList(items []string) string {
	result := ""
	for _, item := range items {
		result += `    - "` + item + `"` + "\n"
	}
	return result
}
