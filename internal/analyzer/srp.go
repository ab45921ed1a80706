package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// Method responsibility categories
const (
	categoryCalculation    = "Calculation"
	categoryDataAccess     = "DataAccess"
	categoryValidation     = "Validation"
	categoryFormatting     = "Formatting"
	categoryLogging        = "Logging"
	categoryOther          = "Other"
	categoryDataManagement = "DataManagement"
)

// methodRule pairs a predicate with a responsibility label. Rules are
// evaluated top to bottom and the first match wins; the order is
// behaviorally load-bearing and must not be reordered.
type methodRule struct {
	category string
	match    func(m parser.Member) bool
}

var srpMethodRules = []methodRule{
	{categoryCalculation, func(m parser.Member) bool {
		return nameContainsAny(m.Name, "calculate", "compute")
	}},
	{categoryDataAccess, func(m parser.Member) bool {
		return nameContainsAny(m.Name, "save", "load", "fetch")
	}},
	{categoryValidation, func(m parser.Member) bool {
		return nameContainsAny(m.Name, "validate", "check")
	}},
	{categoryFormatting, func(m parser.Member) bool {
		return nameContainsAny(m.Name, "format", "parse")
	}},
	{categoryLogging, func(m parser.Member) bool {
		return m.HasBodyMarker(parser.MarkerLogging)
	}},
	{categoryOther, func(parser.Member) bool {
		return true
	}},
}

// SRPChecker flags classes that appear to carry more than one
// responsibility, or that have grown past the method/property limits.
type SRPChecker struct {
	maxMethods    int
	maxProperties int
}

// NewSRPChecker creates a new SRP checker
func NewSRPChecker(cfg *config.SolidConfig) *SRPChecker {
	maxMethods := config.DefaultMaxMethods
	maxProperties := config.DefaultMaxProperties
	if cfg != nil {
		if cfg.MaxMethods > 0 {
			maxMethods = cfg.MaxMethods
		}
		if cfg.MaxProperties > 0 {
			maxProperties = cfg.MaxProperties
		}
	}
	return &SRPChecker{maxMethods: maxMethods, maxProperties: maxProperties}
}

// Principle returns the principle this checker reports against
func (c *SRPChecker) Principle() domain.Principle {
	return domain.PrincipleSRP
}

// Check partitions a class's methods into responsibility categories and
// flags the class when it spans more than one, or exceeds the method or
// property limits.
func (c *SRPChecker) Check(decl *parser.Declaration, _ *parser.SymbolTable) []domain.Evidence {
	if decl.Kind != parser.DeclClass {
		return nil
	}

	methods := decl.Methods()
	properties := decl.Properties()
	categories := c.categorize(decl, methods, properties)

	if len(categories) > 1 ||
		len(methods) > c.maxMethods ||
		len(properties) > c.maxProperties {
		return []domain.Evidence{declarationEvidence(decl)}
	}
	return nil
}

// Categories exposes the detected responsibility set for a class; used by
// reporting and tests
func (c *SRPChecker) Categories(decl *parser.Declaration) map[string]bool {
	return c.categorize(decl, decl.Methods(), decl.Properties())
}

func (c *SRPChecker) categorize(decl *parser.Declaration, methods, properties []parser.Member) map[string]bool {
	categories := map[string]bool{}
	for _, method := range methods {
		for _, rule := range srpMethodRules {
			if rule.match(method) {
				categories[rule.category] = true
				break
			}
		}
	}

	// A public property means externally managed state, independent of the
	// method partition
	for _, property := range properties {
		if property.IsPublic() {
			categories[categoryDataManagement] = true
			break
		}
	}

	return categories
}
