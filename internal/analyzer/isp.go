package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// Interface method categories
const (
	ispCategoryAccessor    = "Accessor"
	ispCategoryCalculation = "Calculation"
	ispCategoryPersistence = "Persistence"
	ispCategoryValidation  = "Validation"
	ispCategoryOther       = "Other"
)

// ispPrefixRules classify interface methods by conventional name prefix.
// First match wins; order is fixed.
var ispPrefixRules = []struct {
	category string
	prefixes []string
}{
	{ispCategoryAccessor, []string{"Get", "Set", "Is"}},
	{ispCategoryCalculation, []string{"Calculate", "Compute"}},
	{ispCategoryPersistence, []string{"Save", "Load", "Delete"}},
	{ispCategoryValidation, []string{"Validate", "Check"}},
}

// ISPChecker flags interfaces that are too fat (too many members) or that
// span too many method categories. Either condition alone is enough.
type ISPChecker struct {
	maxMembers    int
	maxCategories int
}

// NewISPChecker creates a new ISP checker
func NewISPChecker(cfg *config.SolidConfig) *ISPChecker {
	maxMembers := config.DefaultMaxInterfaceMembers
	maxCategories := config.DefaultMaxInterfaceCategories
	if cfg != nil {
		if cfg.MaxInterfaceMembers > 0 {
			maxMembers = cfg.MaxInterfaceMembers
		}
		if cfg.MaxInterfaceCategories > 0 {
			maxCategories = cfg.MaxInterfaceCategories
		}
	}
	return &ISPChecker{maxMembers: maxMembers, maxCategories: maxCategories}
}

// Principle returns the principle this checker reports against
func (c *ISPChecker) Principle() domain.Principle {
	return domain.PrincipleISP
}

// Check counts interface members (methods, properties, events) against the
// member limit and classifies methods against the category limit
func (c *ISPChecker) Check(decl *parser.Declaration, _ *parser.SymbolTable) []domain.Evidence {
	if decl.Kind != parser.DeclInterface {
		return nil
	}

	methods := decl.Methods()
	total := len(methods) + len(decl.Properties()) + len(decl.Events())

	categories := map[string]bool{}
	for _, method := range methods {
		categories[classifyInterfaceMethod(method.Name)] = true
	}

	if total > c.maxMembers || len(categories) > c.maxCategories {
		return []domain.Evidence{declarationEvidence(decl)}
	}
	return nil
}

// classifyInterfaceMethod maps a method name to its category by prefix
func classifyInterfaceMethod(name string) string {
	for _, rule := range ispPrefixRules {
		if nameHasAnyPrefix(name, rule.prefixes...) {
			return rule.category
		}
	}
	return ispCategoryOther
}
