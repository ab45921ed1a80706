package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// Checker inspects one declaration and returns zero or more evidence
// records for its principle. Checkers are pure: all state they consult
// lives in the declaration and the unit's symbol table.
type Checker interface {
	// Principle identifies which principle this checker files evidence
	// against
	Principle() domain.Principle

	// Check inspects a single declaration
	Check(decl *parser.Declaration, table *parser.SymbolTable) []domain.Evidence
}

// DefaultCheckers returns the enabled checkers in fixed order
func DefaultCheckers(cfg *config.SolidConfig) []Checker {
	if cfg == nil {
		defaults := config.DefaultConfig().Solid
		cfg = &defaults
	}

	var checkers []Checker
	if cfg.SRP {
		checkers = append(checkers, NewSRPChecker(cfg))
	}
	if cfg.OCP {
		checkers = append(checkers, NewOCPChecker())
	}
	if cfg.LSP {
		checkers = append(checkers, NewLSPChecker())
	}
	if cfg.ISP {
		checkers = append(checkers, NewISPChecker(cfg))
	}
	if cfg.DIP {
		checkers = append(checkers, NewDIPChecker())
	}
	return checkers
}

// CheckUnit runs every checker over a unit's declarations in source order,
// filing evidence into the store. Within a declaration checkers run in
// fixed order, so evidence ordering is fully deterministic given a file
// order.
func CheckUnit(store *ViolationStore, checkers []Checker, unit *parser.Unit) {
	table := parser.NewSymbolTable(unit)
	for _, decl := range unit.Declarations {
		for _, checker := range checkers {
			for _, evidence := range checker.Check(decl, table) {
				store.Append(checker.Principle(), evidence)
			}
		}
	}
}

// declarationEvidence captures the whole declaration source span as one
// evidence record located at its declaration line
func declarationEvidence(decl *parser.Declaration) domain.Evidence {
	return domain.NewEvidence(decl.Location.File, decl.Location.StartLine, decl.Source)
}
