package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// LSPChecker runs a heuristic substitutability test between a derived
// class and its primary base. Only the first entry of the base list is
// considered; further implemented interfaces are ignored here. This is a
// structural approximation, not a sound type-theoretic check.
type LSPChecker struct{}

// NewLSPChecker creates a new LSP checker
func NewLSPChecker() *LSPChecker {
	return &LSPChecker{}
}

// Principle returns the principle this checker reports against
func (c *LSPChecker) Principle() domain.Principle {
	return domain.PrincipleLSP
}

// Check resolves the derived class's primary base within the same unit and
// tests every base method for a conforming override. Any missing or
// unmarked override, failed return covariance, or failed parameter check
// yields exactly one evidence record for the derived class. Unresolved
// bases are skipped silently; resolution gaps are unknown, not violations.
func (c *LSPChecker) Check(decl *parser.Declaration, table *parser.SymbolTable) []domain.Evidence {
	if decl.Kind != parser.DeclClass || len(decl.BaseTypes) == 0 {
		return nil
	}

	base := table.Resolve(decl.BaseTypes[0])
	if base == nil || base.Kind != parser.DeclClass || base == decl {
		return nil
	}

	for _, baseMethod := range base.Methods() {
		if !c.substitutable(baseMethod, decl, base, table) {
			return []domain.Evidence{declarationEvidence(decl)}
		}
	}
	return nil
}

// substitutable tests whether the derived declaration provides a
// conforming override for one base method
func (c *LSPChecker) substitutable(baseMethod parser.Member, derived, base *parser.Declaration, table *parser.SymbolTable) bool {
	match := findOverrideCandidate(baseMethod, derived)
	if match == nil {
		return false
	}

	if !match.HasModifier("override") {
		return false
	}

	if !c.returnCovariant(baseMethod, *match, table) {
		return false
	}

	for i := range baseMethod.ParameterTypes {
		if !c.parameterAssignable(baseMethod.ParameterTypes[i], match.ParameterTypes[i], table) {
			return false
		}
	}
	return true
}

// findOverrideCandidate locates a derived method with the same name, same
// parameter count, and pairwise-identical parameter type text
func findOverrideCandidate(baseMethod parser.Member, derived *parser.Declaration) *parser.Member {
	for i := range derived.Members {
		m := &derived.Members[i]
		if m.Kind != parser.MemberMethod || m.Name != baseMethod.Name {
			continue
		}
		if len(m.ParameterTypes) != len(baseMethod.ParameterTypes) {
			continue
		}
		identical := true
		for j := range m.ParameterTypes {
			if m.ParameterTypes[j] != baseMethod.ParameterTypes[j] {
				identical = false
				break
			}
		}
		if identical {
			return m
		}
	}
	return nil
}

// returnCovariant passes on identical return type text, otherwise resolves
// both sides and requires the derived symbol to be the base symbol or a
// descendant of it. Unresolved symbols pass as unknown.
func (c *LSPChecker) returnCovariant(baseMethod, derivedMethod parser.Member, table *parser.SymbolTable) bool {
	if baseMethod.ReturnType == derivedMethod.ReturnType {
		return true
	}

	baseSym := table.Resolve(baseMethod.ReturnType)
	derivedSym := table.Resolve(derivedMethod.ReturnType)
	if baseSym == nil || derivedSym == nil {
		return true
	}
	return table.IsDescendantOf(derivedSym, baseSym)
}

// parameterAssignable tests one aligned parameter pair: equal, or the
// derived parameter's type is a descendant of the base parameter's type.
// Note the direction: this is assignability, not true contravariance.
// Unresolved symbols pass as unknown.
func (c *LSPChecker) parameterAssignable(baseType, derivedType string, table *parser.SymbolTable) bool {
	if baseType == derivedType {
		return true
	}

	baseSym := table.Resolve(baseType)
	derivedSym := table.Resolve(derivedType)
	if baseSym == nil || derivedSym == nil {
		return true
	}
	return table.IsDescendantOf(derivedSym, baseSym)
}
