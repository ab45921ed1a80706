package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// DIPChecker flags classes that depend on anything other than primitives
// or bare named types. A bare name is the structural stand-in for an
// injected abstraction; the check cannot tell an interface from a concrete
// class name, which is a documented limitation of the heuristic.
type DIPChecker struct{}

// NewDIPChecker creates a new DIP checker
func NewDIPChecker() *DIPChecker {
	return &DIPChecker{}
}

// Principle returns the principle this checker reports against
func (c *DIPChecker) Principle() domain.Principle {
	return domain.PrincipleDIP
}

// Check unions the declared types of all fields, properties, and method
// parameters and flags the class unless every one is a primitive or a
// single bare named type
func (c *DIPChecker) Check(decl *parser.Declaration, _ *parser.SymbolTable) []domain.Evidence {
	if decl.Kind != parser.DeclClass {
		return nil
	}

	for _, typeText := range c.dependencyTypes(decl) {
		if !isPrimitiveType(typeText) && !isBareNamedType(typeText) {
			return []domain.Evidence{declarationEvidence(decl)}
		}
	}
	return nil
}

// dependencyTypes collects the declared type text of every field, property,
// and method parameter, de-duplicated, in first-seen order
func (c *DIPChecker) dependencyTypes(decl *parser.Declaration) []string {
	seen := map[string]bool{}
	var types []string

	add := func(typeText string) {
		if typeText == "" || seen[typeText] {
			return
		}
		seen[typeText] = true
		types = append(types, typeText)
	}

	for _, member := range decl.Members {
		switch member.Kind {
		case parser.MemberField, parser.MemberProperty:
			add(member.ReturnType)
		case parser.MemberMethod:
			for _, paramType := range member.ParameterTypes {
				add(paramType)
			}
		}
	}
	return types
}
