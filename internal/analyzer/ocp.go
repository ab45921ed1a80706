package analyzer

import (
	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/parser"
)

// OCPChecker flags classes that are not open for extension or not closed
// for modification. Both halves are structural proxies: extension points
// are base types, virtual/abstract members, extension receivers, or an
// injected-strategy-looking field; closure is sealed-ness, private setters,
// or read-only fields.
type OCPChecker struct{}

// NewOCPChecker creates a new OCP checker
func NewOCPChecker() *OCPChecker {
	return &OCPChecker{}
}

// Principle returns the principle this checker reports against
func (c *OCPChecker) Principle() domain.Principle {
	return domain.PrincipleOCP
}

// Check flags a class that fails either half of the open/closed test
func (c *OCPChecker) Check(decl *parser.Declaration, _ *parser.SymbolTable) []domain.Evidence {
	if decl.Kind != parser.DeclClass {
		return nil
	}

	if !c.openForExtension(decl) || !c.closedForModification(decl) {
		return []domain.Evidence{declarationEvidence(decl)}
	}
	return nil
}

// openForExtension reports whether the class exposes at least one
// extension point
func (c *OCPChecker) openForExtension(decl *parser.Declaration) bool {
	// Any base list entry opens the class; in C# the list carries base
	// classes and implemented interfaces alike, so one check covers both
	if len(decl.BaseTypes) > 0 {
		return true
	}

	for _, method := range decl.Methods() {
		if method.HasModifier("virtual") || method.HasModifier("abstract") || method.IsExtension {
			return true
		}
	}

	// A field of a bare named non-primitive type is taken as an injected
	// strategy
	for _, field := range decl.Fields() {
		if isBareNamedType(field.ReturnType) {
			return true
		}
	}

	return false
}

// closedForModification reports whether the class guards its state against
// outside modification. The property and field conditions hold vacuously
// for classes with no properties or no fields; that gap is part of the
// heuristic's contract and is kept as is.
func (c *OCPChecker) closedForModification(decl *parser.Declaration) bool {
	properties := decl.Properties()
	fields := decl.Fields()

	allSettersPrivate := true
	for _, property := range properties {
		if property.HasSetter && !property.SetterPrivate {
			allSettersPrivate = false
			break
		}
	}

	allFieldsReadonly := true
	for _, field := range fields {
		if !field.HasModifier("readonly") && !field.HasModifier("const") {
			allFieldsReadonly = false
			break
		}
	}

	guarded := decl.IsSealed() || allSettersPrivate || allFieldsReadonly
	if !guarded {
		return false
	}

	for _, field := range fields {
		if field.IsPublic() && !field.HasModifier("readonly") && !field.HasModifier("const") {
			return false
		}
	}
	return true
}
