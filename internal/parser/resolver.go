package parser

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const descendantCacheSize = 512

// SymbolTable resolves type reference texts against the declarations of one
// compilation unit. Resolution is by simple name only; no cross-file or
// namespace resolution is attempted, and an unresolved reference is reported
// as unknown rather than an error.
type SymbolTable struct {
	byName map[string]*Declaration

	// descendant answers are memoized; chains are re-walked constantly by
	// the substitutability checks
	cache *lru.Cache[string, bool]
}

// NewSymbolTable builds a symbol table over a unit's declarations. When two
// declarations share a simple name the first in source order wins.
func NewSymbolTable(unit *Unit) *SymbolTable {
	cache, _ := lru.New[string, bool](descendantCacheSize)
	table := &SymbolTable{
		byName: make(map[string]*Declaration, len(unit.Declarations)),
		cache:  cache,
	}
	for _, decl := range unit.Declarations {
		if _, ok := table.byName[decl.Name]; !ok {
			table.byName[decl.Name] = decl
		}
	}
	return table
}

// Resolve resolves a type reference text to a declaration in the same unit,
// or nil when unknown. Generic arguments and nullable markers are stripped
// before matching; qualified names never match.
func (t *SymbolTable) Resolve(typeText string) *Declaration {
	name := SimpleName(typeText)
	if name == "" {
		return nil
	}
	return t.byName[name]
}

// IsDescendantOf reports whether derived is the same declaration as base or
// reachable from it by walking base-type references. Unresolved links
// terminate the walk as unknown.
func (t *SymbolTable) IsDescendantOf(derived, base *Declaration) bool {
	if derived == nil || base == nil {
		return false
	}
	if derived == base {
		return true
	}

	key := derived.Name + "|" + base.Name
	if answer, ok := t.cache.Get(key); ok {
		return answer
	}

	answer := t.walkSupertypes(derived, base, map[string]bool{})
	t.cache.Add(key, answer)
	return answer
}

func (t *SymbolTable) walkSupertypes(current, target *Declaration, seen map[string]bool) bool {
	if seen[current.Name] {
		return false
	}
	seen[current.Name] = true

	for _, baseRef := range current.BaseTypes {
		next := t.Resolve(baseRef)
		if next == nil {
			continue
		}
		if next == target || t.walkSupertypes(next, target, seen) {
			return true
		}
	}
	return false
}

// SimpleName reduces a type reference text to a bare simple name, or returns
// "" when the reference is not a simple name (qualified, generic, array).
func SimpleName(typeText string) string {
	name := strings.TrimSpace(typeText)
	name = strings.TrimSuffix(name, "?")
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, ".<>[] ") {
		return ""
	}
	return name
}
