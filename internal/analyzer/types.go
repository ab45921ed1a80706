package analyzer

import "strings"

// csharpPrimitives holds the C# built-in type keywords plus void. Nullable
// markers are stripped before lookup.
var csharpPrimitives = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "char": true,
	"decimal": true, "double": true, "float": true,
	"int": true, "uint": true, "nint": true, "nuint": true,
	"long": true, "ulong": true, "short": true, "ushort": true,
	"object": true, "string": true, "void": true,
	"var": true, "dynamic": true,
}

// isPrimitiveType reports whether a type text is a C# built-in primitive
func isPrimitiveType(typeText string) bool {
	name := strings.TrimSuffix(strings.TrimSpace(typeText), "?")
	return csharpPrimitives[name]
}

// isBareNamedType reports whether a type text is a single bare named type:
// not generic, not qualified, not an array, not a primitive. This is the
// proxy the checkers use for "looks like an injected abstraction"; it
// cannot distinguish an interface from a concrete class name.
func isBareNamedType(typeText string) bool {
	name := strings.TrimSuffix(strings.TrimSpace(typeText), "?")
	if name == "" || isPrimitiveType(name) {
		return false
	}
	if strings.ContainsAny(name, ".<>[]() ") {
		return false
	}
	return true
}

// nameContainsAny reports whether a lowercased name contains any of the
// given tokens
func nameContainsAny(name string, tokens ...string) bool {
	lower := strings.ToLower(name)
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// nameHasAnyPrefix reports whether a name starts with any of the given
// prefixes (case-sensitive; the ISP rules match conventional PascalCase
// prefixes)
func nameHasAnyPrefix(name string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
