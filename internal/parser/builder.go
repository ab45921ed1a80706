package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// DeclarationBuilder extracts type declarations from the tree-sitter C# CST
type DeclarationBuilder struct {
	filename string
	source   []byte
}

// NewDeclarationBuilder creates a new declaration builder
func NewDeclarationBuilder(filename string, source []byte) *DeclarationBuilder {
	return &DeclarationBuilder{
		filename: filename,
		source:   source,
	}
}

// Build walks the CST and collects every class and interface declaration in
// source order. Namespace blocks (classic and file-scoped) are descended
// into; nested type declarations are collected as declarations in their own
// right.
func (b *DeclarationBuilder) Build(root *sitter.Node) *Unit {
	unit := &Unit{File: b.filename}
	b.collect(root, unit)
	return unit
}

func (b *DeclarationBuilder) collect(node *sitter.Node, unit *Unit) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "class_declaration":
		if decl := b.buildDeclaration(node, DeclClass); decl != nil {
			unit.Declarations = append(unit.Declarations, decl)
		}
	case "interface_declaration":
		if decl := b.buildDeclaration(node, DeclInterface); decl != nil {
			unit.Declarations = append(unit.Declarations, decl)
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		b.collect(node.NamedChild(i), unit)
	}
}

// buildDeclaration builds a Declaration from a class or interface node
func (b *DeclarationBuilder) buildDeclaration(node *sitter.Node, kind DeclKind) *Declaration {
	name := b.fieldText(node, "name")
	if name == "" {
		return nil
	}

	decl := &Declaration{
		Name:      name,
		Kind:      kind,
		Modifiers: b.collectModifiers(node),
		Location:  b.location(node),
		Source:    node.Content(b.source),
	}

	if bases := b.childOfType(node, "base_list"); bases != nil {
		decl.BaseTypes = b.buildBaseList(bases)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		body = b.childOfType(node, "declaration_list")
	}
	if body != nil {
		b.buildMembers(body, decl)
	}

	return decl
}

// buildBaseList extracts the type reference texts from a base list in order
func (b *DeclarationBuilder) buildBaseList(node *sitter.Node) []string {
	var bases []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if text := strings.TrimSpace(child.Content(b.source)); text != "" {
			bases = append(bases, text)
		}
	}
	return bases
}

// buildMembers extracts members from a declaration body in source order
func (b *DeclarationBuilder) buildMembers(body *sitter.Node, decl *Declaration) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "method_declaration":
			decl.Members = append(decl.Members, b.buildMethod(child))
		case "property_declaration":
			decl.Members = append(decl.Members, b.buildProperty(child))
		case "field_declaration":
			decl.Members = append(decl.Members, b.buildFields(child)...)
		case "event_field_declaration", "event_declaration":
			decl.Members = append(decl.Members, b.buildEvent(child)...)
		}
	}
}

// buildMethod builds a method member
func (b *DeclarationBuilder) buildMethod(node *sitter.Node) Member {
	member := Member{
		Kind:        MemberMethod,
		Name:        b.fieldText(node, "name"),
		Modifiers:   b.collectModifiers(node),
		ReturnType:  b.memberType(node),
		BodyMarkers: map[string]bool{},
	}
	member.Visibility = visibilityFromModifiers(member.Modifiers)

	if params := node.ChildByFieldName("parameters"); params != nil {
		member.ParameterTypes, member.IsExtension = b.buildParameters(params)
	} else if params := b.childOfType(node, "parameter_list"); params != nil {
		member.ParameterTypes, member.IsExtension = b.buildParameters(params)
	}

	// Expression-bodied methods carry an arrow_expression_clause instead
	// of a block; depending on the grammar revision it may not be exposed
	// under the "body" field, so fall back to a direct child lookup
	if body := node.ChildByFieldName("body"); body != nil {
		b.scanBodyMarkers(body, member.BodyMarkers)
	} else if arrow := b.childOfType(node, "arrow_expression_clause"); arrow != nil {
		b.scanBodyMarkers(arrow, member.BodyMarkers)
	}

	return member
}

// buildParameters extracts the declared type text of every parameter. The
// second return value reports whether the first parameter carries the "this"
// modifier (extension-receiver style).
func (b *DeclarationBuilder) buildParameters(node *sitter.Node) ([]string, bool) {
	var types []string
	extension := false

	for i := 0; i < int(node.NamedChildCount()); i++ {
		param := node.NamedChild(i)
		if param.Type() != "parameter" {
			continue
		}

		typeText := b.fieldText(param, "type")
		if typeText == "" {
			typeText = b.parameterTypeFallback(param)
		}
		types = append(types, typeText)

		if len(types) == 1 && strings.HasPrefix(strings.TrimSpace(param.Content(b.source)), "this ") {
			extension = true
		}
	}

	return types, extension
}

// parameterTypeFallback recovers a parameter type when the grammar exposes
// no type field: take the text minus modifiers and the trailing name.
func (b *DeclarationBuilder) parameterTypeFallback(param *sitter.Node) string {
	text := strings.TrimSpace(param.Content(b.source))
	for _, mod := range []string{"this ", "ref ", "out ", "in ", "params "} {
		text = strings.TrimPrefix(text, mod)
	}
	if idx := strings.LastIndexAny(text, " \t"); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

// buildProperty builds a property member, recording accessor shape
func (b *DeclarationBuilder) buildProperty(node *sitter.Node) Member {
	member := Member{
		Kind:        MemberProperty,
		Name:        b.fieldText(node, "name"),
		Modifiers:   b.collectModifiers(node),
		ReturnType:  b.memberType(node),
		BodyMarkers: map[string]bool{},
	}
	member.Visibility = visibilityFromModifiers(member.Modifiers)

	accessors := node.ChildByFieldName("accessors")
	if accessors == nil {
		accessors = b.childOfType(node, "accessor_list")
	}
	if accessors != nil {
		for i := 0; i < int(accessors.NamedChildCount()); i++ {
			acc := accessors.NamedChild(i)
			if acc.Type() != "accessor_declaration" {
				continue
			}
			text := acc.Content(b.source)
			if strings.Contains(text, "set") {
				member.HasSetter = true
				if strings.Contains(text, "private") {
					member.SetterPrivate = true
				}
			}
		}
	}

	return member
}

// buildFields builds one field member per declared variable, sharing the
// declared type
func (b *DeclarationBuilder) buildFields(node *sitter.Node) []Member {
	modifiers := b.collectModifiers(node)
	visibility := visibilityFromModifiers(modifiers)

	varDecl := b.childOfType(node, "variable_declaration")
	if varDecl == nil {
		return nil
	}

	typeText := b.fieldText(varDecl, "type")
	if typeText == "" {
		if typeNode := b.firstTypeChild(varDecl); typeNode != nil {
			typeText = strings.TrimSpace(typeNode.Content(b.source))
		}
	}

	var members []Member
	for i := 0; i < int(varDecl.NamedChildCount()); i++ {
		child := varDecl.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		name := b.fieldText(child, "name")
		if name == "" {
			name = strings.TrimSpace(child.Content(b.source))
		}
		members = append(members, Member{
			Kind:        MemberField,
			Name:        name,
			Visibility:  visibility,
			Modifiers:   modifiers,
			ReturnType:  typeText,
			BodyMarkers: map[string]bool{},
		})
	}
	return members
}

// buildEvent builds event members from event or event-field declarations
func (b *DeclarationBuilder) buildEvent(node *sitter.Node) []Member {
	modifiers := b.collectModifiers(node)
	visibility := visibilityFromModifiers(modifiers)

	if varDecl := b.childOfType(node, "variable_declaration"); varDecl != nil {
		members := b.buildFields(node)
		for i := range members {
			members[i].Kind = MemberEvent
		}
		return members
	}

	// event_declaration with accessor list
	return []Member{{
		Kind:        MemberEvent,
		Name:        b.fieldText(node, "name"),
		Visibility:  visibility,
		Modifiers:   modifiers,
		ReturnType:  b.memberType(node),
		BodyMarkers: map[string]bool{},
	}}
}

// scanBodyMarkers records call-site tokens found in a member body. Only
// logging-style calls are detected; the SRP checker keys off this marker.
func (b *DeclarationBuilder) scanBodyMarkers(body *sitter.Node, markers map[string]bool) {
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "invocation_expression" {
			callee := n.NamedChild(0)
			if callee != nil && isLoggingCall(callee.Content(b.source)) {
				markers[MarkerLogging] = true
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(body)
}

// isLoggingCall reports whether a call target looks like a logging call
func isLoggingCall(callee string) bool {
	lower := strings.ToLower(callee)
	return strings.Contains(lower, "log") ||
		strings.Contains(callee, "Console.Write")
}

// collectModifiers gathers keyword modifier children of a declaration node
func (b *DeclarationBuilder) collectModifiers(node *sitter.Node) map[string]bool {
	modifiers := map[string]bool{}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "modifier" {
			modifiers[strings.TrimSpace(child.Content(b.source))] = true
		}
	}
	return modifiers
}

// memberType returns the declared type text of a member node
func (b *DeclarationBuilder) memberType(node *sitter.Node) string {
	if text := b.fieldText(node, "type"); text != "" {
		return text
	}
	if text := b.fieldText(node, "returns"); text != "" {
		return text
	}
	if typeNode := b.firstTypeChild(node); typeNode != nil {
		return strings.TrimSpace(typeNode.Content(b.source))
	}
	return ""
}

// firstTypeChild finds the first child that is a type reference node
func (b *DeclarationBuilder) firstTypeChild(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "predefined_type", "identifier", "qualified_name", "generic_name",
			"nullable_type", "array_type", "pointer_type", "tuple_type":
			return child
		}
	}
	return nil
}

// childOfType finds the first named child with the given node type
func (b *DeclarationBuilder) childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// fieldText returns the trimmed source text of a field child, if present
func (b *DeclarationBuilder) fieldText(node *sitter.Node, field string) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Content(b.source))
}

// location converts tree-sitter points to a 1-based source location
func (b *DeclarationBuilder) location(node *sitter.Node) Location {
	return Location{
		File:      b.filename,
		StartLine: int(node.StartPoint().Row) + 1,
		StartCol:  int(node.StartPoint().Column),
		EndLine:   int(node.EndPoint().Row) + 1,
		EndCol:    int(node.EndPoint().Column),
	}
}

// visibilityFromModifiers derives member visibility from keyword modifiers.
// C# members are private unless an access modifier says otherwise.
func visibilityFromModifiers(modifiers map[string]bool) string {
	switch {
	case modifiers["public"]:
		return VisibilityPublic
	case modifiers["protected"]:
		return VisibilityProtected
	case modifiers["internal"]:
		return VisibilityInternal
	default:
		return VisibilityPrivate
	}
}
