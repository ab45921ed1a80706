package parser

import "fmt"

// DeclKind represents the kind of a type declaration
type DeclKind string

const (
	DeclClass     DeclKind = "class"
	DeclInterface DeclKind = "interface"
)

// MemberKind represents the kind of a declaration member
type MemberKind string

const (
	MemberMethod   MemberKind = "method"
	MemberProperty MemberKind = "property"
	MemberField    MemberKind = "field"
	MemberEvent    MemberKind = "event"
)

// Visibility levels for members. C# members default to private when no
// access modifier is present.
const (
	VisibilityPublic    = "public"
	VisibilityPrivate   = "private"
	VisibilityProtected = "protected"
	VisibilityInternal  = "internal"
)

// Body marker tokens detected inside method bodies
const (
	MarkerLogging = "logging"
)

// Location represents the position of a declaration in the source code
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Member is a structural snapshot of one member of a type declaration
type Member struct {
	Kind       MemberKind
	Name       string
	Visibility string

	// Modifiers holds keyword modifiers (virtual, abstract, override,
	// sealed, static, readonly, ...)
	Modifiers map[string]bool

	// ParameterTypes holds the declared type text of each parameter in order
	ParameterTypes []string

	// ReturnType is the declared return or member type text
	ReturnType string

	// BodyMarkers holds call-site tokens detected in the member body
	BodyMarkers map[string]bool

	// Property accessor shape (property members only)
	HasSetter     bool
	SetterPrivate bool

	// IsExtension marks an extension-receiver-style method (first
	// parameter carries the "this" modifier)
	IsExtension bool
}

// HasModifier reports whether the member carries the given modifier
func (m Member) HasModifier(name string) bool {
	return m.Modifiers[name]
}

// IsPublic reports whether the member is publicly visible
func (m Member) IsPublic() bool {
	return m.Visibility == VisibilityPublic
}

// HasBodyMarker reports whether the given call-site token was detected in
// the member body
func (m Member) HasBodyMarker(token string) bool {
	return m.BodyMarkers[token]
}

// Declaration is a read-only structural snapshot of one type or interface
// from a scanned file. Declarations are produced once per file and discarded
// after checking.
type Declaration struct {
	Name string
	Kind DeclKind

	// Modifiers holds keyword modifiers on the declaration itself
	Modifiers map[string]bool

	// BaseTypes holds the base-list type reference texts in source order.
	// The first entry is the primary base candidate for substitutability
	// checking.
	BaseTypes []string

	// Members holds all members in source order
	Members []Member

	Location Location

	// Source is the full source text of the declaration
	Source string
}

// HasModifier reports whether the declaration carries the given modifier
func (d *Declaration) HasModifier(name string) bool {
	return d.Modifiers[name]
}

// IsSealed reports whether the declaration is sealed
func (d *Declaration) IsSealed() bool {
	return d.Modifiers["sealed"]
}

// Methods returns the method members in source order
func (d *Declaration) Methods() []Member {
	return d.membersOfKind(MemberMethod)
}

// Properties returns the property members in source order
func (d *Declaration) Properties() []Member {
	return d.membersOfKind(MemberProperty)
}

// Fields returns the field members in source order
func (d *Declaration) Fields() []Member {
	return d.membersOfKind(MemberField)
}

// Events returns the event members in source order
func (d *Declaration) Events() []Member {
	return d.membersOfKind(MemberEvent)
}

func (d *Declaration) membersOfKind(kind MemberKind) []Member {
	var out []Member
	for _, m := range d.Members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// String returns a string representation of the declaration
func (d *Declaration) String() string {
	return fmt.Sprintf("%s %s at %s", d.Kind, d.Name, d.Location)
}

// Unit holds every type declaration extracted from one parsed file, in
// source order.
type Unit struct {
	File         string
	Declarations []*Declaration
}
