package vdom

import (
	"fmt"
	"strings"
)

// StyleKind discriminates style variants.
type StyleKind uint8

const (
	StyleDecl   StyleKind = iota // property: value declaration
	StylePseudo                  // pseudo-class group, declarations only
)

// Style is a single styling entry: a CSS-like declaration or a single-level
// pseudo-class group. Pseudo groups hold declarations only; nesting a pseudo
// group inside another is not representable.
type Style struct {
	Kind     StyleKind
	Property string // StyleDecl
	Value    string // StyleDecl
	Name     string // StylePseudo: pseudo-class name, e.g. "hover"
	Body     []Style
}

// Decl creates a property/value declaration. Underscores in the property
// name render as hyphens, so snake_case identifiers map onto CSS names.
func Decl(property, value string) Style {
	return Style{Kind: StyleDecl, Property: property, Value: value}
}

// PseudoClass creates a pseudo-class group holding the given declarations.
func PseudoClass(name string, body ...Style) Style {
	return Style{Kind: StylePseudo, Name: name, Body: body}
}

// RenderDeclarationBlock renders `selector {prop: value; ...}` from the
// declaration entries; pseudo-class groups contribute nothing to the base
// block.
func RenderDeclarationBlock(selector string, styles []Style) string {
	var decls []string
	for _, s := range styles {
		if d, ok := s.renderDecl(); ok {
			decls = append(decls, d)
		}
	}
	return fmt.Sprintf("%s {%s}", selector, strings.Join(decls, " "))
}

// renderDecl renders a single `property: value;` entry.
// ok is false for pseudo-class groups.
func (s Style) renderDecl() (string, bool) {
	if s.Kind != StyleDecl {
		return "", false
	}
	property := strings.ReplaceAll(s.Property, "_", "-")
	return fmt.Sprintf("%s: %s;", property, s.Value), true
}

// RenderPseudoSelector renders the scoped `#id:name {...}` block for a
// pseudo-class group. ok is false for plain declarations.
func (s Style) RenderPseudoSelector(nodeID string) (string, bool) {
	if s.Kind != StylePseudo {
		return "", false
	}
	selector := fmt.Sprintf("#%s:%s", nodeID, s.Name)
	return RenderDeclarationBlock(selector, s.Body), true
}
