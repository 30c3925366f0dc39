package vdom

import "strings"

// Markup serializes the tree to markup. An element renders as
// `<tag id="{id}" attrs>{children}</tag>`; the id attribute is synthesized
// from the node's identity, and any explicit "id" entry in the attribute
// list is skipped to avoid emitting it twice. Text leaves render escaped.
func (n *VNode) Markup() string {
	var b strings.Builder
	n.renderInto(&b)
	return b.String()
}

func (n *VNode) renderInto(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == KindText {
		b.WriteString(escapeText(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	b.WriteString(` id="`)
	b.WriteString(n.ID)
	b.WriteByte('"')
	for _, a := range n.Attributes {
		if a.Key == "id" {
			continue
		}
		switch a.Kind {
		case AttrPair:
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(escapeAttr(a.Value))
			b.WriteByte('"')
		case AttrToggle:
			if a.Present {
				b.WriteByte(' ')
				b.WriteString(a.Key)
			}
		}
	}
	b.WriteByte('>')
	for _, c := range n.Children {
		c.renderInto(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// StyleRules collects the scoped stylesheet rules for the tree in document
// order: for each styled element its base `#id {...}` block followed by one
// `#id:pseudo {...}` block per pseudo-class group. Elements without styles
// contribute nothing. Ids are unique, so no two nodes ever share a rule.
func (n *VNode) StyleRules() []string {
	var rules []string
	n.Walk(func(v *VNode) bool {
		if v.Kind != KindNode || len(v.Styles) == 0 {
			return true
		}
		rules = append(rules, RenderDeclarationBlock("#"+v.ID, v.Styles))
		for _, s := range v.Styles {
			if r, ok := s.RenderPseudoSelector(v.ID); ok {
				rules = append(rules, r)
			}
		}
		return true
	})
	return rules
}
