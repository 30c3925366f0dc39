package vdom

import (
	"errors"
	"fmt"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindNode VKind = iota // Element node: tag, attributes, styles, children
	KindText              // Plain text leaf
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// ErrTextMutation is returned when a node-only mutator is called on a text
// node. This always indicates a tree-construction bug in the caller.
var ErrTextMutation = errors.New("vdom: cannot mutate a text node")

// VNode is a virtual node: either an element (KindNode) or a text leaf
// (KindText). Only elements carry attributes, styles, handlers, a mailbox
// and children; text nodes carry Text only.
type VNode struct {
	Kind VKind

	// KindNode fields.
	Tag        string
	ID         string
	Attributes []Attribute
	Styles     []Style
	Handlers   map[string]*Handler
	Mailbox    *Mailbox
	Children   []*VNode

	// KindText field.
	Text string
}

// NewNode creates an element node with a freshly assigned id.
func NewNode(tag string) *VNode {
	return &VNode{
		Kind:     KindNode,
		Tag:      tag,
		ID:       NextID(),
		Handlers: make(map[string]*Handler),
		Mailbox:  NewMailbox(),
	}
}

// NewText creates a text leaf.
func NewText(value string) *VNode {
	return &VNode{Kind: KindText, Text: value}
}

// AddAttribute appends an attribute to the node. Attributes are append-only;
// they are never mutated in place.
func (n *VNode) AddAttribute(a Attribute) error {
	if n.Kind != KindNode {
		return fmt.Errorf("%w: AddAttribute(%q)", ErrTextMutation, a.Key)
	}
	n.Attributes = append(n.Attributes, a)
	return nil
}

// AddStyle appends a style entry to the node.
func (n *VNode) AddStyle(s Style) error {
	if n.Kind != KindNode {
		return fmt.Errorf("%w: AddStyle", ErrTextMutation)
	}
	n.Styles = append(n.Styles, s)
	return nil
}

// AddEventHandler registers the application handler for an event name.
// Registering a second handler under the same name replaces the previous
// function in the handler map; the platform listener created at attach time
// is keyed by event name only and is unaffected.
func (n *VNode) AddEventHandler(name string, fn HandlerFunc) error {
	if n.Kind != KindNode {
		return fmt.Errorf("%w: AddEventHandler(%q)", ErrTextMutation, name)
	}
	if h, ok := n.Handlers[name]; ok {
		h.Fn = fn
		return nil
	}
	n.Handlers[name] = &Handler{Fn: fn}
	return nil
}

// AddChild appends a child node.
func (n *VNode) AddChild(c *VNode) error {
	if n.Kind != KindNode {
		return fmt.Errorf("%w: AddChild", ErrTextMutation)
	}
	n.Children = append(n.Children, c)
	return nil
}

// Handler returns the handler currently registered under the event name.
func (n *VNode) Handler(name string) (*Handler, bool) {
	if n.Kind != KindNode {
		return nil, false
	}
	h, ok := n.Handlers[name]
	return h, ok
}

// Walk visits the node and all descendants depth-first, node before
// children. Returning false from fn stops the walk.
func (n *VNode) Walk(fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// CollectIDs returns the ids of the node and all descendant elements in
// document order.
func (n *VNode) CollectIDs() []string {
	var ids []string
	n.Walk(func(v *VNode) bool {
		if v.Kind == KindNode {
			ids = append(ids, v.ID)
		}
		return true
	})
	return ids
}
