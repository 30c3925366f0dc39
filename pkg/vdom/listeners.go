package vdom

import (
	"fmt"

	"github.com/lumenui/lumen/pkg/surface"
)

// AttachEventListeners registers one platform listener per (node, event
// name) pair across the whole tree, children before the node itself. The
// listener only appends the raw event to the owning node's mailbox and
// returns; it never calls the application handler directly, so handler
// functions can be swapped on every re-render without listener churn.
//
// Call exactly once per live mount.
func (n *VNode) AttachEventListeners(doc surface.Document) error {
	if n == nil || n.Kind != KindNode {
		return nil
	}
	for _, c := range n.Children {
		if err := c.AttachEventListeners(doc); err != nil {
			return err
		}
	}
	if len(n.Handlers) == 0 {
		return nil
	}
	live, err := doc.Element(n.ID)
	if err != nil {
		return fmt.Errorf("vdom: attach %q: %w", n.ID, err)
	}
	mailbox := n.Mailbox
	for name := range n.Handlers {
		name := name
		err := live.AddEventListener(name, func(ev surface.Event) {
			mailbox.Insert(name, ev)
		})
		if err != nil {
			return fmt.Errorf("vdom: attach %q %q: %w", n.ID, name, err)
		}
	}
	return nil
}

// DetachEventListeners removes the tree's platform listeners, children
// first so no listener outlives a parent removed mid-walk. Use before a
// subtree is discarded.
func (n *VNode) DetachEventListeners(doc surface.Document) error {
	if n == nil || n.Kind != KindNode {
		return nil
	}
	for _, c := range n.Children {
		if err := c.DetachEventListeners(doc); err != nil {
			return err
		}
	}
	if len(n.Handlers) == 0 {
		return nil
	}
	live, err := doc.Element(n.ID)
	if err != nil {
		return fmt.Errorf("vdom: detach %q: %w", n.ID, err)
	}
	for name := range n.Handlers {
		if err := live.RemoveEventListener(name); err != nil {
			return fmt.Errorf("vdom: detach %q %q: %w", n.ID, name, err)
		}
	}
	return nil
}
