package vdom

import (
	"fmt"

	"github.com/lumenui/lumen/pkg/surface"
)

// MutationOp identifies a live-surface mutation kind.
type MutationOp uint8

const (
	OpSetText     MutationOp = iota // Overwrite an element's text content
	OpMount                         // Replace the root content with markup
	OpInsertRule                    // Append a stylesheet rule
	OpDeleteRules                   // Remove every rule scoped to a node id
	OpListen                        // Register a platform listener
	OpUnlisten                      // Remove a platform listener
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpSetText:
		return "SetText"
	case OpMount:
		return "Mount"
	case OpInsertRule:
		return "InsertRule"
	case OpDeleteRules:
		return "DeleteRules"
	case OpListen:
		return "Listen"
	case OpUnlisten:
		return "Unlisten"
	default:
		return "Unknown"
	}
}

// Mutation records one applied live-surface mutation.
type Mutation struct {
	Op    MutationOp
	ID    string // Target element or scope id
	Value string // New text, rule body, or event name
}

// SyncResult reports what a reconciliation pass did.
type SyncResult struct {
	Mutations       []Mutation // Applied, in order
	SkippedChildren int        // Node pairs left alone due to child-count mismatch
	SkippedShape    int        // Positions left alone due to Node/Text shape mismatch
}

// Sync reconciles the old subtree against a newly computed one, applying the
// minimal mutations to the live surface. The old tree is mutated in place
// into a hybrid matching new's content while keeping its identity: ids,
// mailboxes and registered listeners all survive, and only the handler
// functions are adopted from the new tree so dispatch always reflects the
// latest view.
//
//   - Text vs Text: differing values overwrite the live parent's text
//     content and the stored value; equal values touch nothing.
//   - Node vs Node: handler functions are adopted, then children recurse
//     pairwise by position if and only if both sides have the same count.
//     A count mismatch reconciles nothing under that node.
//   - Node vs Text (either way) is not reconciled.
//
// The mismatch cases are recorded in the result rather than raised; they are
// a documented gap, not an error condition. Matching is purely positional:
// reordering children is indistinguishable from mutating them in place.
func Sync(doc surface.Document, prev, next *VNode, parent surface.Element) (SyncResult, error) {
	var res SyncResult
	err := syncNodes(doc, prev, next, parent, &res)
	return res, err
}

func syncNodes(doc surface.Document, prev, next *VNode, parent surface.Element, res *SyncResult) error {
	if prev == nil || next == nil {
		return nil
	}

	switch {
	case prev.Kind == KindText && next.Kind == KindText:
		if prev.Text == next.Text {
			return nil
		}
		if err := parent.SetText(next.Text); err != nil {
			return fmt.Errorf("vdom: sync text under %q: %w", parent.ID(), err)
		}
		prev.Text = next.Text
		res.Mutations = append(res.Mutations, Mutation{
			Op:    OpSetText,
			ID:    parent.ID(),
			Value: next.Text,
		})
		return nil

	case prev.Kind == KindNode && next.Kind == KindNode:
		prev.adoptHandlers(next)
		if len(prev.Children) != len(next.Children) {
			res.SkippedChildren++
			return nil
		}
		if len(prev.Children) == 0 {
			return nil
		}
		live, err := doc.Element(prev.ID)
		if err != nil {
			return fmt.Errorf("vdom: sync %q: %w", prev.ID, err)
		}
		for i := range prev.Children {
			if err := syncNodes(doc, prev.Children[i], next.Children[i], live, res); err != nil {
				return err
			}
		}
		return nil

	default:
		res.SkippedShape++
		return nil
	}
}

// adoptHandlers swaps the new tree's handler functions into the retained
// node. The platform listeners registered at attach time are untouched: a
// handler present on both sides gets its function replaced, one missing from
// the new side is dropped from the map (its queued events become dispatch
// misses), and a genuinely new name starts receiving events on the next
// mount, when a listener for it exists.
func (n *VNode) adoptHandlers(next *VNode) {
	for name := range n.Handlers {
		if _, ok := next.Handlers[name]; !ok {
			delete(n.Handlers, name)
		}
	}
	for name, h := range next.Handlers {
		if existing, ok := n.Handlers[name]; ok {
			existing.Fn = h.Fn
		} else {
			n.Handlers[name] = &Handler{Fn: h.Fn}
		}
	}
}
