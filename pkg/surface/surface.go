package surface

import (
	"errors"
	"strings"
)

// RuleScopedTo reports whether a stylesheet rule is scoped to the node id.
// A rule belongs to a node iff its selector starts with "#<id>" followed by
// a selector boundary, so "v1" never claims the rules of "v11".
func RuleScopedTo(rule, nodeID string) bool {
	sel := "#" + nodeID
	if !strings.HasPrefix(rule, sel) {
		return false
	}
	if len(rule) == len(sel) {
		return true
	}
	switch rule[len(sel)] {
	case ' ', ':', '{':
		return true
	}
	return false
}

// Surface errors.
var (
	// ErrElementNotFound is returned when an element id has no live
	// counterpart. The runtime treats this as fatal at the point of use.
	ErrElementNotFound = errors.New("surface: element not found")

	// ErrNotMounted is returned when an operation requires mounted content
	// and none exists yet.
	ErrNotMounted = errors.New("surface: document not mounted")
)

// Event is a raw platform event as delivered by the surface's native event
// layer. Data carries the decoded payload; its shape depends on the event
// source and is interpreted only by application handlers.
type Event struct {
	Name   string         // Event name, e.g. "click"
	Target string         // Id of the element the event fired on
	Data   map[string]any // Raw payload
}

// ListenerFunc is the platform-level callback registered on a live element.
// Listeners are registered once per (element, event name) pair and must
// return quickly; they run on the surface's event-delivery layer, not on the
// runtime loop.
type ListenerFunc func(Event)

// Element is a handle to a single live element on the display surface.
type Element interface {
	// ID returns the element's stable identity.
	ID() string

	// SetText replaces the element's entire content with the given text.
	SetText(value string) error

	// AddEventListener registers the platform listener for the event name.
	// Registering a second listener under the same name replaces the first.
	AddEventListener(name string, fn ListenerFunc) error

	// RemoveEventListener removes the listener registered under the name.
	// Removing a listener that was never registered is not an error.
	RemoveEventListener(name string) error
}

// Document is the live display surface a virtual tree is reconciled
// against. It combines the element surface with the process-wide stylesheet
// surface (rule insertion and deletion are unbuffered).
//
// All mutation methods are called from the runtime loop only; event
// delivery into listeners may happen from the surface's own layer at any
// time.
type Document interface {
	// Mount replaces the document's root content with the given markup.
	Mount(markup string) error

	// Root returns the root container element.
	Root() Element

	// Element resolves a live element by id.
	// Returns ErrElementNotFound if no such element exists.
	Element(id string) (Element, error)

	// InsertRule appends a rule to the stylesheet surface.
	InsertRule(rule string) error

	// DeleteRules removes every rule whose selector text contains the
	// given node id.
	DeleteRules(nodeID string) error

	// Rules returns the current stylesheet rules in insertion order.
	Rules() []string
}
