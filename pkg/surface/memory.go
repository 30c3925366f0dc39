package surface

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MemoryDocument is an in-process Document backed by a parsed element tree.
// It is the surface used by tests and headless runs: Mount parses the given
// markup, indexes elements by id, and subsequent mutations operate on the
// parsed tree directly.
//
// Event delivery is driven by FireEvent, which plays the role of the
// platform's native event layer and may be called from any goroutine.
type MemoryDocument struct {
	mu        sync.Mutex
	root      *memElement
	byID      map[string]*memElement
	rules     []string
	mutations int
}

// NewMemoryDocument creates an empty in-memory document.
func NewMemoryDocument() *MemoryDocument {
	d := &MemoryDocument{
		byID: make(map[string]*memElement),
	}
	d.root = &memElement{doc: d, id: "root", tag: "div"}
	return d
}

// memElement is a single element in the in-memory tree.
type memElement struct {
	doc       *MemoryDocument
	id        string
	tag       string
	attrs     map[string]string
	text      string
	children  []*memElement
	listeners map[string]ListenerFunc
}

// Mount implements Document. The markup is parsed as a body fragment, the
// previous content is discarded and the id index rebuilt.
func (d *MemoryDocument) Mount(markup string) error {
	ctxNode := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctxNode)
	if err != nil {
		return fmt.Errorf("surface: parse markup: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.byID = make(map[string]*memElement)
	d.root.children = nil
	d.root.text = ""
	for _, n := range nodes {
		d.appendParsed(d.root, n)
	}
	d.mutations++
	return nil
}

// appendParsed converts a parsed html node into the memory tree.
// Caller holds d.mu.
func (d *MemoryDocument) appendParsed(parent *memElement, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		parent.text += n.Data
	case html.ElementNode:
		el := &memElement{
			doc:   d,
			tag:   n.Data,
			attrs: make(map[string]string),
		}
		for _, a := range n.Attr {
			el.attrs[a.Key] = a.Val
			if a.Key == "id" {
				el.id = a.Val
			}
		}
		if el.id != "" {
			d.byID[el.id] = el
		}
		parent.children = append(parent.children, el)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			d.appendParsed(el, c)
		}
	}
}

// Root implements Document.
func (d *MemoryDocument) Root() Element {
	return d.root
}

// Element implements Document.
func (d *MemoryDocument) Element(id string) (Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	return el, nil
}

// InsertRule implements Document.
func (d *MemoryDocument) InsertRule(rule string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rules = append(d.rules, rule)
	d.mutations++
	return nil
}

// DeleteRules implements Document. Every rule scoped to the node id is
// removed.
func (d *MemoryDocument) DeleteRules(nodeID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.rules[:0]
	removed := 0
	for _, r := range d.rules {
		if RuleScopedTo(r, nodeID) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	d.rules = kept
	if removed > 0 {
		d.mutations++
	}
	return nil
}

// Rules implements Document.
func (d *MemoryDocument) Rules() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.rules))
	copy(out, d.rules)
	return out
}

// Mutations returns the number of content mutations applied since creation.
// Listener registration is not counted. Used by tests to assert the no-op
// law of tree reconciliation.
func (d *MemoryDocument) Mutations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mutations
}

// FireEvent simulates the platform delivering an event to the element's
// registered listener. If no listener is registered under the event name the
// event is dropped, mirroring a real surface where listeners are keyed by
// name. Returns ErrElementNotFound if the element does not exist.
func (d *MemoryDocument) FireEvent(id, name string, data map[string]any) error {
	d.mu.Lock()
	el, ok := d.byID[id]
	if !ok {
		d.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	var fn ListenerFunc
	if el.listeners != nil {
		fn = el.listeners[name]
	}
	d.mu.Unlock()

	if fn != nil {
		fn(Event{Name: name, Target: id, Data: data})
	}
	return nil
}

// ID implements Element.
func (e *memElement) ID() string { return e.id }

// Tag returns the element's tag name.
func (e *memElement) Tag() string { return e.tag }

// Attr returns the value of the named attribute.
func (e *memElement) Attr(key string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, ok := e.attrs[key]
	return v, ok
}

// Text returns the element's direct text content.
func (e *memElement) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.text
}

// ChildCount returns the number of child elements.
func (e *memElement) ChildCount() int {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return len(e.children)
}

// SetText implements Element. Like the platform's textContent assignment it
// replaces the element's entire content, discarding any child elements.
func (e *memElement) SetText(value string) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for _, c := range e.children {
		e.doc.dropFromIndex(c)
	}
	e.children = nil
	e.text = value
	e.doc.mutations++
	return nil
}

// dropFromIndex removes the element and its descendants from the id index.
// Caller holds doc.mu.
func (d *MemoryDocument) dropFromIndex(e *memElement) {
	if e.id != "" {
		delete(d.byID, e.id)
	}
	for _, c := range e.children {
		d.dropFromIndex(c)
	}
}

// AddEventListener implements Element.
func (e *memElement) AddEventListener(name string, fn ListenerFunc) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[string]ListenerFunc)
	}
	e.listeners[name] = fn
	return nil
}

// RemoveEventListener implements Element.
func (e *memElement) RemoveEventListener(name string) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	delete(e.listeners, name)
	return nil
}
