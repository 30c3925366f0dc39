package vdom

import (
	"testing"

	"github.com/lumenui/lumen/pkg/surface"
)

// mountTree renders the tree into a fresh memory document.
func mountTree(t *testing.T, tree *VNode) *surface.MemoryDocument {
	t.Helper()
	doc := surface.NewMemoryDocument()
	if err := doc.Mount(tree.Markup()); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return doc
}

func textTree(a, b string) *VNode {
	return newElem("v1", "div",
		newElem("v2", "span", NewText(a)),
		newElem("v3", "span", NewText(b)),
	)
}

func TestSyncIdenticalTreeIsNoOp(t *testing.T) {
	prev := textTree("one", "two")
	next := textTree("one", "two")
	doc := mountTree(t, prev)
	baseline := doc.Mutations()

	res, err := Sync(doc, prev, next, doc.Root())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if len(res.Mutations) != 0 {
		t.Errorf("mutations = %v, want none", res.Mutations)
	}
	if doc.Mutations() != baseline {
		t.Errorf("surface mutated %d times syncing identical trees", doc.Mutations()-baseline)
	}
}

func TestSyncSingleTextChange(t *testing.T) {
	prev := textTree("one", "two")
	next := textTree("one", "2")
	doc := mountTree(t, prev)
	baseline := doc.Mutations()

	res, err := Sync(doc, prev, next, doc.Root())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if len(res.Mutations) != 1 {
		t.Fatalf("mutations = %v, want exactly one", res.Mutations)
	}
	m := res.Mutations[0]
	if m.Op != OpSetText || m.ID != "v3" || m.Value != "2" {
		t.Errorf("mutation = %+v, want SetText v3 %q", m, "2")
	}
	if doc.Mutations() != baseline+1 {
		t.Errorf("surface mutations = %d, want 1", doc.Mutations()-baseline)
	}

	// Stored value follows the live surface.
	if prev.Children[1].Children[0].Text != "2" {
		t.Error("stored text value not updated in place")
	}
	// The untouched sibling keeps its content.
	el, err := doc.Element("v2")
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if got := el.(interface{ Text() string }).Text(); got != "one" {
		t.Errorf("sibling content = %q, want untouched %q", got, "one")
	}
}

func TestSyncChildCountMismatch(t *testing.T) {
	prev := newElem("v1", "div",
		newElem("v2", "span", NewText("a")),
		newElem("v3", "span", NewText("b")),
	)
	next := newElem("v1", "div",
		newElem("v4", "span", NewText("x")),
		newElem("v5", "span", NewText("y")),
		newElem("v6", "span", NewText("z")),
	)
	doc := mountTree(t, prev)
	baseline := doc.Mutations()

	res, err := Sync(doc, prev, next, doc.Root())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if res.SkippedChildren != 1 {
		t.Errorf("SkippedChildren = %d, want 1", res.SkippedChildren)
	}
	if len(res.Mutations) != 0 || doc.Mutations() != baseline {
		t.Error("count mismatch must reconcile nothing")
	}
	// Both trees are inspectable and unmodified.
	if len(prev.Children) != 2 || prev.Children[0].Children[0].Text != "a" {
		t.Error("old tree partially mutated on mismatch")
	}
	if len(next.Children) != 3 || next.Children[2].Children[0].Text != "z" {
		t.Error("new tree mutated on mismatch")
	}
}

func TestSyncShapeMismatch(t *testing.T) {
	prev := newElem("v1", "div", newElem("v2", "span"))
	next := newElem("v1", "div", NewText("now text"))
	doc := mountTree(t, prev)
	baseline := doc.Mutations()

	res, err := Sync(doc, prev, next, doc.Root())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.SkippedShape != 1 {
		t.Errorf("SkippedShape = %d, want 1", res.SkippedShape)
	}
	if doc.Mutations() != baseline {
		t.Error("shape mismatch must not touch the surface")
	}
}

func TestSyncPreservesIDs(t *testing.T) {
	prev := textTree("one", "two")
	doc := mountTree(t, prev)
	before := prev.CollectIDs()

	for _, texts := range [][2]string{{"x", "two"}, {"x", "y"}, {"one", "two"}} {
		if _, err := Sync(doc, prev, textTree(texts[0], texts[1]), doc.Root()); err != nil {
			t.Fatalf("Sync: %v", err)
		}
		after := prev.CollectIDs()
		if len(after) != len(before) {
			t.Fatalf("id count changed: %v -> %v", before, after)
		}
		for i := range before {
			if after[i] != before[i] {
				t.Errorf("id[%d] changed across sync: %q -> %q", i, before[i], after[i])
			}
		}
	}
}

func TestSyncAdoptsHandlers(t *testing.T) {
	prev := newElem("v1", "div")
	prev.Handlers["click"] = &Handler{Fn: handlerReturning("old")}
	prev.Handlers["keydown"] = &Handler{Fn: handlerReturning("keys")}

	next := newElem("v9", "div")
	next.Handlers["click"] = &Handler{Fn: handlerReturning("new")}

	doc := mountTree(t, prev)
	if err := prev.AttachEventListeners(doc); err != nil {
		t.Fatalf("AttachEventListeners: %v", err)
	}

	if _, err := Sync(doc, prev, next, doc.Root()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	// Dropped from the new view: handler gone from the map.
	if _, ok := prev.Handlers["keydown"]; ok {
		t.Error("keydown handler should be dropped after sync")
	}

	// The attach-time listener still feeds the same mailbox, and dispatch
	// now uses the adopted function.
	if err := doc.FireEvent("v1", "click", nil); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	msgs := prev.Tick()
	if len(msgs) != 1 || msgs[0] != "new" {
		t.Errorf("messages = %v, want [new]", msgs)
	}

	// A queued event for the dropped name is a silent dispatch miss.
	if err := doc.FireEvent("v1", "keydown", nil); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	msgs, rep := prev.TickReport()
	if len(msgs) != 0 || rep.Misses != 1 {
		t.Errorf("msgs = %v, report = %+v, want silent miss", msgs, rep)
	}
}
