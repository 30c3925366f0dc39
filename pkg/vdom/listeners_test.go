package vdom

import (
	"testing"

	"github.com/lumenui/lumen/pkg/surface"
)

func TestAttachAndDetachEventListeners(t *testing.T) {
	button := newElem("v2", "button")
	button.Handlers["click"] = &Handler{Fn: handlerReturning("clicked")}
	root := newElem("v1", "div", button)

	doc := mountTree(t, root)
	if err := root.AttachEventListeners(doc); err != nil {
		t.Fatalf("AttachEventListeners: %v", err)
	}

	if err := doc.FireEvent("v2", "click", map[string]any{"x": 1}); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	if button.Mailbox.Len() != 1 {
		t.Fatalf("mailbox len = %d after event, want 1", button.Mailbox.Len())
	}

	if err := root.DetachEventListeners(doc); err != nil {
		t.Fatalf("DetachEventListeners: %v", err)
	}
	if err := doc.FireEvent("v2", "click", nil); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	if button.Mailbox.Len() != 1 {
		t.Error("event delivered after detach")
	}
}

func TestAttachMissingElementIsFatal(t *testing.T) {
	button := newElem("v2", "button")
	button.Handlers["click"] = &Handler{Fn: handlerReturning("clicked")}

	doc := surface.NewMemoryDocument()
	if err := doc.Mount(`<div id="other"></div>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if err := button.AttachEventListeners(doc); err == nil {
		t.Fatal("attach against a surface without the element must fail")
	}
}

func TestReregistrationKeepsPlatformListener(t *testing.T) {
	button := newElem("v1", "button")
	if err := button.AddEventHandler("click", func(surface.Event) Msg { return "first" }); err != nil {
		t.Fatalf("AddEventHandler: %v", err)
	}

	doc := mountTree(t, button)
	if err := button.AttachEventListeners(doc); err != nil {
		t.Fatalf("AttachEventListeners: %v", err)
	}

	// Swap the application handler after the listener is live.
	if err := button.AddEventHandler("click", func(surface.Event) Msg { return "second" }); err != nil {
		t.Fatalf("AddEventHandler: %v", err)
	}

	// The originally registered listener still queues into the mailbox;
	// only the consumer-side lookup changed.
	if err := doc.FireEvent("v1", "click", nil); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	msgs := button.Tick()
	if len(msgs) != 1 || msgs[0] != "second" {
		t.Errorf("messages = %v, want [second]", msgs)
	}
}
