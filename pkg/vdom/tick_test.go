package vdom

import (
	"testing"

	"github.com/lumenui/lumen/pkg/surface"
)

func handlerReturning(msg Msg) HandlerFunc {
	return func(surface.Event) Msg { return msg }
}

func TestTickEmptyMailboxes(t *testing.T) {
	root := newElem("v1", "div",
		newElem("v2", "span", NewText("a")),
		newElem("v3", "span"),
	)

	msgs := root.Tick()
	if len(msgs) != 0 {
		t.Errorf("Tick on idle tree = %v, want no messages", msgs)
	}
}

func TestTickChildrenBeforeParent(t *testing.T) {
	leaf := newElem("v3", "button")
	leaf.Handlers["click"] = &Handler{Fn: handlerReturning("leaf")}
	leaf.Mailbox.Insert("click", surface.Event{Name: "click"})

	mid := newElem("v2", "div", leaf)
	mid.Handlers["click"] = &Handler{Fn: handlerReturning("mid")}
	mid.Mailbox.Insert("click", surface.Event{Name: "click"})

	root := newElem("v1", "div", mid)
	root.Handlers["click"] = &Handler{Fn: handlerReturning("root")}
	root.Mailbox.Insert("click", surface.Event{Name: "click"})

	msgs := root.Tick()
	want := []Msg{"leaf", "mid", "root"}
	if len(msgs) != len(want) {
		t.Fatalf("messages = %v, want %v", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("msgs[%d] = %v, want %v (post-order violated)", i, msgs[i], want[i])
		}
	}
}

func TestTickDrainsOneEntryPerMailbox(t *testing.T) {
	n := newElem("v1", "button")
	n.Handlers["click"] = &Handler{Fn: handlerReturning("click")}
	for i := 0; i < 3; i++ {
		n.Mailbox.Insert("click", surface.Event{Name: "click"})
	}

	if msgs := n.Tick(); len(msgs) != 1 {
		t.Fatalf("first tick drained %d, want 1", len(msgs))
	}
	if n.Mailbox.Len() != 2 {
		t.Fatalf("queued = %d after first tick, want 2", n.Mailbox.Len())
	}
	if msgs := n.Tick(); len(msgs) != 1 {
		t.Fatalf("second tick drained %d, want 1", len(msgs))
	}
	if msgs := n.Tick(); len(msgs) != 1 {
		t.Fatalf("third tick drained %d, want 1", len(msgs))
	}
	if msgs := n.Tick(); len(msgs) != 0 {
		t.Fatalf("fourth tick drained %d, want 0", len(msgs))
	}
}

func TestTickDropsUnhandledEvents(t *testing.T) {
	n := newElem("v1", "button")
	n.Mailbox.Insert("click", surface.Event{Name: "click"})

	msgs, rep := n.TickReport()
	if len(msgs) != 0 {
		t.Errorf("messages = %v, want none for unhandled event", msgs)
	}
	if rep.Drained != 1 || rep.Misses != 1 {
		t.Errorf("report = %+v, want Drained=1 Misses=1", rep)
	}
	if n.Mailbox.Len() != 0 {
		t.Error("unhandled entry should be discarded, not requeued")
	}
}

func TestTickLooksUpHandlerAtDrainTime(t *testing.T) {
	n := newElem("v1", "button")
	n.Handlers["click"] = &Handler{Fn: handlerReturning("old")}
	n.Mailbox.Insert("click", surface.Event{Name: "click"})

	// The handler registered when the event fired is replaced before the
	// next tick; dispatch must use the current one.
	n.Handlers["click"].Fn = handlerReturning("current")

	msgs := n.Tick()
	if len(msgs) != 1 || msgs[0] != "current" {
		t.Errorf("messages = %v, want [current]", msgs)
	}
}
