package vdom

import "github.com/lumenui/lumen/pkg/surface"

// Msg is an application-defined message produced by an event handler and
// folded into the model by the component's update function.
type Msg any

// HandlerFunc converts a raw platform event into an application message.
type HandlerFunc func(surface.Event) Msg

// Handler pairs the application's message function with the platform
// listener registered on the live surface. The listener is created once at
// attach time and only ever appends to the node's mailbox; Fn is the
// consumer-side cell the dispatcher consults, and is freely swapped on every
// re-render without touching the listener.
//
// Handlers are transient closures, not comparable data: two handlers are
// always considered interchangeable, and no equality or hashing is defined
// over them.
type Handler struct {
	Fn HandlerFunc
}

// Eval applies the current message function to a raw event.
func (h *Handler) Eval(ev surface.Event) Msg {
	return h.Fn(ev)
}
