package vdom

import (
	"sync"

	"github.com/lumenui/lumen/pkg/surface"
)

// Mail is a single queued platform event.
type Mail struct {
	Name  string
	Event surface.Event
}

// Mailbox is a per-node FIFO queue decoupling the stable platform listener
// from the application handler that interprets the event. The listener
// appends from the surface's event-delivery layer; the dispatcher drains
// from the runtime loop. That single-writer/single-drainer pattern is the
// only cross-goroutine mutation in the core, so a plain mutex suffices.
type Mailbox struct {
	mu    sync.Mutex
	queue []Mail
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Insert appends an event to the back of the queue.
func (m *Mailbox) Insert(name string, ev surface.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, Mail{Name: name, Event: ev})
}

// Remove pops the front of the queue. ok is false when the queue is empty.
func (m *Mailbox) Remove() (Mail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return Mail{}, false
	}
	mail := m.queue[0]
	m.queue = m.queue[1:]
	return mail, true
}

// Len returns the number of queued events.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
