// Package remote implements a surface.Document whose live counterpart is a
// thin client on the far side of a WebSocket connection. Every mutation is
// shipped as a protocol ops frame; platform events flow back as event frames
// and are delivered to the listeners registered here.
package remote

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lumenui/lumen/pkg/protocol"
	"github.com/lumenui/lumen/pkg/surface"
)

// RootID is the id of the client-side root container the runtime mounts
// into. The thin client creates it on connect.
const RootID = "lumen-root"

const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// Document is a surface.Document driving a remote thin client.
//
// Mutations may only be issued from the runtime loop. ReadLoop runs on its
// own goroutine and delivers events into registered listeners; listeners
// must be safe to call from there, which holds for the mailbox-appending
// listeners the runtime registers.
type Document struct {
	conn *websocket.Conn
	mu   sync.Mutex // Protects conn writes

	logger       *slog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration

	// Listener registry, id -> event name -> fn.
	lmu       sync.Mutex
	listeners map[string]map[string]surface.ListenerFunc

	// Local mirror of the client's rule list, so DeleteRules keeps its
	// contains-id semantics without a round trip.
	rmu   sync.Mutex
	rules []string

	closed atomic.Bool
	done   chan struct{}
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) { d.logger = logger }
}

// WithReadTimeout sets the read deadline applied per message.
func WithReadTimeout(t time.Duration) Option {
	return func(d *Document) { d.readTimeout = t }
}

// WithWriteTimeout sets the write deadline applied per frame.
func WithWriteTimeout(t time.Duration) Option {
	return func(d *Document) { d.writeTimeout = t }
}

// NewDocument wraps an established WebSocket connection.
func NewDocument(conn *websocket.Conn, opts ...Option) *Document {
	d := &Document{
		conn:         conn,
		logger:       slog.Default(),
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
		listeners:    make(map[string]map[string]surface.ListenerFunc),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mount implements surface.Document.
func (d *Document) Mount(markup string) error {
	return d.sendOps([]protocol.Op{{Op: protocol.OpMount, Value: markup}})
}

// Root implements surface.Document.
func (d *Document) Root() surface.Element {
	return &element{doc: d, id: RootID}
}

// Element implements surface.Document. The remote surface cannot verify
// existence synchronously; resolution is optimistic and a stale id surfaces
// client-side as a dropped operation.
func (d *Document) Element(id string) (surface.Element, error) {
	if d.closed.Load() {
		return nil, fmt.Errorf("%w: %q (connection closed)", surface.ErrElementNotFound, id)
	}
	return &element{doc: d, id: id}, nil
}

// InsertRule implements surface.Document.
func (d *Document) InsertRule(rule string) error {
	if err := d.sendOps([]protocol.Op{{Op: protocol.OpInsertRule, Value: rule}}); err != nil {
		return err
	}
	d.rmu.Lock()
	d.rules = append(d.rules, rule)
	d.rmu.Unlock()
	return nil
}

// DeleteRules implements surface.Document.
func (d *Document) DeleteRules(nodeID string) error {
	if err := d.sendOps([]protocol.Op{{Op: protocol.OpDeleteRules, ID: nodeID}}); err != nil {
		return err
	}
	d.rmu.Lock()
	kept := d.rules[:0]
	for _, r := range d.rules {
		if !surface.RuleScopedTo(r, nodeID) {
			kept = append(kept, r)
		}
	}
	d.rules = kept
	d.rmu.Unlock()
	return nil
}

// Rules implements surface.Document.
func (d *Document) Rules() []string {
	d.rmu.Lock()
	defer d.rmu.Unlock()
	out := make([]string, len(d.rules))
	copy(out, d.rules)
	return out
}

// sendOps encodes and writes one ops frame.
func (d *Document) sendOps(ops []protocol.Op) error {
	if d.closed.Load() {
		return fmt.Errorf("remote: send on closed document")
	}
	frame, err := protocol.EncodeOps(ops)
	if err != nil {
		return err
	}
	data, err := frame.Encode()
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.conn.SetWriteDeadline(time.Now().Add(d.writeTimeout))
	if err := d.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("remote: write ops: %w", err)
	}
	return nil
}

// ReadLoop reads frames from the connection until it closes, routing events
// into registered listeners and answering pings. Run it on its own
// goroutine; it returns when the connection drops or Close is called.
func (d *Document) ReadLoop() {
	defer d.Close()

	for {
		d.conn.SetReadDeadline(time.Now().Add(d.readTimeout))
		_, msg, err := d.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				d.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			d.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			d.handleEventFrame(frame.Payload)

		case protocol.FrameControl:
			d.handleControlFrame(frame.Payload)

		default:
			d.logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// handleEventFrame routes one client event to its listener. Events for
// elements or names with no listener are dropped; the client may race a
// re-render, so that is not an error.
func (d *Document) handleEventFrame(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		d.logger.Error("event decode error", "error", err)
		return
	}

	d.lmu.Lock()
	var fn surface.ListenerFunc
	if byName, ok := d.listeners[ev.Target]; ok {
		fn = byName[ev.Name]
	}
	d.lmu.Unlock()

	if fn == nil {
		d.logger.Debug("event without listener", "target", ev.Target, "name", ev.Name)
		return
	}
	fn(surface.Event{Name: ev.Name, Target: ev.Target, Data: ev.Data})
}

func (d *Document) handleControlFrame(payload []byte) {
	c, err := protocol.DecodeControl(payload)
	if err != nil {
		d.logger.Error("control decode error", "error", err)
		return
	}

	switch c.Type {
	case protocol.ControlPing:
		d.sendControl(protocol.Control{Type: protocol.ControlPong, Timestamp: c.Timestamp})

	case protocol.ControlPong:
		d.logger.Debug("received pong")

	case protocol.ControlClose:
		d.logger.Info("client closing", "reason", c.Reason)
		d.Close()
	}
}

func (d *Document) sendControl(c protocol.Control) {
	frame, err := protocol.EncodeControl(c)
	if err != nil {
		d.logger.Error("control encode error", "error", err)
		return
	}
	data, err := frame.Encode()
	if err != nil {
		d.logger.Error("control encode error", "error", err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.conn.SetWriteDeadline(time.Now().Add(d.writeTimeout))
	if err := d.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		d.logger.Error("control write error", "error", err)
	}
}

// Close tears the connection down. Safe to call more than once.
func (d *Document) Close() {
	if d.closed.Swap(true) {
		return
	}
	close(d.done)
	d.conn.Close()
}

// Done is closed when the connection has been torn down.
func (d *Document) Done() <-chan struct{} {
	return d.done
}

// element is the remote Element handle.
type element struct {
	doc *Document
	id  string
}

// ID implements surface.Element.
func (e *element) ID() string { return e.id }

// SetText implements surface.Element.
func (e *element) SetText(value string) error {
	return e.doc.sendOps([]protocol.Op{{Op: protocol.OpSetText, ID: e.id, Value: value}})
}

// AddEventListener implements surface.Element.
func (e *element) AddEventListener(name string, fn surface.ListenerFunc) error {
	e.doc.lmu.Lock()
	byName, ok := e.doc.listeners[e.id]
	if !ok {
		byName = make(map[string]surface.ListenerFunc)
		e.doc.listeners[e.id] = byName
	}
	_, replacing := byName[name]
	byName[name] = fn
	e.doc.lmu.Unlock()

	// The client listener is keyed by (id, name); replacing only swaps
	// the local consumer.
	if replacing {
		return nil
	}
	return e.doc.sendOps([]protocol.Op{{Op: protocol.OpListen, ID: e.id, Name: name}})
}

// RemoveEventListener implements surface.Element.
func (e *element) RemoveEventListener(name string) error {
	e.doc.lmu.Lock()
	if byName, ok := e.doc.listeners[e.id]; ok {
		delete(byName, name)
	}
	e.doc.lmu.Unlock()
	return e.doc.sendOps([]protocol.Op{{Op: protocol.OpUnlisten, ID: e.id, Name: name}})
}
