package vdom

// TickReport carries per-tick dispatch counts.
type TickReport struct {
	Drained int // Mailbox entries consumed
	Misses  int // Entries naming an event with no registered handler
}

// Tick drains pending platform events into application messages: children
// first (depth-first, left-to-right), then at most one entry from the
// current node's mailbox. The handler is looked up in this tree at drain
// time, not in the tree that was live when the event fired; an entry with no
// matching handler is silently discarded, since a view may legitimately stop
// listening for an event between frames.
//
// Draining one entry per mailbox bounds per-frame work; a burst of rapid
// events on one node spans several frames in delivery order.
func (n *VNode) Tick() []Msg {
	msgs, _ := n.TickReport()
	return msgs
}

// TickReport is Tick plus dispatch counts for observability.
func (n *VNode) TickReport() ([]Msg, TickReport) {
	var msgs []Msg
	var rep TickReport
	n.tick(&msgs, &rep)
	return msgs, rep
}

func (n *VNode) tick(msgs *[]Msg, rep *TickReport) {
	if n == nil || n.Kind != KindNode {
		return
	}
	for _, c := range n.Children {
		c.tick(msgs, rep)
	}
	mail, ok := n.Mailbox.Remove()
	if !ok {
		return
	}
	rep.Drained++
	handler, ok := n.Handlers[mail.Name]
	if !ok {
		rep.Misses++
		return
	}
	*msgs = append(*msgs, handler.Eval(mail.Event))
}
