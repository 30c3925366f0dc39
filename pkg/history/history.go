// Package history records the mutation stream a runtime applies to its
// surface. The log is a ring buffer holding a sliding window of recent
// mutations; an Archiver can ship completed windows to object storage for
// offline inspection.
package history

import (
	"sync"
	"time"

	"github.com/lumenui/lumen/pkg/vdom"
)

// Entry is one recorded mutation.
type Entry struct {
	Seq   uint64    `json:"seq"`
	Op    string    `json:"op"`
	ID    string    `json:"id,omitempty"`
	Value string    `json:"value,omitempty"`
	At    time.Time `json:"at"`
}

// Log is a thread-safe ring buffer of recent mutations. When full it
// overwrites the oldest entries, keeping a sliding window.
type Log struct {
	mu       sync.RWMutex
	entries  []*Entry
	head     int // Next write position (circular)
	count    int
	capacity int
	nextSeq  uint64
	minSeq   uint64 // Lowest sequence still in the window
}

const defaultCapacity = 256

// NewLog creates a mutation log with the given window capacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Log{
		entries:  make([]*Entry, capacity),
		capacity: capacity,
		nextSeq:  1,
	}
}

// Record appends the mutations of one frame to the log.
func (l *Log) Record(muts []vdom.Mutation) {
	if len(muts) == 0 {
		return
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range muts {
		e := &Entry{
			Seq:   l.nextSeq,
			Op:    m.Op.String(),
			ID:    m.ID,
			Value: m.Value,
			At:    now,
		}
		l.nextSeq++

		l.entries[l.head] = e
		l.head = (l.head + 1) % l.capacity

		if l.count < l.capacity {
			l.count++
		} else {
			// Buffer full, the slot at head holds the new oldest entry.
			l.minSeq = l.entries[l.head].Seq
		}
		if l.count == 1 {
			l.minSeq = e.Seq
		}
	}
}

// Entries returns the window contents in sequence order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + l.capacity) % l.capacity
		if l.entries[idx] != nil {
			out = append(out, *l.entries[idx])
		}
	}
	return out
}

// Since returns every entry with a sequence strictly greater than seq. The
// second return is false when the window no longer reaches back to seq.
func (l *Log) Since(seq uint64) ([]Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.count > 0 && seq+1 < l.minSeq {
		return nil, false
	}

	var out []Entry
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + l.capacity) % l.capacity
		if e := l.entries[idx]; e != nil && e.Seq > seq {
			out = append(out, *e)
		}
	}
	return out, true
}

// Count returns the number of entries in the window.
func (l *Log) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// MaxSeq returns the highest sequence recorded so far, 0 if none.
func (l *Log) MaxSeq() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nextSeq - 1
}

// Clear empties the window without resetting the sequence counter.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		l.entries[i] = nil
	}
	l.head = 0
	l.count = 0
	l.minSeq = 0
}
