package group

import (
	"sync"

	"github.com/matzehuels/splitpane/pkg/layout"
)

// Cell holds a layout and notifies subscribers when it changes.
//
// Subscribers always receive their own copy of the layout. Every change is
// stamped with a version, and a subscriber never receives a version older
// than one it has already been given. Under concurrent writers a subscriber
// may skip intermediate layouts, but the last one it receives is the latest.
type Cell struct {
	mu      sync.Mutex
	value   layout.Layout
	version uint64
	subs    []*subscription
}

type subscription struct {
	fn func(layout.Layout)

	mu             sync.Mutex
	next           uint64
	pending        layout.Layout
	pendingVersion uint64
	hasPending     bool
	draining       bool
}

// deliver hands l to the subscriber unless a newer version already reached
// it. Deliveries to one subscriber never run concurrently; a delivery that
// arrives while another is running is queued and handed over by the running
// goroutine, so fn may call back into the cell.
func (s *subscription) deliver(version uint64, l layout.Layout) {
	s.mu.Lock()
	if version < s.next || (s.hasPending && version <= s.pendingVersion) {
		s.mu.Unlock()
		return
	}
	s.pending, s.pendingVersion, s.hasPending = l, version, true
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for s.hasPending {
		value, v := s.pending, s.pendingVersion
		s.pending, s.hasPending = nil, false
		s.next = v + 1
		s.mu.Unlock()
		s.fn(value)
		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}

// publication is a staged notification. The zero value publishes nothing.
type publication struct {
	value   layout.Layout
	version uint64
	subs    []*subscription
}

func (p publication) publish() {
	for _, s := range p.subs {
		s.deliver(p.version, p.value.Clone())
	}
}

// Get returns a copy of the current layout.
func (c *Cell) Get() layout.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value.Clone()
}

// Set stores l and notifies subscribers. Setting a layout equal to the
// current one is a no-op. Set reports whether the value changed.
func (c *Cell) Set(l layout.Layout) bool {
	pub, changed := c.stage(l)
	pub.publish()
	return changed
}

// stage stores l and returns the notification to deliver once the caller
// has released its own locks.
func (c *Cell) stage(l layout.Layout) (publication, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if layout.ArraysEqual(c.value, l) {
		return publication{}, false
	}
	c.value = l.Clone()
	c.version++
	subs := make([]*subscription, len(c.subs))
	copy(subs, c.subs)
	return publication{value: c.value.Clone(), version: c.version, subs: subs}, true
}

// Subscribe calls fn with the current layout, then again after changes
// until the returned function is called. See [Cell] for ordering.
func (c *Cell) Subscribe(fn func(layout.Layout)) (unsubscribe func()) {
	s := &subscription{fn: fn}

	c.mu.Lock()
	c.subs = append(c.subs, s)
	current, version := c.value.Clone(), c.version
	c.mu.Unlock()

	s.deliver(version, current)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, sub := range c.subs {
				if sub == s {
					c.subs = append(c.subs[:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Version returns the number of changes the cell has seen.
func (c *Cell) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Subscribers returns the number of active subscriptions.
func (c *Cell) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
