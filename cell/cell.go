package cell

import (
	"cmp"
	"fmt"
	"sync"

	"golang.org/x/exp/constraints"
)

// Cell is a shared, interior-mutable value. All methods are safe for
// concurrent use.
//
// A cell created by New has exactly one holder, its creator. Further holders
// announce themselves with Retain (or Share) and leave with Release.
// Releasing the last hold marks the cell as released; retaining a released
// cell is a programming error and panics.
type Cell[V constraints.Ordered] struct {
	mu       sync.RWMutex
	value    V
	refs     int
	released bool
	watchers []*Watcher[V]
}

// New creates a cell holding v, held once by the caller.
func New[V constraints.Ordered](v V) *Cell[V] {
	return &Cell[V]{value: v, refs: 1}
}

// Get returns the current content of the cell.
func (c *Cell[V]) Get() V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the content of the cell in place. Every holder of c will
// observe the new content.
func (c *Cell[V]) Set(v V) {
	c.Update(func(V) V { return v })
}

// Update replaces the content of the cell with f(old) as one atomic step.
// f must not access c.
func (c *Cell[V]) Update(f func(V) V) {
	c.mu.Lock()
	old := c.value
	c.value = f(old)
	v := c.value
	watchers := c.watchers
	c.mu.Unlock()
	tracer().Debugf("cell %v updated to %v", old, v)
	for _, w := range watchers {
		w.publish(Event[V]{Kind: Updated, Old: old, Value: v})
	}
}

// Retain adds a holder to c.
func (c *Cell[V]) Retain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	assert(!c.released, "cell: retain of released cell")
	c.refs++
}

// Share adds a holder to c and returns c, to be handed out to the new holder.
func (c *Cell[V]) Share() *Cell[V] {
	c.Retain()
	return c
}

// Release drops a holder from c. When the last holder is gone, c is released
// and its watchers receive a Released event.
func (c *Cell[V]) Release() {
	c.mu.Lock()
	assert(!c.released, "cell: release of released cell")
	c.refs--
	if c.refs > 0 {
		c.mu.Unlock()
		return
	}
	c.released = true
	v := c.value
	watchers := c.watchers
	c.watchers = nil
	c.mu.Unlock()
	tracer().Debugf("cell %v released", v)
	for _, w := range watchers {
		w.publish(Event[V]{Kind: Released, Old: v, Value: v})
	}
}

// RefCount returns the number of current holders of c.
func (c *Cell[V]) RefCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refs
}

// IsReleased reports whether every holder has released c.
func (c *Cell[V]) IsReleased() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.released
}

// Compare compares the current contents of c and other, returning a negative
// number, zero or a positive number as c is less than, equal to or greater
// than other. Contents are read one after the other, never under two locks.
func (c *Cell[V]) Compare(other *Cell[V]) int {
	if c == other {
		return 0
	}
	return cmp.Compare(c.Get(), other.Get())
}

// Observe attaches a watcher to c. Watchers of released cells are ignored.
func (c *Cell[V]) Observe(w *Watcher[V]) {
	if w == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.watchers = append(c.watchers, w)
}

func (c *Cell[V]) String() string {
	return fmt.Sprintf("Cell(%v)", c.Get())
}
