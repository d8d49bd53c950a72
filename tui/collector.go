package tui

import (
	"github.com/lixenwraith/stagger"
	"github.com/lixenwraith/stagger/geom"
)

// Collector is the metadata side of the view layer: widgets register their
// id, priority, and frame here during layout, and the owner hands the
// snapshot to a stagger.Container whenever membership or geometry changed.
//
// Snapshot order is registration order, which keeps tie-breaks in the delay
// engine reproducible across frames. Like the rest of the view layer, a
// Collector belongs to one UI goroutine.
type Collector struct {
	order   []stagger.ViewID
	entries map[stagger.ViewID]stagger.ViewMetadata
	dirty   bool
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{
		entries: make(map[stagger.ViewID]stagger.ViewMetadata),
	}
}

// Set registers or updates a participating view
// Updating an existing id keeps its place in snapshot order
func (c *Collector) Set(id stagger.ViewID, priority float64, frame geom.Rect) {
	m := stagger.ViewMetadata{ID: id, Priority: priority, Frame: frame}
	if prev, ok := c.entries[id]; ok {
		if prev == m {
			return
		}
		c.entries[id] = m
		c.dirty = true
		return
	}
	c.entries[id] = m
	c.order = append(c.order, id)
	c.dirty = true
}

// Remove drops a view from future snapshots
func (c *Collector) Remove(id stagger.ViewID) {
	if _, ok := c.entries[id]; !ok {
		return
	}
	delete(c.entries, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.dirty = true
}

// Len returns the number of registered views
func (c *Collector) Len() int {
	return len(c.entries)
}

// Dirty reports whether the collection changed since the last Snapshot
func (c *Collector) Dirty() bool {
	return c.dirty
}

// Snapshot returns the current collection in registration order and clears
// the dirty flag
func (c *Collector) Snapshot() []stagger.ViewMetadata {
	out := make([]stagger.ViewMetadata, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	c.dirty = false
	return out
}
