package stagger

import "time"

// Container tracks which views have already animated for one container
// instance, so that later snapshots (a list growing, a relayout) only stagger
// the newcomers instead of replaying every entrance.
//
// Containers follow the single-goroutine model of the surrounding UI loop:
// every method must be called from the goroutine that owns the container.
// Seen-state commits atomically with the collection event it answers — Collect
// never leaves a snapshot half-applied.
type Container struct {
	active bool
	seen   map[ViewID]struct{}
}

// NewContainer returns an active container with empty history
func NewContainer() *Container {
	return &Container{
		active: true,
		seen:   make(map[ViewID]struct{}),
	}
}

// Collect processes one metadata snapshot. Views whose id has already been
// seen by this container are excluded; the rest are ranked by cfg and marked
// seen. Returns the id->delay mapping for the newcomers only. While the
// container is inactive, snapshots are ignored and nil is returned.
func (c *Container) Collect(snapshot []ViewMetadata, cfg Config) map[ViewID]time.Duration {
	if !c.active {
		return nil
	}

	remaining := make([]ViewMetadata, 0, len(snapshot))
	for _, m := range snapshot {
		if _, ok := c.seen[m.ID]; ok {
			continue
		}
		remaining = append(remaining, m)
	}
	for _, m := range remaining {
		c.seen[m.ID] = struct{}{}
	}
	return ComputeDelays(remaining, cfg)
}

// Deactivate tears the container down: accumulated history is discarded and
// further snapshots are ignored until Activate
func (c *Container) Deactivate() {
	c.active = false
	c.seen = make(map[ViewID]struct{})
}

// Activate returns the container to service with empty history
// Activating an already active container does not disturb its history
func (c *Container) Activate() {
	if c.active {
		return
	}
	c.active = true
	c.seen = make(map[ViewID]struct{})
}

// Active reports whether the container processes snapshots
func (c *Container) Active() bool {
	return c.active
}

// Seen reports whether id has animated during the current activation
func (c *Container) Seen(id ViewID) bool {
	_, ok := c.seen[id]
	return ok
}
