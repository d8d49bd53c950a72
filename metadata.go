// Package stagger computes per-view entrance delays so that a group of views
// animates in sequence instead of all at once. A collector hands the engine
// one metadata snapshot per layout change; the engine ranks the views under a
// configurable ordering strategy and maps each view id to rank * base delay.
// Playback, transitions, and reduced-motion policy belong to the view layer.
package stagger

import "github.com/lixenwraith/stagger/geom"

// ViewID identifies a participating view
// Opaque: equality only, stable for the life of the view
type ViewID string

// ViewMetadata describes one participating view at collection time
type ViewMetadata struct {
	ID ViewID

	// Priority ranks views for strategies that respect it
	// Higher animates earlier, default 0, ties broken by position
	Priority float64

	// Frame is the view bounds in the shared coordinate space
	Frame geom.Rect
}
