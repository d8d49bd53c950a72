package stagger

import (
	"sort"
	"time"
)

// DefaultBaseDelay spaces consecutive entrances by 100ms
const DefaultBaseDelay = 100 * time.Millisecond

// Config controls one delay computation
// The zero value uses no delay spacing; use DefaultConfig for the stock timing
type Config struct {
	// BaseDelay is the spacing between consecutive ranks
	// Negative values clamp to zero
	BaseDelay time.Duration

	// Strategy orders the views, zero value is PriorityThenPosition(LeftToRight)
	Strategy Strategy

	// Curve is passed through to the view layer untouched
	// The engine never interprets it
	Curve func(t float64) float64
}

// DefaultConfig returns the stock configuration:
// DefaultBaseDelay spacing with PriorityThenPosition(LeftToRight)
func DefaultConfig() Config {
	return Config{
		BaseDelay: DefaultBaseDelay,
		Strategy:  PriorityThenPosition(LeftToRight),
	}
}

// ComputeDelays ranks the remaining views under cfg.Strategy and assigns the
// view at rank k (0-based) a delay of k * cfg.BaseDelay.
//
// Duplicate ids collapse to one entry, last occurrence wins for priority and
// frame. Ids absent from remaining are absent from the result; callers must
// treat absence as "no delay assigned", never as zero. Pure: identical input
// yields an identical mapping.
func ComputeDelays(remaining []ViewMetadata, cfg Config) map[ViewID]time.Duration {
	delays := make(map[ViewID]time.Duration, len(remaining))
	if len(remaining) == 0 {
		return delays
	}

	// Dedupe by id, last write wins, order of first appearance kept so that
	// tie-breaks stay reproducible for identical input ordering
	index := make(map[ViewID]int, len(remaining))
	deduped := make([]ViewMetadata, 0, len(remaining))
	for _, m := range remaining {
		if i, ok := index[m.ID]; ok {
			deduped[i] = m
			continue
		}
		index[m.ID] = len(deduped)
		deduped = append(deduped, m)
	}

	before := cfg.Strategy.comparator()
	sort.SliceStable(deduped, func(i, j int) bool {
		return before(deduped[i], deduped[j])
	})

	base := max(cfg.BaseDelay, 0)
	for rank, m := range deduped {
		delays[m.ID] = time.Duration(rank) * base
	}
	return delays
}
