package stagger

import "github.com/lixenwraith/stagger/geom"

// Composite strategies, each a Custom comparator composed from the geometry
// helpers. respectPriority gates every comparator on priority first: higher
// priority still animates earlier, the geometric rule only breaks priority ties.

// priorityGate wraps cmp so priority is compared first when respect is set
func priorityGate(respect bool, cmp Comparator) Comparator {
	if !respect {
		return cmp
	}
	return func(a, b ViewMetadata) bool {
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return cmp(a, b)
	}
}

// Radial orders views by distance from center, closest first
func Radial(center geom.Point, respectPriority bool) Strategy {
	return Custom(priorityGate(respectPriority, func(a, b ViewMetadata) bool {
		return a.Frame.DistanceToPoint(center) < b.Frame.DistanceToPoint(center)
	}))
}

// ReadingPattern orders views top-to-bottom in rows, left-to-right within a
// row. Views whose vertical centers lie within rowThreshold of each other
// belong to the same row.
func ReadingPattern(respectPriority bool, rowThreshold float64) Strategy {
	if rowThreshold < 0 {
		rowThreshold = 0
	}
	return Custom(priorityGate(respectPriority, func(a, b ViewMetadata) bool {
		ay, by := a.Frame.Center().Y, b.Frame.Center().Y
		dy := ay - by
		if dy < -rowThreshold {
			return true
		}
		if dy > rowThreshold {
			return false
		}
		// Same row
		return a.Frame.MinX < b.Frame.MinX
	}))
}

// BySize orders views by frame area
func BySize(largerFirst, respectPriority bool) Strategy {
	return Custom(priorityGate(respectPriority, func(a, b ViewMetadata) bool {
		if largerFirst {
			return a.Frame.Area() > b.Frame.Area()
		}
		return a.Frame.Area() < b.Frame.Area()
	}))
}

// Diagonal orders views along a diagonal sweep: top-left to bottom-right by
// MinX+MinY ascending, or top-right to bottom-left by MaxX-MinY descending
func Diagonal(topLeftToBottomRight, respectPriority bool) Strategy {
	return Custom(priorityGate(respectPriority, func(a, b ViewMetadata) bool {
		if topLeftToBottomRight {
			return a.Frame.MinX+a.Frame.MinY < b.Frame.MinX+b.Frame.MinY
		}
		return a.Frame.MaxX-a.Frame.MinY > b.Frame.MaxX-b.Frame.MinY
	}))
}
