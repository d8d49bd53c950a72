package stagger

// Direction selects the axis and sign for position-based ordering
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// Comparator reports whether a animates before b
// Custom comparators must be deterministic; the engine sorts stably, so a
// comparator that is not a strict weak order degrades to best-effort ranking
// rather than misbehaving
type Comparator func(a, b ViewMetadata) bool

type strategyKind uint8

const (
	kindPriorityThenPosition strategyKind = iota
	kindPriorityOnly
	kindPositionOnly
	kindCustom
)

// Strategy is a total order over view metadata
// The zero value is PriorityThenPosition(LeftToRight)
type Strategy struct {
	kind strategyKind
	dir  Direction
	cmp  Comparator
}

// PriorityThenPosition orders by priority descending, then position ascending
// along dir, then input order
func PriorityThenPosition(dir Direction) Strategy {
	return Strategy{kind: kindPriorityThenPosition, dir: dir}
}

// PriorityOnly orders by priority descending, ties keep input order
func PriorityOnly() Strategy {
	return Strategy{kind: kindPriorityOnly}
}

// PositionOnly orders by position ascending along dir, ignoring priority
func PositionOnly(dir Direction) Strategy {
	return Strategy{kind: kindPositionOnly, dir: dir}
}

// Custom orders by a caller-supplied comparator
// A nil comparator keeps input order
func Custom(cmp Comparator) Strategy {
	return Strategy{kind: kindCustom, cmp: cmp}
}

// positionBefore is the per-direction position rule, ascending = earlier
func positionBefore(dir Direction, a, b ViewMetadata) bool {
	switch dir {
	case RightToLeft:
		return a.Frame.MaxX > b.Frame.MaxX
	case TopToBottom:
		return a.Frame.MinY < b.Frame.MinY
	case BottomToTop:
		return a.Frame.MaxY > b.Frame.MaxY
	default: // LeftToRight
		return a.Frame.MinX < b.Frame.MinX
	}
}

// comparator returns the before-relation for this strategy
// Built-in strategies return false on ties so a stable sort preserves input order
func (s Strategy) comparator() Comparator {
	switch s.kind {
	case kindPriorityOnly:
		return func(a, b ViewMetadata) bool {
			return a.Priority > b.Priority
		}
	case kindPositionOnly:
		dir := s.dir
		return func(a, b ViewMetadata) bool {
			return positionBefore(dir, a, b)
		}
	case kindCustom:
		if s.cmp == nil {
			return func(a, b ViewMetadata) bool { return false }
		}
		return s.cmp
	default:
		dir := s.dir
		return func(a, b ViewMetadata) bool {
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return positionBefore(dir, a, b)
		}
	}
}
