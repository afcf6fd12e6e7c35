package cascade

// Direction classifies a navigation move so a presentation layer can pick
// the matching slide animation.
type Direction int

const (
	DirectionForward  Direction = iota // Into a child, or no move at all
	DirectionBackward                  // Up to the parent of the previous node
)

// Classify returns DirectionBackward iff prev has a parent and next is that
// parent. Every other pair, including prev == next, is DirectionForward.
func Classify[T comparable](prev, next Node[T]) Direction {
	if IsNavigatingBack(prev, next) {
		return DirectionBackward
	}
	return DirectionForward
}

// IsNavigatingBack reports whether moving from prev to next goes up one level.
func IsNavigatingBack[T comparable](prev, next Node[T]) bool {
	if prev.IsZero() {
		return false
	}
	parent, ok := prev.Parent()
	return ok && next == parent
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return ""
	}
}

// Transition is one observed change of the current node.
type Transition[T comparable] struct {
	From      Node[T]
	To        Node[T]
	Direction Direction
}
