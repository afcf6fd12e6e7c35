package cascade

// State is the cursor over one Tree: the node currently displayed. The tree
// never changes; only the cursor moves, and only through the methods below.
//
// State is not safe for concurrent use. All moves are expected to happen on
// the goroutine that handles user input.
type State[T comparable] struct {
	tree      *Tree[T]
	current   Node[T]
	observers []func(Transition[T])
}

// NewState returns a cursor positioned at the root of tree.
func NewState[T comparable](tree *Tree[T]) *State[T] {
	return &State[T]{
		tree:    tree,
		current: tree.Root(),
	}
}

// Current returns the node currently displayed. It is never the zero Node.
func (s *State[T]) Current() Node[T] {
	return s.current
}

// Root returns the root of the wrapped tree.
func (s *State[T]) Root() Node[T] {
	return s.tree.Root()
}

// Tree returns the wrapped tree.
func (s *State[T]) Tree() *Tree[T] {
	return s.tree
}

// OnChange registers fn to be called after every move that changes the
// current node. Calls that leave the cursor in place do not notify.
func (s *State[T]) OnChange(fn func(Transition[T])) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Descend moves into the child of the current node with the given id.
// An id that does not resolve is a mismatch between rendered rows and the
// tree; the cursor stays put and an *ItemError wrapping ErrInvalidItem is
// returned.
func (s *State[T]) Descend(id T) error {
	child, ok := s.current.Child(id)
	if !ok {
		return newItemError("descend", id, s.current, ErrInvalidItem)
	}
	s.move(child)
	return nil
}

// Ascend moves to the parent of the current node and reports whether it
// moved. At the root it does nothing.
func (s *State[T]) Ascend() bool {
	parent, ok := s.current.Parent()
	if !ok {
		return false
	}
	s.move(parent)
	return true
}

// Reset moves the cursor back to the root. It is idempotent.
func (s *State[T]) Reset() {
	s.move(s.tree.Root())
}

// Jump moves the cursor to target, which must be an ancestor of the
// current node in the same tree. Breadcrumb headers use this to go up
// several levels at once.
func (s *State[T]) Jump(target Node[T]) error {
	if !target.IsAncestorOf(s.current) {
		return &ItemError{Op: "jump", ID: target.safeTitle(), Err: ErrForeignNode}
	}
	s.move(target)
	return nil
}

// Select resolves a leaf among the children of the current node and returns
// its id. The cursor does not move: selection ends the menu session.
func (s *State[T]) Select(id T) (T, error) {
	child, ok := s.current.Child(id)
	if !ok {
		var zero T
		return zero, newItemError("select", id, s.current, ErrInvalidItem)
	}
	if child.HasChildren() {
		var zero T
		return zero, newItemError("select", id, s.current, ErrNotLeaf)
	}
	return child.ID(), nil
}

func (s *State[T]) move(next Node[T]) {
	prev := s.current
	if prev == next {
		return
	}
	s.current = next
	tr := Transition[T]{From: prev, To: next, Direction: Classify(prev, next)}
	for _, fn := range s.observers {
		fn(tr)
	}
}
