package cascade

// IconRef names an icon in an icon registry. The empty value means no icon.
type IconRef string

// noParent marks the root entry in the tree arena.
const noParent = -1

// entry is one node's storage inside a Tree. Links are arena indices so the
// parent relation never owns anything.
type entry[T comparable] struct {
	id       T
	title    string
	icon     IconRef
	parent   int
	children []int
}

// Tree is an immutable menu hierarchy. All nodes live in a single arena
// owned by the tree; index 0 is the virtual root.
type Tree[T comparable] struct {
	nodes []entry[T]
}

// Root returns the virtual root of the tree.
func (t *Tree[T]) Root() Node[T] {
	return Node[T]{tree: t, index: 0}
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Walk visits every node in pre-order, children in declaration order.
// Returning false from fn stops the walk.
func (t *Tree[T]) Walk(fn func(n Node[T]) bool) {
	t.walk(0, fn)
}

func (t *Tree[T]) walk(index int, fn func(n Node[T]) bool) bool {
	if !fn(Node[T]{tree: t, index: index}) {
		return false
	}
	for _, c := range t.nodes[index].children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}

// Node is a handle to one entry of a Tree. Handles are comparable: two
// handles are equal iff they refer to the same node of the same tree.
// The zero Node refers to nothing.
type Node[T comparable] struct {
	tree  *Tree[T]
	index int
}

func (n Node[T]) entry() *entry[T] {
	return &n.tree.nodes[n.index]
}

// IsZero reports whether n refers to no node.
func (n Node[T]) IsZero() bool {
	return n.tree == nil
}

// Tree returns the tree that owns n.
func (n Node[T]) Tree() *Tree[T] {
	return n.tree
}

// ID returns the node identifier. For leaves this is the value handed to the
// selection callback.
func (n Node[T]) ID() T {
	return n.entry().id
}

// Title returns the human-readable label.
func (n Node[T]) Title() string {
	return n.entry().title
}

// Icon returns the icon reference and whether one was set.
func (n Node[T]) Icon() (IconRef, bool) {
	icon := n.entry().icon
	return icon, icon != ""
}

// HasChildren reports whether n is a submenu.
func (n Node[T]) HasChildren() bool {
	return len(n.entry().children) > 0
}

// IsLeaf reports whether n is a selectable action.
func (n Node[T]) IsLeaf() bool {
	return !n.HasChildren()
}

// HasParent reports whether n is not the root.
func (n Node[T]) HasParent() bool {
	return n.entry().parent != noParent
}

// Parent returns the enclosing node. The root has none.
func (n Node[T]) Parent() (Node[T], bool) {
	p := n.entry().parent
	if p == noParent {
		return Node[T]{}, false
	}
	return Node[T]{tree: n.tree, index: p}, true
}

// Children returns the child nodes in display order. Leaves return nil.
func (n Node[T]) Children() []Node[T] {
	idx := n.entry().children
	if len(idx) == 0 {
		return nil
	}
	out := make([]Node[T], len(idx))
	for i, c := range idx {
		out[i] = Node[T]{tree: n.tree, index: c}
	}
	return out
}

// Child looks up a direct child by id. Sibling ids are not required to be
// unique: the scan runs in declaration order and the first match wins.
// Leaves and unknown ids report false.
func (n Node[T]) Child(id T) (Node[T], bool) {
	for _, c := range n.entry().children {
		if n.tree.nodes[c].id == id {
			return Node[T]{tree: n.tree, index: c}, true
		}
	}
	return Node[T]{}, false
}

// Depth returns the number of ancestors of n. The root has depth 0.
func (n Node[T]) Depth() int {
	depth := 0
	for p := n.entry().parent; p != noParent; p = n.tree.nodes[p].parent {
		depth++
	}
	return depth
}

// Path returns the breadcrumb from the root down to and including n.
func (n Node[T]) Path() []Node[T] {
	path := make([]Node[T], n.Depth()+1)
	cur := n
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur, _ = cur.Parent()
	}
	return path
}

// IsAncestorOf reports whether n lies on the path from the root to other.
// A node is its own ancestor.
func (n Node[T]) IsAncestorOf(other Node[T]) bool {
	if n.tree != other.tree || n.tree == nil {
		return false
	}
	for i := other.index; i != noParent; i = n.tree.nodes[i].parent {
		if i == n.index {
			return true
		}
	}
	return false
}

func (n Node[T]) safeTitle() string {
	if n.IsZero() {
		return "<none>"
	}
	return n.Title()
}
