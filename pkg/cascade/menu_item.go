package cascade

import "github.com/BrandonKowalski/cascade/pkg/cascade/constants"

// Row is one line of the currently displayed level.
type Row[T comparable] struct {
	Kind     RowKind
	ID       T       // Child id; unset for the back row
	Title    string  // Localized label
	Icon     IconRef // Leading icon, empty for none
	Trailing IconRef // Trailing marker (arrow on submenu rows)

	owner Node[T] // Level the row was rendered from
	node  Node[T] // Target node
}

// Owner returns the node whose level this row was rendered from.
func (r Row[T]) Owner() Node[T] {
	return r.owner
}

// Node returns the node the row points at: the parent for the back row,
// the child otherwise.
func (r Row[T]) Node() Node[T] {
	return r.node
}

// View is everything a presentation adapter needs to draw one level.
type View[T comparable] struct {
	Title  string   // Localized title of the current node; empty at the root
	Back   *Row[T]  // Present iff the current node has a parent
	Items  []Row[T] // Children in display order
	Path   []string // Localized breadcrumb titles below the root, outermost first
	Depth  int
	Colors Colors
	Width  float32
}

func (m *Menu[T]) view(cur Node[T]) View[T] {
	v := View[T]{
		Depth:  cur.Depth(),
		Colors: m.settings.colors,
		Width:  m.settings.width,
	}

	if parent, ok := cur.Parent(); ok {
		v.Title = m.title(cur)
		v.Back = &Row[T]{
			Kind:  RowBack,
			Title: m.title(parent),
			Icon:  constants.ArrowLeft,
			owner: cur,
			node:  parent,
		}
		for _, n := range cur.Path()[1:] {
			v.Path = append(v.Path, m.title(n))
		}
	}

	for _, child := range cur.Children() {
		row := Row[T]{
			ID:    child.ID(),
			Title: m.title(child),
			owner: cur,
			node:  child,
		}
		row.Icon, _ = child.Icon()
		if child.HasChildren() {
			row.Kind = RowSubmenu
			row.Trailing = constants.ArrowRight
		} else {
			row.Kind = RowLeaf
		}
		v.Items = append(v.Items, row)
	}

	return v
}

func (m *Menu[T]) title(n Node[T]) string {
	return m.settings.localizer.Title(n.Title())
}
