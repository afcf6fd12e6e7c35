package cascade

// Spec describes one menu entry and, through Items, its whole subtree.
// An entry is a submenu iff Items is non-empty, so a submenu without
// children cannot be declared.
type Spec[T comparable] struct {
	ID    T
	Title string
	Icon  IconRef
	Items []Spec[T]
}

// Build assembles a tree under a virtual root from the given top-level
// entries. Nodes are created top-down: each entry is linked to its parent
// and appended to the parent's children before its own entries are built.
//
// Sibling ids are not checked for uniqueness; see Node.Child.
func Build[T comparable](items ...Spec[T]) *Tree[T] {
	t := &Tree[T]{
		nodes: make([]entry[T], 1, 1+countSpecs(items)),
	}
	t.nodes[0].parent = noParent
	t.attach(0, items)
	return t
}

func (t *Tree[T]) attach(parent int, items []Spec[T]) {
	for _, s := range items {
		index := len(t.nodes)
		t.nodes = append(t.nodes, entry[T]{
			id:     s.ID,
			title:  s.Title,
			icon:   s.Icon,
			parent: parent,
		})
		t.nodes[parent].children = append(t.nodes[parent].children, index)
		t.attach(index, s.Items)
	}
}

func countSpecs[T comparable](items []Spec[T]) int {
	n := len(items)
	for _, s := range items {
		n += countSpecs(s.Items)
	}
	return n
}

// Scope collects the entries declared inside one level of a nested New call.
// A Scope is only valid inside the func it was passed to.
type Scope[T comparable] struct {
	spec *Spec[T]
}

// Icon sets the icon of the entry this scope belongs to. At the top level
// it sets the icon of the virtual root, which presentation adapters ignore.
func (s *Scope[T]) Icon(ref IconRef) {
	s.spec.Icon = ref
}

// Item declares an entry. Nested funcs declare its icon and children.
func (s *Scope[T]) Item(id T, title string, nested ...func(s *Scope[T])) {
	child := Spec[T]{ID: id, Title: title}
	inner := &Scope[T]{spec: &child}
	for _, fn := range nested {
		if fn != nil {
			fn(inner)
		}
	}
	s.spec.Items = append(s.spec.Items, child)
}

// New builds a tree with the nested declaration style:
//
//	menu := cascade.New(func(m *cascade.Scope[string]) {
//	    m.Item("about", "About", func(s *cascade.Scope[string]) {
//	        s.Icon(constants.Language)
//	    })
//	    m.Item("share", "Share", func(s *cascade.Scope[string]) {
//	        s.Item("pdf", "PDF")
//	    })
//	})
//
// The whole declaration is collected first and then built by Build.
func New[T comparable](declare func(m *Scope[T])) *Tree[T] {
	var root Spec[T]
	if declare != nil {
		declare(&Scope[T]{spec: &root})
	}
	return Build(root.Items...)
}
