package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles[T comparable](nodes []Node[T]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Title()
	}
	return out
}

func TestScopedBuilderMatchesSpecLiteral(t *testing.T) {
	literal := Build(
		Spec[string]{ID: "about", Title: "About", Icon: "language"},
		Spec[string]{ID: "share", Title: "Share", Icon: "share", Items: []Spec[string]{
			{ID: "to_clipboard", Title: "To Clipboard", Items: []Spec[string]{
				{ID: "pdf", Title: "PDF"},
				{ID: "epub", Title: "EPUB"},
			}},
			{ID: "as_a_file", Title: "As a file", Items: []Spec[string]{
				{ID: "pdf", Title: "PDF"},
				{ID: "epub", Title: "EPUB"},
			}},
		}},
	)
	scoped := shareTree()

	require.Equal(t, literal.Len(), scoped.Len())

	var a, b []string
	literal.Walk(func(n Node[string]) bool {
		icon, _ := n.Icon()
		a = append(a, n.ID()+"/"+n.Title()+"/"+string(icon))
		return true
	})
	scoped.Walk(func(n Node[string]) bool {
		icon, _ := n.Icon()
		b = append(b, n.ID()+"/"+n.Title()+"/"+string(icon))
		return true
	})
	assert.Equal(t, a, b)
}

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	tree := New(func(m *Scope[string]) {
		m.Item("c", "C")
		m.Item("a", "A")
		m.Item("b", "B")
	})
	assert.Equal(t, []string{"C", "A", "B"}, titles(tree.Root().Children()))
}

func TestBuildLinksParents(t *testing.T) {
	tree := shareTree()
	share := mustChild(t, tree.Root(), "share")

	for _, c := range share.Children() {
		parent, ok := c.Parent()
		require.True(t, ok)
		assert.Equal(t, share, parent)
	}

	_, ok := tree.Root().Parent()
	assert.False(t, ok)
	assert.False(t, tree.Root().HasParent())
}

func TestEmptyBuild(t *testing.T) {
	tree := Build[string]()
	assert.Equal(t, 1, tree.Len())
	assert.True(t, tree.Root().IsLeaf())

	assert.Equal(t, 1, New[string](nil).Len())
}

func TestEmptyItemsIsLeaf(t *testing.T) {
	tree := Build(Spec[string]{ID: "x", Title: "X", Items: []Spec[string]{}})
	assert.True(t, mustChild(t, tree.Root(), "x").IsLeaf())
}

func TestNilNestedFuncIgnored(t *testing.T) {
	tree := New(func(m *Scope[string]) {
		m.Item("x", "X", nil)
	})
	assert.True(t, mustChild(t, tree.Root(), "x").IsLeaf())
}
