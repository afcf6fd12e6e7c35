package cascade

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
	"github.com/BrandonKowalski/cascade/pkg/cascade/i18n"
	"github.com/BrandonKowalski/cascade/pkg/cascade/internal"
)

func rowByID[T comparable](t *testing.T, v View[T], id T) Row[T] {
	t.Helper()
	for _, r := range v.Items {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no row %v in %q", id, v.Title)
	return Row[T]{}
}

func TestMenuEndToEnd(t *testing.T) {
	var selected []string
	closedOnSelect := false

	var m *Menu[string]
	m = NewMenu(shareTree(), func(id string) {
		selected = append(selected, id)
		closedOnSelect = !m.IsOpen()
	})

	m.Open()
	require.True(t, m.IsOpen())
	assert.Equal(t, m.State().Root(), m.State().Current())

	_, err := m.Activate(rowByID(t, m.View(), "share"))
	require.NoError(t, err)
	cur := m.State().Current()
	assert.Equal(t, "Share", cur.Title())
	assert.True(t, cur.HasParent())

	res, err := m.Activate(rowByID(t, m.View(), "to_clipboard"))
	require.NoError(t, err)
	assert.Equal(t, ActivateDescended, res)
	assert.Equal(t, []string{"PDF", "EPUB"}, titles(m.State().Current().Children()))

	res, err = m.Activate(rowByID(t, m.View(), "pdf"))
	require.NoError(t, err)
	assert.Equal(t, ActivateSelected, res)
	assert.Equal(t, []string{"pdf"}, selected)
	assert.False(t, closedOnSelect, "callback runs before the menu closes")
	assert.False(t, m.IsOpen())

	m.Open()
	assert.Equal(t, m.State().Root(), m.State().Current())
	assert.NotEqual(t, "To Clipboard", m.State().Current().Title())
}

func TestMenuView(t *testing.T) {
	m := NewMenu(shareTree(), nil)
	m.Open()

	v := m.View()
	assert.Nil(t, v.Back)
	assert.Empty(t, v.Title)
	assert.Empty(t, v.Path)
	assert.Equal(t, constants.MaxWidth, v.Width)
	require.Len(t, v.Items, 2)

	about := v.Items[0]
	assert.Equal(t, RowLeaf, about.Kind)
	assert.Equal(t, IconRef("language"), about.Icon)
	assert.Empty(t, about.Trailing)

	share := v.Items[1]
	assert.Equal(t, RowSubmenu, share.Kind)
	assert.Equal(t, IconRef(constants.ArrowRight), share.Trailing)

	_, err := m.Activate(share)
	require.NoError(t, err)
	_, err = m.Activate(rowByID(t, m.View(), "as_a_file"))
	require.NoError(t, err)

	v = m.View()
	require.NotNil(t, v.Back)
	assert.Equal(t, RowBack, v.Back.Kind)
	assert.Equal(t, "Share", v.Back.Title, "back row carries the parent title")
	assert.Equal(t, IconRef(constants.ArrowLeft), v.Back.Icon)
	assert.Equal(t, "As a file", v.Title)
	assert.Equal(t, []string{"Share", "As a file"}, v.Path)
	assert.Equal(t, 2, v.Depth)

	res, err := m.Activate(*v.Back)
	require.NoError(t, err)
	assert.Equal(t, ActivateAscended, res)
	assert.Equal(t, "Share", m.State().Current().Title())
}

func TestMenuRejectsStaleRow(t *testing.T) {
	m := NewMenu(shareTree(), func(string) { t.Fatal("must not select") })
	m.Open()

	rootView := m.View()
	_, err := m.Activate(rowByID(t, rootView, "share"))
	require.NoError(t, err)

	_, err = m.Activate(rowByID(t, rootView, "about"))
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Equal(t, "Share", m.State().Current().Title())
}

func TestMenuRejectsRowFromIdenticalMenu(t *testing.T) {
	a := NewMenu(shareTree(), nil)
	b := NewMenu(shareTree(), nil)
	a.Open()
	b.Open()

	_, err := b.Activate(rowByID(t, a.View(), "share"))
	assert.True(t, IsInvalidItem(err))
	assert.False(t, b.State().Current().HasParent())
}

func TestMenuClosed(t *testing.T) {
	m := NewMenu(shareTree(), func(string) { t.Fatal("must not select") })

	_, err := m.Activate(rowByID(t, m.View(), "about"))
	assert.True(t, IsClosed(err))
	assert.False(t, m.Back())

	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, "about", itemErr.ID)
	assert.Equal(t, "activate", itemErr.Op)
}

func TestMenuOpenWhenOpenKeepsPosition(t *testing.T) {
	m := NewMenu(shareTree(), nil)
	m.Open()
	_, err := m.Activate(rowByID(t, m.View(), "share"))
	require.NoError(t, err)

	m.Open()
	assert.Equal(t, "Share", m.State().Current().Title())

	m.SetOpen(false)
	m.SetOpen(true)
	assert.Equal(t, m.State().Root(), m.State().Current())
}

func TestMenuDismiss(t *testing.T) {
	dismissed := 0
	m := NewMenu(shareTree(), nil, WithOnDismiss(func() { dismissed++ }))
	m.Open()
	m.Dismiss()

	assert.False(t, m.IsOpen())
	assert.Equal(t, 1, dismissed)
}

func TestMenuBack(t *testing.T) {
	m := NewMenu(shareTree(), nil)
	m.Open()
	assert.False(t, m.Back())

	_, err := m.Activate(rowByID(t, m.View(), "share"))
	require.NoError(t, err)
	assert.True(t, m.Back())
	assert.Equal(t, m.State().Root(), m.State().Current())
}

func TestMenuOptions(t *testing.T) {
	colors := Colors{Background: HexToColor(0x000000), Content: HexToColor(0xFFFFFF)}
	m := NewMenu(shareTree(), nil,
		WithOffset(4, 48),
		WithWidth(240),
		WithWidth(-1),
		WithColors(colors),
	)

	assert.Equal(t, Offset{X: 4, Y: 48}, m.Offset())
	assert.Equal(t, float32(240), m.Width())
	assert.Equal(t, colors, m.Colors())
	assert.Equal(t, colors, m.View().Colors)
}

func TestMenuMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMenu(shareTree(), nil, WithRegisterer(reg), WithName("overflow"))
	// A second menu on the same registry reuses the collectors.
	other := NewMenu(shareTree(), nil, WithRegisterer(reg), WithName("other"))
	other.Open()

	m.Open()
	_, err := m.Activate(rowByID(t, m.View(), "share"))
	require.NoError(t, err)
	m.Back()
	_, err = m.Activate(rowByID(t, m.View(), "about"))
	require.NoError(t, err)

	counts := map[string]int{
		internal.SelectionsMetric:  1, // overflow
		internal.OpensMetric:       2, // overflow, other
		internal.TransitionsMetric: 2, // overflow forward, overflow backward
	}
	for name, want := range counts {
		got, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestMenuLocalizedTitles(t *testing.T) {
	loc := i18n.New("es")
	require.NoError(t, loc.AddMessages("active.es.toml", []byte(`
Share = "Compartir"
About = "Acerca de"
`)))

	m := NewMenu(shareTree(), nil, WithLocalizer(loc))
	m.Open()

	v := m.View()
	assert.Equal(t, "Acerca de", v.Items[0].Title)
	assert.Equal(t, "Compartir", v.Items[1].Title)

	_, err := m.Activate(v.Items[1])
	require.NoError(t, err)
	v = m.View()
	assert.Equal(t, "Compartir", v.Title)
	assert.Equal(t, "To Clipboard", v.Items[0].Title, "untranslated titles pass through")
	assert.Equal(t, "Share", m.State().Current().Title(), "the tree keeps source titles")
}
