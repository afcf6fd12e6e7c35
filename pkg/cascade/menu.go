package cascade

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
	"github.com/BrandonKowalski/cascade/pkg/cascade/i18n"
	"github.com/BrandonKowalski/cascade/pkg/cascade/internal"
)

// Offset positions the dropdown relative to its anchor. It is passed
// through to the presentation layer untouched.
type Offset struct {
	X, Y float32
}

type menuSettings struct {
	name       string
	offset     Offset
	width      float32
	colors     Colors
	localizer  *i18n.Localizer
	logger     *slog.Logger
	registerer prometheus.Registerer
	onDismiss  func()
}

// Option configures a Menu.
type Option func(*menuSettings)

// WithName labels the menu in logs and metrics.
func WithName(name string) Option {
	return func(s *menuSettings) { s.name = name }
}

// WithOffset sets the placement offset relative to the anchor.
func WithOffset(x, y float32) Option {
	return func(s *menuSettings) { s.offset = Offset{X: x, Y: y} }
}

// WithWidth overrides constants.MaxWidth.
func WithWidth(width float32) Option {
	return func(s *menuSettings) {
		if width > 0 {
			s.width = width
		}
	}
}

// WithColors sets the background and content colors.
func WithColors(c Colors) Option {
	return func(s *menuSettings) { s.colors = c }
}

// WithLocalizer translates titles in every View.
func WithLocalizer(l *i18n.Localizer) Option {
	return func(s *menuSettings) { s.localizer = l }
}

// WithLogger replaces the process-wide logger for this menu.
func WithLogger(l *slog.Logger) Option {
	return func(s *menuSettings) { s.logger = l }
}

// WithRegisterer registers the menu counters on reg instead of a private
// registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *menuSettings) { s.registerer = reg }
}

// WithOnDismiss sets the func Dismiss calls after closing the menu.
func WithOnDismiss(fn func()) Option {
	return func(s *menuSettings) { s.onDismiss = fn }
}

// Menu is one cascading dropdown: a tree, the cursor over it, and the
// open/closed flag. Opening a closed menu always starts at the root.
//
// IsOpen may be called from any goroutine. Everything else belongs to the
// goroutine handling user input.
type Menu[T comparable] struct {
	tree     *Tree[T]
	state    *State[T]
	open     atomic.Bool
	onSelect func(T)
	settings menuSettings
	metrics  *internal.MenuMetrics
	log      *slog.Logger
}

// NewMenu creates a closed menu over tree. onItemSelected is called once
// for every leaf activation, before the menu closes.
func NewMenu[T comparable](tree *Tree[T], onItemSelected func(T), opts ...Option) *Menu[T] {
	s := menuSettings{
		name:   constants.DefaultMenuName,
		offset: Offset{X: constants.DefaultOffsetX, Y: constants.DefaultOffsetY},
		width:  constants.MaxWidth,
		colors: DefaultColors(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = internal.GetLogger()
	}
	if s.registerer == nil {
		s.registerer = prometheus.NewRegistry()
	}

	m := &Menu[T]{
		tree:     tree,
		state:    NewState(tree),
		onSelect: onItemSelected,
		settings: s,
		metrics:  internal.NewMenuMetrics(s.registerer),
		log:      s.logger.With("menu", s.name),
	}

	m.state.OnChange(func(tr Transition[T]) {
		m.metrics.Transitions.Increment(m.settings.name, tr.Direction.String())
		m.log.Debug("menu transition",
			"from", tr.From.Title(),
			"to", tr.To.Title(),
			"direction", tr.Direction.String(),
			"depth", tr.To.Depth())
	})

	return m
}

// Tree returns the menu definition.
func (m *Menu[T]) Tree() *Tree[T] {
	return m.tree
}

// State returns the navigation cursor. Observers registered on it see every
// move made through the menu.
func (m *Menu[T]) State() *State[T] {
	return m.state
}

// Offset returns the configured placement offset.
func (m *Menu[T]) Offset() Offset {
	return m.settings.offset
}

// Width returns the configured surface width.
func (m *Menu[T]) Width() float32 {
	return m.settings.width
}

// Colors returns the configured colors.
func (m *Menu[T]) Colors() Colors {
	return m.settings.colors
}

// IsOpen reports whether the menu is shown.
func (m *Menu[T]) IsOpen() bool {
	return m.open.Load()
}

// SetOpen mirrors an external isOpen flag onto the menu.
func (m *Menu[T]) SetOpen(open bool) {
	if open {
		m.Open()
	} else {
		m.Close()
	}
}

// Open shows the menu. A closed-to-open transition resets the cursor to the
// root; opening an open menu changes nothing.
func (m *Menu[T]) Open() {
	if !m.open.CompareAndSwap(false, true) {
		return
	}
	m.state.Reset()
	m.metrics.Opens.Increment(m.settings.name)
	m.log.Debug("menu opened")
}

// Close hides the menu. The cursor is left where it is until the next Open.
func (m *Menu[T]) Close() {
	if m.open.CompareAndSwap(true, false) {
		m.log.Debug("menu closed", "at", m.state.Current().Title())
	}
}

// Dismiss closes the menu in response to an outside tap and notifies the
// OnDismiss func, if any.
func (m *Menu[T]) Dismiss() {
	m.Close()
	if m.settings.onDismiss != nil {
		m.settings.onDismiss()
	}
}

// View returns the render surface for the current node.
func (m *Menu[T]) View() View[T] {
	return m.view(m.state.Current())
}

// Back moves up one level and reports whether it moved.
func (m *Menu[T]) Back() bool {
	if !m.IsOpen() {
		return false
	}
	return m.state.Ascend()
}

// Activate handles a tap on a row taken from View. A row rendered from a
// level other than the current one no longer matches the tree and is
// rejected with ErrInvalidItem.
func (m *Menu[T]) Activate(row Row[T]) (ActivateResult, error) {
	if !m.IsOpen() {
		return ActivateNone, &ItemError{Op: "activate", ID: row.ID, Err: ErrClosed}
	}

	cur := m.state.Current()
	if row.owner != cur {
		m.log.Warn("stale row activated", "row", row.Title, "current", cur.Title())
		return ActivateNone, newItemError("activate", row.ID, cur, ErrInvalidItem)
	}

	switch row.Kind {
	case RowBack:
		if !m.state.Ascend() {
			return ActivateNone, nil
		}
		return ActivateAscended, nil

	case RowSubmenu:
		if err := m.state.Descend(row.ID); err != nil {
			m.log.Warn("descend failed", "error", err)
			return ActivateNone, err
		}
		return ActivateDescended, nil

	case RowLeaf:
		id, err := m.state.Select(row.ID)
		if err != nil {
			m.log.Warn("select failed", "error", err)
			return ActivateNone, err
		}
		m.metrics.Selections.Increment(m.settings.name)
		m.log.Info("menu item selected", "item", row.Title)
		if m.onSelect != nil {
			m.onSelect(id)
		}
		m.Close()
		return ActivateSelected, nil
	}

	return ActivateNone, newItemError("activate", row.ID, cur, ErrInvalidItem)
}
