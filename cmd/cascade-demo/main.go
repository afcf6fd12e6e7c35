// Command cascade-demo shows a cascading menu in the terminal.
//
// Press m to open the menu, arrows to move, Enter or Right to activate,
// Left or Backspace to go back, Esc to dismiss and q to quit. Selected ids
// are shown in a snackbar line at the bottom of the screen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/BrandonKowalski/cascade/pkg/cascade"
	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
	"github.com/BrandonKowalski/cascade/pkg/cascade/icon"
)

// Placement of the dropdown below the top bar's overflow anchor.
const (
	menuOffsetX = 8
	menuOffsetY = 0
)

var configPath = flag.String("config", "", "Path to a TOML config (default $CASCADE_CONFIG or cascade.toml if present)")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cascade-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cascade.Init(cfg.InitOptions())
	defer cascade.Close()

	tree, err := cfg.LoadTree(demoMenu())
	if err != nil {
		return err
	}
	cfgOpts, err := cfg.MenuOptions()
	if err != nil {
		return err
	}
	// Config options come last so an offset in the file wins.
	opts := append([]cascade.Option{cascade.WithOffset(menuOffsetX, menuOffsetY)}, cfgOpts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	selections := cascade.NewMailbox[string]()
	menu := cascade.NewMenu(tree, selections.Put, opts...)
	checkIcons(tree, menu.Colors())
	app := newApp(screen, menu)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	// Snackbar consumer: hands each selection back to the event loop.
	g.Go(func() error {
		for {
			id, err := selections.Receive(gCtx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			if err := screen.PostEvent(tcell.NewEventInterrupt(id)); err != nil {
				cascade.GetLogger().Warn("dropped snackbar event", "item", id, "error", err)
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		return app.loop()
	})

	return g.Wait()
}

func loadConfig() (*cascade.Config, error) {
	path := *configPath
	if path == "" {
		path = cascade.DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			return &cascade.Config{}, nil
		}
	}
	return cascade.LoadConfig(path)
}

// demoMenu is the menu shown when no menu_file is configured.
func demoMenu() *cascade.Tree[string] {
	formats := func(s *cascade.Scope[string]) {
		s.Item("pdf", "PDF")
		s.Item("epub", "EPUB")
		s.Item("web page", "Web Page")
		s.Item("microsoft word", "Microsoft Word")
	}

	return cascade.New(func(m *cascade.Scope[string]) {
		m.Item("about", "About", func(s *cascade.Scope[string]) {
			s.Icon(constants.Language)
		})
		m.Item("copy", "Copy", func(s *cascade.Scope[string]) {
			s.Icon(constants.FileCopy)
		})
		m.Item("share", "Share", func(s *cascade.Scope[string]) {
			s.Icon(constants.Share)
			s.Item("to_clipboard", "To Clipboard", formats)
			s.Item("as a file", "As a file", formats)
		})
		m.Item("remove", "Remove", func(s *cascade.Scope[string]) {
			s.Icon(constants.DeleteSweep)
			s.Item("Yep", "Yep", func(s *cascade.Scope[string]) {
				s.Icon(constants.Done)
			})
			s.Item("Go Back", "Go Back", func(s *cascade.Scope[string]) {
				s.Icon(constants.Close)
			})
		})
	})
}

// checkIcons rasterizes every icon the menu refers to and logs the ones that
// cannot be drawn.
func checkIcons(tree *cascade.Tree[string], colors cascade.Colors) {
	log := cascade.GetLogger()
	tree.Walk(func(n cascade.Node[string]) bool {
		ref, ok := n.Icon()
		if !ok {
			return true
		}
		if _, err := icon.Default.Rasterize(string(ref), int(constants.IconSize), colors.Content); err != nil {
			log.Warn("menu icon unavailable", "item", n.ID(), "icon", ref, "error", err)
		}
		return true
	})
}

type app struct {
	screen   tcell.Screen
	menu     *cascade.Menu[string]
	focus    int // Index into the focusable rows of the current view
	snackbar string
	log      *slog.Logger
}

func newApp(screen tcell.Screen, menu *cascade.Menu[string]) *app {
	a := &app{screen: screen, menu: menu, log: cascade.GetLogger()}
	menu.State().OnChange(func(tr cascade.Transition[string]) {
		// Land on the first child going forward and on the back row going back.
		a.focus = 0
		if tr.Direction == cascade.DirectionForward && tr.To.HasParent() {
			a.focus = 1
		}
	})
	return a
}

// rows returns the focusable rows of the current view: the back row first,
// when present, then the items.
func (a *app) rows() []cascade.Row[string] {
	v := a.menu.View()
	var rows []cascade.Row[string]
	if v.Back != nil {
		rows = append(rows, *v.Back)
	}
	return append(rows, v.Items...)
}

func (a *app) loop() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if id, ok := ev.Data().(string); ok {
				a.snackbar = fmt.Sprintf("Selected: %s", id)
			}
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		return true
	}

	if !a.menu.IsOpen() {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
			a.menu.Open()
			a.focus = 0
		}
		return false
	}

	rows := a.rows()
	switch ev.Key() {
	case tcell.KeyUp:
		if a.focus > 0 {
			a.focus--
		}
	case tcell.KeyDown:
		if a.focus < len(rows)-1 {
			a.focus++
		}
	case tcell.KeyEnter, tcell.KeyRight:
		if a.focus < len(rows) {
			if _, err := a.menu.Activate(rows[a.focus]); err != nil {
				a.log.Error("activate failed", "error", err)
			}
		}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		a.menu.Back()
	case tcell.KeyEscape:
		a.menu.Dismiss()
	}
	return false
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	bar := tcell.StyleDefault.Reverse(true)
	fill(a.screen, 0, 0, width, bar)
	title := "Cascade Menu"
	text(a.screen, (width-len(title))/2, 0, title, bar)
	text(a.screen, width-3, 0, " ⋮ ", bar)

	if a.menu.IsOpen() {
		a.drawMenu(width)
	} else {
		text(a.screen, 1, 2, "press m to open the menu, q to quit", tcell.StyleDefault.Dim(true))
	}

	if a.snackbar != "" {
		text(a.screen, 1, height-1, a.snackbar, tcell.StyleDefault.Bold(true))
	}

	a.screen.Show()
}

// drawMenu renders the view anchored to the top-right corner, one terminal
// cell per 8 units of configured width and offset.
func (a *app) drawMenu(screenWidth int) {
	v := a.menu.View()
	off := a.menu.Offset()
	cols := int(v.Width) / 8
	x := screenWidth - cols - int(off.X)/8
	y := 1 + int(off.Y)/16

	bg := tcell.NewRGBColor(int32(v.Colors.Background.R), int32(v.Colors.Background.G), int32(v.Colors.Background.B))
	fg := tcell.NewRGBColor(int32(v.Colors.Content.R), int32(v.Colors.Content.G), int32(v.Colors.Content.B))
	base := tcell.StyleDefault.Background(bg).Foreground(fg)

	for i, row := range a.rows() {
		style := base
		if row.Kind == cascade.RowBack {
			style = style.Dim(true)
		}
		if i == a.focus {
			style = style.Reverse(true)
		}

		fill(a.screen, x, y+i, cols, style)
		text(a.screen, x+1, y+i, rowLabel(row), style)
	}
}

func rowLabel(row cascade.Row[string]) string {
	switch row.Kind {
	case cascade.RowBack:
		return "◂ " + row.Title
	case cascade.RowSubmenu:
		return row.Title + " ▸"
	default:
		return row.Title
	}
}

func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

func text(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
