package main

import (
	"time"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/focus"
)

const (
	menuID    = 100
	menuWidth = 200
	menuGap   = 20
	rowHeight = 20
)

// defaultConfig is the main container used without --config: a vertical
// list of 400x20 rows.
func defaultConfig() shelf.Config {
	row := &shelf.Template{Name: "row", Width: 400, Height: rowHeight}
	cfg := shelf.DefaultConfig()
	cfg.ID = 1
	cfg.Viewport = shelf.Rect{Width: 400, Height: 10 * rowHeight}
	cfg.Layouts = shelf.LayoutSet{{Template: row}}
	cfg.FocusedLayouts = cfg.Layouts
	return cfg
}

// demo wires a group menu and the configured container into one focus
// group. The menu sits left of the container.
type demo struct {
	catalog *catalog
	menu    *shelf.Container
	main    *shelf.Container
	group   *focus.Group
	pages   *shelf.PageIndicator
}

func newDemo(cfg shelf.Config, cat *catalog, langs ...string) (*demo, error) {
	if cfg.ID == 0 {
		cfg.ID = 1
	}
	if cfg.Navigation.Left == 0 {
		cfg.Navigation.Left = menuID
	}
	cfg.Viewport.X += menuWidth + menuGap

	main, err := shelf.New(cfg)
	if err != nil {
		return nil, err
	}

	menuRow := &shelf.Template{Name: "menu", Width: menuWidth, Height: rowHeight}
	menu := shelf.NewList(shelf.Config{
		ID:             menuID,
		ScrollTime:     cfg.ScrollTime,
		Viewport:       shelf.Rect{Y: cfg.Viewport.Y, Width: menuWidth, Height: cfg.Viewport.Height},
		Navigation:     shelf.Navigation{Right: cfg.ID},
		Layouts:        shelf.LayoutSet{{Template: menuRow}},
		FocusedLayouts: shelf.LayoutSet{{Template: menuRow}},
	})
	menu.SetItems(shelf.MenuItems(cat.names()...))
	main.SetItems(cat.Groups[0].items())

	pages := shelf.NewPageIndicator(langs...)
	pages.Bind(main)

	group := focus.New().Register(menu).Register(main)
	if err := group.Focus(main.ID()); err != nil {
		return nil, err
	}

	return &demo{
		catalog: cat,
		menu:    menu,
		main:    main,
		group:   group,
		pages:   pages,
	}, nil
}

// focused returns the container holding input focus.
func (d *demo) focused() *shelf.Container {
	if d.group.Focused().ID() == menuID {
		return d.menu
	}
	return d.main
}

// open binds the group under the menu cursor to the main container and
// moves focus there.
func (d *demo) open() bool {
	if d.focused() != d.menu {
		return false
	}
	idx := d.menu.SelectedIndex()
	if idx < 0 || idx >= len(d.catalog.Groups) {
		return false
	}

	g := d.catalog.Groups[idx]
	d.main.Reset()
	d.main.SetItems(g.items())
	shelf.GetLogger().Info("Opened group", "group", g.Name, "items", len(g.Items))

	d.group.Stack().Push(menuID, "open")
	return d.group.Focus(d.main.ID()) == nil
}

func (d *demo) jump(r rune) bool {
	return d.focused().OnJumpLetter(r)
}

func (d *demo) render(menu, main shelf.RenderContext, now time.Duration) {
	d.menu.Render(menu, now)
	d.main.Render(main, now)
}

// status is the line under the containers: scroll hints, page label and
// current item.
func (d *demo) status() string {
	var hints string
	for _, dir := range []constants.Direction{
		constants.DirectionUp, constants.DirectionDown,
		constants.DirectionLeft, constants.DirectionRight,
	} {
		if d.main.HasMore(dir) {
			hints += constants.ScrollHint(dir)
		}
	}

	label := d.pages.Label()
	if hints != "" {
		label = hints + " " + label
	}
	if item := d.main.SelectedItem(); item != nil {
		label += "  " + item.Label()
	}
	return label
}
