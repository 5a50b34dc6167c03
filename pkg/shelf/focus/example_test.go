package focus_test

import (
	"fmt"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/focus"
)

func row() shelf.LayoutSet {
	return shelf.LayoutSet{{Template: &shelf.Template{Name: "row", Width: 100, Height: 10}}}
}

// Example moves focus from a menu list to the grid on its right and back.
func Example() {
	menu := shelf.NewList(shelf.Config{
		ID:         1,
		Layouts:    row(),
		Viewport:   shelf.Rect{Width: 100, Height: 30},
		Navigation: shelf.Navigation{Right: 2},
	})
	menu.SetItems(shelf.MenuItems("Games", "Movies", "Music"))

	grid := shelf.NewPanel(shelf.Config{
		ID:         2,
		Layouts:    row(),
		Viewport:   shelf.Rect{X: 100, Width: 300, Height: 30},
		Navigation: shelf.Navigation{Left: 1},
	})
	grid.SetItems(shelf.MenuItems("Portal", "Half-Life", "Braid", "Limbo"))

	g := focus.New()
	g.Register(menu).Register(grid)
	g.OnTransition(func(from, to int, stack *focus.Stack) {
		fmt.Printf("focus %d -> %d, history %d\n", from, to, stack.Len())
	})

	_ = g.Focus(1)
	g.OnDirection(constants.DirectionDown)
	fmt.Println("menu:", menu.SelectedItem().Label())

	// The list has no cross axis, so right leaves it.
	g.OnDirection(constants.DirectionRight)
	g.OnDirection(constants.DirectionRight)
	fmt.Println("grid:", grid.SelectedItem().Label())

	g.Back()
	fmt.Println("menu focused:", menu.HasFocus())

	// Output:
	// focus 0 -> 1, history 0
	// menu: Movies
	// focus 1 -> 2, history 1
	// grid: Half-Life
	// focus 2 -> 1, history 0
	// menu focused: true
}
