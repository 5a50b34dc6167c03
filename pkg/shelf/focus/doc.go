// Package focus moves input focus between the controls of one screen.
//
// Each control answers directional input itself first. When it cannot
// handle a move (a list at its last item with a neighbour configured below
// it, an empty grid) the group hands focus to the neighbour the control
// names for that direction and remembers where focus came from.
//
// # Basic Usage
//
//	// Build containers with neighbour ids in their navigation config
//	menu := shelf.NewList(menuCfg)   // id 1, right = 2
//	grid := shelf.NewPanel(gridCfg)  // id 2, left = 1
//
//	g := focus.New()
//	g.Register(menu).Register(grid)
//
//	g.OnTransition(func(from, to int, stack *focus.Stack) {
//	    log.Printf("focus %d -> %d (depth %d)", from, to, stack.Len())
//	})
//
//	if err := g.Focus(1); err != nil {
//	    return err
//	}
//
//	// Feed input; unhandled moves travel to the neighbour
//	g.OnDirection(constants.DirectionRight)
//
//	// Return to the control focus came from
//	g.Back()
//
// A Group satisfies shelf.Navigator, so a shelf.Driver can feed it held
// directions with key repeat.
package focus
