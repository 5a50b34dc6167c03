package main

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/sdlrender"
)

const windowMargin = 20

var sdlDirections = map[sdl.Keycode]constants.Direction{
	sdl.K_UP:    constants.DirectionUp,
	sdl.K_DOWN:  constants.DirectionDown,
	sdl.K_LEFT:  constants.DirectionLeft,
	sdl.K_RIGHT: constants.DirectionRight,
}

// runSDL opens a window sized to the demo's viewports and runs the frame
// loop until the window is closed or Escape is pressed with no history.
func runSDL(d *demo, theme sdlrender.Theme) error {
	vp := d.main.Viewport()
	width := int32(vp.X + vp.Width + windowMargin)
	height := int32(max(vp.Y+vp.Height, d.menu.Viewport().Height) + windowMargin)

	win, err := sdlrender.OpenWindow("shelfdemo", width, height, sdlrender.WindowOptions{}, theme)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx := sdlrender.NewContext(win.Renderer, win.Font, theme)
	defer ctx.Destroy()

	driver := shelf.NewDriver(d.group)
	sdl.StartTextInput()
	defer sdl.StopTextInput()

	start := time.Now()
	for {
		now := time.Since(start)

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if dir, ok := sdlDirections[e.Keysym.Sym]; ok {
					switch {
					case e.State == sdl.PRESSED && e.Repeat == 0:
						driver.Press(dir, now)
					case e.State == sdl.RELEASED:
						driver.Release(dir, now)
					}
					continue
				}
				if e.State != sdl.PRESSED {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					if !d.group.Back() {
						return nil
					}
					driver.Reset(now)
				case sdl.K_RETURN:
					if d.open() {
						driver.Reset(now)
					}
				case sdl.K_PAGEUP:
					d.pages.Flip(-1)
				case sdl.K_PAGEDOWN:
					d.pages.Flip(1)
				}

			case *sdl.TextInputEvent:
				if r := []rune(e.GetText()); len(r) > 0 {
					d.jump(r[0])
				}
			}
		}

		driver.Update(now)

		win.Clear()
		d.render(ctx, ctx, now)
		win.Present()
	}
}
