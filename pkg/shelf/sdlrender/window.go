package sdlrender

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

type WindowOptions struct {
	Borderless bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	Hidden     bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	return flags
}

// Window wraps the SDL window, renderer and label font.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Font            *ttf.Font
	Theme           Theme
	hasVSync        bool
	lastPresentTime uint64
}

// OpenWindow initializes SDL, SDL_ttf and SDL_image and opens a window.
func OpenWindow(title string, width, height int32, opts WindowOptions, theme Theme) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	if opts.IsZero() {
		if constants.IsDevMode() {
			opts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			opts = WindowOptions{Resizable: true}
		}
	}

	logger := shelf.GetLogger()
	logger.Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, opts.ToSDLFlags())
	if err != nil {
		closeSubsystems()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		closeSubsystems()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	font, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		closeSubsystems()
		return nil, fmt.Errorf("open font %q: %w", theme.FontPath, err)
	}

	return &Window{
		Window:   window,
		Renderer: renderer,
		Font:     font,
		Theme:    theme,
		hasVSync: vsync,
	}, nil
}

// Clear fills the window with the theme background.
func (w *Window) Clear() {
	bg := w.Theme.BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close releases the font, renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Font.Close()
	w.Renderer.Destroy()
	w.Window.Destroy()
	closeSubsystems()
}

func closeSubsystems() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
