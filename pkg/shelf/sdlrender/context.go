package sdlrender

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

// Context draws container slots with an SDL renderer: a filled highlight
// behind the focused slot, an optional icon and the item label.
type Context struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	theme    Theme
	cache    *TextureCache
	padding  int32
	logger   *slog.Logger
}

// NewContext creates a render context. The caller keeps ownership of
// renderer and font.
func NewContext(renderer *sdl.Renderer, font *ttf.Font, theme Theme) *Context {
	return &Context{
		renderer: renderer,
		font:     font,
		theme:    theme,
		cache:    NewTextureCache(),
		padding:  8,
		logger:   shelf.GetLogger().With("component", "sdlrender"),
	}
}

func (c *Context) Measure(t *shelf.Template, o constants.Orientation) float64 {
	return t.Size(o)
}

func (c *Context) Begin(clip shelf.Rect) {
	c.renderer.SetClipRect(toRect(clip))
}

func (c *Context) Draw(s shelf.Slot, _ time.Duration) {
	dst := toRect(s.Bounds)

	textColor := c.theme.TextColor
	if s.Focused {
		bg := c.theme.InactiveColor
		if s.Active {
			bg = c.theme.HighlightColor
			textColor = c.theme.HighlightedTextColor
		}
		c.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
		c.renderer.FillRect(dst)
	}

	x := dst.X + c.padding
	if iconItem, ok := s.Item.(interface{ Icon() string }); ok && iconItem.Icon() != "" {
		size := dst.H - 2*c.padding
		if tex, _, _, ok := c.iconTexture(iconItem.Icon()); ok && size > 0 {
			c.renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: dst.Y + c.padding, W: size, H: size})
			x += size + c.padding
		}
	}

	maxWidth := dst.X + dst.W - c.padding - x
	if s.Focused && s.Layout != nil && s.Layout.Template.SubFocusCount > 0 {
		maxWidth -= c.drawSubFocus(s.Layout, dst, textColor)
	}

	if tex, w, h, ok := c.labelTexture(s.Item.Label(), textColor); ok && maxWidth > 0 {
		clipWidth := min(w, maxWidth)
		c.renderer.Copy(tex, &sdl.Rect{W: clipWidth, H: h}, &sdl.Rect{
			X: x,
			Y: dst.Y + (dst.H-h)/2,
			W: clipWidth,
			H: h,
		})
	}
}

func (c *Context) End() {
	c.renderer.SetClipRect(nil)
}

// Destroy frees every cached texture.
func (c *Context) Destroy() {
	c.cache.Destroy()
}

// drawSubFocus draws one marker per sub-focus target at the right edge,
// the active one filled, and returns the width used.
func (c *Context) drawSubFocus(l *shelf.LayoutInstance, dst *sdl.Rect, color sdl.Color) int32 {
	const size = 10
	count := int32(l.Template.SubFocusCount)
	x := dst.X + dst.W - c.padding - count*(size+c.padding)
	y := dst.Y + (dst.H-size)/2

	c.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < count; i++ {
		marker := &sdl.Rect{X: x + i*(size+c.padding), Y: y, W: size, H: size}
		if int(i) == l.SubFocus() {
			c.renderer.FillRect(marker)
		} else {
			c.renderer.DrawRect(marker)
		}
	}
	return count * (size + c.padding)
}

func (c *Context) labelTexture(text string, color sdl.Color) (*sdl.Texture, int32, int32, bool) {
	if text == "" || c.font == nil {
		return nil, 0, 0, false
	}

	key := fmt.Sprintf("label:%02X%02X%02X%02X:%s", color.R, color.G, color.B, color.A, text)
	if tex, w, h, ok := c.cache.Get(key); ok {
		return tex, w, h, true
	}

	surface, err := c.font.RenderUTF8Blended(text, color)
	if err != nil {
		c.logger.Error("Failed to render label", "label", text, "error", err)
		return nil, 0, 0, false
	}
	defer surface.Free()

	tex, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		c.logger.Error("Failed to create label texture", "label", text, "error", err)
		return nil, 0, 0, false
	}
	c.cache.Set(key, tex, surface.W, surface.H)
	return tex, surface.W, surface.H, true
}

func (c *Context) iconTexture(path string) (*sdl.Texture, int32, int32, bool) {
	key := "icon:" + path
	if tex, w, h, ok := c.cache.Get(key); ok {
		return tex, w, h, tex != nil
	}

	tex, err := img.LoadTexture(c.renderer, path)
	if err != nil {
		c.logger.Warn("Failed to load icon", "path", path, "error", err)
		// Remember the failure so the file is not retried every frame.
		c.cache.Set(key, nil, 0, 0)
		return nil, 0, 0, false
	}
	_, _, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return nil, 0, 0, false
	}
	c.cache.Set(key, tex, w, h)
	return tex, w, h, true
}

func toRect(r shelf.Rect) *sdl.Rect {
	return &sdl.Rect{
		X: int32(r.X),
		Y: int32(r.Y),
		W: int32(r.Width),
		H: int32(r.Height),
	}
}
