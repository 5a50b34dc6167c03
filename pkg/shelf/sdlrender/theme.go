package sdlrender

import (
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
)

// Theme defines the colors and font a Context draws with.
type Theme struct {
	HighlightColor       sdl.Color // Focused item background
	InactiveColor        sdl.Color // Focused item background while the container lacks focus
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on the focused item
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the label font
	FontSize             int       // Label point size
}

// DefaultTheme returns a dark theme with a white highlight.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		InactiveColor:        HexToColor(0x505050),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		BackgroundColor:      HexToColor(0x000000),
		FontPath:             fontPath,
		FontSize:             28,
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

type themeFile struct {
	Highlight       *uint32 `toml:"highlight"`
	Inactive        *uint32 `toml:"inactive"`
	Text            *uint32 `toml:"text"`
	HighlightedText *uint32 `toml:"highlighted_text"`
	Background      *uint32 `toml:"background"`
	Font            string  `toml:"font"`
	FontSize        int     `toml:"font_size"`
}

// LoadTheme reads a theme file. Colors are written as hex integers
// (highlight = 0x008080); missing keys keep the DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, shelf.NewConfigError("load_theme", err)
	}

	theme := DefaultTheme(tf.Font)
	for _, c := range []struct {
		src *uint32
		dst *sdl.Color
	}{
		{tf.Highlight, &theme.HighlightColor},
		{tf.Inactive, &theme.InactiveColor},
		{tf.Text, &theme.TextColor},
		{tf.HighlightedText, &theme.HighlightedTextColor},
		{tf.Background, &theme.BackgroundColor},
	} {
		if c.src != nil {
			*c.dst = HexToColor(*c.src)
		}
	}
	if tf.FontSize > 0 {
		theme.FontSize = tf.FontSize
	}
	return theme, nil
}
