package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/sdlrender"
)

type rootOptions struct {
	configPath string
	itemsPath  string
	langs      []string
	logLevel   string
	logPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "shelfdemo",
		Short: "Browse an item catalog with shelf containers",
		Long: `shelfdemo shows a group menu next to a list, panel or wrapping list
container described by a TOML file, rendered in the terminal.

Keys: arrows move, enter opens a group, esc goes back, pgup/pgdown flip
pages, letters jump to matching items, ctrl+c quits.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			shelf.Init(shelf.Options{
				LogPath:   opts.logPath,
				LogLevel:  opts.logLevel,
				LogOutput: io.Discard,
			})
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			shelf.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.demo()
			if err != nil {
				return err
			}
			return runTUI(d)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "container config file (TOML)")
	flags.StringVarP(&opts.itemsPath, "items", "i", "", "item catalog file (YAML)")
	flags.StringSliceVar(&opts.langs, "lang", []string{"en"}, "preferred languages for the page label")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logPath, "log-path", "", "write logs to this file")

	cmd.AddCommand(newSDLCmd(opts))
	return cmd
}

func newSDLCmd(opts *rootOptions) *cobra.Command {
	var themePath, fontPath string

	cmd := &cobra.Command{
		Use:   "sdl",
		Short: "Render the demo in an SDL window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := sdlrender.DefaultTheme(fontPath)
			if themePath != "" {
				var err error
				if theme, err = sdlrender.LoadTheme(themePath); err != nil {
					return err
				}
				if fontPath != "" {
					theme.FontPath = fontPath
				}
			}
			if theme.FontPath == "" {
				return fmt.Errorf("a font is required: pass --font or set font in the theme")
			}

			d, err := opts.demo()
			if err != nil {
				return err
			}
			return runSDL(d, theme)
		},
	}

	cmd.Flags().StringVar(&themePath, "theme", "", "theme file (TOML)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font for labels")
	return cmd
}

// demo loads the config and catalog named by the flags. Validation
// problems are logged; the containers fall back to usable defaults.
func (o *rootOptions) demo() (*demo, error) {
	cfg := defaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = shelf.LoadConfig(o.configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		shelf.GetLogger().Warn("Container config has problems",
			"config", o.configPath,
			"error", strings.ReplaceAll(err.Error(), "\n", "; "))
	}

	cat, err := loadCatalog(o.itemsPath)
	if err != nil {
		return nil, err
	}
	return newDemo(cfg, cat, o.langs...)
}
