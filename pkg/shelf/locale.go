package shelf

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

// Bundle returns the message bundle holding the built-in translations.
// Hosts may load additional message files into it before creating
// localizers.
func Bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := localeFS.ReadDir("locales")
		if err != nil {
			internal.GetInternalLogger().Error("Failed to list built-in locales", "error", err)
			return
		}
		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+f.Name()); err != nil {
				internal.GetInternalLogger().Error("Failed to load locale", "file", f.Name(), "error", err)
			}
		}
	})
	return bundle
}

// NewLocalizer returns a localizer for the given BCP 47 language tags, most
// preferred first. Unknown tags fall back to English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(Bundle(), langs...)
}
