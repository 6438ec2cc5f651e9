package schema

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.I18n
	bundleErr  error
)

// Bundle returns the package's internationalization bundle, embedding
// the message catalogs in locales/*.json. It is loaded once and cached.
func Bundle() (*i18n.I18n, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "es"),
		)
		bundleErr = b.LoadFS(localesFS, "locales/*.json")
		bundle = b
	})
	return bundle, bundleErr
}

// Message renders e using the bundle's locale localizer, falling back
// to e.Code itself if the bundle fails to load (which should not
// happen with the embedded catalogs).
func Message(e Event, locale string) string {
	b, err := Bundle()
	if err != nil {
		return e.Code
	}
	loc := b.NewLocalizer(locale)
	return loc.Get(e.Code, i18n.Vars(e.Params))
}
