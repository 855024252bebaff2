package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the en/de/fr message catalogs. Missing files are
// tolerated; localization then falls back to the default messages.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "./i18n"
	}
	for _, lang := range []string{"en", "de", "fr"} {
		file := path.Join(dir, lang+".yaml")
		if _, err := os.Stat(file); err != nil {
			continue
		}
		bundle.MustLoadMessageFile(file)
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}
	return i18n.NewLocalizer(bundle, lang)
}
