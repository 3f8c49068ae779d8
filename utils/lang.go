package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const DefaultLanguage = "en"

var bundle *i18n.Bundle

// InitI18NBundle loads every message file under i18n.dir. English is the
// fallback language.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "./i18n"
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		panic(err)
	}
	if len(files) == 0 {
		panic("no message file found in " + dir)
	}

	for _, f := range files {
		bundle.MustLoadMessageFile(f)
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, DefaultLanguage)
}

// Localize renders a message and falls back to the message id on failure
func Localize(loc *i18n.Localizer, messageID string, data interface{}) string {
	message, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return message
}
