package service

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys shown by the display.
const (
	MsgUpdatesDisabled = "data_upd_disabled"
	MsgNoConnection    = "status_no_bt"
	MsgConnecting      = "connecting"
	MsgStartCompanion  = "status_start_companion"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		MsgUpdatesDisabled: "Data updates are disabled",
		MsgNoConnection:    "No connection to the phone",
		MsgConnecting:      "Connecting...",
		MsgStartCompanion:  "Start the companion app on the phone",
	},
	language.Russian: {
		MsgUpdatesDisabled: "Обновление данных отключено",
		MsgNoConnection:    "Нет связи с телефоном",
		MsgConnecting:      "Подключение...",
		MsgStartCompanion:  "Запустите приложение-компаньон на телефоне",
	},
}

// supportedLanguages lists the catalog languages, the first one is the
// fallback.
var supportedLanguages = []language.Tag{language.English, language.Russian}

var messageCatalog = mustBuildCatalog(translations)

func buildCatalog(texts map[language.Tag]map[string]string) (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range texts {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("error adding message %q for %s: %w", key, tag, err)
			}
		}
	}
	return b, nil
}

func mustBuildCatalog(texts map[language.Tag]map[string]string) catalog.Catalog {
	c, err := buildCatalog(texts)
	if err != nil {
		panic(err)
	}
	return c
}

// Messages renders localised status texts.
type Messages struct {
	printer *message.Printer
}

// NewMessages returns the message printer for lang ("en", "ru"). Unknown
// languages fall back to English.
func NewMessages(lang string) *Messages {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, index, _ := language.NewMatcher(supportedLanguages).Match(tag)

	return &Messages{printer: message.NewPrinter(supportedLanguages[index], message.Catalog(messageCatalog))}
}

// Text returns the localised text for key, or key itself when it is unknown.
func (m *Messages) Text(key string) string {
	return m.printer.Sprintf(message.Key(key, key))
}
