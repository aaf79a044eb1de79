package locales

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// Status is the translation state of one per-language catalog.
type Status struct {
	Locale       string `yaml:"locale"`
	Tag          string `yaml:"tag,omitempty"`
	Messages     int    `yaml:"messages"`
	Translated   int    `yaml:"translated"`
	Untranslated int    `yaml:"untranslated"`
}

// Report parses every catalog under the project's po directory and returns
// one status per locale, in lexical order. A locale code that is not a valid
// language tag is reported with an empty tag, not treated as an error.
func Report(root string, log *slog.Logger) ([]Status, error) {
	codes, err := List(root)
	if err != nil {
		return nil, err
	}

	statuses := []Status{}
	for _, code := range codes {
		log.Debug("Reading catalog", "locale", code)

		po := gotext.NewPo()
		po.ParseFile(filepath.Join(root, PoDir, code+".po"))

		status := Status{
			Locale: code,
		}

		if tag, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err == nil {
			status.Tag = tag.String()
		} else {
			log.Debug("Could not parse locale code as a language tag", "locale", code)
		}

		for id, translation := range po.GetDomain().GetTranslations() {
			if id == "" {
				// Header entry
				continue
			}

			status.Messages++
			if translation.IsTranslated() {
				status.Translated++
			} else {
				status.Untranslated++
			}
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
