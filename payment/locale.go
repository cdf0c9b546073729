package payment

import (
	_ "embed"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"gmopay/internal/logger"
)

// Locale selects the language of error messages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// ParseLocale matches any BCP 47 tag or Accept-Language style list to en or ja.
// Anything unrecognised falls back to en.
func ParseLocale(s string) Locale {
	if s == "" {
		return LocaleEN
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return LocaleEN
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No || idx != 1 {
		return LocaleEN
	}
	return LocaleJA
}

//go:embed messages.yaml
var messagesYAML []byte

type messageEntry struct {
	EN string `yaml:"en"`
	JA string `yaml:"ja"`
}

var (
	messagesOnce sync.Once
	messages     map[string]messageEntry
)

func loadMessages() map[string]messageEntry {
	messagesOnce.Do(func() {
		if err := yaml.Unmarshal(messagesYAML, &messages); err != nil {
			logger.L().Error("failed to load error message table", zap.Error(err))
			messages = map[string]messageEntry{}
		}
	})
	return messages
}

// Message returns the human readable text for a gateway ErrInfo code.
// Unknown codes are returned unchanged.
func Message(code string, locale Locale) string {
	entry, ok := loadMessages()[code]
	if !ok {
		return code
	}
	if locale == LocaleJA && entry.JA != "" {
		return entry.JA
	}
	if entry.EN != "" {
		return entry.EN
	}
	return code
}
