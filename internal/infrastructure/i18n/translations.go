package i18n

import (
	"embed"
	"errors"
	"log/slog"
	"strconv"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"renderkit/internal/logging"
	"renderkit/internal/ports/output"
	"renderkit/pkg/renderutils"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml", "active.de.toml"}

var (
	_ output.T         = (*Translator)(nil)
	_ output.Localizer = (*Translator)(nil)
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer. Besides the
// bot messages it provides the calendar names and uptime labels of the
// formatters.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "fr"). Translations are loaded from the embedded
// active.*.toml files. A nil logger discards the loading errors.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = logging.Nop()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// Languages returns the tags of the loaded translations.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())
	return i18n.NewLocalizer(t.bundle, languages...)
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := localize(t.localizer(locale), &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug("i18n: localize failed", "key", key, "locale", locale, "error", err)
		return key
	}
	return msg
}

// localize is Localize keeping the message of a fallback language. go-i18n
// returns it along with a MessageNotFoundErr when the requested language
// lacks the message.
func localize(l *i18n.Localizer, cfg *i18n.LocalizeConfig) (string, error) {
	msg, err := l.Localize(cfg)
	var notFound *i18n.MessageNotFoundErr
	if err != nil && errors.As(err, &notFound) && msg != "" {
		return msg, nil
	}
	return msg, err
}

// CalendarNames returns the abbreviated weekday and month names of locale.
// Missing names are left empty and fall back to English when formatting.
func (t *Translator) CalendarNames(locale string) renderutils.CalendarNames {
	l := t.localizer(locale)
	var names renderutils.CalendarNames
	for i := range names.Weekdays {
		names.Weekdays[i] = t.lookup(l, "weekday_"+strconv.Itoa(i), 0)
	}
	for i := range names.Months {
		names.Months[i] = t.lookup(l, "month_"+strconv.Itoa(i+1), 0)
	}
	return names
}

// UptimeLabels returns the uptime unit labels of locale. The singular label
// is the "one" plural form of the message and the plural label its "other"
// form. Missing labels keep their English default.
func (t *Translator) UptimeLabels(locale string) renderutils.UptimeLabels {
	l := t.localizer(locale)
	labels := renderutils.DefaultUptimeLabels
	for _, u := range []struct {
		key              string
		singular, plural *string
	}{
		{"uptime_year", &labels.Year, &labels.Years},
		{"uptime_month", &labels.Month, &labels.Months},
		{"uptime_week", &labels.Week, &labels.Weeks},
		{"uptime_day", &labels.Day, &labels.Days},
		{"uptime_hour", &labels.Hour, &labels.Hours},
		{"uptime_minute", &labels.Minute, &labels.Minutes},
	} {
		if s := t.lookup(l, u.key, 1); s != "" {
			*u.singular = s
		}
		if s := t.lookup(l, u.key, 2); s != "" {
			*u.plural = s
		}
	}
	return labels
}

// lookup localizes key, with count as plural count when positive. It
// returns "" when the message is missing.
func (t *Translator) lookup(l *i18n.Localizer, key string, count int) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if count > 0 {
		cfg.PluralCount = count
	}
	msg, err := localize(l, cfg)
	if err != nil {
		t.logger.Debug("i18n: missing message", "key", key, "error", err)
		return ""
	}
	return msg
}
