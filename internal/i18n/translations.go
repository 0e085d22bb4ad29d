package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message ids shared by the views and the board controller.
const (
	PageTitle           = "PageTitle"
	PageSubtitle        = "PageSubtitle"
	AvailableActivities = "AvailableActivities"
	Loading             = "Loading"
	LoadFailed          = "LoadFailed"
	Schedule            = "Schedule"
	Availability        = "Availability"
	SpotsLeft           = "SpotsLeft"
	Participants        = "Participants"
	NoParticipants      = "NoParticipants"
	RemoveParticipant   = "RemoveParticipant"
	SignupHeading       = "SignupHeading"
	EmailLabel          = "EmailLabel"
	EmailPlaceholder    = "EmailPlaceholder"
	ActivityLabel       = "ActivityLabel"
	SelectPlaceholder   = "SelectPlaceholder"
	SignupButton        = "SignupButton"
	SignupError         = "SignupError"
	SignupFailed        = "SignupFailed"
	RemoveError         = "RemoveError"
	RemoveFailed        = "RemoveFailed"
	Removed             = "Removed"
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	matcher         language.Matcher
}

// NewTranslator builds a Translator over the embedded catalogs, falling back
// to defaultLocale (English when it does not parse).
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Error("i18n: failed to load catalog", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		matcher:         language.NewMatcher(bundle.LanguageTags()),
	}
}

// DefaultLocale is the locale used when nothing better matches.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// Negotiate picks a supported locale for an Accept-Language header value.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.DefaultLocale()
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.DefaultLocale()
	}
	_, idx, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.DefaultLocale()
	}
	base, _ := t.bundle.LanguageTags()[idx].Base()
	return base.String()
}

// T renders the message identified by key for the given locale. Missing
// keys fall back to the default locale, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	localizer := i18n.NewLocalizer(t.bundle, t.languages(locale)...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Warn("i18n: localize failed", "key", key, "locale", locale, "error", err)
		return key
	}
	return msg
}

// Plural renders a message with plural forms selected by count. The count is
// also exposed to the template as .Count.
func (t *Translator) Plural(locale, key string, count int) string {
	localizer := i18n.NewLocalizer(t.bundle, t.languages(locale)...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		slog.Warn("i18n: localize failed", "key", key, "locale", locale, "error", err)
		return key
	}
	return msg
}

func (t *Translator) languages(locale string) []string {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	return append(languages, t.defaultLanguage.String())
}
