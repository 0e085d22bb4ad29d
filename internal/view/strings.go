package view

// Translator renders localized text for the views.
type Translator interface {
	T(locale, key string, data map[string]any) string
	Plural(locale, key string, count int) string
}

// Strings binds a Translator to one request's locale.
type Strings struct {
	tr     Translator
	locale string
}

// NewStrings returns the strings for locale.
func NewStrings(tr Translator, locale string) Strings {
	return Strings{tr: tr, locale: locale}
}

// Translator returns the underlying translator.
func (s Strings) Translator() Translator { return s.tr }

// Locale is the bound locale.
func (s Strings) Locale() string { return s.locale }

// T renders a plain message.
func (s Strings) T(key string) string { return s.tr.T(s.locale, key, nil) }

// With renders a templated message.
func (s Strings) With(key string, data map[string]any) string { return s.tr.T(s.locale, key, data) }

// Count renders a message with plural forms.
func (s Strings) Count(key string, n int) string { return s.tr.Plural(s.locale, key, n) }
