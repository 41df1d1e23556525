package models

// Supported locales. English is the default locale for every bilingual field;
// Hindi is the only translation locale the site currently carries.
const (
	LocaleEnglish = "en"
	LocaleHindi   = "hi"
)

// LocalizedText holds a default-locale value plus optional per-locale
// translations. Readers go through Resolve, which never returns an empty
// string when a default value exists.
type LocalizedText struct {
	Default      string            `json:"default"`
	Translations map[string]string `json:"translations,omitempty"`
}

// NewLocalizedText builds a LocalizedText from a default value and an
// optional Hindi translation. An empty translation is not stored.
func NewLocalizedText(defaultValue, hindi string) LocalizedText {
	t := LocalizedText{Default: defaultValue}
	if hindi != "" {
		t.Translations = map[string]string{LocaleHindi: hindi}
	}
	return t
}

// Resolve returns the value for the given locale, falling back to the
// default-locale value when no translation is present.
func (t LocalizedText) Resolve(locale string) string {
	if locale != "" && locale != LocaleEnglish {
		if v, ok := t.Translations[locale]; ok && v != "" {
			return v
		}
	}
	return t.Default
}

// Translation returns the stored translation for a locale, or "" when absent.
// Unlike Resolve it does not fall back; repositories use it to write the
// translation column.
func (t LocalizedText) Translation(locale string) string {
	return t.Translations[locale]
}

// IsEmpty reports whether the default-locale value is missing.
func (t LocalizedText) IsEmpty() bool {
	return t.Default == ""
}
