package models

import "testing"

func TestLocalizedTextResolveFallsBack(t *testing.T) {
	t.Parallel()

	bilingual := NewLocalizedText("Admission open", "प्रवेश खुला है")
	englishOnly := NewLocalizedText("Admission open", "")

	cases := []struct {
		name   string
		text   LocalizedText
		locale string
		want   string
	}{
		{"hindi present", bilingual, LocaleHindi, "प्रवेश खुला है"},
		{"english explicit", bilingual, LocaleEnglish, "Admission open"},
		{"empty locale", bilingual, "", "Admission open"},
		{"hindi missing falls back", englishOnly, LocaleHindi, "Admission open"},
		{"unknown locale falls back", bilingual, "fr", "Admission open"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := c.text.Resolve(c.locale); got != c.want {
				t.Errorf("Resolve(%q) = %q, want %q", c.locale, got, c.want)
			}
		})
	}
}

func TestLocalizedTextTranslationDoesNotFallBack(t *testing.T) {
	t.Parallel()

	englishOnly := NewLocalizedText("Admission open", "")
	if got := englishOnly.Translation(LocaleHindi); got != "" {
		t.Errorf("Translation(hi) = %q, want empty", got)
	}

	bilingual := NewLocalizedText("Admission open", "प्रवेश खुला है")
	if got := bilingual.Translation(LocaleHindi); got != "प्रवेश खुला है" {
		t.Errorf("Translation(hi) = %q", got)
	}
}

func TestNewLocalizedTextSkipsEmptyTranslation(t *testing.T) {
	t.Parallel()

	text := NewLocalizedText("x", "")
	if text.Translations != nil {
		t.Errorf("empty translation stored: %v", text.Translations)
	}
}

func TestLocalizedTextIsEmpty(t *testing.T) {
	t.Parallel()

	if !(LocalizedText{}).IsEmpty() {
		t.Error("zero value should be empty")
	}
	if NewLocalizedText("x", "").IsEmpty() {
		t.Error("text with default should not be empty")
	}
}
