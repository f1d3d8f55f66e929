package i18n

import "strings"

// Supported language codes
const (
	LangEnglish = "en"
	LangHebrew  = "he"

	// DefaultLang is used for senders with no stored preference
	DefaultLang = LangHebrew
)

// SupportedLangs lists selectable languages in menu order. The order is
// fixed so the numbered language menu is stable regardless of the viewer's
// current language.
var SupportedLangs = []string{LangEnglish, LangHebrew}

// Params are named placeholder values substituted into a message
type Params map[string]string

// Translator resolves message keys against the compiled-in catalogs
type Translator struct{}

// New creates a translator
func New() *Translator {
	return &Translator{}
}

// T returns the message for key in lang with {placeholder} substitution.
// Unknown languages fall back to the default; unknown keys return the key
// itself so a missing translation is visible rather than silent.
func (t *Translator) T(lang, key string, params Params) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[DefaultLang]
	}
	text, ok := catalog[key]
	if !ok {
		// Fall back to English before giving up on the key
		if text, ok = catalogs[LangEnglish][key]; !ok {
			text = key
		}
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// LanguageName returns the display name of code in the viewer's language
func (t *Translator) LanguageName(code, viewerLang string) string {
	return t.T(viewerLang, "lang_name_"+code, nil)
}

// IsSupported reports whether code is a selectable language
func IsSupported(code string) bool {
	for _, l := range SupportedLangs {
		if l == code {
			return true
		}
	}
	return false
}

var catalogs = map[string]map[string]string{
	LangEnglish: catalogEN,
	LangHebrew:  catalogHE,
}
