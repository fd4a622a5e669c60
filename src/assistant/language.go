// backend/src/assistant/language.go
package assistant

// Supported answer languages.
const (
	LangEnglish = "en"
	LangHebrew  = "he"
	LangArabic  = "ar"
)

// DetectLanguage guesses the language of a question from its script.
// Hebrew and Arabic characters win over Latin ones because mixed questions
// ("כמה הוצאתי ב-Netflix?") usually embed Latin brand names. When no
// letter is found at all, the configured default language is returned.
func DetectLanguage(text, defaultLanguage string) string {
	hasASCIILetter := false
	for _, r := range text {
		switch {
		case r >= 0x0590 && r <= 0x05FF:
			return LangHebrew
		case (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0750 && r <= 0x077F):
			return LangArabic
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			hasASCIILetter = true
		}
	}
	if hasASCIILetter {
		return LangEnglish
	}
	if defaultLanguage != "" {
		return defaultLanguage
	}
	return LangEnglish
}
