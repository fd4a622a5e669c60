// backend/src/assistant/language_test.go
package assistant

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		defaultLanguage string
		want            string
	}{
		{"plain english", "How much did I spend this month?", "en", LangEnglish},
		{"plain hebrew", "כמה הוצאתי החודש?", "en", LangHebrew},
		{"plain arabic", "كم أنفقت هذا الشهر؟", "en", LangArabic},
		{"hebrew with latin brand", "כמה הוצאתי ב-Netflix?", "en", LangHebrew},
		{"arabic with latin brand", "كم أنفقت في Amazon؟", "en", LangArabic},
		{"digits only uses default", "12345", "he", LangHebrew},
		{"punctuation only uses default", "???", "ar", LangArabic},
		{"empty string uses default", "", "en", LangEnglish},
		{"no letters and no default", "123", "", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(tt.text, tt.defaultLanguage)
			if got != tt.want {
				t.Errorf("DetectLanguage(%q, %q) = %q, want %q", tt.text, tt.defaultLanguage, got, tt.want)
			}
		})
	}
}
