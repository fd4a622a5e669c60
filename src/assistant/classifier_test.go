// backend/src/assistant/classifier_test.go
package assistant

import (
	"testing"

	"github.com/username/finassist/backend/src/models"
)

func TestClassifyIntent(t *testing.T) {
	classifier := NewIntentClassifier(DefaultRuleSet(), "en")

	tests := []struct {
		name          string
		question      string
		wantIntent    models.Intent
		wantTimeframe models.Timeframe
		wantLanguage  string
	}{
		{
			name:          "spending question with timeframe",
			question:      "How much did I spend this month?",
			wantIntent:    models.IntentSpendingAnalysis,
			wantTimeframe: models.TimeframeThisMonth,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "budget question",
			question:      "Am I over my budget limit?",
			wantIntent:    models.IntentBudgetStatus,
			wantTimeframe: models.TimeframeNone,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "trend question",
			question:      "Show me the trend over time",
			wantIntent:    models.IntentTrendAnalysis,
			wantTimeframe: models.TimeframeNone,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "category breakdown last month",
			question:      "Give me a breakdown by category for last month",
			wantIntent:    models.IntentCategorySummary,
			wantTimeframe: models.TimeframeLastMonth,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "business question",
			question:      "Which merchant got most of my money?",
			wantIntent:    models.IntentBusinessSummary,
			wantTimeframe: models.TimeframeNone,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "count question last 3 months",
			question:      "How many transactions did I have in the last 3 months?",
			wantIntent:    models.IntentTransactionCount,
			wantTimeframe: models.TimeframeLast3Months,
			wantLanguage:  LangEnglish,
		},
		{
			name:          "hebrew spending question",
			question:      "כמה הוצאתי החודש הזה?",
			wantIntent:    models.IntentSpendingAnalysis,
			wantTimeframe: models.TimeframeThisMonth,
			wantLanguage:  LangHebrew,
		},
		{
			name:          "hebrew count beats hebrew spending",
			question:      "כמה עסקאות היו לי?",
			wantIntent:    models.IntentTransactionCount,
			wantTimeframe: models.TimeframeNone,
			wantLanguage:  LangHebrew,
		},
		{
			name:          "gibberish falls back to general info",
			question:      "zzz qqq 123",
			wantIntent:    models.IntentGeneralInfo,
			wantTimeframe: models.TimeframeNone,
			wantLanguage:  LangEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.question, Vocabulary{})
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Timeframe != tt.wantTimeframe {
				t.Errorf("timeframe = %q, want %q", got.Timeframe, tt.wantTimeframe)
			}
			if got.Language != tt.wantLanguage {
				t.Errorf("language = %q, want %q", got.Language, tt.wantLanguage)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("confidence = %v, want value in [0,1]", got.Confidence)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	classifier := NewIntentClassifier(DefaultRuleSet(), "en")

	got := classifier.Classify("How much did I spend this month?", Vocabulary{})
	// "spend" and "how much" hit two of the three spending triggers.
	want := 2.0 / 3.0
	if diff := got.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want %v", got.Confidence, want)
	}

	got = classifier.Classify("zzz qqq", Vocabulary{})
	if got.Confidence != 0 {
		t.Errorf("gibberish confidence = %v, want 0", got.Confidence)
	}
}

func TestClassifyTieGoesToEarlierRule(t *testing.T) {
	classifier := NewIntentClassifier(DefaultRuleSet(), "en")

	// One trigger from each of spending and budget; spending is defined
	// first, so it keeps the win.
	got := classifier.Classify("spend budget", Vocabulary{})
	if got.Intent != models.IntentSpendingAnalysis {
		t.Errorf("intent = %q, want %q", got.Intent, models.IntentSpendingAnalysis)
	}
}

func TestClassifyEntities(t *testing.T) {
	classifier := NewIntentClassifier(DefaultRuleSet(), "en")
	vocab := Vocabulary{
		Categories: []string{"Groceries", "Transport"},
		Businesses: []string{"SuperPharm"},
	}

	got := classifier.Classify("How much did I spend on groceries at superpharm?", vocab)

	wantEntities := []models.Entity{
		{Type: models.EntityCategory, Value: "Groceries"},
		{Type: models.EntityBusiness, Value: "SuperPharm"},
	}
	if len(got.Entities) != len(wantEntities) {
		t.Fatalf("entities = %v, want %v", got.Entities, wantEntities)
	}
	for i, want := range wantEntities {
		if got.Entities[i] != want {
			t.Errorf("entity[%d] = %v, want %v", i, got.Entities[i], want)
		}
	}
}

func TestClassifyEmptyRuleSet(t *testing.T) {
	classifier := NewIntentClassifier(RuleSet{}, "en")

	got := classifier.Classify("How much did I spend?", Vocabulary{})
	if got.Intent != models.IntentGeneralInfo {
		t.Errorf("intent = %q, want %q", got.Intent, models.IntentGeneralInfo)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
}
