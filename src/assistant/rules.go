// backend/src/assistant/rules.go
package assistant

import "github.com/username/finassist/backend/src/models"

// IntentRule maps one intent, in one language, to its trigger substrings.
// The confidence of a match is the fraction of triggers found in the
// question, so intents with larger vocabularies do not win just by having
// more synonyms.
type IntentRule struct {
	Intent   models.Intent
	Language string
	Triggers []string
}

// TimeframeRule maps a timeframe token to its trigger substrings.
type TimeframeRule struct {
	Token    models.Timeframe
	Triggers []string
}

// RuleSet is the data-driven trigger table injected into the classifier.
// Slice order matters in two ways: intent score ties resolve to the
// earlier rule, and timeframe resolution takes the first rule that
// matches at all.
type RuleSet struct {
	Intents    []IntentRule
	Timeframes []TimeframeRule
}

// DefaultRuleSet returns the built-in English and Hebrew trigger tables.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Intents: []IntentRule{
			{models.IntentSpendingAnalysis, LangEnglish, []string{"spend", "expense", "how much"}},
			{models.IntentBudgetStatus, LangEnglish, []string{"budget", "limit", "overspend"}},
			{models.IntentTrendAnalysis, LangEnglish, []string{"trend", "over time", "month by month"}},
			{models.IntentCategorySummary, LangEnglish, []string{"category", "categories", "breakdown"}},
			{models.IntentBusinessSummary, LangEnglish, []string{"business", "merchant", "store"}},
			{models.IntentTransactionCount, LangEnglish, []string{"how many", "transactions", "count"}},

			{models.IntentSpendingAnalysis, LangHebrew, []string{"הוצאתי", "הוצאות", "כמה"}},
			{models.IntentBudgetStatus, LangHebrew, []string{"תקציב", "מסגרת", "חריגה"}},
			{models.IntentTrendAnalysis, LangHebrew, []string{"מגמה", "לאורך זמן", "חודש אחרי חודש"}},
			{models.IntentCategorySummary, LangHebrew, []string{"קטגוריה", "קטגוריות", "פילוח"}},
			{models.IntentBusinessSummary, LangHebrew, []string{"בית עסק", "בתי עסק", "חנות"}},
			{models.IntentTransactionCount, LangHebrew, []string{"כמה עסקאות", "עסקאות", "פעולות"}},
		},
		Timeframes: []TimeframeRule{
			{models.TimeframeThisMonth, []string{"this month", "current month", "החודש הזה", "החודש הנוכחי"}},
			{models.TimeframeLastMonth, []string{"last month", "previous month", "חודש שעבר", "החודש הקודם"}},
			{models.TimeframeLast3Months, []string{"last 3 months", "last three months", "3 חודשים", "שלושה חודשים"}},
		},
	}
}
