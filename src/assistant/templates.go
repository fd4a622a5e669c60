// backend/src/assistant/templates.go
package assistant

import "github.com/username/finassist/backend/src/models"

// phrases holds every localized string the composer and the fallback
// router can emit for one language. Answers are assembled from these
// fragments, so adding a language is purely a data change.
type phrases struct {
	noData       string
	genericError string
	apology      string

	// spending_analysis
	spentFmt           string // total, transaction count
	topCategoriesLabel string

	// budget_status
	budgetHeader  string
	budgetLineFmt string // category, spent, budget, percentage
	statusLabels  map[string]string

	// trend_analysis
	trendHeader  string
	trendLineFmt string // month, income, expenses, balance

	// category_summary
	categoryHeader  string
	categoryLineFmt string // name, total, count, average

	// business_summary
	businessHeader  string
	businessLineFmt string // name, total, count

	// transaction_count
	countFmt string // total, income, expenses

	// inline period phrases, appended to sentences
	timeframeNames map[models.Timeframe]string

	// currency symbol placement: true = "₪120", false = "120 ₪"
	symbolBefore bool
}

var phraseTable = map[string]phrases{
	LangEnglish: {
		noData:       "I couldn't find any matching financial data.",
		genericError: "Something went wrong while preparing your answer.",
		apology:      "Sorry, I can't answer that right now. Please try again later.",

		spentFmt:           "You spent %s across %d transactions.",
		topCategoriesLabel: "Top categories",

		budgetHeader:  "Budget status:",
		budgetLineFmt: "%s: spent %s of %s (%d%%) - %s",
		statusLabels: map[string]string{
			"good":    "on track",
			"warning": "approaching the limit",
			"over":    "over budget",
		},

		trendHeader:  "Monthly overview:",
		trendLineFmt: "%s: income %s, expenses %s, balance %s",

		categoryHeader:  "Summary by category:",
		categoryLineFmt: "%s: %s (%d transactions, average %s)",

		businessHeader:  "Top businesses:",
		businessLineFmt: "%s: %s (%d transactions)",

		countFmt: "You had %d transactions%s: %d income and %d expenses.",

		timeframeNames: map[models.Timeframe]string{
			models.TimeframeThisMonth:   " this month",
			models.TimeframeLastMonth:   " last month",
			models.TimeframeLast3Months: " in the last 3 months",
		},
		symbolBefore: true,
	},

	LangHebrew: {
		noData:       "לא מצאתי נתונים פיננסיים מתאימים.",
		genericError: "משהו השתבש בהכנת התשובה.",
		apology:      "מצטערים, אין אפשרות לענות על זה כרגע. נסו שוב מאוחר יותר.",

		spentFmt:           "הוצאת %s ב-%d עסקאות.",
		topCategoriesLabel: "קטגוריות מובילות",

		budgetHeader:  "מצב התקציבים:",
		budgetLineFmt: "%s: נוצלו %s מתוך %s (%d%%) - %s",
		statusLabels: map[string]string{
			"good":    "במסלול תקין",
			"warning": "מתקרב למסגרת",
			"over":    "חריגה מהתקציב",
		},

		trendHeader:  "סיכום חודשי:",
		trendLineFmt: "%s: הכנסות %s, הוצאות %s, מאזן %s",

		categoryHeader:  "סיכום לפי קטגוריה:",
		categoryLineFmt: "%s: %s (%d עסקאות, ממוצע %s)",

		businessHeader:  "בתי העסק המובילים:",
		businessLineFmt: "%s: %s (%d עסקאות)",

		countFmt: "היו לך %d עסקאות%s: %d הכנסות ו-%d הוצאות.",

		timeframeNames: map[models.Timeframe]string{
			models.TimeframeThisMonth:   " החודש",
			models.TimeframeLastMonth:   " בחודש שעבר",
			models.TimeframeLast3Months: " בשלושת החודשים האחרונים",
		},
		symbolBefore: false,
	},

	LangArabic: {
		noData:       "لم أعثر على بيانات مالية مطابقة.",
		genericError: "حدث خطأ أثناء تحضير الإجابة.",
		apology:      "عذراً، لا يمكنني الإجابة على ذلك الآن. حاول مرة أخرى لاحقاً.",

		spentFmt:           "أنفقت %s في %d معاملة.",
		topCategoriesLabel: "أهم الفئات",

		budgetHeader:  "حالة الميزانيات:",
		budgetLineFmt: "%s: أُنفق %s من %s (%d%%) - %s",
		statusLabels: map[string]string{
			"good":    "ضمن الحد",
			"warning": "يقترب من الحد",
			"over":    "تجاوز الميزانية",
		},

		trendHeader:  "ملخص شهري:",
		trendLineFmt: "%s: الدخل %s، المصروفات %s، الرصيد %s",

		categoryHeader:  "ملخص حسب الفئة:",
		categoryLineFmt: "%s: %s (%d معاملة، بمتوسط %s)",

		businessHeader:  "أهم المتاجر:",
		businessLineFmt: "%s: %s (%d معاملة)",

		countFmt: "كان لديك %d معاملة%s: %d دخل و%d مصروفات.",

		timeframeNames: map[models.Timeframe]string{
			models.TimeframeThisMonth:   " هذا الشهر",
			models.TimeframeLastMonth:   " الشهر الماضي",
			models.TimeframeLast3Months: " في الأشهر الثلاثة الماضية",
		},
		symbolBefore: false,
	},
}

// phrasesFor returns the phrase table for a language, falling back to
// English for anything unknown.
func phrasesFor(lang string) phrases {
	if p, ok := phraseTable[lang]; ok {
		return p
	}
	return phraseTable[LangEnglish]
}
