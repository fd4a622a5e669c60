// backend/src/models/assistant.go
package models

// Intent is the categorical label describing what kind of financial
// question is being asked.
type Intent string

const (
	IntentSpendingAnalysis Intent = "spending_analysis"
	IntentBudgetStatus     Intent = "budget_status"
	IntentTrendAnalysis    Intent = "trend_analysis"
	IntentCategorySummary  Intent = "category_summary"
	IntentBusinessSummary  Intent = "business_summary"
	IntentTransactionCount Intent = "transaction_count"
	IntentGeneralInfo      Intent = "general_info"
)

// Timeframe is a symbolic period identifier. The empty value means
// "unrestricted range".
type Timeframe string

const (
	TimeframeNone        Timeframe = ""
	TimeframeThisMonth   Timeframe = "this_month"
	TimeframeLastMonth   Timeframe = "last_month"
	TimeframeLast3Months Timeframe = "last_3_months"
)

// Entity types recognized by the classifier.
const (
	EntityCategory = "category"
	EntityBusiness = "business"
)

// Entity is a substring of the question matched against a known category
// or business name.
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ClassificationResult is the ephemeral output of the intent classifier,
// produced once per submitted question.
type ClassificationResult struct {
	Intent     Intent    `json:"intent"`
	Confidence float64   `json:"confidence"` // in [0,1]
	Timeframe  Timeframe `json:"timeframe,omitempty"`
	Entities   []Entity  `json:"entities,omitempty"`
	Language   string    `json:"language"`
}

// CategoryAmount is a (category name, summed amount) pair.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// SpendingResult aggregates expense transactions.
type SpendingResult struct {
	TotalSpent        float64            `json:"total_spent"`
	TransactionCount  int                `json:"transaction_count"`
	TopCategories     []CategoryAmount   `json:"top_categories"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

// BudgetStatusEntry describes how far a single budget has been consumed
// in the current calendar month.
type BudgetStatusEntry struct {
	CategoryName string  `json:"category_name"`
	BudgetAmount float64 `json:"budget_amount"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Percentage   int     `json:"percentage"`
	Status       string  `json:"status"` // "good", "warning", "over"
}

// BudgetStatusResult lists the state of every budget.
type BudgetStatusResult struct {
	Budgets []BudgetStatusEntry `json:"budgets"`
}

// MonthlyTrend holds income/expense totals for one calendar month.
type MonthlyTrend struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// TrendResult lists month-by-month totals in chronological order.
type TrendResult struct {
	Months []MonthlyTrend `json:"months"`
}

// CategorySummaryEntry aggregates all transactions of one category.
type CategorySummaryEntry struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

// CategorySummaryResult lists per-category aggregates, largest total first.
type CategorySummaryResult struct {
	Categories []CategorySummaryEntry `json:"categories"`
}

// BusinessSummaryEntry aggregates all transactions of one business.
type BusinessSummaryEntry struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
	IsIncome bool    `json:"is_income"`
}

// BusinessSummaryResult lists the top businesses by total amount.
type BusinessSummaryResult struct {
	Businesses []BusinessSummaryEntry `json:"businesses"`
}

// TransactionCountResult counts transactions over the supplied set.
type TransactionCountResult struct {
	TotalCount   int       `json:"total_count"`
	IncomeCount  int       `json:"income_count"`
	ExpenseCount int       `json:"expense_count"`
	Timeframe    Timeframe `json:"timeframe,omitempty"`
}

// AnalyzerResult is a tagged union with exactly one variant set per
// intent, or Err when loading/analysis failed. The composer matches on
// the populated variant.
type AnalyzerResult struct {
	Spending         *SpendingResult         `json:"spending,omitempty"`
	BudgetStatus     *BudgetStatusResult     `json:"budget_status,omitempty"`
	Trend            *TrendResult            `json:"trend,omitempty"`
	CategorySummary  *CategorySummaryResult  `json:"category_summary,omitempty"`
	BusinessSummary  *BusinessSummaryResult  `json:"business_summary,omitempty"`
	TransactionCount *TransactionCountResult `json:"transaction_count,omitempty"`
	Err              string                  `json:"error,omitempty"`
}

// IsError reports whether the result carries the error sentinel.
func (r AnalyzerResult) IsError() bool {
	return r.Err != ""
}
