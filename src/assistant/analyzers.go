// backend/src/assistant/analyzers.go
package assistant

import (
	"math"
	"sort"
	"time"

	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/utils"
)

// The analyzers are pure functions over record collections. They never
// mutate their inputs and never fail: empty collections produce zero or
// empty aggregates. Each one computes the result shape of a single intent.

const uncategorizedLabel = "Uncategorized"
const unknownBusinessLabel = "Unknown"

// categoryNameByID builds a lookup from category ID to display name.
func categoryNameByID(categories []models.Category) map[int64]string {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func resolveCategoryName(tx models.Transaction, names map[int64]string) string {
	if tx.CategoryID != nil {
		if name, ok := names[*tx.CategoryID]; ok && name != "" {
			return name
		}
	}
	return uncategorizedLabel
}

// AnalyzeSpending totals expense transactions and breaks them down by
// category, keeping the five largest groups.
func AnalyzeSpending(transactions []models.Transaction, categories []models.Category, entities []models.Entity) *models.SpendingResult {
	names := categoryNameByID(categories)

	result := &models.SpendingResult{
		CategoryBreakdown: make(map[string]float64),
	}
	for _, tx := range transactions {
		if tx.IsIncome {
			continue
		}
		result.TotalSpent += tx.BillingAmount
		result.TransactionCount++
		result.CategoryBreakdown[resolveCategoryName(tx, names)] += tx.BillingAmount
	}
	result.TotalSpent = utils.RoundFloat(result.TotalSpent, 2)

	top := make([]models.CategoryAmount, 0, len(result.CategoryBreakdown))
	for name, amount := range result.CategoryBreakdown {
		top = append(top, models.CategoryAmount{Name: name, Amount: utils.RoundFloat(amount, 2)})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Amount != top[j].Amount {
			return top[i].Amount > top[j].Amount
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > 5 {
		top = top[:5]
	}
	result.TopCategories = top
	return result
}

// AnalyzeBudgetStatus computes consumption for each budget. Spend is
// always scoped to the current calendar month, regardless of any
// timeframe the user asked for; this mirrors the product behavior where
// budget questions are about "where do I stand right now".
func AnalyzeBudgetStatus(budgets []models.Budget, transactions []models.Transaction, categories []models.Category, now time.Time) *models.BudgetStatusResult {
	names := categoryNameByID(categories)
	month := ResolveTimeframe(models.TimeframeThisMonth, now)

	result := &models.BudgetStatusResult{}
	for _, budget := range budgets {
		spent := 0.0
		for _, tx := range transactions {
			if tx.IsIncome || tx.CategoryID == nil || *tx.CategoryID != budget.CategoryID {
				continue
			}
			if !month.Contains(tx.Date) {
				continue
			}
			spent += tx.BillingAmount
		}

		percentage := 0
		if budget.Amount > 0 {
			percentage = int(math.Round(spent / budget.Amount * 100))
		}
		status := "good"
		switch {
		case percentage >= 100:
			status = "over"
		case percentage >= 80:
			status = "warning"
		}

		name := names[budget.CategoryID]
		if name == "" {
			name = uncategorizedLabel
		}
		result.Budgets = append(result.Budgets, models.BudgetStatusEntry{
			CategoryName: name,
			BudgetAmount: budget.Amount,
			Spent:        utils.RoundFloat(spent, 2),
			Remaining:    utils.RoundFloat(budget.Amount-spent, 2),
			Percentage:   percentage,
			Status:       status,
		})
	}
	return result
}

// AnalyzeTrend groups all supplied transactions by calendar month and
// sums income and expenses separately. The timeframe token only decides
// how much history is loaded upstream; everything handed in is grouped.
func AnalyzeTrend(transactions []models.Transaction, categories []models.Category) *models.TrendResult {
	type monthTotals struct {
		income   float64
		expenses float64
	}
	byMonth := make(map[string]*monthTotals)
	for _, tx := range transactions {
		if len(tx.Date) < 7 {
			continue
		}
		key := tx.Date[:7] // YYYY-MM
		totals, ok := byMonth[key]
		if !ok {
			totals = &monthTotals{}
			byMonth[key] = totals
		}
		if tx.IsIncome {
			totals.income += tx.BillingAmount
		} else {
			totals.expenses += tx.BillingAmount
		}
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &models.TrendResult{}
	for _, key := range keys {
		totals := byMonth[key]
		result.Months = append(result.Months, models.MonthlyTrend{
			Month:    key,
			Income:   utils.RoundFloat(totals.income, 2),
			Expenses: utils.RoundFloat(totals.expenses, 2),
			Balance:  utils.RoundFloat(totals.income-totals.expenses, 2),
		})
	}
	return result
}

// SummarizeCategories counts and totals every category's transactions,
// income and expense alike, sorted by total descending.
func SummarizeCategories(transactions []models.Transaction, categories []models.Category, entities []models.Entity) *models.CategorySummaryResult {
	type agg struct {
		count int
		total float64
	}
	byCategory := make(map[int64]*agg, len(categories))
	for _, c := range categories {
		byCategory[c.ID] = &agg{}
	}
	for _, tx := range transactions {
		if tx.CategoryID == nil {
			continue
		}
		if a, ok := byCategory[*tx.CategoryID]; ok {
			a.count++
			a.total += tx.BillingAmount
		}
	}

	result := &models.CategorySummaryResult{}
	for _, c := range categories {
		a := byCategory[c.ID]
		average := 0.0
		if a.count > 0 {
			average = a.total / float64(a.count)
		}
		result.Categories = append(result.Categories, models.CategorySummaryEntry{
			Name:    c.Name,
			Count:   a.count,
			Total:   utils.RoundFloat(a.total, 2),
			Average: utils.RoundFloat(average, 2),
		})
	}
	sort.SliceStable(result.Categories, func(i, j int) bool {
		return result.Categories[i].Total > result.Categories[j].Total
	})
	return result
}

// SummarizeBusinesses groups transactions by business name, keeping the
// ten largest groups by total amount. Whether a group counts as income is
// taken from its first transaction.
func SummarizeBusinesses(transactions []models.Transaction, entities []models.Entity) *models.BusinessSummaryResult {
	type agg struct {
		count    int
		total    float64
		isIncome bool
		order    int
	}
	byBusiness := make(map[string]*agg)
	for i, tx := range transactions {
		name := tx.BusinessName
		if name == "" {
			name = unknownBusinessLabel
		}
		a, ok := byBusiness[name]
		if !ok {
			a = &agg{isIncome: tx.IsIncome, order: i}
			byBusiness[name] = a
		}
		a.count++
		a.total += tx.BillingAmount
	}

	result := &models.BusinessSummaryResult{}
	for name, a := range byBusiness {
		result.Businesses = append(result.Businesses, models.BusinessSummaryEntry{
			Name:     name,
			Count:    a.count,
			Total:    utils.RoundFloat(a.total, 2),
			IsIncome: a.isIncome,
		})
	}
	sort.SliceStable(result.Businesses, func(i, j int) bool {
		if result.Businesses[i].Total != result.Businesses[j].Total {
			return result.Businesses[i].Total > result.Businesses[j].Total
		}
		return result.Businesses[i].Name < result.Businesses[j].Name
	})
	if len(result.Businesses) > 10 {
		result.Businesses = result.Businesses[:10]
	}
	return result
}

// CountTransactions counts the supplied (already timeframe-filtered) set.
func CountTransactions(transactions []models.Transaction, entities []models.Entity, timeframe models.Timeframe) *models.TransactionCountResult {
	result := &models.TransactionCountResult{Timeframe: timeframe}
	for _, tx := range transactions {
		result.TotalCount++
		if tx.IsIncome {
			result.IncomeCount++
		} else {
			result.ExpenseCount++
		}
	}
	return result
}
