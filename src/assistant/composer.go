// backend/src/assistant/composer.go
package assistant

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/models"
)

var currencySymbols = map[string]string{
	"ILS": "₪",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Composer renders an AnalyzerResult as a localized natural-language
// answer. Rendering is deterministic: identical inputs always produce
// byte-identical output.
type Composer struct {
	symbol   string
	printers map[string]*message.Printer
}

// NewComposer creates a Composer for the given display currency code.
func NewComposer(currency string) *Composer {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = currency
	}
	return &Composer{
		symbol: symbol,
		printers: map[string]*message.Printer{
			LangEnglish: message.NewPrinter(language.English),
			LangHebrew:  message.NewPrinter(language.Hebrew),
			LangArabic:  message.NewPrinter(language.Arabic),
		},
	}
}

// Compose maps the analyzer result to a single answer string. It never
// panics outward; an unexpected rendering failure yields the localized
// generic-error sentence.
func (c *Composer) Compose(result models.AnalyzerResult, intent models.Intent, lang string) (answer string) {
	p := phrasesFor(lang)
	defer func() {
		if r := recover(); r != nil {
			logger.L.Error("Response composition panicked", "intent", intent, "panic", r)
			answer = p.genericError
		}
	}()

	if result.IsError() {
		return p.noData
	}

	switch {
	case result.Spending != nil:
		return c.composeSpending(result.Spending, p, lang)
	case result.BudgetStatus != nil:
		return c.composeBudgetStatus(result.BudgetStatus, p, lang)
	case result.Trend != nil:
		return c.composeTrend(result.Trend, p, lang)
	case result.CategorySummary != nil:
		return c.composeCategorySummary(result.CategorySummary, p, lang)
	case result.BusinessSummary != nil:
		return c.composeBusinessSummary(result.BusinessSummary, p, lang)
	case result.TransactionCount != nil:
		return c.composeTransactionCount(result.TransactionCount, p)
	default:
		return p.noData
	}
}

func (c *Composer) composeSpending(res *models.SpendingResult, p phrases, lang string) string {
	if res.TransactionCount == 0 {
		return p.noData
	}
	var b strings.Builder
	fmt.Fprintf(&b, p.spentFmt, c.amount(lang, res.TotalSpent), res.TransactionCount)
	if len(res.TopCategories) > 0 {
		parts := make([]string, 0, len(res.TopCategories))
		for _, cat := range res.TopCategories {
			parts = append(parts, fmt.Sprintf("%s: %s", cat.Name, c.amount(lang, cat.Amount)))
		}
		fmt.Fprintf(&b, " %s: %s.", p.topCategoriesLabel, strings.Join(parts, ", "))
	}
	return b.String()
}

func (c *Composer) composeBudgetStatus(res *models.BudgetStatusResult, p phrases, lang string) string {
	if len(res.Budgets) == 0 {
		return p.noData
	}
	lines := make([]string, 0, len(res.Budgets)+1)
	lines = append(lines, p.budgetHeader)
	for _, entry := range res.Budgets {
		lines = append(lines, fmt.Sprintf(p.budgetLineFmt,
			entry.CategoryName,
			c.amount(lang, entry.Spent),
			c.amount(lang, entry.BudgetAmount),
			entry.Percentage,
			p.statusLabels[entry.Status],
		))
	}
	return strings.Join(lines, "\n")
}

func (c *Composer) composeTrend(res *models.TrendResult, p phrases, lang string) string {
	if len(res.Months) == 0 {
		return p.noData
	}
	lines := make([]string, 0, len(res.Months)+1)
	lines = append(lines, p.trendHeader)
	for _, month := range res.Months {
		lines = append(lines, fmt.Sprintf(p.trendLineFmt,
			month.Month,
			c.amount(lang, month.Income),
			c.amount(lang, month.Expenses),
			c.amount(lang, month.Balance),
		))
	}
	return strings.Join(lines, "\n")
}

func (c *Composer) composeCategorySummary(res *models.CategorySummaryResult, p phrases, lang string) string {
	if len(res.Categories) == 0 {
		return p.noData
	}
	lines := []string{p.categoryHeader}
	shown := 0
	for _, entry := range res.Categories {
		if entry.Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(p.categoryLineFmt,
			entry.Name,
			c.amount(lang, entry.Total),
			entry.Count,
			c.amount(lang, entry.Average),
		))
		shown++
		if shown == 5 {
			break
		}
	}
	if shown == 0 {
		return p.noData
	}
	return strings.Join(lines, "\n")
}

func (c *Composer) composeBusinessSummary(res *models.BusinessSummaryResult, p phrases, lang string) string {
	if len(res.Businesses) == 0 {
		return p.noData
	}
	parts := make([]string, 0, len(res.Businesses))
	for _, entry := range res.Businesses {
		parts = append(parts, fmt.Sprintf(p.businessLineFmt,
			entry.Name, c.amount(lang, entry.Total), entry.Count))
	}
	return fmt.Sprintf("%s %s.", p.businessHeader, strings.Join(parts, ", "))
}

func (c *Composer) composeTransactionCount(res *models.TransactionCountResult, p phrases) string {
	if res.TotalCount == 0 {
		return p.noData
	}
	period := p.timeframeNames[res.Timeframe]
	return fmt.Sprintf(p.countFmt, res.TotalCount, period, res.IncomeCount, res.ExpenseCount)
}

// amount renders a monetary value with locale-aware grouping, up to two
// fraction digits, and the active currency symbol.
func (c *Composer) amount(lang string, value float64) string {
	printer, ok := c.printers[lang]
	if !ok {
		printer = c.printers[LangEnglish]
	}
	formatted := printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
	if phrasesFor(lang).symbolBefore {
		return c.symbol + formatted
	}
	return formatted + " " + c.symbol
}
