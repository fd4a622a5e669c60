// backend/src/assistant/dispatcher.go
package assistant

import (
	"context"
	"time"

	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/store"
)

// Error sentinels carried inside AnalyzerResult. These are internal
// markers; the composer maps them to localized "no data" sentences.
const (
	errUnsupportedQuery = "Unsupported query type"
	errExecutionFailed  = "Failed to execute query"
)

// Dispatcher maps an intent to the minimal record sets its analyzer
// needs, loads them, applies timeframe filtering where the analyzer
// expects a time-scoped view, and runs the analyzer.
type Dispatcher struct {
	store store.Store
}

// NewDispatcher creates a Dispatcher over the given store.
func NewDispatcher(s store.Store) *Dispatcher {
	return &Dispatcher{store: s}
}

// Dispatch executes the analyzer for the classified intent. It never
// returns an error or panics outward: load and analysis failures are
// converted into the uniform error sentinel.
func (d *Dispatcher) Dispatch(ctx context.Context, userID int64, c models.ClassificationResult, now time.Time) (result models.AnalyzerResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("Analyzer panicked", "intent", c.Intent, "panic", r)
			result = models.AnalyzerResult{Err: errExecutionFailed}
		}
	}()

	timeRange := ResolveTimeframe(c.Timeframe, now)

	switch c.Intent {
	case models.IntentSpendingAnalysis:
		transactions, categories, err := d.loadTransactionsAndCategories(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		transactions = FilterTransactionsByRange(transactions, timeRange)
		return models.AnalyzerResult{Spending: AnalyzeSpending(transactions, categories, c.Entities)}

	case models.IntentBudgetStatus:
		// Budget consumption is always measured against the current
		// calendar month, so the user's timeframe is deliberately not
		// applied here.
		budgets, err := d.store.ListBudgets(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		transactions, categories, err := d.loadTransactionsAndCategories(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		return models.AnalyzerResult{BudgetStatus: AnalyzeBudgetStatus(budgets, transactions, categories, now)}

	case models.IntentTrendAnalysis:
		transactions, categories, err := d.loadTransactionsAndCategories(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		// The timeframe bounds how much history is handed to the
		// analyzer; grouping itself covers everything supplied.
		transactions = FilterTransactionsByRange(transactions, timeRange)
		return models.AnalyzerResult{Trend: AnalyzeTrend(transactions, categories)}

	case models.IntentCategorySummary:
		transactions, categories, err := d.loadTransactionsAndCategories(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		transactions = FilterTransactionsByRange(transactions, timeRange)
		return models.AnalyzerResult{CategorySummary: SummarizeCategories(transactions, categories, c.Entities)}

	case models.IntentBusinessSummary:
		transactions, err := d.store.ListTransactions(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		transactions = FilterTransactionsByRange(transactions, timeRange)
		return models.AnalyzerResult{BusinessSummary: SummarizeBusinesses(transactions, c.Entities)}

	case models.IntentTransactionCount:
		transactions, err := d.store.ListTransactions(ctx, userID)
		if err != nil {
			return d.loadFailure(ctx, c.Intent, err)
		}
		transactions = FilterTransactionsByRange(transactions, timeRange)
		return models.AnalyzerResult{TransactionCount: CountTransactions(transactions, c.Entities, c.Timeframe)}

	default:
		return models.AnalyzerResult{Err: errUnsupportedQuery}
	}
}

func (d *Dispatcher) loadTransactionsAndCategories(ctx context.Context, userID int64) ([]models.Transaction, []models.Category, error) {
	transactions, err := d.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	categories, err := d.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return transactions, categories, nil
}

func (d *Dispatcher) loadFailure(ctx context.Context, intent models.Intent, err error) models.AnalyzerResult {
	logger.FromContext(ctx).Error("Query dispatch failed", "intent", intent, "error", err)
	return models.AnalyzerResult{Err: errExecutionFailed}
}
