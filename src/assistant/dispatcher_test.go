// backend/src/assistant/dispatcher_test.go
package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/store"
)

func seededStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.Categories = []models.Category{
		{ID: 1, UserID: 1, Name: "Groceries", Type: "expense"},
		{ID: 2, UserID: 1, Name: "Transport", Type: "expense"},
	}
	s.Budgets = []models.Budget{
		{ID: 1, UserID: 1, CategoryID: 1, Amount: 1000, Period: "monthly", StartDate: "2024-01-01"},
	}
	s.Transactions = []models.Transaction{
		{ID: 1, UserID: 1, Date: "2024-01-05", BusinessName: "SuperPharm", BillingAmount: 500, CategoryID: catID(1)},
		{ID: 2, UserID: 1, Date: "2024-01-12", BusinessName: "Bus Co", BillingAmount: 350, CategoryID: catID(2)},
		{ID: 3, UserID: 1, Date: "2023-12-20", BusinessName: "SuperPharm", BillingAmount: 400, CategoryID: catID(1)},
		{ID: 4, UserID: 1, Date: "2024-01-25", BusinessName: "Employer", BillingAmount: 9000, IsIncome: true},
	}
	return s
}

func TestDispatchSpendingWithTimeframe(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent:    models.IntentSpendingAnalysis,
		Timeframe: models.TimeframeThisMonth,
	}, now)

	if result.IsError() {
		t.Fatalf("result = %+v, want success", result)
	}
	if result.Spending == nil {
		t.Fatal("Spending = nil, want populated result")
	}
	// The December transaction is filtered out, the salary is income.
	if result.Spending.TotalSpent != 850 || result.Spending.TransactionCount != 2 {
		t.Errorf("spending = %+v, want 850 across 2 transactions", result.Spending)
	}
}

func TestDispatchBudgetIgnoresRequestedTimeframe(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent:    models.IntentBudgetStatus,
		Timeframe: models.TimeframeLastMonth,
	}, now)

	if result.BudgetStatus == nil || len(result.BudgetStatus.Budgets) != 1 {
		t.Fatalf("result = %+v, want one budget entry", result)
	}
	// Consumption stays scoped to January even though the question asked
	// about December.
	if got := result.BudgetStatus.Budgets[0].Spent; got != 500 {
		t.Errorf("Spent = %v, want 500 from the current month only", got)
	}
}

func TestDispatchTrend(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent: models.IntentTrendAnalysis,
	}, now)

	if result.Trend == nil || len(result.Trend.Months) != 2 {
		t.Fatalf("result = %+v, want December and January grouped", result)
	}
	if result.Trend.Months[0].Month != "2023-12" || result.Trend.Months[1].Month != "2024-01" {
		t.Errorf("months = %v, want ascending order", result.Trend.Months)
	}
}

func TestDispatchBusinessSummary(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent: models.IntentBusinessSummary,
	}, now)

	if result.BusinessSummary == nil || len(result.BusinessSummary.Businesses) != 3 {
		t.Fatalf("result = %+v, want three business groups", result)
	}
}

func TestDispatchTransactionCount(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent:    models.IntentTransactionCount,
		Timeframe: models.TimeframeThisMonth,
	}, now)

	if result.TransactionCount == nil {
		t.Fatal("TransactionCount = nil, want populated result")
	}
	if result.TransactionCount.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3 January transactions", result.TransactionCount.TotalCount)
	}
}

func TestDispatchStoreFailure(t *testing.T) {
	s := seededStore()
	s.FailReads = errors.New("disk on fire")
	d := NewDispatcher(s)
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	for _, intent := range []models.Intent{
		models.IntentSpendingAnalysis,
		models.IntentBudgetStatus,
		models.IntentTrendAnalysis,
		models.IntentCategorySummary,
		models.IntentBusinessSummary,
		models.IntentTransactionCount,
	} {
		result := d.Dispatch(context.Background(), 1, models.ClassificationResult{Intent: intent}, now)
		if !result.IsError() || result.Err != errExecutionFailed {
			t.Errorf("Dispatch(%s) = %+v, want the execution-failed sentinel", intent, result)
		}
	}
}

func TestDispatchUnsupportedIntent(t *testing.T) {
	d := NewDispatcher(seededStore())
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	for _, intent := range []models.Intent{models.IntentGeneralInfo, models.Intent("weather_forecast")} {
		result := d.Dispatch(context.Background(), 1, models.ClassificationResult{Intent: intent}, now)
		if !result.IsError() || result.Err != errUnsupportedQuery {
			t.Errorf("Dispatch(%s) = %+v, want the unsupported sentinel", intent, result)
		}
	}
}

func TestDispatchScopesToUser(t *testing.T) {
	s := store.NewMemoryStore()
	s.Transactions = []models.Transaction{
		{ID: 1, UserID: 1, Date: "2024-01-05", BillingAmount: 100},
		{ID: 2, UserID: 2, Date: "2024-01-06", BillingAmount: 999},
	}
	d := NewDispatcher(s)
	now := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)

	result := d.Dispatch(context.Background(), 1, models.ClassificationResult{
		Intent: models.IntentTransactionCount,
	}, now)
	if result.TransactionCount.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want only user 1's transaction", result.TransactionCount.TotalCount)
	}
}
