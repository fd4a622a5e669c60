// backend/src/store/interfaces.go
package store

import (
	"context"
	"errors"

	"github.com/username/finassist/backend/src/models"
)

// Store is the persistence boundary of the query engine. The engine only
// reads transactions, categories and budgets, and appends query records;
// it never updates or deletes anything.
type Store interface {
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error)

	// ListBusinessNames returns the distinct business names appearing in
	// the user's transactions, used as entity vocabulary.
	ListBusinessNames(ctx context.Context, userID int64) ([]string, error)

	CreateQueryRecord(ctx context.Context, record *models.QueryRecord) error
	ListQueryRecords(ctx context.Context, userID int64, limit int) ([]models.QueryRecord, error)
}

var ErrNotInitialized = errors.New("store: database handle is nil")
