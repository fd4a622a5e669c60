// backend/src/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/models"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open *sql.DB in a Store.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, business_name, billing_amount, is_income, category_id, details
		FROM transactions
		WHERE user_id = ?
		ORDER BY date ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var categoryID sql.NullInt64
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.BusinessName, &tx.BillingAmount,
			&tx.IsIncome, &categoryID, &tx.Details); err != nil {
			return nil, fmt.Errorf("error scanning transaction row for userID %d: %w", userID, err)
		}
		if categoryID.Valid {
			id := categoryID.Int64
			tx.CategoryID = &id
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transaction rows for userID %d: %w", userID, err)
	}
	return transactions, nil
}

func (s *sqliteStore) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, type
		FROM categories
		WHERE user_id = ?
		ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying categories for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("error scanning category row for userID %d: %w", userID, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over category rows for userID %d: %w", userID, err)
	}
	return categories, nil
}

func (s *sqliteStore) ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, category_id, amount, period, start_date, end_date
		FROM budgets
		WHERE user_id = ?
		ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying budgets for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		var endDate sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.StartDate, &endDate); err != nil {
			return nil, fmt.Errorf("error scanning budget row for userID %d: %w", userID, err)
		}
		if endDate.Valid {
			b.EndDate = endDate.String
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over budget rows for userID %d: %w", userID, err)
	}
	return budgets, nil
}

func (s *sqliteStore) ListBusinessNames(ctx context.Context, userID int64) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT business_name
		FROM transactions
		WHERE user_id = ? AND business_name != ''
		ORDER BY business_name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying business names for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning business name for userID %d: %w", userID, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over business names for userID %d: %w", userID, err)
	}
	return names, nil
}

func (s *sqliteStore) CreateQueryRecord(ctx context.Context, record *models.QueryRecord) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO query_history (id, user_id, question, answer, query_type, data_context, response_time_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.UserID, record.Question, record.Answer, record.QueryType,
		record.DataContext, record.ResponseTimeMS, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting query record for userID %d: %w", record.UserID, err)
	}
	logger.L.Debug("Query record persisted", "userID", record.UserID, "queryType", record.QueryType)
	return nil
}

func (s *sqliteStore) ListQueryRecords(ctx context.Context, userID int64, limit int) ([]models.QueryRecord, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, question, answer, query_type, data_context, response_time_ms, created_at
		FROM query_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying query history for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var records []models.QueryRecord
	for rows.Next() {
		var r models.QueryRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Question, &r.Answer, &r.QueryType,
			&r.DataContext, &r.ResponseTimeMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning query record for userID %d: %w", userID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over query records for userID %d: %w", userID, err)
	}
	return records, nil
}
