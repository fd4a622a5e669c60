// backend/src/store/memory.go
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/username/finassist/backend/src/models"
)

// MemoryStore is an in-memory Store implementation used in tests and
// local development. All methods return copies; callers cannot mutate the
// stored data through the returned slices.
type MemoryStore struct {
	mu           sync.RWMutex
	Transactions []models.Transaction
	Categories   []models.Category
	Budgets      []models.Budget
	QueryRecords []models.QueryRecord

	// FailReads forces every read to return the given error, simulating a
	// data store outage.
	FailReads error
	// FailWrites forces CreateQueryRecord to return the given error.
	FailWrites error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	var out []models.Transaction
	for _, tx := range m.Transactions {
		if tx.UserID == 0 || tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	var out []models.Category
	for _, c := range m.Categories {
		if c.UserID == 0 || c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	var out []models.Budget
	for _, b := range m.Budgets {
		if b.UserID == 0 || b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListBusinessNames(ctx context.Context, userID int64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	seen := make(map[string]bool)
	var names []string
	for _, tx := range m.Transactions {
		if tx.UserID != 0 && tx.UserID != userID {
			continue
		}
		if tx.BusinessName == "" || seen[tx.BusinessName] {
			continue
		}
		seen[tx.BusinessName] = true
		names = append(names, tx.BusinessName)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) CreateQueryRecord(ctx context.Context, record *models.QueryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.QueryRecords = append(m.QueryRecords, *record)
	return nil
}

func (m *MemoryStore) ListQueryRecords(ctx context.Context, userID int64, limit int) ([]models.QueryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	var out []models.QueryRecord
	for i := len(m.QueryRecords) - 1; i >= 0; i-- {
		r := m.QueryRecords[i]
		if r.UserID == 0 || r.UserID == userID {
			out = append(out, r)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
