// backend/src/models/finance.go
package models

import "time"

// Transaction represents a single financial record owned by a user.
// BillingAmount is always the absolute magnitude charged or received;
// IsIncome determines the direction.
type Transaction struct {
	ID            int64   `json:"id,omitempty"`
	UserID        int64   `json:"user_id,omitempty"`
	Date          string  `json:"date"` // YYYY-MM-DD
	BusinessName  string  `json:"business_name"`
	BillingAmount float64 `json:"billing_amount"`
	IsIncome      bool    `json:"is_income"`
	CategoryID    *int64  `json:"category_id,omitempty"`
	Details       string  `json:"details,omitempty"`
}

// Category is a user defined grouping for transactions.
type Category struct {
	ID     int64  `json:"id,omitempty"`
	UserID int64  `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Type   string `json:"type"` // "expense" or "income"
}

// Budget is a spending cap for a single category over a recurring period.
type Budget struct {
	ID         int64   `json:"id,omitempty"`
	UserID     int64   `json:"user_id,omitempty"`
	CategoryID int64   `json:"category_id"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"` // weekly, monthly, quarterly, yearly
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date,omitempty"` // empty = open ended
}

// QueryRecord is one persisted entry of the assistant query history.
// Records are append-only; the engine never updates or deletes them.
type QueryRecord struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"user_id,omitempty"`
	Question       string    `json:"question"`
	Answer         string    `json:"answer"`
	QueryType      string    `json:"query_type"`
	DataContext    string    `json:"data_context"` // JSON snapshot of confidence/timeframe/entities
	ResponseTimeMS int64     `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationMessage is one entry of a user's in-memory conversation with
// the assistant. Assistant messages carry classification metadata.
type ConversationMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"` // "user" or "assistant"
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	Intent     Intent    `json:"intent,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}
