// backend/src/assistant/timeframe_test.go
package assistant

import (
	"testing"
	"time"

	"github.com/username/finassist/backend/src/models"
)

func TestResolveTimeframe(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     models.Timeframe
		wantStart string
		wantEnd   string
	}{
		{"this month", models.TimeframeThisMonth, "2024-03-01", "2024-03-31"},
		{"last month in a leap year", models.TimeframeLastMonth, "2024-02-01", "2024-02-29"},
		{"last 3 months crosses the year", models.TimeframeLast3Months, "2023-12-01", "2024-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTimeframe(tt.token, now)
			if got == nil {
				t.Fatalf("ResolveTimeframe(%q) = nil, want range", tt.token)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("range = [%s, %s], want [%s, %s]", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveTimeframeUnrestricted(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := ResolveTimeframe(models.TimeframeNone, now); got != nil {
		t.Errorf("ResolveTimeframe(none) = %v, want nil", got)
	}
	if got := ResolveTimeframe(models.Timeframe("next_year"), now); got != nil {
		t.Errorf("ResolveTimeframe(unknown) = %v, want nil", got)
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: "2024-03-01", End: "2024-03-31"}

	tests := []struct {
		date string
		want bool
	}{
		{"2024-03-01", true},
		{"2024-03-31", true},
		{"2024-03-15", true},
		{"2024-02-29", false},
		{"2024-04-01", false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.date); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestFilterTransactionsByRange(t *testing.T) {
	transactions := []models.Transaction{
		{ID: 1, Date: "2024-02-28"},
		{ID: 2, Date: "2024-03-01"},
		{ID: 3, Date: "2024-03-31"},
		{ID: 4, Date: "2024-04-01"},
	}

	r := &DateRange{Start: "2024-03-01", End: "2024-03-31"}
	got := FilterTransactionsByRange(transactions, r)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("filtered = %v, want transactions 2 and 3", got)
	}

	if got := FilterTransactionsByRange(transactions, nil); len(got) != len(transactions) {
		t.Errorf("nil range filtered %d of %d transactions, want all", len(got), len(transactions))
	}
}
