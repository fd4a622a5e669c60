// backend/src/assistant/timeframe.go
package assistant

import (
	"time"

	"github.com/username/finassist/backend/src/models"
)

const isoDate = "2006-01-02"

// DateRange is an inclusive calendar-day range in ISO YYYY-MM-DD form.
// ISO strings compare lexically in date order, so filtering is a plain
// string comparison.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the ISO date falls inside the range.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// ResolveTimeframe maps a timeframe token to a concrete date range
// relative to now. A nil result means "unrestricted": no filtering is
// applied downstream. Unrecognized tokens resolve to unrestricted too.
func ResolveTimeframe(token models.Timeframe, now time.Time) *DateRange {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := firstOfMonth.AddDate(0, 1, -1)

	switch token {
	case models.TimeframeThisMonth:
		return &DateRange{Start: firstOfMonth.Format(isoDate), End: endOfMonth.Format(isoDate)}
	case models.TimeframeLastMonth:
		prevFirst := firstOfMonth.AddDate(0, -1, 0)
		prevEnd := firstOfMonth.AddDate(0, 0, -1)
		return &DateRange{Start: prevFirst.Format(isoDate), End: prevEnd.Format(isoDate)}
	case models.TimeframeLast3Months:
		return &DateRange{Start: firstOfMonth.AddDate(0, -3, 0).Format(isoDate), End: endOfMonth.Format(isoDate)}
	default:
		return nil
	}
}

// FilterTransactionsByRange returns the transactions whose date falls in
// the range. A nil range returns the input unchanged.
func FilterTransactionsByRange(transactions []models.Transaction, r *DateRange) []models.Transaction {
	if r == nil {
		return transactions
	}
	var filtered []models.Transaction
	for _, tx := range transactions {
		if r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
