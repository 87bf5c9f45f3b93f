// Package ledger computes summary statistics over transaction records.
//
// All functions are pure: they operate on their arguments only and
// perform no I/O, so they are safe for concurrent use.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction states whether an entry adds to or subtracts from the balance.
type Direction string

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

// Entry is a single ledger record to aggregate.
//
// The amount is always positive, the direction carries the sign.
type Entry struct {
	ID        string
	Direction Direction
	Label     string
	Amount    decimal.Decimal
	Date      time.Time
}

// LabelStats describes all entries sharing one sub-category label.
type LabelStats struct {
	Count int             `json:"count" example:"3"`
	Total decimal.Decimal `json:"total" example:"1500"` // Sum of amounts, always positive
}

// Stats is the aggregation result for a set of entries.
type Stats struct {
	Income  decimal.Decimal       `json:"income" example:"50000"`
	Expense decimal.Decimal       `json:"expense" example:"35000"`
	Balance decimal.Decimal       `json:"balance" example:"15000"` // Income - Expense
	ByLabel map[string]LabelStats `json:"byLabel"`

	// IDs of entries that were excluded because their amount was not
	// strictly positive. These point at corrupt stored records and must
	// be reported by the caller, not folded into the totals.
	Skipped []string `json:"-"`
}

// Summarize aggregates entries into totals and a per-label breakdown.
//
// If from or until are non-nil, only entries whose date falls inside the
// inclusive window are counted. Summation is commutative, the result does
// not depend on the order of the entries. An empty input yields all-zero
// stats.
//
// Expenses contribute positively to the total of their own label, they
// are not netted against income.
func Summarize(entries []Entry, from, until *time.Time) Stats {
	stats := Stats{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
		ByLabel: make(map[string]LabelStats),
	}

	for _, entry := range entries {
		if from != nil && entry.Date.Before(*from) {
			continue
		}

		if until != nil && entry.Date.After(*until) {
			continue
		}

		// A non-positive amount means the stored record is corrupt.
		// Exclude it and let the caller report it.
		if !entry.Amount.IsPositive() {
			stats.Skipped = append(stats.Skipped, entry.ID)
			continue
		}

		if entry.Direction == Income {
			stats.Income = stats.Income.Add(entry.Amount)
		} else {
			stats.Expense = stats.Expense.Add(entry.Amount)
		}

		label := stats.ByLabel[entry.Label]
		label.Count++
		label.Total = label.Total.Add(entry.Amount)
		stats.ByLabel[entry.Label] = label
	}

	stats.Balance = stats.Income.Sub(stats.Expense)
	return stats
}
