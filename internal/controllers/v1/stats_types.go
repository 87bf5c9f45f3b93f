package v1

import (
	"time"

	"github.com/familyledger/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

type StatsQueryFilter struct {
	FromDate  time.Time `form:"fromDate"`  // Only count transactions at and after this date
	UntilDate time.Time `form:"untilDate"` // Only count transactions before and at this date
}

// LabelStats describes all transactions sharing one sub-category.
type LabelStats struct {
	ledger.LabelStats
	Display string `json:"display" example:"₹1,500.00"` // Formatted total for display
}

// Stats is the API representation of the ledger aggregation.
type Stats struct {
	Income         decimal.Decimal       `json:"income" example:"50000"`
	IncomeDisplay  string                `json:"incomeDisplay" example:"+₹50K"`
	Expense        decimal.Decimal       `json:"expense" example:"35000"`
	ExpenseDisplay string                `json:"expenseDisplay" example:"-₹35K"`
	Balance        decimal.Decimal       `json:"balance" example:"15000"` // Income - Expense
	BalanceDisplay string                `json:"balanceDisplay" example:"+₹15K"`
	BySubCategory  map[string]LabelStats `json:"bySubCategory"`
	Skipped        int                   `json:"skipped" example:"0"` // Number of records excluded because their stored amount was corrupt
}

func newStats(stats ledger.Stats) Stats {
	bySubCategory := make(map[string]LabelStats, len(stats.ByLabel))
	for label, labelStats := range stats.ByLabel {
		bySubCategory[label] = LabelStats{
			LabelStats: labelStats,
			Display:    ledger.FormatGroupedAmount(labelStats.Total),
		}
	}

	// The balance can go either way, its sign picks the direction
	balanceDirection := ledger.Income
	balance := stats.Balance
	if balance.IsNegative() {
		balanceDirection = ledger.Expense
		balance = balance.Neg()
	}

	return Stats{
		Income:         stats.Income,
		IncomeDisplay:  ledger.FormatDisplayAmount(stats.Income, ledger.Income),
		Expense:        stats.Expense,
		ExpenseDisplay: ledger.FormatDisplayAmount(stats.Expense, ledger.Expense),
		Balance:        stats.Balance,
		BalanceDisplay: ledger.FormatDisplayAmount(balance, balanceDirection),
		BySubCategory:  bySubCategory,
		Skipped:        len(stats.Skipped),
	}
}

// StatsResponse is the response for the statistics endpoint.
type StatsResponse struct {
	Data  *Stats  `json:"data"`
	Error *string `json:"error"` // The error, if any occurred
}
