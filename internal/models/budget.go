package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Frequency states how often an income source pays out.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Budget is the committed result of the budget setup. A family has at
// most one budget; re-running the setup replaces it as a whole.
type Budget struct {
	DefaultModel
	FamilyID uuid.UUID    `json:"familyId" gorm:"uniqueIndex" example:"e6fa8eb6-0f4e-47b1-8dd4-dc03a75c3f02"`
	Family   Family       `json:"-"`
	Lines    []BudgetLine `json:"lines" gorm:"constraint:OnDelete:CASCADE"`
}

// BudgetLine is one planned line item of a committed budget: an income
// source or a planned expense in one of the three buckets.
type BudgetLine struct {
	DefaultModel
	BudgetID  uuid.UUID       `json:"budgetId" gorm:"index" example:"aa66e5e1-a7a1-4b3a-b45b-24b0b83b9a92"`
	Kind      Category        `json:"kind" example:"essential"`
	Name      string          `json:"name" example:"Housing"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"20000"`
	Frequency Frequency       `json:"frequency,omitempty" example:"monthly"` // Only set for income lines
}

var (
	ErrBudgetExists               = errors.New("this family already has a budget, replace it by committing a new one")
	ErrBudgetLineAmountNegative   = errors.New("budget line amounts must not be negative")
	ErrBudgetLineKindInvalid      = errors.New("the budget line kind must be one of: income, essential, commitment, saving")
	ErrBudgetLineNameEmpty        = errors.New("the budget line name must be set")
	ErrBudgetLineFrequencyInvalid = errors.New("the income frequency must be one of: weekly, monthly, yearly")
)

var (
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

// BeforeSave trims the name and defaults the frequency for income lines.
func (l *BudgetLine) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)

	if l.Kind == CategoryIncome && l.Frequency == "" {
		l.Frequency = FrequencyMonthly
	}

	return nil
}

func (l *BudgetLine) AfterSave(_ *gorm.DB) error {
	if l.Amount.IsNegative() {
		return ErrBudgetLineAmountNegative
	}

	if !l.Kind.Valid() {
		return ErrBudgetLineKindInvalid
	}

	if l.Name == "" {
		return ErrBudgetLineNameEmpty
	}

	if l.Kind == CategoryIncome && !slices.Contains([]Frequency{FrequencyWeekly, FrequencyMonthly, FrequencyYearly}, l.Frequency) {
		return ErrBudgetLineFrequencyInvalid
	}

	return nil
}

// MonthlyAmount normalizes the line's amount to a monthly figure.
func (l BudgetLine) MonthlyAmount() decimal.Decimal {
	if l.Kind != CategoryIncome {
		return l.Amount
	}

	switch l.Frequency {
	case FrequencyWeekly:
		return l.Amount.Mul(weeksPerYear).Div(monthsPerYear)
	case FrequencyYearly:
		return l.Amount.Div(monthsPerYear)
	default:
		return l.Amount
	}
}

// MonthlyIncome sums all income lines, normalized to monthly amounts.
func (b Budget) MonthlyIncome() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range b.Lines {
		if line.Kind == CategoryIncome {
			sum = sum.Add(line.MonthlyAmount())
		}
	}

	return sum
}

// KindTotal sums the amounts of all lines of the given kind.
func (b Budget) KindTotal(kind Category) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range b.Lines {
		if line.Kind == kind {
			sum = sum.Add(line.Amount)
		}
	}

	return sum
}
