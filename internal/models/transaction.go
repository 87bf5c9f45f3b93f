package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Category is the direction and budget bucket of a transaction. The
// amount of a transaction is always positive, the category carries the
// sign: income adds to the balance, everything else subtracts.
type Category string

const (
	CategoryIncome     Category = "income"
	CategoryEssential  Category = "essential"
	CategoryCommitment Category = "commitment"
	CategorySaving     Category = "saving"
)

// Categories returns all valid transaction categories.
func Categories() []Category {
	return []Category{CategoryIncome, CategoryEssential, CategoryCommitment, CategorySaving}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// IsExpense reports whether the category subtracts from the balance.
func (c Category) IsExpense() bool {
	return c != CategoryIncome
}

// Transaction represents one income or expense event of a family.
type Transaction struct {
	DefaultModel
	FamilyID    uuid.UUID       `json:"familyId" gorm:"index" example:"e6fa8eb6-0f4e-47b1-8dd4-dc03a75c3f02"`
	Family      Family          `json:"-"`
	UserID      uuid.UUID       `json:"userId" example:"9e7f55cf-e0d4-4c71-9a82-8abf3d24cd92"` // The member who recorded the transaction
	User        User            `json:"-"`
	Category    Category        `json:"category" example:"essential"`
	SubCategory string          `json:"subCategory" example:"Groceries"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1450.50"`
	Note        string          `json:"note" example:"weekly shop"`
	Date        time.Time       `json:"date" example:"2024-03-12T00:00:00Z"`
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionCategoryInvalid   = errors.New("the transaction category must be one of: income, essential, commitment, saving")
	ErrTransactionSubCategoryEmpty  = errors.New("the transaction sub-category must be set")
)

// BeforeSave trims strings and defaults the date to now, in UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.SubCategory = strings.TrimSpace(t.SubCategory)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// AfterSave validates the transaction. Running after the write means
// updates are checked against the merged state, a failed check rolls the
// write back.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	if !t.Category.Valid() {
		return ErrTransactionCategoryInvalid
	}

	if t.SubCategory == "" {
		return ErrTransactionSubCategoryEmpty
	}

	return nil
}
