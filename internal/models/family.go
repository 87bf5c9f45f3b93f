package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Family is the sharing scope of the application. Transactions and the
// committed budget are pooled across all members of a family.
type Family struct {
	DefaultModel
	Name       string `json:"name" example:"The Sharmas"`
	InviteCode string `json:"inviteCode" gorm:"uniqueIndex" example:"f4bd3a9c"` // Code other users join the family with

	// An optional overall monthly spending cap, independent of the
	// 50/30/20 evaluation.
	MonthlyBudgetCap decimal.NullDecimal `json:"monthlyBudgetCap" gorm:"type:DECIMAL(20,8)" swaggertype:"number"`
}

var ErrFamilyNameEmpty = errors.New("the family name must be set")

// BeforeCreate generates the invite code for the family.
func (f *Family) BeforeCreate(tx *gorm.DB) error {
	_ = f.DefaultModel.BeforeCreate(tx)

	f.InviteCode = strings.Split(uuid.NewString(), "-")[0]
	return nil
}

func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	return nil
}

func (f *Family) AfterSave(_ *gorm.DB) error {
	if f.Name == "" {
		return ErrFamilyNameEmpty
	}

	if f.MonthlyBudgetCap.Valid && f.MonthlyBudgetCap.Decimal.IsNegative() {
		return ErrBudgetCapNegative
	}

	return nil
}

var ErrBudgetCapNegative = errors.New("the monthly budget cap must not be negative")
