package models_test

import (
	"github.com/familyledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFamilyInviteCodeGenerated() {
	family := suite.createTestFamily(models.Family{Name: "The Sharmas"})
	suite.Assert().NotEmpty(family.InviteCode)

	other := suite.createTestFamily(models.Family{Name: "The Guptas"})
	suite.Assert().NotEqual(family.InviteCode, other.InviteCode)
}

func (suite *TestSuiteStandard) TestFamilyNameEmpty() {
	err := models.DB.Create(&models.Family{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrFamilyNameEmpty)
}

func (suite *TestSuiteStandard) TestFamilyBudgetCapNegative() {
	err := models.DB.Create(&models.Family{
		Name:             "The Sharmas",
		MonthlyBudgetCap: decimal.NewNullDecimal(decimal.NewFromInt(-1)),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBudgetCapNegative)
}

func (suite *TestSuiteStandard) TestFamilyBudgetCapOptional() {
	family := suite.createTestFamily(models.Family{Name: "The Sharmas"})
	suite.Assert().False(family.MonthlyBudgetCap.Valid)
}
