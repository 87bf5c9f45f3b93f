package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/familyledger/backend/internal/controllers/v1"
	"github.com/familyledger/backend/internal/models"
	"github.com/familyledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestStats() {
	token, _ := familyTestUser(suite.T())
	other, _ := familyTestUser(suite.T())

	for _, editable := range []v1.TransactionEditable{
		{Category: models.CategoryIncome, SubCategory: "Salary", Amount: decimal.NewFromInt(50000)},
		{Category: models.CategoryEssential, SubCategory: "Groceries", Amount: decimal.NewFromInt(5000)},
		{Category: models.CategoryEssential, SubCategory: "Groceries", Amount: decimal.NewFromInt(2500)},
		{Category: models.CategoryCommitment, SubCategory: "EMI", Amount: decimal.NewFromInt(10000)},
	} {
		createTestTransaction(suite.T(), token, editable)
	}

	// Another family's transactions must not leak into the totals
	createTestTransaction(suite.T(), other, v1.TransactionEditable{
		Category:    models.CategoryEssential,
		SubCategory: "Groceries",
		Amount:      decimal.NewFromInt(99999),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(50000)), "income is %s", response.Data.Income)
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromInt(17500)), "expense is %s", response.Data.Expense)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(32500)), "balance is %s", response.Data.Balance)

	suite.Assert().Equal("+₹50K", response.Data.IncomeDisplay)
	suite.Assert().Equal("-₹17.5K", response.Data.ExpenseDisplay)
	suite.Assert().Equal("+₹32.5K", response.Data.BalanceDisplay)

	suite.Require().Len(response.Data.BySubCategory, 3)
	groceries := response.Data.BySubCategory["Groceries"]
	suite.Assert().Equal(2, groceries.Count)
	suite.Assert().True(groceries.Total.Equal(decimal.NewFromInt(7500)))
	suite.Assert().Equal("₹7,500.00", groceries.Display)

	suite.Assert().Equal(0, response.Data.Skipped)
}

func (suite *TestSuiteStandard) TestStatsEmpty() {
	token, _ := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Balance.IsZero())
	suite.Assert().Equal("+₹0.00", response.Data.BalanceDisplay)
	suite.Assert().Empty(response.Data.BySubCategory)
}

func (suite *TestSuiteStandard) TestStatsNegativeBalance() {
	token, _ := familyTestUser(suite.T())

	createTestTransaction(suite.T(), token, v1.TransactionEditable{
		Category:    models.CategoryEssential,
		SubCategory: "Rent",
		Amount:      decimal.NewFromInt(20000),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(-20000)), "balance is %s", response.Data.Balance)
	suite.Assert().Equal("-₹20K", response.Data.BalanceDisplay)
}

func (suite *TestSuiteStandard) TestStatsDateWindow() {
	token, _ := familyTestUser(suite.T())

	for _, editable := range []v1.TransactionEditable{
		{Category: models.CategoryIncome, SubCategory: "Salary", Amount: decimal.NewFromInt(50000), Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{Category: models.CategoryEssential, SubCategory: "Groceries", Amount: decimal.NewFromInt(5000), Date: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{Category: models.CategoryEssential, SubCategory: "Groceries", Amount: decimal.NewFromInt(3000), Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)},
	} {
		createTestTransaction(suite.T(), token, editable)
	}

	tests := []struct {
		name    string
		query   string
		income  int64
		expense int64
	}{
		{"march only", "fromDate=2024-03-01T00:00:00Z&untilDate=2024-03-31T00:00:00Z", 50000, 5000},
		// The window is inclusive on the whole day, the time of day of the
		// boundary does not matter
		{"boundary day counts", "fromDate=2024-03-15T23:00:00Z", 0, 8000},
		{"until only", "untilDate=2024-03-01T00:00:00Z", 50000, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/stats?"+tt.query, "", authHeaders(token))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.StatsResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.True(t, response.Data.Income.Equal(decimal.NewFromInt(tt.income)), "income is %s", response.Data.Income)
			assert.True(t, response.Data.Expense.Equal(decimal.NewFromInt(tt.expense)), "expense is %s", response.Data.Expense)
		})
	}
}

func (suite *TestSuiteStandard) TestStatsSkipsCorruptRecords() {
	token, _ := familyTestUser(suite.T())

	createTestTransaction(suite.T(), token, v1.TransactionEditable{
		Category:    models.CategoryIncome,
		SubCategory: "Salary",
		Amount:      decimal.NewFromInt(50000),
	})
	corrupt := createTestTransaction(suite.T(), token, v1.TransactionEditable{
		Category:    models.CategoryEssential,
		SubCategory: "Groceries",
		Amount:      decimal.NewFromInt(5000),
	})

	// Corrupt the stored amount directly, bypassing the model hooks
	err := models.DB.Model(&models.Transaction{}).Where("id = ?", corrupt.Data.ID).UpdateColumn("amount", decimal.NewFromInt(-5000)).Error
	suite.Require().NoError(err)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal(1, response.Data.Skipped)
	suite.Assert().True(response.Data.Expense.IsZero(), "corrupt record counted into expenses")
	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(50000)))
}

func (suite *TestSuiteStandard) TestStatsWithoutFamily() {
	token := loginTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
