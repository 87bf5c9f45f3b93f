package v1_test

import (
	"net/http"
	"testing"

	"github.com/familyledger/backend/internal/allocation"
	v1 "github.com/familyledger/backend/internal/controllers/v1"
	"github.com/familyledger/backend/internal/models"
	"github.com/familyledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func commitTestBudget(t *testing.T, token string, editable v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budget", editable, authHeaders(token))
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.BudgetResponse
	test.DecodeResponse(t, &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestBudgetCommit() {
	token, _ := familyTestUser(suite.T())

	response := commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income: []v1.BudgetLineEditable{
			{Name: "Salary", Amount: decimal.NewFromInt(50000)},
			{Name: "Bonus", Amount: decimal.NewFromInt(120000), Frequency: models.FrequencyYearly},
		},
		Essentials: []v1.BudgetLineEditable{
			{Name: "Housing", Amount: decimal.NewFromInt(20000)},
			{Name: "Groceries", Amount: decimal.NewFromInt(5000)},
		},
		Commitments: []v1.BudgetLineEditable{{Name: "Car EMI", Amount: decimal.NewFromInt(15000)}},
		Savings:     []v1.BudgetLineEditable{{Name: "Index fund SIP", Amount: decimal.NewFromInt(12000)}},
	})

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Income, 2)
	suite.Assert().Len(response.Data.Essentials, 2)
	suite.Assert().Len(response.Data.Commitments, 1)
	suite.Assert().Len(response.Data.Savings, 1)

	// The yearly bonus counts with its monthly share
	allocation := response.Data.Allocation
	suite.Assert().True(allocation.TotalIncome.Equal(decimal.NewFromInt(60000)), "total income is %s", allocation.TotalIncome)
	suite.Assert().True(allocation.Essentials.Used.Equal(decimal.NewFromInt(25000)))
	suite.Assert().True(allocation.Essentials.Limit.Equal(decimal.NewFromInt(30000)))
	suite.Assert().True(allocation.Essentials.Remaining.Equal(decimal.NewFromInt(5000)))
	suite.Assert().True(allocation.Savings.UsedPercent.Equal(decimal.NewFromInt(20)), "savings used percent is %s", allocation.Savings.UsedPercent)
	suite.Assert().True(allocation.WithinLimits)
}

func (suite *TestSuiteStandard) TestBudgetCommitReplaces() {
	token, _ := familyTestUser(suite.T())

	first := commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income:     []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(50000)}},
		Essentials: []v1.BudgetLineEditable{{Name: "Housing", Amount: decimal.NewFromInt(20000)}},
	})

	second := commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income:  []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(65000)}},
		Savings: []v1.BudgetLineEditable{{Name: "PPF", Amount: decimal.NewFromInt(13000)}},
	})

	suite.Assert().NotEqual(first.Data.ID, second.Data.ID)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(second.Data.ID, response.Data.ID)
	suite.Assert().Len(response.Data.Essentials, 0, "lines of the replaced budget survived")
	suite.Assert().Len(response.Data.Savings, 1)

	// The replaced rows are gone for good, not soft-deleted. A
	// soft-deleted budget would still occupy the unique index on the
	// family and block every commit after the first
	var count int64
	suite.Require().NoError(models.DB.Unscoped().Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	suite.Require().NoError(models.DB.Unscoped().Model(&models.BudgetLine{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestBudgetCommitInvalid() {
	token, _ := familyTestUser(suite.T())

	tests := []struct {
		name     string
		editable v1.BudgetEditable
	}{
		{"negative amount", v1.BudgetEditable{Essentials: []v1.BudgetLineEditable{{Name: "Housing", Amount: decimal.NewFromInt(-100)}}}},
		{"empty name", v1.BudgetEditable{Income: []v1.BudgetLineEditable{{Amount: decimal.NewFromInt(50000)}}}},
		{"invalid frequency", v1.BudgetEditable{Income: []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(50000), Frequency: "daily"}}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			commitTestBudget(t, token, tt.editable, http.StatusBadRequest)

			// Nothing may be persisted from a rejected draft
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budget", "", authHeaders(token))
			test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCommitInvalidKeepsPrevious() {
	token, _ := familyTestUser(suite.T())

	committed := commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income: []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(50000)}},
	})

	commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Essentials: []v1.BudgetLineEditable{{Name: "Housing", Amount: decimal.NewFromInt(-100)}},
	}, http.StatusBadRequest)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(committed.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestBudgetGetWithoutCommit() {
	token, _ := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetGetOtherFamily() {
	token, _ := familyTestUser(suite.T())
	other, _ := familyTestUser(suite.T())

	commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income: []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(50000)}},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", authHeaders(other))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCheck() {
	token, _ := familyTestUser(suite.T())

	tests := []struct {
		name      string
		editable  v1.BudgetCheckEditable
		allowed   bool
		available int64
	}{
		{"fits", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketEssentials, Used: decimal.NewFromInt(10000), Amount: decimal.NewFromInt(5000)}, true, 15000},
		{"exactly at the ceiling", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketEssentials, Used: decimal.NewFromInt(20000), Amount: decimal.NewFromInt(5000)}, true, 5000},
		{"exceeds the ceiling", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketCommitments, Used: decimal.NewFromInt(14000), Amount: decimal.NewFromInt(2000)}, false, 1000},
		{"bucket already overspent", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketEssentials, Used: decimal.NewFromInt(30000), Amount: decimal.NewFromInt(1)}, false, 0},
		{"savings have no ceiling", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketSavings, Used: decimal.NewFromInt(50000), Amount: decimal.NewFromInt(100000)}, true, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budget/check", tt.editable, authHeaders(token))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.BudgetCheckResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.allowed, response.Data.Allowed)
			assert.True(t, response.Data.AvailableAmount.Equal(decimal.NewFromInt(tt.available)), "available amount is %s", response.Data.AvailableAmount)
			if !tt.allowed {
				assert.NotEmpty(t, response.Data.Reason)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCheckInvalid() {
	token, _ := familyTestUser(suite.T())

	tests := []struct {
		name     string
		editable v1.BudgetCheckEditable
	}{
		{"unknown bucket", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: "luxuries", Amount: decimal.NewFromInt(100)}},
		{"negative income", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(-1), Bucket: allocation.BucketEssentials, Amount: decimal.NewFromInt(100)}},
		{"negative amount", v1.BudgetCheckEditable{TotalIncome: decimal.NewFromInt(50000), Bucket: allocation.BucketEssentials, Amount: decimal.NewFromInt(-100)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budget/check", tt.editable, authHeaders(token))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetAllocationPlan() {
	token, _ := familyTestUser(suite.T())

	commitTestBudget(suite.T(), token, v1.BudgetEditable{
		Income:     []v1.BudgetLineEditable{{Name: "Salary", Amount: decimal.NewFromInt(50000)}},
		Essentials: []v1.BudgetLineEditable{{Name: "Housing", Amount: decimal.NewFromInt(20000)}},
		Savings:    []v1.BudgetLineEditable{{Name: "SIP", Amount: decimal.NewFromInt(10000)}},
	})

	for _, source := range []string{"", "?source=plan"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget/allocation"+source, "", authHeaders(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.AllocationResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Require().NotNil(response.Data)

		suite.Assert().True(response.Data.TotalIncome.Equal(decimal.NewFromInt(50000)))
		suite.Assert().True(response.Data.Essentials.Used.Equal(decimal.NewFromInt(20000)))
		suite.Assert().True(response.Data.WithinLimits)
	}
}

func (suite *TestSuiteStandard) TestBudgetAllocationActual() {
	token, _ := familyTestUser(suite.T())

	for _, editable := range []v1.TransactionEditable{
		{Category: models.CategoryIncome, SubCategory: "Salary", Amount: decimal.NewFromInt(50000)},
		{Category: models.CategoryEssential, SubCategory: "Groceries", Amount: decimal.NewFromInt(20000)},
		{Category: models.CategoryCommitment, SubCategory: "EMI", Amount: decimal.NewFromInt(10000)},
		{Category: models.CategorySaving, SubCategory: "SIP", Amount: decimal.NewFromInt(5000)},
	} {
		createTestTransaction(suite.T(), token, editable)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget/allocation?source=actual", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.TotalIncome.Equal(decimal.NewFromInt(50000)))
	suite.Assert().True(response.Data.Essentials.Used.Equal(decimal.NewFromInt(20000)))
	suite.Assert().True(response.Data.Commitments.Used.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(response.Data.Savings.Used.Equal(decimal.NewFromInt(5000)))

	// Only 10% of the income reached savings
	suite.Assert().False(response.Data.WithinLimits)
}

func (suite *TestSuiteStandard) TestBudgetAllocationInvalidSource() {
	token, _ := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget/allocation?source=horoscope", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	token, _ := familyTestUser(suite.T())

	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/budget", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budget/check", "OPTIONS, POST"},
		{"http://example.com/v1/budget/allocation", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.url, "", authHeaders(token))
			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}
