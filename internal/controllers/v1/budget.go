package v1

import (
	"net/http"
	"time"

	"github.com/familyledger/backend/internal/allocation"
	"github.com/familyledger/backend/internal/httputil"
	"github.com/familyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
		r.POST("", CreateBudget)
	}

	r.OPTIONS("/check", OptionsBudgetCheck)
	r.POST("/check", CheckBudgetExpense)

	r.OPTIONS("/allocation", OptionsBudgetAllocation)
	r.GET("/allocation", GetBudgetAllocation)
}

// familyBudget loads the family's committed budget with all its lines.
func familyBudget(familyID uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := models.DB.Preload("Lines").Where(&models.Budget{FamilyID: familyID}).First(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget/check [options]
func OptionsBudgetCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget/allocation [options]
func OptionsBudgetAllocation(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget
// @Description	Returns the committed budget of the caller's family
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	user, err := requireFamily(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := familyBudget(*user.FamilyID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Commit budget
// @Description	Commits a full budget draft for the caller's family, replacing any previously committed budget. The response includes the 50/30/20 evaluation of the committed plan.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [post]
func CreateBudget(c *gin.Context) {
	user, err := requireFamily(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget := editable.model()
	budget.FamilyID = *user.FamilyID

	// Replace the previous budget and commit the new one in a single
	// transaction, a draft is never committed half. The old rows are
	// deleted for good, a soft-deleted budget would still occupy the
	// unique index on the family
	tx := models.DB.Begin()

	err = tx.Unscoped().Where("budget_id IN (SELECT id FROM budgets WHERE family_id = ?)", *user.FamilyID).Delete(&models.BudgetLine{}).Error
	if err != nil {
		tx.Rollback()

		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = tx.Unscoped().Where("family_id = ?", *user.FamilyID).Delete(&models.Budget{}).Error
	if err != nil {
		tx.Rollback()

		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = tx.Create(&budget).Error
	if err != nil {
		tx.Rollback()

		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	tx.Commit()

	data := newBudget(budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		Check expense against bucket
// @Description	Checks whether a proposed line item still fits into the bucket's share of the income. Used while assembling a budget draft.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetCheckResponse
// @Failure		400		{object}	BudgetCheckResponse
// @Failure		401		{object}	httpError
// @Param			check	body		BudgetCheckEditable	true	"Check"
// @Router			/v1/budget/check [post]
func CheckBudgetExpense(c *gin.Context) {
	var editable BudgetCheckEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCheckResponse{
			Error: &e,
		})
		return
	}

	if !slices.Contains([]allocation.Bucket{allocation.BucketEssentials, allocation.BucketCommitments, allocation.BucketSavings}, editable.Bucket) {
		e := errBucketInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetCheckResponse{
			Error: &e,
		})
		return
	}

	if editable.TotalIncome.IsNegative() || editable.Used.IsNegative() || editable.Amount.IsNegative() {
		e := errAmountNegative.Error()
		c.JSON(http.StatusBadRequest, BudgetCheckResponse{
			Error: &e,
		})
		return
	}

	decision := allocation.CanAddExpense(editable.TotalIncome, editable.Bucket, editable.Used, editable.Amount)
	c.JSON(http.StatusOK, BudgetCheckResponse{Data: &decision})
}

// @Summary		Get allocation
// @Description	Evaluates the 50/30/20 guideline for the caller's family, against either the committed plan or the actual transactions
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Router			/v1/budget/allocation [get]
// @Param			source		query	string	false	"What to evaluate. One of: plan, actual. Defaults to plan."
// @Param			fromDate	query	string	false	"Only count transactions at and after this date. Ignored for source=plan."
// @Param			untilDate	query	string	false	"Only count transactions before and at this date. Ignored for source=plan."
func GetBudgetAllocation(c *gin.Context) {
	user, err := requireFamily(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	switch filter.Source {
	case "", "plan":
		budget, err := familyBudget(*user.FamilyID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AllocationResponse{
				Error: &e,
			})
			return
		}

		data := evaluatePlan(budget)
		c.JSON(http.StatusOK, AllocationResponse{Data: &data})
	case "actual":
		data, err := evaluateActual(*user.FamilyID, filter)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AllocationResponse{
				Error: &e,
			})
			return
		}

		c.JSON(http.StatusOK, AllocationResponse{Data: &data})
	default:
		e := errAllocationSourceWrong.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
	}
}

// evaluateActual evaluates the guideline against the transactions the
// family actually recorded.
func evaluateActual(familyID uuid.UUID, filter AllocationQueryFilter) (allocation.Allocation, error) {
	q := models.DB.Where(&models.Transaction{FamilyID: familyID})

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return allocation.Allocation{}, err
	}

	totals := make(map[models.Category]decimal.Decimal)
	for _, transaction := range transactions {
		totals[transaction.Category] = totals[transaction.Category].Add(transaction.Amount)
	}

	return allocation.Evaluate(
		totals[models.CategoryIncome],
		totals[models.CategoryEssential],
		totals[models.CategoryCommitment],
		totals[models.CategorySaving],
	), nil
}
