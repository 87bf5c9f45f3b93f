package v1

import (
	"time"

	"github.com/familyledger/backend/internal/allocation"
	"github.com/familyledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetLineEditable is one line item of a budget draft.
type BudgetLineEditable struct {
	Name      string           `json:"name" example:"Housing"`
	Amount    decimal.Decimal  `json:"amount" example:"20000" minimum:"0"`
	Frequency models.Frequency `json:"frequency,omitempty" example:"monthly" enums:"weekly,monthly,yearly"` // Only used for income lines, defaults to monthly
}

func (editable BudgetLineEditable) model(kind models.Category) models.BudgetLine {
	return models.BudgetLine{
		Kind:      kind,
		Name:      editable.Name,
		Amount:    editable.Amount,
		Frequency: editable.Frequency,
	}
}

// BudgetEditable is a full budget draft as assembled by the setup
// wizard. Committing it replaces the family's budget as a whole.
type BudgetEditable struct {
	Income      []BudgetLineEditable `json:"income"`      // Income sources
	Essentials  []BudgetLineEditable `json:"essentials"`  // Planned essential expenses
	Commitments []BudgetLineEditable `json:"commitments"` // Planned fixed commitments
	Savings     []BudgetLineEditable `json:"savings"`     // Planned savings
}

func (editable BudgetEditable) model() models.Budget {
	var lines []models.BudgetLine

	for _, line := range editable.Income {
		lines = append(lines, line.model(models.CategoryIncome))
	}
	for _, line := range editable.Essentials {
		lines = append(lines, line.model(models.CategoryEssential))
	}
	for _, line := range editable.Commitments {
		lines = append(lines, line.model(models.CategoryCommitment))
	}
	for _, line := range editable.Savings {
		lines = append(lines, line.model(models.CategorySaving))
	}

	return models.Budget{
		Lines: lines,
	}
}

// Budget is the API representation of a committed budget. The lines are
// grouped by kind and the current 50/30/20 evaluation of the plan is
// included.
type Budget struct {
	models.DefaultModel
	Income      []models.BudgetLine   `json:"income"`
	Essentials  []models.BudgetLine   `json:"essentials"`
	Commitments []models.BudgetLine   `json:"commitments"`
	Savings     []models.BudgetLine   `json:"savings"`
	Allocation  allocation.Allocation `json:"allocation"`
}

func newBudget(model models.Budget) Budget {
	budget := Budget{
		DefaultModel: model.DefaultModel,
		Income:       make([]models.BudgetLine, 0),
		Essentials:   make([]models.BudgetLine, 0),
		Commitments:  make([]models.BudgetLine, 0),
		Savings:      make([]models.BudgetLine, 0),
		Allocation:   evaluatePlan(model),
	}

	for _, line := range model.Lines {
		switch line.Kind {
		case models.CategoryIncome:
			budget.Income = append(budget.Income, line)
		case models.CategoryEssential:
			budget.Essentials = append(budget.Essentials, line)
		case models.CategoryCommitment:
			budget.Commitments = append(budget.Commitments, line)
		case models.CategorySaving:
			budget.Savings = append(budget.Savings, line)
		}
	}

	return budget
}

// evaluatePlan evaluates a committed budget, with income normalized to
// monthly amounts.
func evaluatePlan(budget models.Budget) allocation.Allocation {
	return allocation.Evaluate(
		budget.MonthlyIncome(),
		budget.KindTotal(models.CategoryEssential),
		budget.KindTotal(models.CategoryCommitment),
		budget.KindTotal(models.CategorySaving),
	)
}

// BudgetResponse is the response for budget requests.
type BudgetResponse struct {
	Data  *Budget `json:"data"`
	Error *string `json:"error"` // The error, if any occurred
}

// BudgetCheckEditable is the request body for the entry-time bucket
// check of the setup wizard. The draft lives in the client, so the
// check works on the totals the client passes.
type BudgetCheckEditable struct {
	TotalIncome decimal.Decimal   `json:"totalIncome" example:"50000"`
	Bucket      allocation.Bucket `json:"bucket" example:"essentials" enums:"essentials,commitments,savings"`
	Used        decimal.Decimal   `json:"used" example:"24000"` // Amount already planned in the bucket
	Amount      decimal.Decimal   `json:"amount" example:"1500"`
}

// BudgetCheckResponse is the response for the entry-time bucket check.
type BudgetCheckResponse struct {
	Data  *allocation.Decision `json:"data"`
	Error *string              `json:"error"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	Source    string    `form:"source"`    // Evaluate the committed plan or the actual transactions. One of: plan, actual. Defaults to plan
	FromDate  time.Time `form:"fromDate"`  // Only count transactions at and after this date. Ignored for source=plan
	UntilDate time.Time `form:"untilDate"` // Only count transactions before and at this date. Ignored for source=plan
}

// AllocationResponse is the response for the allocation evaluation.
type AllocationResponse struct {
	Data  *allocation.Allocation `json:"data"`
	Error *string                `json:"error"` // The error, if any occurred
}
