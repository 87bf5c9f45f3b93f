package v1

import (
	"fmt"
	"time"

	"github.com/familyledger/backend/internal/httputil"
	"github.com/familyledger/backend/internal/models"
	fl_uuid "github.com/familyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-12T00:00:00Z"` // Date of the transaction. Time is currently only used for sorting

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1450.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Category    models.Category `json:"category" example:"essential" enums:"income,essential,commitment,saving"` // The budget bucket of the transaction
	SubCategory string          `json:"subCategory" example:"Groceries"`                                         // A free-form label within the category
	Note        string          `json:"note" example:"weekly shop" default:""`                                   // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Category:    editable.Category,
		SubCategory: editable.SubCategory,
		Note:        editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	UserID uuid.UUID        `json:"userId" example:"9e7f55cf-e0d4-4c71-9a82-8abf3d24cd92"` // The member who recorded the transaction
	Links  TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Category:    model.Category,
			SubCategory: model.SubCategory,
			Note:        model.Note,
		},
		UserID: model.UserID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
}

type TransactionQueryFilter struct {
	Date              time.Time       `form:"date" filterField:"false"`              // Date of the transaction. Ignores the time, matches on the day
	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // Transactions at and after this date
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Transactions before and at this date
	Category          models.Category `form:"category"`                              // Filter by category
	SubCategory       string          `form:"subCategory" filterField:"false"`       // Filter by sub-category, supports * wildcards
	Note              string          `form:"note" filterField:"false"`              // Filter by note, substring match
	Member            fl_uuid.UUID    `form:"member" filterField:"false"`            // Filter by the member who recorded the transaction
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50
}

// model returns the database resource for the query filter fields that
// map directly to columns
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Category: f.Category,
	}
}
