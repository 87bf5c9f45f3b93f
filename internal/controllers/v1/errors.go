package v1

import (
	"errors"
	"net/http"

	"github.com/familyledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errNoFamily) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errPasswordTooShort   = errors.New("the password must be at least 8 characters long")
)

// Family errors
var (
	errNoFamily        = errors.New("you do not belong to a family yet, create or join one first")
	errAlreadyInFamily = errors.New("you already belong to a family")
	errInviteCodeEmpty = errors.New("the invite code must be set")
)

// Transaction errors
var (
	errIDParameterRequired = errors.New("the id parameter must be set")
	errCategoryInvalid     = errors.New("the category must be one of: income, essential, commitment, saving")
)

// Budget errors
var (
	errBucketInvalid         = errors.New("the bucket must be one of: essentials, commitments, savings")
	errAmountNegative        = errors.New("amounts must not be negative")
	errAllocationSourceWrong = errors.New("the source parameter must be one of: plan, actual")
)
