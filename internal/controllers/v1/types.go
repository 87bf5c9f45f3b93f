package v1

import (
	"github.com/familyledger/backend/internal/auth"
	"github.com/familyledger/backend/internal/models"
	fl_uuid "github.com/familyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID fl_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// currentUser loads the authenticated user from the database.
func currentUser(c *gin.Context) (models.User, error) {
	userID, ok := auth.UserID(c)
	if !ok {
		return models.User{}, auth.ErrTokenInvalid
	}

	var user models.User
	err := models.DB.First(&user, userID).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// requireFamily loads the authenticated user and verifies that they
// belong to a family. Every family-scoped endpoint starts here.
func requireFamily(c *gin.Context) (models.User, error) {
	user, err := currentUser(c)
	if err != nil {
		return models.User{}, err
	}

	if user.FamilyID == nil {
		return models.User{}, errNoFamily
	}

	return user, nil
}
