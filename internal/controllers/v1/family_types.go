package v1

import (
	"github.com/familyledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FamilyEditable represents all values for a family that can be set by the client.
type FamilyEditable struct {
	Name             string              `json:"name" example:"The Printeds"`
	MonthlyBudgetCap decimal.NullDecimal `json:"monthlyBudgetCap" swaggertype:"number" example:"75000"`
}

func (editable FamilyEditable) model() models.Family {
	return models.Family{
		Name:             editable.Name,
		MonthlyBudgetCap: editable.MonthlyBudgetCap,
	}
}

// JoinEditable is the request body for joining a family.
type JoinEditable struct {
	InviteCode string `json:"inviteCode" example:"d19a622f"`
}

// Family is the API representation of a family.
type Family struct {
	models.DefaultModel
	Name             string              `json:"name" example:"The Printeds"`
	InviteCode       string              `json:"inviteCode" example:"d19a622f"`
	MonthlyBudgetCap decimal.NullDecimal `json:"monthlyBudgetCap" swaggertype:"number" example:"75000"`
	Members          []User              `json:"members"`
}

func newFamily(family models.Family, members []models.User) Family {
	apiMembers := make([]User, 0, len(members))
	for _, member := range members {
		apiMembers = append(apiMembers, newUser(member))
	}

	return Family{
		DefaultModel:     family.DefaultModel,
		Name:             family.Name,
		InviteCode:       family.InviteCode,
		MonthlyBudgetCap: family.MonthlyBudgetCap,
		Members:          apiMembers,
	}
}

// FamilyResponse is the response for family requests.
type FamilyResponse struct {
	Data  *Family `json:"data"`
	Error *string `json:"error"`
}

func familyMembers(familyID uuid.UUID) ([]models.User, error) {
	var members []models.User
	err := models.DB.Where(&models.User{FamilyID: &familyID}).Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}
