package v1

import (
	"github.com/familyledger/backend/internal/models"
	"github.com/google/uuid"
)

type RegisterEditable struct {
	Name     string `json:"name" example:"Priya"`
	Email    string `json:"email" example:"priya@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type LoginEditable struct {
	Email    string `json:"email" example:"priya@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// User is the API representation of a user account.
type User struct {
	models.DefaultModel
	Name     string     `json:"name" example:"Priya"`
	Email    string     `json:"email" example:"priya@example.com"`
	FamilyID *uuid.UUID `json:"familyId" example:"e6fa8eb6-0f4e-47b1-8dd4-dc03a75c3f02"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		FamilyID:     model.FamilyID,
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the email address must be set"` // The error, if any occurred
	Data  *User   `json:"data"`                                         // The user data, if the request was successful
}

type LoginData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the API
	User  User   `json:"user"`
}

type LoginResponse struct {
	Error *string    `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
	Data  *LoginData `json:"data"`                                              // The token and user, if login succeeded
}
