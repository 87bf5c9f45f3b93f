package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account holder. A user belongs to at most
// one family, which scopes everything they can see.
type User struct {
	DefaultModel
	Name         string     `json:"name" example:"Priya"`
	Email        string     `json:"email" gorm:"uniqueIndex" example:"priya@example.com"`
	PasswordHash string     `json:"-"`
	FamilyID     *uuid.UUID `json:"familyId" example:"9e7f55cf-e0d4-4c71-9a82-8abf3d24cd92"`
	Family       *Family    `json:"-"`
}

var (
	ErrEmailAlreadyRegistered = errors.New("this email is already registered")
	ErrUserNameEmpty          = errors.New("the user name must be set")
	ErrUserEmailEmpty         = errors.New("the email address must be set")
)

// BeforeSave normalizes the email address so that lookups are
// case-insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	return nil
}
