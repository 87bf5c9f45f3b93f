package models_test

import (
	"github.com/familyledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: " Priya@Example.COM "})
	suite.Assert().Equal("priya@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserNameEmpty() {
	err := models.DB.Create(&models.User{Email: "priya@example.com", PasswordHash: "hash"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameEmpty)
}

func (suite *TestSuiteStandard) TestUserEmailEmpty() {
	err := models.DB.Create(&models.User{Name: "Priya", PasswordHash: "hash"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailEmpty)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser(models.User{Email: "priya@example.com"})

	err := models.DB.Create(&models.User{
		Name:         "Someone Else",
		Email:        "priya@example.com",
		PasswordHash: "hash",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrEmailAlreadyRegistered)
}
