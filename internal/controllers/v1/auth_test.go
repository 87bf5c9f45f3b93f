package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/familyledger/backend/internal/controllers/v1"
	"github.com/familyledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	user := registerTestUser(suite.T(), v1.RegisterEditable{
		Name:  "Priya",
		Email: "Priya@Example.com",
	})

	suite.Assert().Equal("Priya", user.Name)
	suite.Assert().Equal("priya@example.com", user.Email, "email is not normalized")
	suite.Assert().Nil(user.FamilyID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	registerTestUser(suite.T(), v1.RegisterEditable{Email: "priya@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Name:     "Someone Else",
		Email:    "priya@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("this email is already registered", *response.Error)
}

func (suite *TestSuiteStandard) TestRegisterPasswordTooShort() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "short",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", `{ invalid json`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	registerTestUser(suite.T(), v1.RegisterEditable{
		Email:    "priya@example.com",
		Password: "correct horse battery staple",
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    " PRIYA@example.com ",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().Equal("priya@example.com", response.Data.User.Email)
}

// Unknown emails and wrong passwords must be indistinguishable in the
// response.
func (suite *TestSuiteStandard) TestLoginBadCredentials() {
	registerTestUser(suite.T(), v1.RegisterEditable{
		Email:    "priya@example.com",
		Password: "correct horse battery staple",
	})

	tests := []struct {
		name  string
		login v1.LoginEditable
	}{
		{"wrong password", v1.LoginEditable{Email: "priya@example.com", Password: "wrong"}},
		{"unknown email", v1.LoginEditable{Email: "nobody@example.com", Password: "correct horse battery staple"}},
	}

	var messages []string
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.login)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			var response v1.LoginResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Error)
			messages = append(messages, *response.Error)
		})
	}

	assert.Equal(suite.T(), messages[0], messages[1])
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	for _, path := range []string{
		"http://example.com/v1/families",
		"http://example.com/v1/transactions",
		"http://example.com/v1/stats",
		"http://example.com/v1/budget",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	}
}
