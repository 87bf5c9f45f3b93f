package v1_test

import (
	"net/http"

	v1 "github.com/familyledger/backend/internal/controllers/v1"
	"github.com/familyledger/backend/test"
)

func (suite *TestSuiteStandard) TestFamilyCreate() {
	_, family := familyTestUser(suite.T())

	suite.Assert().Equal("The Sharmas", family.Name)
	suite.Assert().NotEmpty(family.InviteCode)
	suite.Require().Len(family.Members, 1)
}

func (suite *TestSuiteStandard) TestFamilyCreateTwice() {
	token, _ := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/families", v1.FamilyEditable{Name: "Another"}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestFamilyJoin() {
	_, family := familyTestUser(suite.T())
	joiner := loginTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/families/join", v1.JoinEditable{InviteCode: family.InviteCode}, authHeaders(joiner))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FamilyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(family.ID, response.Data.ID)
	suite.Assert().Len(response.Data.Members, 2)
}

// An empty invite code must be rejected before the lookup. The code is
// ignored as a query condition when empty, so letting it through would
// match an arbitrary family.
func (suite *TestSuiteStandard) TestFamilyJoinEmptyCode() {
	familyTestUser(suite.T())
	outsider := loginTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/families/join", v1.JoinEditable{}, authHeaders(outsider))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The outsider must not have joined anything
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/families", "", authHeaders(outsider))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFamilyJoinUnknownCode() {
	token := loginTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/families/join", v1.JoinEditable{InviteCode: "nope"}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFamilyJoinAlreadyInFamily() {
	token, family := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/families/join", v1.JoinEditable{InviteCode: family.InviteCode}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestFamilyGet() {
	token, family := familyTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/families", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FamilyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(family.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestFamilyGetWithoutFamily() {
	token := loginTestUser(suite.T())

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/families", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFamilyOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/families", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	token := loginTestUser(suite.T())
	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/families", "", authHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}
