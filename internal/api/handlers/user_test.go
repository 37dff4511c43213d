package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"player-roster-backend/internal/api/handlers"
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/mocks"
	"player-roster-backend/internal/service"
	"player-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUserSvc *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	httpHelpers *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserSvc = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockUserSvc)

	suite.httpHelpers = testutils.SetupHTTPTest()
	suite.httpHelpers.Router.GET("/users", suite.handler.ListUsers)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	users := []service.UserResponse{
		{ID: 1, Username: "admin", Role: models.UserRoleAdmin},
		{ID: 2, Username: "scout", Role: models.UserRoleUser},
	}
	suite.mockUserSvc.EXPECT().List().Return(users, nil)

	w := suite.httpHelpers.MakeRequest(http.MethodGet, "/users", nil)

	var got struct {
		Users []service.UserResponse `json:"users"`
		Count int                    `json:"count"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 2, got.Count)
	assert.Equal(suite.T(), "admin", got.Users[0].Username)

	// No credential material in the payload
	assert.NotContains(suite.T(), strings.ToLower(w.Body.String()), "password")
	assert.NotContains(suite.T(), strings.ToLower(w.Body.String()), "hash")
}

func (suite *UserHandlerTestSuite) TestListUsers_StorageFault() {
	suite.mockUserSvc.EXPECT().List().Return(nil, apperrors.NewStorageError("list users", assert.AnError))

	w := suite.httpHelpers.MakeRequest(http.MethodGet, "/users", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to list users")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
