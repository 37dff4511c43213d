package service_test

import (
	"errors"
	"testing"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/mocks"
	"player-roster-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.userService = service.NewUserService(suite.mockUserRepo)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests that listing users strips credential material
func (suite *UserServiceTestSuite) TestList() {
	users := []models.User{
		{ID: 1, Username: "admin", PasswordHash: "$2a$10$secret", Role: models.UserRoleAdmin},
		{ID: 2, Username: "scout", PasswordHash: "$2a$10$secret", Role: models.UserRoleUser},
	}

	suite.mockUserRepo.EXPECT().List().Return(users, nil).Times(1)

	got, err := suite.userService.List()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "admin", got[0].Username)
	assert.Equal(suite.T(), models.UserRoleAdmin, got[0].Role)
	assert.Equal(suite.T(), models.UserRoleUser, got[1].Role)
}

// TestListStorageError tests that storage failures are wrapped
func (suite *UserServiceTestSuite) TestListStorageError() {
	suite.mockUserRepo.EXPECT().List().Return(nil, errors.New("connection reset")).Times(1)

	got, err := suite.userService.List()

	assert.Nil(suite.T(), got)
	assert.True(suite.T(), apperrors.IsStorage(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
