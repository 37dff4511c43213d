package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"player-roster-backend/internal/api/handlers"
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/mocks"
	"player-roster-backend/internal/repository"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClubHandlerTestSuite defines the test suite for ClubHandler
type ClubHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockClubSvc   *mocks.MockClubServiceInterface
	mockRosterSvc *mocks.MockRosterServiceInterface
	handler       *handlers.ClubHandler
	router        *gin.Engine
}

func (suite *ClubHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClubSvc = mocks.NewMockClubServiceInterface(suite.ctrl)
	suite.mockRosterSvc = mocks.NewMockRosterServiceInterface(suite.ctrl)
	suite.handler = handlers.NewClubHandler(suite.mockClubSvc, suite.mockRosterSvc)

	suite.router = gin.New()
	suite.router.GET("/clubs", suite.handler.ListClubs)
	suite.router.GET("/clubs/:id", suite.handler.GetClub)
	suite.router.GET("/clubs/:id/roster", suite.handler.GetClubRoster)
}

func (suite *ClubHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClubHandlerTestSuite) TestListClubs() {
	resp := &service.ClubListResponse{
		Clubs:    []models.Club{{ID: 1, ClubName: "Manchester City", LeagueName: "Premier League"}},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}
	suite.mockClubSvc.EXPECT().List(repository.ClubFilter{}, 1, 50).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/clubs", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ClubListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Clubs, 1)
	assert.Equal(suite.T(), "Manchester City", got.Clubs[0].ClubName)
}

func (suite *ClubHandlerTestSuite) TestListClubs_Filters() {
	suite.mockClubSvc.EXPECT().List(gomock.Any(), 1, 50).DoAndReturn(
		func(filter repository.ClubFilter, page, pageSize int) (*service.ClubListResponse, error) {
			assert.NotNil(suite.T(), filter.NationalityID)
			assert.Equal(suite.T(), int64(4), *filter.NationalityID)
			assert.Equal(suite.T(), "La Liga", filter.LeagueName)
			return &service.ClubListResponse{Clubs: []models.Club{}, Page: 1, PageSize: 50}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/clubs?nationality_id=4&league=La+Liga", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ClubHandlerTestSuite) TestListClubs_InvalidNationalityID() {
	req := httptest.NewRequest(http.MethodGet, "/clubs?nationality_id=abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ClubHandlerTestSuite) TestGetClub() {
	suite.mockClubSvc.EXPECT().Get(int64(1)).Return(&models.Club{ID: 1, ClubName: "Arsenal"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clubs/1", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Club
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Arsenal", got.ClubName)
}

func (suite *ClubHandlerTestSuite) TestGetClub_NotFound() {
	suite.mockClubSvc.EXPECT().Get(int64(99)).Return(nil, apperrors.ErrClubNotFound)

	req := httptest.NewRequest(http.MethodGet, "/clubs/99", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ClubHandlerTestSuite) TestGetClubRoster() {
	clubID := int64(1)
	roster := &service.ClubRosterResponse{
		Club: models.Club{ID: clubID, ClubName: "Arsenal"},
		Players: []service.RosterEntry{
			{
				Player: service.PlayerProfile{ID: 7, Name: "Squad Player", Role: models.PlayerRoleOutfield},
				OpenContract: &service.ContractResponse{
					ID: 3, PlayerID: 7, ClubID: clubID, StartDate: "2023-07-01", Open: true,
				},
			},
		},
	}
	suite.mockRosterSvc.EXPECT().GetClubRoster(clubID).Return(roster, nil)

	req := httptest.NewRequest(http.MethodGet, "/clubs/1/roster", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ClubRosterResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Players, 1)
	assert.NotNil(suite.T(), got.Players[0].OpenContract)
	assert.Equal(suite.T(), clubID, got.Players[0].OpenContract.ClubID)
}

func (suite *ClubHandlerTestSuite) TestGetClubRoster_NotFound() {
	suite.mockRosterSvc.EXPECT().GetClubRoster(int64(99)).Return(nil, apperrors.ErrClubNotFound)

	req := httptest.NewRequest(http.MethodGet, "/clubs/99/roster", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestClubHandlerTestSuite runs the test suite
func TestClubHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClubHandlerTestSuite))
}
