package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"player-roster-backend/internal/api/handlers"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/mocks"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContractHandlerTestSuite defines the test suite for ContractHandler
type ContractHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockContractSvc *mocks.MockContractServiceInterface
	mockTransferSvc *mocks.MockTransferServiceInterface
	handler         *handlers.ContractHandler
	router          *gin.Engine
}

func (suite *ContractHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContractSvc = mocks.NewMockContractServiceInterface(suite.ctrl)
	suite.mockTransferSvc = mocks.NewMockTransferServiceInterface(suite.ctrl)
	suite.handler = handlers.NewContractHandler(suite.mockContractSvc, suite.mockTransferSvc)

	suite.router = gin.New()
	suite.router.GET("/contracts", suite.handler.ListContracts)
	suite.router.POST("/contracts", suite.handler.CreateInitialContract)
	suite.router.GET("/players/:id/contracts", suite.handler.GetPlayerContracts)
	suite.router.GET("/players/:id/contracts/open", suite.handler.GetPlayerOpenContracts)
}

func (suite *ContractHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractHandlerTestSuite) TestListContracts() {
	resp := &service.ContractListResponse{
		Contracts: []service.ContractResponse{{ID: 1, PlayerID: 7, ClubID: 2, StartDate: "2023-07-01", Open: true}},
		Total:     1,
		Page:      1,
		PageSize:  50,
	}
	suite.mockContractSvc.EXPECT().List(1, 50).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ContractListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Contracts, 1)
}

func (suite *ContractHandlerTestSuite) TestGetPlayerContracts() {
	end := "2023-06-30"
	history := []service.ContractResponse{
		{ID: 2, PlayerID: 7, ClubID: 3, StartDate: "2023-07-01", Open: true},
		{ID: 1, PlayerID: 7, ClubID: 2, StartDate: "2020-07-01", EndDate: &end, Open: false},
	}
	suite.mockContractSvc.EXPECT().History(int64(7)).Return(history, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/7/contracts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Contracts []service.ContractResponse `json:"contracts"`
		Count     int                        `json:"count"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 2, got.Count)
	assert.True(suite.T(), got.Contracts[0].Open)
	assert.False(suite.T(), got.Contracts[1].Open)
}

func (suite *ContractHandlerTestSuite) TestGetPlayerContracts_PlayerNotFound() {
	suite.mockContractSvc.EXPECT().History(int64(99)).Return(nil, apperrors.ErrPlayerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/players/99/contracts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ContractHandlerTestSuite) TestGetPlayerOpenContracts() {
	open := []service.ContractResponse{{ID: 2, PlayerID: 7, ClubID: 3, StartDate: "2023-07-01", Open: true}}
	suite.mockContractSvc.EXPECT().OpenContracts(int64(7)).Return(open, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/7/contracts/open", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ContractHandlerTestSuite) TestGetPlayerOpenContracts_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/players/abc/contracts/open", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ContractHandlerTestSuite) TestCreateInitialContract_Success() {
	end := "2029-06-30"
	resp := &service.TransferResponse{
		PlayerID: 10,
		ClubID:   2,
		Contract: service.ContractResponse{ID: 5, PlayerID: 10, ClubID: 2, StartDate: "2026-09-01", EndDate: &end, Open: true},
	}
	suite.mockTransferSvc.EXPECT().CreateInitialContract(gomock.Any()).DoAndReturn(
		func(req *service.InitialContractRequest) (*service.TransferResponse, error) {
			assert.Equal(suite.T(), int64(10), req.PlayerID)
			assert.Equal(suite.T(), int64(2), req.ClubID)
			return resp, nil
		})

	payload := []byte(`{"player_id":10,"club_id":2,"start_date":"2026-09-01","end_date":"2029-06-30","release_clause":10000000}`)
	req := httptest.NewRequest(http.MethodPost, "/contracts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ContractHandlerTestSuite) TestCreateInitialContract_OpenContractExists() {
	suite.mockTransferSvc.EXPECT().CreateInitialContract(gomock.Any()).Return(nil, apperrors.ErrOpenContractExists)

	payload := []byte(`{"player_id":7,"club_id":2,"start_date":"2026-09-01","end_date":"2029-06-30"}`)
	req := httptest.NewRequest(http.MethodPost, "/contracts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ContractHandlerTestSuite) TestCreateInitialContract_ClubNotFound() {
	suite.mockTransferSvc.EXPECT().CreateInitialContract(gomock.Any()).Return(nil, apperrors.ErrClubNotFound)

	payload := []byte(`{"player_id":7,"club_id":999,"start_date":"2026-09-01","end_date":"2029-06-30"}`)
	req := httptest.NewRequest(http.MethodPost, "/contracts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestContractHandlerTestSuite runs the test suite
func TestContractHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContractHandlerTestSuite))
}
