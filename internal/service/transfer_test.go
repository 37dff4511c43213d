package service_test

import (
	"testing"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// TransferServiceTestSuite covers the request validation surface of
// TransferService. The transactional path runs against a real database in
// the integration suite.
type TransferServiceTestSuite struct {
	suite.Suite
	transferService *service.TransferService
}

// SetupTest sets up the test suite
func (suite *TransferServiceTestSuite) SetupTest() {
	suite.transferService = service.NewTransferService(nil, nil, nil, nil, validator.New())
}

// TestTransferMissingFields tests that required fields are enforced before
// any storage access
func (suite *TransferServiceTestSuite) TestTransferMissingFields() {
	resp, err := suite.transferService.Transfer(&service.TransferRequest{})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

// TestTransferMalformedDates tests rejection of non-date strings
func (suite *TransferServiceTestSuite) TestTransferMalformedDates() {
	resp, err := suite.transferService.Transfer(&service.TransferRequest{
		PlayerID:  1,
		NewClubID: 2,
		StartDate: "July 1st 2025",
		EndDate:   "2028-06-30",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

// TestTransferEndBeforeStart tests the contract range check
func (suite *TransferServiceTestSuite) TestTransferEndBeforeStart() {
	resp, err := suite.transferService.Transfer(&service.TransferRequest{
		PlayerID:  1,
		NewClubID: 2,
		StartDate: "2025-07-01",
		EndDate:   "2024-06-30",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidContractRange)
	assert.Nil(suite.T(), resp)
}

// TestTransferEndEqualsStart tests that a zero-length contract is rejected
func (suite *TransferServiceTestSuite) TestTransferEndEqualsStart() {
	resp, err := suite.transferService.Transfer(&service.TransferRequest{
		PlayerID:  1,
		NewClubID: 2,
		StartDate: "2025-07-01",
		EndDate:   "2025-07-01",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidContractRange)
	assert.Nil(suite.T(), resp)
}

// TestInitialContractMissingFields tests required fields on the initial
// signing path
func (suite *TransferServiceTestSuite) TestInitialContractMissingFields() {
	resp, err := suite.transferService.CreateInitialContract(&service.InitialContractRequest{
		PlayerID: 1,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

// TestInitialContractInvalidRange tests the range check on the initial
// signing path
func (suite *TransferServiceTestSuite) TestInitialContractInvalidRange() {
	resp, err := suite.transferService.CreateInitialContract(&service.InitialContractRequest{
		PlayerID:  1,
		ClubID:    2,
		StartDate: "2026-01-01",
		EndDate:   "2025-01-01",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidContractRange)
	assert.Nil(suite.T(), resp)
}

// TestTransferNegativeReleaseClause tests the non-negative release clause rule
func (suite *TransferServiceTestSuite) TestTransferNegativeReleaseClause() {
	resp, err := suite.transferService.Transfer(&service.TransferRequest{
		PlayerID:      1,
		NewClubID:     2,
		StartDate:     "2025-07-01",
		EndDate:       "2028-06-30",
		ReleaseClause: -1,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

// TestTransferServiceTestSuite runs the test suite
func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
