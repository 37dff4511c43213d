package service

import (
	"errors"
	"time"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// ClosePolicy selects which date an open contract period is end-dated to when
// a transfer closes it.
type ClosePolicy int

const (
	// CloseAtTransferDate end-dates the outgoing period to the transfer date
	// itself. The close date can leave a gap or an overlap against the
	// incoming period's start date.
	CloseAtTransferDate ClosePolicy = iota

	// CloseAtNewStart end-dates the outgoing period to the day before the
	// incoming period starts, leaving neither gap nor overlap.
	CloseAtNewStart
)

// DefaultClosePolicy is the policy the transfer coordinator applies.
const DefaultClosePolicy = CloseAtTransferDate

// CloseDate resolves the end date for the outgoing period
func (p ClosePolicy) CloseDate(transferDate, newStart time.Time) time.Time {
	if p == CloseAtNewStart {
		return newStart.AddDate(0, 0, -1)
	}
	return transferDate
}

// DateOnly truncates a timestamp to midnight UTC. Contract dates are
// calendar dates; openness checks must not depend on the time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ContractService handles business logic for the contract ledger
type ContractService struct {
	contracts repository.ContractRepositoryInterface
	players   repository.PlayerRepositoryInterface
	clubs     repository.ClubRepositoryInterface
	now       func() time.Time
}

// NewContractService creates a new contract service
func NewContractService(contracts repository.ContractRepositoryInterface, players repository.PlayerRepositoryInterface, clubs repository.ClubRepositoryInterface) *ContractService {
	return &ContractService{
		contracts: contracts,
		players:   players,
		clubs:     clubs,
		now:       time.Now,
	}
}

// ContractResponse represents a contract period in API responses
type ContractResponse struct {
	ID            int64   `json:"id"`
	PlayerID      int64   `json:"player_id"`
	ClubID        int64   `json:"club_id"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	ReleaseClause int64   `json:"release_clause"`
	Open          bool    `json:"open"`
}

// ContractListResponse represents a paginated list of contract periods
type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// OpenContracts returns the player's open contract periods. Zero or one row
// is the healthy state; more than one is surfaced so the caller sees the
// consistency fault instead of a silently picked winner.
func (s *ContractService) OpenContracts(playerID int64) ([]ContractResponse, error) {
	if _, err := s.players.GetByID(playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}

	contracts, err := s.contracts.OpenByPlayer(playerID, DateOnly(s.now()))
	if err != nil {
		return nil, apperrors.NewStorageError("list open contracts", err)
	}

	return s.toResponses(contracts), nil
}

// History returns the full ledger for a player, newest first
func (s *ContractService) History(playerID int64) ([]ContractResponse, error) {
	if _, err := s.players.GetByID(playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}

	contracts, err := s.contracts.History(playerID)
	if err != nil {
		return nil, apperrors.NewStorageError("list contract history", err)
	}

	return s.toResponses(contracts), nil
}

// List returns contract periods with pagination
func (s *ContractService) List(page, pageSize int) (*ContractListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	contracts, total, err := s.contracts.List(pageSize, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list contracts", err)
	}

	return &ContractListResponse{
		Contracts: s.toResponses(contracts),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Close end-dates the player's open period with the given club to asOf.
// Fails when no such open period exists.
func (s *ContractService) Close(playerID, clubID int64, asOf time.Time) error {
	closed, err := s.contracts.CloseForClub(playerID, clubID, DateOnly(asOf))
	if err != nil {
		return apperrors.NewStorageError("close contract", err)
	}
	if closed == 0 {
		return apperrors.ErrNoOpenContract
	}
	return nil
}

// Open appends a new contract period to the ledger. The transfer coordinator
// is the usual caller; standalone use carries the same validation.
func (s *ContractService) Open(playerID, clubID int64, start time.Time, end *time.Time, releaseClause int64) (*ContractResponse, error) {
	if end != nil && !end.After(start) {
		return nil, apperrors.ErrInvalidContractRange
	}

	if _, err := s.players.GetByID(playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}
	if _, err := s.clubs.GetByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.NewStorageError("get club", err)
	}

	exists, err := s.contracts.ExistsForPair(playerID, clubID)
	if err != nil {
		return nil, apperrors.NewStorageError("check contract pair", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateContract
	}

	contract := &models.ContractPeriod{
		PlayerID:      playerID,
		ClubID:        clubID,
		StartDate:     DateOnly(start),
		ReleaseClause: releaseClause,
	}
	if end != nil {
		d := DateOnly(*end)
		contract.EndDate = &d
	}

	if err := s.contracts.Create(contract); err != nil {
		return nil, apperrors.NewStorageError("create contract", err)
	}

	resp := s.toResponse(contract)
	return &resp, nil
}

func (s *ContractService) toResponse(contract *models.ContractPeriod) ContractResponse {
	resp := ContractResponse{
		ID:            contract.ID,
		PlayerID:      contract.PlayerID,
		ClubID:        contract.ClubID,
		StartDate:     contract.StartDate.Format(time.DateOnly),
		ReleaseClause: contract.ReleaseClause,
		Open:          contract.IsOpen(DateOnly(s.now())),
	}
	if contract.EndDate != nil {
		formatted := contract.EndDate.Format(time.DateOnly)
		resp.EndDate = &formatted
	}
	return resp
}

func (s *ContractService) toResponses(contracts []models.ContractPeriod) []ContractResponse {
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = s.toResponse(&contracts[i])
	}
	return responses
}
