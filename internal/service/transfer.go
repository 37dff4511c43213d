package service

import (
	"errors"
	"time"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/logger"
	"player-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TransferService orchestrates the atomic three-step transfer: close the
// current contract period, open the new one, repoint the player's current
// club. All three execute inside one transaction; any failure rolls the whole
// sequence back. Concurrent transfers for the same player serialize on a row
// lock taken at the start of the transaction.
type TransferService struct {
	db        *gorm.DB
	players   *repository.PlayerRepository
	clubs     *repository.ClubRepository
	contracts *repository.ContractRepository
	validator *validator.Validate
	now       func() time.Time
}

// NewTransferService creates a new transfer service
func NewTransferService(db *gorm.DB, players *repository.PlayerRepository, clubs *repository.ClubRepository, contracts *repository.ContractRepository, validator *validator.Validate) *TransferService {
	return &TransferService{
		db:        db,
		players:   players,
		clubs:     clubs,
		contracts: contracts,
		validator: validator,
		now:       time.Now,
	}
}

// TransferRequest represents the request to move a player to a new club
type TransferRequest struct {
	PlayerID      int64  `json:"player_id" validate:"required"`
	NewClubID     int64  `json:"new_club_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	ReleaseClause int64  `json:"release_clause" validate:"gte=0"`
}

// InitialContractRequest represents the request to sign a player with no
// prior club
type InitialContractRequest struct {
	PlayerID      int64  `json:"player_id" validate:"required"`
	ClubID        int64  `json:"club_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	ReleaseClause int64  `json:"release_clause" validate:"gte=0"`
}

// TransferResponse represents the outcome of a completed transfer
type TransferResponse struct {
	PlayerID        int64            `json:"player_id"`
	ClubID          int64            `json:"club_id"`
	Contract        ContractResponse `json:"contract"`
	ClosedContracts int64            `json:"closed_contracts"`
}

func parseContractDates(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidContractRange
	}
	return start, end, nil
}

// Transfer moves the player's active club assignment to the new club.
// Storage faults are reported, never retried here: replaying a transfer
// blindly could double-close or double-open, so retry is the caller's call.
func (s *TransferService) Transfer(req *TransferRequest) (*TransferResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	start, end, err := parseContractDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	transferDate := DateOnly(s.now())
	closeDate := DefaultClosePolicy.CloseDate(transferDate, start)

	var resp *TransferResponse
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		players := s.players.WithTx(tx)
		clubs := s.clubs.WithTx(tx)
		contracts := s.contracts.WithTx(tx)

		// Lock the player row first; the second of two concurrent transfers
		// blocks here until the first commits, then re-reads ledger state.
		if _, err := players.GetByIDForUpdate(req.PlayerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPlayerNotFound
			}
			return apperrors.NewStorageError("lock player", err)
		}

		if _, err := clubs.GetByID(req.NewClubID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClubNotFound
			}
			return apperrors.NewStorageError("get club", err)
		}

		exists, err := contracts.ExistsForPair(req.PlayerID, req.NewClubID)
		if err != nil {
			return apperrors.NewStorageError("check contract pair", err)
		}
		if exists {
			return apperrors.ErrDuplicateContract
		}

		// Step 1: CloseCurrent. Zero rows closed is fine; the player may be
		// transferred from a free-agent state.
		closed, err := contracts.CloseOpen(req.PlayerID, closeDate)
		if err != nil {
			return apperrors.NewStorageError("close current contract", err)
		}

		// Step 2: OpenNew
		endDate := DateOnly(end)
		contract := &models.ContractPeriod{
			PlayerID:      req.PlayerID,
			ClubID:        req.NewClubID,
			StartDate:     DateOnly(start),
			EndDate:       &endDate,
			ReleaseClause: req.ReleaseClause,
		}
		if err := contracts.Create(contract); err != nil {
			return apperrors.NewStorageError("open new contract", err)
		}

		// Step 3: Repoint
		if err := players.UpdateCurrentClub(req.PlayerID, &req.NewClubID); err != nil {
			return apperrors.NewStorageError("repoint current club", err)
		}

		endStr := endDate.Format(time.DateOnly)
		resp = &TransferResponse{
			PlayerID: req.PlayerID,
			ClubID:   req.NewClubID,
			Contract: ContractResponse{
				ID:            contract.ID,
				PlayerID:      contract.PlayerID,
				ClubID:        contract.ClubID,
				StartDate:     contract.StartDate.Format(time.DateOnly),
				EndDate:       &endStr,
				ReleaseClause: contract.ReleaseClause,
				Open:          true,
			},
		}
		resp.ClosedContracts = closed
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.New().WithFields(map[string]interface{}{
		"player_id": req.PlayerID,
		"club_id":   req.NewClubID,
	}).Info("player transferred")

	return resp, nil
}

// CreateInitialContract signs a player who has no prior club. Unlike
// Transfer there is no close step: an existing open contract is rejected
// rather than closed.
func (s *TransferService) CreateInitialContract(req *InitialContractRequest) (*TransferResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	start, end, err := parseContractDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	signDate := DateOnly(s.now())

	var resp *TransferResponse
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		players := s.players.WithTx(tx)
		clubs := s.clubs.WithTx(tx)
		contracts := s.contracts.WithTx(tx)

		if _, err := players.GetByIDForUpdate(req.PlayerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPlayerNotFound
			}
			return apperrors.NewStorageError("lock player", err)
		}

		if _, err := clubs.GetByID(req.ClubID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClubNotFound
			}
			return apperrors.NewStorageError("get club", err)
		}

		open, err := contracts.OpenByPlayer(req.PlayerID, signDate)
		if err != nil {
			return apperrors.NewStorageError("list open contracts", err)
		}
		if len(open) > 0 {
			return apperrors.ErrOpenContractExists
		}

		endDate := DateOnly(end)
		contract := &models.ContractPeriod{
			PlayerID:      req.PlayerID,
			ClubID:        req.ClubID,
			StartDate:     DateOnly(start),
			EndDate:       &endDate,
			ReleaseClause: req.ReleaseClause,
		}
		if err := contracts.Create(contract); err != nil {
			return apperrors.NewStorageError("open initial contract", err)
		}

		if err := players.UpdateCurrentClub(req.PlayerID, &req.ClubID); err != nil {
			return apperrors.NewStorageError("repoint current club", err)
		}

		endStr := endDate.Format(time.DateOnly)
		resp = &TransferResponse{
			PlayerID: req.PlayerID,
			ClubID:   req.ClubID,
			Contract: ContractResponse{
				ID:            contract.ID,
				PlayerID:      contract.PlayerID,
				ClubID:        contract.ClubID,
				StartDate:     contract.StartDate.Format(time.DateOnly),
				EndDate:       &endStr,
				ReleaseClause: contract.ReleaseClause,
				Open:          true,
			},
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.New().WithFields(map[string]interface{}{
		"player_id": req.PlayerID,
		"club_id":   req.ClubID,
	}).Info("initial contract created")

	return resp, nil
}
