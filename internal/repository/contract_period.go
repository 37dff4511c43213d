package repository

import (
	"time"

	"player-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContractRepository handles database operations for the contract ledger
type ContractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ContractRepository) WithTx(tx *gorm.DB) *ContractRepository {
	return &ContractRepository{db: tx}
}

// Create appends a new contract period to the ledger
func (r *ContractRepository) Create(contract *models.ContractPeriod) error {
	return r.db.Create(contract).Error
}

// Upsert inserts a contract period, ignoring rows that already exist
func (r *ContractRepository) Upsert(contract *models.ContractPeriod) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(contract).Error
}

// OpenByPlayer retrieves the player's open contract periods as of the given
// date. Zero or one row is expected; more than one is a consistency fault the
// service layer surfaces.
func (r *ContractRepository) OpenByPlayer(playerID int64, asOf time.Time) ([]models.ContractPeriod, error) {
	var contracts []models.ContractPeriod
	err := r.db.
		Where("player_id = ? AND (end_date IS NULL OR end_date >= ?)", playerID, asOf).
		Order("start_date DESC").
		Find(&contracts).Error
	return contracts, err
}

// History retrieves the full ledger for a player, newest first
func (r *ContractRepository) History(playerID int64) ([]models.ContractPeriod, error) {
	var contracts []models.ContractPeriod
	err := r.db.Where("player_id = ?", playerID).Order("start_date DESC").Find(&contracts).Error
	return contracts, err
}

// List retrieves contract periods with pagination
func (r *ContractRepository) List(limit, offset int) ([]models.ContractPeriod, int64, error) {
	var contracts []models.ContractPeriod
	var total int64

	if err := r.db.Model(&models.ContractPeriod{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&contracts).Error
	if err != nil {
		return nil, 0, err
	}

	return contracts, total, nil
}

// ExistsForPair reports whether a contract row exists for the player/club pair
func (r *ContractRepository) ExistsForPair(playerID, clubID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ContractPeriod{}).
		Where("player_id = ? AND club_id = ?", playerID, clubID).
		Count(&count).Error
	return count > 0, err
}

// CloseOpen end-dates the player's open contract periods to asOf and returns
// how many rows were closed
func (r *ContractRepository) CloseOpen(playerID int64, asOf time.Time) (int64, error) {
	result := r.db.Model(&models.ContractPeriod{}).
		Where("player_id = ? AND (end_date IS NULL OR end_date >= ?)", playerID, asOf).
		Update("end_date", asOf)
	return result.RowsAffected, result.Error
}

// CloseForClub end-dates the player's open period with a specific club and
// returns how many rows were closed
func (r *ContractRepository) CloseForClub(playerID, clubID int64, asOf time.Time) (int64, error) {
	result := r.db.Model(&models.ContractPeriod{}).
		Where("player_id = ? AND club_id = ? AND (end_date IS NULL OR end_date >= ?)", playerID, clubID, asOf).
		Update("end_date", asOf)
	return result.RowsAffected, result.Error
}
