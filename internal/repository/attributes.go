package repository

import (
	"player-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttributeRepository handles database operations for the two role-specific
// attribute tables
type AttributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository creates a new attribute repository
func NewAttributeRepository(db *gorm.DB) *AttributeRepository {
	return &AttributeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AttributeRepository) WithTx(tx *gorm.DB) *AttributeRepository {
	return &AttributeRepository{db: tx}
}

// GetOutfield retrieves the outfield attribute row for a player
func (r *AttributeRepository) GetOutfield(playerID int64) (*models.OutfieldAttributes, error) {
	var attrs models.OutfieldAttributes
	err := r.db.First(&attrs, "player_id = ?", playerID).Error
	if err != nil {
		return nil, err
	}
	return &attrs, nil
}

// GetGoalkeeper retrieves the goalkeeper attribute row for a player
func (r *AttributeRepository) GetGoalkeeper(playerID int64) (*models.GoalkeeperAttributes, error) {
	var attrs models.GoalkeeperAttributes
	err := r.db.First(&attrs, "player_id = ?", playerID).Error
	if err != nil {
		return nil, err
	}
	return &attrs, nil
}

// CreateOutfield creates an outfield attribute row
func (r *AttributeRepository) CreateOutfield(attrs *models.OutfieldAttributes) error {
	return r.db.Create(attrs).Error
}

// CreateGoalkeeper creates a goalkeeper attribute row
func (r *AttributeRepository) CreateGoalkeeper(attrs *models.GoalkeeperAttributes) error {
	return r.db.Create(attrs).Error
}

// UpsertOutfield inserts an outfield row, ignoring existing ones
func (r *AttributeRepository) UpsertOutfield(attrs *models.OutfieldAttributes) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(attrs).Error
}

// UpsertGoalkeeper inserts a goalkeeper row, ignoring existing ones
func (r *AttributeRepository) UpsertGoalkeeper(attrs *models.GoalkeeperAttributes) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(attrs).Error
}

// SaveOutfield saves all fields of an outfield attribute row
func (r *AttributeRepository) SaveOutfield(attrs *models.OutfieldAttributes) error {
	return r.db.Save(attrs).Error
}

// SaveGoalkeeper saves all fields of a goalkeeper attribute row
func (r *AttributeRepository) SaveGoalkeeper(attrs *models.GoalkeeperAttributes) error {
	return r.db.Save(attrs).Error
}
